package authz

import (
	"context"

	"github.com/labelforge/labelforge/pkg/model"
)

// Decision is the outcome of a policy evaluation.
type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// Payload carries the caller-supplied attributes of a pending write.
// Which fields are consulted depends on the (kind, action) rule: inserts
// reference their parent through ProjectID or ImageID since the entity
// row does not exist yet.
type Payload struct {
	CreatedBy string
	ProjectID string
	ImageID   string
	UserID    string
}

// request is one authorization question in flight.
type request struct {
	principal *model.Principal
	action    Action
	kind      Kind
	id        string
	payload   *Payload
}

// Evaluator decides Allow or Deny for (principal, action, entity)
// triples. Decisions are pure functions of the current rows; the
// evaluator holds no cross-request state and is safe for concurrent use.
type Evaluator struct {
	graph *Graph
	store RuleReader
}

// NewEvaluator creates an Evaluator over an ownership graph and rule
// storage.
func NewEvaluator(graph *Graph, store RuleReader) *Evaluator {
	return &Evaluator{graph: graph, store: store}
}

// Authorize evaluates the rule set for a request. Rules for the
// (kind, action) pair are tried in order and OR-combined; no applicable
// rule, or no rule returning true, is a Deny.
//
// The error is ErrUnauthenticated for a nil principal and
// ErrEntityNotFound when the referenced entity does not exist. Callers
// must surface not-found and deny identically to the requester.
func (e *Evaluator) Authorize(ctx context.Context, principal *model.Principal, action Action, kind Kind, id string, payload *Payload) (Decision, error) {
	if principal == nil {
		return Deny, ErrUnauthenticated
	}

	req := &request{
		principal: principal,
		action:    action,
		kind:      kind,
		id:        id,
		payload:   payload,
	}

	for _, rule := range rulesFor(kind, action) {
		ok, err := rule(ctx, e, req)
		if err != nil {
			return Deny, err
		}
		if ok {
			return Allow, nil
		}
	}

	return Deny, nil
}

// ownsProject reports whether the principal is the creator of projectID.
// An absent project is ErrEntityNotFound, never an implicit allow.
func (e *Evaluator) ownsProject(ctx context.Context, principal *model.Principal, projectID string) (bool, error) {
	if projectID == "" {
		return false, ErrEntityNotFound
	}
	creator, err := e.store.ProjectCreator(ctx, projectID)
	if err != nil {
		return false, err
	}
	if creator == "" {
		return false, ErrEntityNotFound
	}
	return creator == principal.ID, nil
}

// ownsParentProject resolves the entity's owning project and applies the
// creator check.
func (e *Evaluator) ownsParentProject(ctx context.Context, principal *model.Principal, kind Kind, id string) (bool, error) {
	projectID, err := e.graph.OwnerChain(ctx, kind, id)
	if err != nil {
		return false, err
	}
	return e.ownsProject(ctx, principal, projectID)
}
