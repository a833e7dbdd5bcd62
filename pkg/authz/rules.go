package authz

import "context"

// ruleFunc is a single boolean-returning policy rule. Rules report
// (true, nil) to allow, (false, nil) to abstain, and an error to abort
// evaluation (missing entities included).
type ruleFunc func(ctx context.Context, e *Evaluator, req *request) (bool, error)

type ruleKey struct {
	kind   Kind
	action Action
}

// ruleTable maps (kind, action) to its ordered rules. Pairs absent from
// the table deny unconditionally.
var ruleTable = map[ruleKey][]ruleFunc{
	// Projects: the creator, and only the creator.
	{KindProject, ActionSelect}: {ruleProjectCreator},
	{KindProject, ActionUpdate}: {ruleProjectCreator},
	{KindProject, ActionDelete}: {ruleProjectCreator},
	{KindProject, ActionInsert}: {ruleInsertAsSelf},

	// Labels and images transit ownership exactly one level up.
	{KindLabel, ActionSelect}: {ruleParentProjectCreator},
	{KindLabel, ActionInsert}: {rulePayloadProjectCreator},
	{KindLabel, ActionUpdate}: {ruleParentProjectCreator},
	{KindLabel, ActionDelete}: {ruleParentProjectCreator},

	{KindImage, ActionSelect}: {ruleParentProjectCreator},
	{KindImage, ActionInsert}: {rulePayloadProjectCreator},
	{KindImage, ActionUpdate}: {ruleParentProjectCreator},
	{KindImage, ActionDelete}: {ruleParentProjectCreator},

	// Annotations: owner, author, or a global reviewer/admin.
	{KindAnnotation, ActionSelect}: {ruleParentProjectCreator, ruleAnnotationAuthor, ruleGlobalReviewer},
	{KindAnnotation, ActionUpdate}: {ruleParentProjectCreator, ruleAnnotationAuthor, ruleGlobalReviewer},
	{KindAnnotation, ActionInsert}: {ruleAnnotationInsert},
	{KindAnnotation, ActionDelete}: {ruleParentProjectCreator, ruleAnnotationAuthor},

	// Memberships: self-enrollment into one's own project only. The rows
	// grant nothing; reading them is reserved to the project owner.
	{KindMembership, ActionInsert}: {ruleMembershipSelfEnroll},
	{KindMembership, ActionSelect}: {rulePayloadProjectCreator},
}

func rulesFor(kind Kind, action Action) []ruleFunc {
	return ruleTable[ruleKey{kind, action}]
}

// ruleProjectCreator allows when the principal created the project the
// request names directly.
func ruleProjectCreator(ctx context.Context, e *Evaluator, req *request) (bool, error) {
	return e.ownsProject(ctx, req.principal, req.id)
}

// ruleInsertAsSelf allows creating a row whose created_by is the
// principal itself. Forged created_by values deny.
func ruleInsertAsSelf(_ context.Context, _ *Evaluator, req *request) (bool, error) {
	return req.payload != nil && req.payload.CreatedBy == req.principal.ID, nil
}

// ruleParentProjectCreator allows when the principal created the project
// that transitively owns the entity.
func ruleParentProjectCreator(ctx context.Context, e *Evaluator, req *request) (bool, error) {
	return e.ownsParentProject(ctx, req.principal, req.kind, req.id)
}

// rulePayloadProjectCreator allows when the principal created the project
// the payload names. Used for inserts, where the entity row does not
// exist yet and the parent comes from the payload.
func rulePayloadProjectCreator(ctx context.Context, e *Evaluator, req *request) (bool, error) {
	if req.payload == nil {
		return false, nil
	}
	return e.ownsProject(ctx, req.principal, req.payload.ProjectID)
}

// ruleAnnotationAuthor allows the annotation's own creator.
func ruleAnnotationAuthor(ctx context.Context, e *Evaluator, req *request) (bool, error) {
	creator, err := e.store.AnnotationCreator(ctx, req.id)
	if err != nil {
		return false, err
	}
	if creator == "" {
		return false, ErrEntityNotFound
	}
	return creator == req.principal.ID, nil
}

// ruleGlobalReviewer allows principals holding the reviewer or admin
// global role, regardless of project ownership. The entity must still
// exist; a missing row is not-found, not an allow.
func ruleGlobalReviewer(ctx context.Context, e *Evaluator, req *request) (bool, error) {
	if !IsReviewer(req.principal) {
		return false, nil
	}
	if _, err := e.graph.OwnerChain(ctx, req.kind, req.id); err != nil {
		return false, err
	}
	return true, nil
}

// ruleAnnotationInsert requires the principal to own the parent project
// of the target image AND to insert as itself.
func ruleAnnotationInsert(ctx context.Context, e *Evaluator, req *request) (bool, error) {
	if req.payload == nil || req.payload.CreatedBy != req.principal.ID {
		return false, nil
	}
	if req.payload.ImageID == "" {
		return false, ErrEntityNotFound
	}
	return e.ownsParentProject(ctx, req.principal, KindImage, req.payload.ImageID)
}

// ruleMembershipSelfEnroll requires the target project to be owned by the
// principal and the enrolled user to be the principal itself.
func ruleMembershipSelfEnroll(ctx context.Context, e *Evaluator, req *request) (bool, error) {
	if req.payload == nil || req.payload.UserID != req.principal.ID {
		return false, nil
	}
	return e.ownsProject(ctx, req.principal, req.payload.ProjectID)
}
