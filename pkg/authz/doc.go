// Package authz implements the LabelForge authorization core.
//
// Every data operation passes through three cooperating parts:
//
//   - Resolver: maps an authenticated identity to a stored Principal and
//     answers global-role predicates.
//   - Graph: walks entity ownership (Annotation -> Image -> Project,
//     Image -> Project, Label -> Project) so that every authorization
//     question reduces to a relationship with a single owning Project.
//   - Evaluator: evaluates an ordered set of boolean rule functions per
//     (entity kind, action), OR-combined, defaulting to Deny.
//
// The evaluator takes the principal as an explicit argument and holds no
// state of its own; a decision is a pure function of the current rows.
// Project memberships are deliberately not an authorization input: the
// rule set grants through creator ownership and global roles only, and
// membership rows remain as self-enrollment bookkeeping.
package authz
