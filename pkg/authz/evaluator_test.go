package authz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelforge/labelforge/pkg/model"
)

// annotationWorkflow builds the canonical fixture: u1 owns project p1 with
// label l1, image i1, and annotation a1 authored by u1; u2 is unrelated;
// u3 is a global reviewer.
func annotationWorkflow() (*fixtureStore, *Evaluator) {
	f := newFixtureStore()
	f.addPrincipal("u1", model.RoleAnnotator)
	f.addPrincipal("u2", model.RoleAnnotator)
	f.addPrincipal("u3", model.RoleReviewer)
	f.addPrincipal("u4", model.RoleAdmin)
	f.projects["p1"] = "u1"
	f.labels["l1"] = "p1"
	f.images["i1"] = "p1"
	f.anns["a1"] = annRow{imageID: "i1", createdBy: "u1"}
	return f, newFixtureEvaluator(f)
}

func TestProjectCreatorOwnsProject(t *testing.T) {
	ctx := context.Background()
	f, e := annotationWorkflow()

	for _, action := range []Action{ActionSelect, ActionUpdate, ActionDelete} {
		t.Run(action.String(), func(t *testing.T) {
			decision, err := e.Authorize(ctx, f.principals["u1"], action, KindProject, "p1", nil)
			require.NoError(t, err)
			assert.Equal(t, Allow, decision)

			decision, err = e.Authorize(ctx, f.principals["u2"], action, KindProject, "p1", nil)
			require.NoError(t, err)
			assert.Equal(t, Deny, decision)
		})
	}
}

func TestProjectInsertRequiresSelfAsCreator(t *testing.T) {
	ctx := context.Background()
	f, e := annotationWorkflow()

	decision, err := e.Authorize(ctx, f.principals["u2"], ActionInsert, KindProject, "", &Payload{CreatedBy: "u2"})
	require.NoError(t, err)
	assert.Equal(t, Allow, decision)

	// Forged created_by denies, even for an admin.
	decision, err = e.Authorize(ctx, f.principals["u4"], ActionInsert, KindProject, "", &Payload{CreatedBy: "u2"})
	require.NoError(t, err)
	assert.Equal(t, Deny, decision)

	decision, err = e.Authorize(ctx, f.principals["u2"], ActionInsert, KindProject, "", nil)
	require.NoError(t, err)
	assert.Equal(t, Deny, decision)
}

// Ownership transits exactly one level: rights on a label or image follow
// the creator check on the owning project.
func TestLabelAndImageFollowProjectOwnership(t *testing.T) {
	ctx := context.Background()
	f, e := annotationWorkflow()

	for _, tc := range []struct {
		kind Kind
		id   string
	}{
		{KindLabel, "l1"},
		{KindImage, "i1"},
	} {
		for _, action := range []Action{ActionSelect, ActionUpdate, ActionDelete} {
			decision, err := e.Authorize(ctx, f.principals["u1"], action, tc.kind, tc.id, nil)
			require.NoError(t, err)
			assert.Equal(t, Allow, decision, "%s %s by owner", action, tc.kind)

			decision, err = e.Authorize(ctx, f.principals["u2"], action, tc.kind, tc.id, nil)
			require.NoError(t, err)
			assert.Equal(t, Deny, decision, "%s %s by stranger", action, tc.kind)

			// A global reviewer role grants nothing outside annotations.
			decision, err = e.Authorize(ctx, f.principals["u3"], action, tc.kind, tc.id, nil)
			require.NoError(t, err)
			assert.Equal(t, Deny, decision, "%s %s by reviewer", action, tc.kind)
		}

		decision, err := e.Authorize(ctx, f.principals["u1"], ActionInsert, tc.kind, "", &Payload{ProjectID: "p1"})
		require.NoError(t, err)
		assert.Equal(t, Allow, decision)

		decision, err = e.Authorize(ctx, f.principals["u2"], ActionInsert, tc.kind, "", &Payload{ProjectID: "p1"})
		require.NoError(t, err)
		assert.Equal(t, Deny, decision)
	}
}

func TestAnnotationAccess(t *testing.T) {
	ctx := context.Background()
	f, e := annotationWorkflow()

	// An annotation authored by u2 in u1's project: the author keeps
	// select/update rights without owning the project.
	f.anns["a2"] = annRow{imageID: "i1", createdBy: "u2"}

	for _, action := range []Action{ActionSelect, ActionUpdate} {
		t.Run(action.String(), func(t *testing.T) {
			// Project creator.
			decision, err := e.Authorize(ctx, f.principals["u1"], action, KindAnnotation, "a2", nil)
			require.NoError(t, err)
			assert.Equal(t, Allow, decision)

			// Annotation author.
			decision, err = e.Authorize(ctx, f.principals["u2"], action, KindAnnotation, "a2", nil)
			require.NoError(t, err)
			assert.Equal(t, Allow, decision)

			// Global reviewer and admin override ownership.
			decision, err = e.Authorize(ctx, f.principals["u3"], action, KindAnnotation, "a1", nil)
			require.NoError(t, err)
			assert.Equal(t, Allow, decision)

			decision, err = e.Authorize(ctx, f.principals["u4"], action, KindAnnotation, "a1", nil)
			require.NoError(t, err)
			assert.Equal(t, Allow, decision)
		})
	}

	// u2 has no relation to a1 at all.
	decision, err := e.Authorize(ctx, f.principals["u2"], ActionSelect, KindAnnotation, "a1", nil)
	require.NoError(t, err)
	assert.Equal(t, Deny, decision)

	// Delete: owner and author only; reviewer role does not grant it.
	decision, err = e.Authorize(ctx, f.principals["u3"], ActionDelete, KindAnnotation, "a1", nil)
	require.NoError(t, err)
	assert.Equal(t, Deny, decision)

	decision, err = e.Authorize(ctx, f.principals["u2"], ActionDelete, KindAnnotation, "a2", nil)
	require.NoError(t, err)
	assert.Equal(t, Allow, decision)
}

func TestAnnotationInsert(t *testing.T) {
	ctx := context.Background()
	f, e := annotationWorkflow()

	decision, err := e.Authorize(ctx, f.principals["u1"], ActionInsert, KindAnnotation, "", &Payload{ImageID: "i1", CreatedBy: "u1"})
	require.NoError(t, err)
	assert.Equal(t, Allow, decision)

	// created_by must be the principal itself, project ownership
	// notwithstanding.
	decision, err = e.Authorize(ctx, f.principals["u1"], ActionInsert, KindAnnotation, "", &Payload{ImageID: "i1", CreatedBy: "u2"})
	require.NoError(t, err)
	assert.Equal(t, Deny, decision)

	// Non-owners cannot insert even as themselves.
	decision, err = e.Authorize(ctx, f.principals["u2"], ActionInsert, KindAnnotation, "", &Payload{ImageID: "i1", CreatedBy: "u2"})
	require.NoError(t, err)
	assert.Equal(t, Deny, decision)
}

func TestMembershipSelfEnrollment(t *testing.T) {
	ctx := context.Background()
	f, e := annotationWorkflow()

	// Enrolling oneself into one's own project.
	decision, err := e.Authorize(ctx, f.principals["u1"], ActionInsert, KindMembership, "", &Payload{ProjectID: "p1", UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, Allow, decision)

	// Enrolling somebody else denies.
	decision, err = e.Authorize(ctx, f.principals["u1"], ActionInsert, KindMembership, "", &Payload{ProjectID: "p1", UserID: "u2"})
	require.NoError(t, err)
	assert.Equal(t, Deny, decision)

	// Enrolling into a project one did not create denies.
	decision, err = e.Authorize(ctx, f.principals["u2"], ActionInsert, KindMembership, "", &Payload{ProjectID: "p1", UserID: "u2"})
	require.NoError(t, err)
	assert.Equal(t, Deny, decision)
}

// Membership rows are bookkeeping only: holding one grants no rights
// under the creator-ownership rule set.
func TestMembershipGrantsNothing(t *testing.T) {
	ctx := context.Background()
	f, e := annotationWorkflow()

	// Even if u2 were enrolled in p1, nothing in the stores ties the
	// evaluator to memberships; u2 stays denied everywhere in p1.
	for _, tc := range []struct {
		kind Kind
		id   string
	}{
		{KindProject, "p1"},
		{KindLabel, "l1"},
		{KindImage, "i1"},
		{KindAnnotation, "a1"},
	} {
		decision, err := e.Authorize(ctx, f.principals["u2"], ActionSelect, tc.kind, tc.id, nil)
		require.NoError(t, err)
		assert.Equal(t, Deny, decision, "select %s", tc.kind)
	}
}

func TestMissingEntitiesAreNotFoundNeverAllowed(t *testing.T) {
	ctx := context.Background()
	f, e := annotationWorkflow()

	for _, tc := range []struct {
		kind Kind
		id   string
	}{
		{KindProject, "ghost"},
		{KindLabel, "ghost"},
		{KindImage, "ghost"},
		{KindAnnotation, "ghost"},
	} {
		decision, err := e.Authorize(ctx, f.principals["u1"], ActionSelect, tc.kind, tc.id, nil)
		assert.ErrorIs(t, err, ErrEntityNotFound, "select %s", tc.kind)
		assert.Equal(t, Deny, decision)
	}

	// A reviewer probing a missing annotation gets not-found, not allow.
	decision, err := e.Authorize(ctx, f.principals["u3"], ActionSelect, KindAnnotation, "ghost", nil)
	assert.ErrorIs(t, err, ErrEntityNotFound)
	assert.Equal(t, Deny, decision)

	// Dangling parent chain: image pointing at a dropped project.
	f.images["orphan"] = "gone"
	decision, err = e.Authorize(ctx, f.principals["u1"], ActionSelect, KindImage, "orphan", nil)
	assert.ErrorIs(t, err, ErrEntityNotFound)
	assert.Equal(t, Deny, decision)
}

func TestNilPrincipalIsUnauthenticated(t *testing.T) {
	_, e := annotationWorkflow()

	decision, err := e.Authorize(context.Background(), nil, ActionSelect, KindProject, "p1", nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Equal(t, Deny, decision)
}

// The full concrete scenario: u1 builds a project end to end, u2 is shut
// out, u3 reviews.
func TestEndToEndScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixtureStore()
	u1 := f.addPrincipal("u1", model.RoleAnnotator)
	u2 := f.addPrincipal("u2", model.RoleAnnotator)
	u3 := f.addPrincipal("u3", model.RoleReviewer)
	e := newFixtureEvaluator(f)

	// u1 creates p1.
	decision, err := e.Authorize(ctx, u1, ActionInsert, KindProject, "", &Payload{CreatedBy: "u1"})
	require.NoError(t, err)
	require.Equal(t, Allow, decision)
	f.projects["p1"] = "u1"

	// u1 creates l1 and i1 in p1.
	decision, err = e.Authorize(ctx, u1, ActionInsert, KindLabel, "", &Payload{ProjectID: "p1"})
	require.NoError(t, err)
	require.Equal(t, Allow, decision)
	f.labels["l1"] = "p1"

	decision, err = e.Authorize(ctx, u1, ActionInsert, KindImage, "", &Payload{ProjectID: "p1"})
	require.NoError(t, err)
	require.Equal(t, Allow, decision)
	f.images["i1"] = "p1"

	// u1 annotates i1 as itself.
	decision, err = e.Authorize(ctx, u1, ActionInsert, KindAnnotation, "", &Payload{ImageID: "i1", CreatedBy: "u1"})
	require.NoError(t, err)
	require.Equal(t, Allow, decision)
	f.anns["a1"] = annRow{imageID: "i1", createdBy: "u1"}

	// u2, unrelated to p1, cannot read a1.
	decision, err = e.Authorize(ctx, u2, ActionSelect, KindAnnotation, "a1", nil)
	require.NoError(t, err)
	assert.Equal(t, Deny, decision)

	// u3, a reviewer, can update a1's approval.
	decision, err = e.Authorize(ctx, u3, ActionUpdate, KindAnnotation, "a1", nil)
	require.NoError(t, err)
	assert.Equal(t, Allow, decision)
}

// Authorize is a pure function of the stored rows: identical calls over
// unchanged state return identical results.
func TestAuthorizeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f, e := annotationWorkflow()

	for i := 0; i < 5; i++ {
		decision, err := e.Authorize(ctx, f.principals["u1"], ActionUpdate, KindAnnotation, "a1", nil)
		require.NoError(t, err)
		assert.Equal(t, Allow, decision)

		decision, err = e.Authorize(ctx, f.principals["u2"], ActionUpdate, KindAnnotation, "a1", nil)
		require.NoError(t, err)
		assert.Equal(t, Deny, decision)
	}
}
