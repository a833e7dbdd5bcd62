package authz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerChain(t *testing.T) {
	ctx := context.Background()
	f, _ := annotationWorkflow()
	g := NewGraph(f)

	for _, tc := range []struct {
		kind Kind
		id   string
	}{
		{KindProject, "p1"},
		{KindLabel, "l1"},
		{KindImage, "i1"},
		{KindAnnotation, "a1"},
	} {
		projectID, err := g.OwnerChain(ctx, tc.kind, tc.id)
		require.NoError(t, err, "%s %s", tc.kind, tc.id)
		assert.Equal(t, "p1", projectID)
	}
}

func TestOwnerChainMissingEntity(t *testing.T) {
	ctx := context.Background()
	f, _ := annotationWorkflow()
	g := NewGraph(f)

	for _, kind := range []Kind{KindProject, KindLabel, KindImage, KindAnnotation} {
		_, err := g.OwnerChain(ctx, kind, "ghost")
		assert.ErrorIs(t, err, ErrEntityNotFound, "%s", kind)
	}
}

func TestOwnerChainDanglingLink(t *testing.T) {
	ctx := context.Background()
	f, _ := annotationWorkflow()

	// An annotation whose image row is gone resolves to not-found at the
	// broken link, not to some partial answer.
	f.anns["stray"] = annRow{imageID: "gone", createdBy: "u1"}
	g := NewGraph(f)

	_, err := g.OwnerChain(ctx, KindAnnotation, "stray")
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestOwnerChainUnsupportedKind(t *testing.T) {
	f, _ := annotationWorkflow()
	g := NewGraph(f)

	_, err := g.OwnerChain(context.Background(), KindMembership, "p1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEntityNotFound)
}
