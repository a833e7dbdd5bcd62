package authz

import (
	"context"
	"fmt"
)

// Graph answers "which project owns this entity" by walking foreign keys
// upward. The chain is Annotation -> Image -> Project, Image -> Project,
// Label -> Project; a Project owns itself.
type Graph struct {
	store GraphReader
}

// NewGraph creates a Graph over the given storage.
func NewGraph(store GraphReader) *Graph {
	return &Graph{store: store}
}

// OwnerChain resolves an entity to its owning project id. It fails with
// ErrEntityNotFound when the entity, or any link of its parent chain, does
// not exist. A dangling chain is never treated as an implicit allow.
func (g *Graph) OwnerChain(ctx context.Context, kind Kind, id string) (string, error) {
	switch kind {
	case KindProject:
		exists, err := g.store.ProjectExists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("owner chain for project %s: %w", id, err)
		}
		if !exists {
			return "", ErrEntityNotFound
		}
		return id, nil

	case KindLabel:
		projectID, err := g.store.LabelProject(ctx, id)
		if err != nil {
			return "", fmt.Errorf("owner chain for label %s: %w", id, err)
		}
		if projectID == "" {
			return "", ErrEntityNotFound
		}
		return g.OwnerChain(ctx, KindProject, projectID)

	case KindImage:
		projectID, err := g.store.ImageProject(ctx, id)
		if err != nil {
			return "", fmt.Errorf("owner chain for image %s: %w", id, err)
		}
		if projectID == "" {
			return "", ErrEntityNotFound
		}
		return g.OwnerChain(ctx, KindProject, projectID)

	case KindAnnotation:
		imageID, err := g.store.AnnotationImage(ctx, id)
		if err != nil {
			return "", fmt.Errorf("owner chain for annotation %s: %w", id, err)
		}
		if imageID == "" {
			return "", ErrEntityNotFound
		}
		return g.OwnerChain(ctx, KindImage, imageID)

	default:
		return "", fmt.Errorf("owner chain: unsupported kind %s", kind)
	}
}
