package authz

import (
	"context"

	"github.com/labelforge/labelforge/pkg/model"
)

// fixtureStore is an in-memory row store for evaluator tests. It
// implements PrincipalReader, GraphReader, and RuleReader over plain maps
// so decisions can be tested without a database.
type fixtureStore struct {
	principals map[string]*model.Principal
	projects   map[string]string // project id -> created_by
	labels     map[string]string // label id -> project id
	images     map[string]string // image id -> project id
	anns       map[string]annRow // annotation id -> (image, created_by)
}

type annRow struct {
	imageID   string
	createdBy string
}

func newFixtureStore() *fixtureStore {
	return &fixtureStore{
		principals: map[string]*model.Principal{},
		projects:   map[string]string{},
		labels:     map[string]string{},
		images:     map[string]string{},
		anns:       map[string]annRow{},
	}
}

func (f *fixtureStore) addPrincipal(id, role string) *model.Principal {
	p := &model.Principal{ID: id, Login: id, Role: role}
	f.principals[id] = p
	return p
}

func (f *fixtureStore) FetchPrincipal(_ context.Context, id string) (*model.Principal, error) {
	return f.principals[id], nil
}

func (f *fixtureStore) ProjectExists(_ context.Context, projectID string) (bool, error) {
	_, ok := f.projects[projectID]
	return ok, nil
}

func (f *fixtureStore) LabelProject(_ context.Context, labelID string) (string, error) {
	return f.labels[labelID], nil
}

func (f *fixtureStore) ImageProject(_ context.Context, imageID string) (string, error) {
	return f.images[imageID], nil
}

func (f *fixtureStore) AnnotationImage(_ context.Context, annotationID string) (string, error) {
	return f.anns[annotationID].imageID, nil
}

func (f *fixtureStore) ProjectCreator(_ context.Context, projectID string) (string, error) {
	return f.projects[projectID], nil
}

func (f *fixtureStore) AnnotationCreator(_ context.Context, annotationID string) (string, error) {
	return f.anns[annotationID].createdBy, nil
}

func newFixtureEvaluator(f *fixtureStore) *Evaluator {
	return NewEvaluator(NewGraph(f), f)
}
