package endpoints

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/labelforge/labelforge/pkg/model"
)

// MockAuthzStore implements store.AuthzStore for testing using testify/mock
type MockAuthzStore struct {
	mock.Mock
}

func NewMockAuthzStore() *MockAuthzStore {
	return &MockAuthzStore{}
}

func (m *MockAuthzStore) FetchPrincipal(ctx context.Context, id string) (*model.Principal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Principal), args.Error(1)
}

func (m *MockAuthzStore) FetchPrincipalByLogin(ctx context.Context, login string) (*model.Principal, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Principal), args.Error(1)
}

func (m *MockAuthzStore) CreatePrincipal(ctx context.Context, principal *model.Principal, passwordHash []byte) error {
	args := m.Called(ctx, principal, passwordHash)
	return args.Error(0)
}

func (m *MockAuthzStore) FetchPasswordHash(ctx context.Context, principalID string) ([]byte, error) {
	args := m.Called(ctx, principalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockAuthzStore) UpdatePasswordHash(ctx context.Context, principalID string, hash []byte) error {
	args := m.Called(ctx, principalID, hash)
	return args.Error(0)
}

func (m *MockAuthzStore) ProjectExists(ctx context.Context, projectID string) (bool, error) {
	args := m.Called(ctx, projectID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuthzStore) LabelProject(ctx context.Context, labelID string) (string, error) {
	args := m.Called(ctx, labelID)
	return args.String(0), args.Error(1)
}

func (m *MockAuthzStore) ImageProject(ctx context.Context, imageID string) (string, error) {
	args := m.Called(ctx, imageID)
	return args.String(0), args.Error(1)
}

func (m *MockAuthzStore) AnnotationImage(ctx context.Context, annotationID string) (string, error) {
	args := m.Called(ctx, annotationID)
	return args.String(0), args.Error(1)
}

func (m *MockAuthzStore) ProjectCreator(ctx context.Context, projectID string) (string, error) {
	args := m.Called(ctx, projectID)
	return args.String(0), args.Error(1)
}

func (m *MockAuthzStore) AnnotationCreator(ctx context.Context, annotationID string) (string, error) {
	args := m.Called(ctx, annotationID)
	return args.String(0), args.Error(1)
}

// MockPrincipalsStore implements store.PrincipalsStore for testing
type MockPrincipalsStore struct {
	mock.Mock
}

func NewMockPrincipalsStore() *MockPrincipalsStore {
	return &MockPrincipalsStore{}
}

func (m *MockPrincipalsStore) FetchPrincipal(ctx context.Context, id string) (*model.Principal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Principal), args.Error(1)
}

func (m *MockPrincipalsStore) FetchPrincipalByLogin(ctx context.Context, login string) (*model.Principal, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Principal), args.Error(1)
}

func (m *MockPrincipalsStore) CreatePrincipal(ctx context.Context, principal *model.Principal, passwordHash []byte) error {
	args := m.Called(ctx, principal, passwordHash)
	return args.Error(0)
}

func (m *MockPrincipalsStore) FetchPasswordHash(ctx context.Context, principalID string) ([]byte, error) {
	args := m.Called(ctx, principalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockPrincipalsStore) UpdatePasswordHash(ctx context.Context, principalID string, hash []byte) error {
	args := m.Called(ctx, principalID, hash)
	return args.Error(0)
}

// MockProjectsStore implements store.ProjectsStore for testing
type MockProjectsStore struct {
	mock.Mock
}

func NewMockProjectsStore() *MockProjectsStore {
	return &MockProjectsStore{}
}

func (m *MockProjectsStore) CreateProject(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectsStore) FetchProject(ctx context.Context, id string) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectsStore) ListProjectsByCreator(ctx context.Context, creatorID string, limit, offset int) ([]model.Project, error) {
	args := m.Called(ctx, creatorID, limit, offset)
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectsStore) UpdateProject(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectsStore) DeleteProject(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLabelsStore implements store.LabelsStore for testing
type MockLabelsStore struct {
	mock.Mock
}

func NewMockLabelsStore() *MockLabelsStore {
	return &MockLabelsStore{}
}

func (m *MockLabelsStore) CreateLabel(ctx context.Context, label *model.Label) error {
	args := m.Called(ctx, label)
	return args.Error(0)
}

func (m *MockLabelsStore) FetchLabel(ctx context.Context, id string) (*model.Label, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Label), args.Error(1)
}

func (m *MockLabelsStore) ListLabels(ctx context.Context, projectID string) ([]model.Label, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]model.Label), args.Error(1)
}

func (m *MockLabelsStore) UpdateLabel(ctx context.Context, label *model.Label) error {
	args := m.Called(ctx, label)
	return args.Error(0)
}

func (m *MockLabelsStore) DeleteLabel(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockImagesStore implements store.ImagesStore for testing
type MockImagesStore struct {
	mock.Mock
}

func NewMockImagesStore() *MockImagesStore {
	return &MockImagesStore{}
}

func (m *MockImagesStore) CreateImage(ctx context.Context, image *model.Image) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockImagesStore) FetchImage(ctx context.Context, id string) (*model.Image, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Image), args.Error(1)
}

func (m *MockImagesStore) ListImages(ctx context.Context, projectID, status string, limit, offset int) ([]model.Image, error) {
	args := m.Called(ctx, projectID, status, limit, offset)
	return args.Get(0).([]model.Image), args.Error(1)
}

func (m *MockImagesStore) CountImages(ctx context.Context, projectID, status string) (int, error) {
	args := m.Called(ctx, projectID, status)
	return args.Int(0), args.Error(1)
}

func (m *MockImagesStore) UpdateImage(ctx context.Context, image *model.Image) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockImagesStore) DeleteImage(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAnnotationsStore implements store.AnnotationsStore for testing
type MockAnnotationsStore struct {
	mock.Mock
}

func NewMockAnnotationsStore() *MockAnnotationsStore {
	return &MockAnnotationsStore{}
}

func (m *MockAnnotationsStore) CreateAnnotation(ctx context.Context, annotation *model.Annotation) error {
	args := m.Called(ctx, annotation)
	return args.Error(0)
}

func (m *MockAnnotationsStore) FetchAnnotation(ctx context.Context, id string) (*model.Annotation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Annotation), args.Error(1)
}

func (m *MockAnnotationsStore) ListAnnotations(ctx context.Context, imageID string) ([]model.Annotation, error) {
	args := m.Called(ctx, imageID)
	return args.Get(0).([]model.Annotation), args.Error(1)
}

func (m *MockAnnotationsStore) UpdateAnnotation(ctx context.Context, annotation *model.Annotation) error {
	args := m.Called(ctx, annotation)
	return args.Error(0)
}

func (m *MockAnnotationsStore) DeleteAnnotation(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMembershipsStore implements store.MembershipsStore for testing
type MockMembershipsStore struct {
	mock.Mock
}

func NewMockMembershipsStore() *MockMembershipsStore {
	return &MockMembershipsStore{}
}

func (m *MockMembershipsStore) CreateMembership(ctx context.Context, membership *model.ProjectMembership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockMembershipsStore) ListMemberships(ctx context.Context, projectID string) ([]model.ProjectMembership, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]model.ProjectMembership), args.Error(1)
}

// MockHealthStore implements store.HealthStore for testing
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}

// MockBlobStore implements blob.Store for testing
type MockBlobStore struct {
	mock.Mock
}

func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{}
}

func (m *MockBlobStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, key, size, contentType)
	return args.Error(0)
}

func (m *MockBlobStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockBlobStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
