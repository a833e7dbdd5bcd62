package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// StepsContext holds state shared between step definitions.
type StepsContext struct {
	tc           *TestContext
	response     *http.Response
	responseBody []byte

	tokens      map[string]string // login -> session token
	passwords   map[string]string // login -> password
	projects    map[string]string // name -> id
	labels      map[string]string // name -> id
	images      map[string]string // filename -> id
	annotations map[string]string // slot -> id
}

// NewStepsContext creates a new steps context.
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:          tc,
		tokens:      make(map[string]string),
		passwords:   make(map[string]string),
		projects:    make(map[string]string),
		labels:      make(map[string]string),
		images:      make(map[string]string),
		annotations: make(map[string]string),
	}
}

// RegisterSteps registers all step definitions.
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Step(`^a user "([^"]*)" with role "([^"]*)" exists$`, s.aUserExists)
	sc.Step(`^"([^"]*)" is logged in$`, s.userIsLoggedIn)

	sc.Step(`^"([^"]*)" creates a project "([^"]*)"$`, s.userCreatesProject)
	sc.Step(`^"([^"]*)" creates a project "([^"]*)" owned by "([^"]*)"$`, s.userCreatesProjectOwnedBy)
	sc.Step(`^"([^"]*)" requests the project "([^"]*)"$`, s.userRequestsProject)
	sc.Step(`^"([^"]*)" deletes the project "([^"]*)"$`, s.userDeletesProject)
	sc.Step(`^"([^"]*)" checks "([^"]*)" on project "([^"]*)"$`, s.userChecksProject)

	sc.Step(`^"([^"]*)" creates a label "([^"]*)" in project "([^"]*)"$`, s.userCreatesLabel)
	sc.Step(`^"([^"]*)" uploads an image "([^"]*)" to project "([^"]*)"$`, s.userUploadsImage)
	sc.Step(`^"([^"]*)" requests the file of image "([^"]*)"$`, s.userRequestsImageFile)

	sc.Step(`^"([^"]*)" annotates image "([^"]*)" with label "([^"]*)"$`, s.userAnnotatesImage)
	sc.Step(`^"([^"]*)" requests the annotations of image "([^"]*)"$`, s.userRequestsAnnotations)
	sc.Step(`^"([^"]*)" approves the last annotation$`, s.userApprovesLastAnnotation)
	sc.Step(`^"([^"]*)" deletes the last annotation$`, s.userDeletesLastAnnotation)

	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response should contain "([^"]*)"$`, s.theResponseShouldContain)
	sc.Step(`^the last annotation should be approved by "([^"]*)"$`, s.theLastAnnotationShouldBeApprovedBy)
}

// aUserExists seeds a principal and credential directly in the database.
// The signup endpoint refuses the admin role, so seeding keeps the steps
// uniform across roles.
func (s *StepsContext) aUserExists(login, role string) error {
	password := "password-" + login
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return err
	}

	id := uuid.NewString()
	if err := s.tc.DB.Exec(`
		INSERT INTO principals (id, login, role) VALUES (?, ?, ?)
		ON CONFLICT (login) DO NOTHING
	`, id, login, role).Error; err != nil {
		return err
	}
	if err := s.tc.DB.Exec(`
		INSERT INTO credentials (principal_id, password_hash)
		SELECT id, ? FROM principals WHERE login = ?
		ON CONFLICT (principal_id) DO UPDATE SET password_hash = EXCLUDED.password_hash
	`, hash, login).Error; err != nil {
		return err
	}

	s.passwords[login] = password
	return nil
}

func (s *StepsContext) userIsLoggedIn(login string) error {
	body, _ := json.Marshal(map[string]string{
		"login":    login,
		"password": s.passwords[login],
	})

	if err := s.request("POST", "/login", "", bytes.NewReader(body), "application/json"); err != nil {
		return err
	}
	if s.response.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed for %s: %d %s", login, s.response.StatusCode, s.responseBody)
	}

	var parsed struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(s.responseBody, &parsed); err != nil {
		return err
	}

	s.tokens[login] = parsed.Token
	return nil
}

func (s *StepsContext) userCreatesProject(login, name string) error {
	return s.createProject(login, name, "")
}

func (s *StepsContext) userCreatesProjectOwnedBy(login, name, owner string) error {
	var ownerID string
	if err := s.tc.DB.Raw(`SELECT id FROM principals WHERE login = ?`, owner).Scan(&ownerID).Error; err != nil {
		return err
	}
	return s.createProject(login, name, ownerID)
}

func (s *StepsContext) createProject(login, name, createdBy string) error {
	payload := map[string]string{"name": name}
	if createdBy != "" {
		payload["created_by"] = createdBy
	}
	body, _ := json.Marshal(payload)

	if err := s.request("POST", "/projects", login, bytes.NewReader(body), "application/json"); err != nil {
		return err
	}

	if s.response.StatusCode == http.StatusCreated {
		var parsed struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(s.responseBody, &parsed); err != nil {
			return err
		}
		s.projects[name] = parsed.ID
	}
	return nil
}

func (s *StepsContext) userRequestsProject(login, name string) error {
	return s.request("GET", "/projects/"+s.projects[name], login, nil, "")
}

func (s *StepsContext) userDeletesProject(login, name string) error {
	return s.request("DELETE", "/projects/"+s.projects[name], login, nil, "")
}

func (s *StepsContext) userChecksProject(login, action, name string) error {
	return s.request("GET", fmt.Sprintf("/projects/%s/check?action=%s", s.projects[name], action), login, nil, "")
}

func (s *StepsContext) userCreatesLabel(login, name, project string) error {
	body, _ := json.Marshal(map[string]string{"name": name, "color": "#ff0000"})

	if err := s.request("POST", "/projects/"+s.projects[project]+"/labels", login, bytes.NewReader(body), "application/json"); err != nil {
		return err
	}

	if s.response.StatusCode == http.StatusCreated {
		var parsed struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(s.responseBody, &parsed); err != nil {
			return err
		}
		s.labels[name] = parsed.ID
	}
	return nil
}

func (s *StepsContext) userUploadsImage(login, filename, project string) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := part.Write([]byte("not-really-a-jpeg")); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	if err := s.request("POST", "/projects/"+s.projects[project]+"/images", login, &buf, writer.FormDataContentType()); err != nil {
		return err
	}

	if s.response.StatusCode == http.StatusCreated {
		var parsed struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(s.responseBody, &parsed); err != nil {
			return err
		}
		s.images[filename] = parsed.ID
	}
	return nil
}

func (s *StepsContext) userRequestsImageFile(login, filename string) error {
	return s.request("GET", "/images/"+s.images[filename]+"/file", login, nil, "")
}

func (s *StepsContext) userAnnotatesImage(login, filename, label string) error {
	body, _ := json.Marshal(map[string]interface{}{
		"label_id": s.labels[label],
		"payload":  map[string]interface{}{"x": 1, "y": 2, "w": 10, "h": 20},
	})

	if err := s.request("POST", "/images/"+s.images[filename]+"/annotations", login, bytes.NewReader(body), "application/json"); err != nil {
		return err
	}

	if s.response.StatusCode == http.StatusCreated {
		var parsed struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(s.responseBody, &parsed); err != nil {
			return err
		}
		s.annotations["last"] = parsed.ID
	}
	return nil
}

func (s *StepsContext) userRequestsAnnotations(login, filename string) error {
	return s.request("GET", "/images/"+s.images[filename]+"/annotations", login, nil, "")
}

func (s *StepsContext) userApprovesLastAnnotation(login string) error {
	body, _ := json.Marshal(map[string]bool{"approved": true})
	return s.request("PATCH", "/annotations/"+s.annotations["last"]+"/review", login, bytes.NewReader(body), "application/json")
}

func (s *StepsContext) userDeletesLastAnnotation(login string) error {
	return s.request("DELETE", "/annotations/"+s.annotations["last"], login, nil, "")
}

func (s *StepsContext) theResponseStatusShouldBe(status int) error {
	if s.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if s.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d (body: %s)", status, s.response.StatusCode, s.responseBody)
	}
	return nil
}

func (s *StepsContext) theResponseShouldContain(substr string) error {
	if !strings.Contains(string(s.responseBody), substr) {
		return fmt.Errorf("expected response to contain %q, got: %s", substr, s.responseBody)
	}
	return nil
}

func (s *StepsContext) theLastAnnotationShouldBeApprovedBy(login string) error {
	var row struct {
		Approved   *bool
		ReviewedBy *string
	}
	if err := s.tc.DB.Raw(`
		SELECT approved, reviewed_by FROM annotations WHERE id = ?
	`, s.annotations["last"]).Scan(&row).Error; err != nil {
		return err
	}

	if row.Approved == nil || !*row.Approved {
		return fmt.Errorf("annotation is not approved")
	}

	var reviewerID string
	if err := s.tc.DB.Raw(`SELECT id FROM principals WHERE login = ?`, login).Scan(&reviewerID).Error; err != nil {
		return err
	}
	if row.ReviewedBy == nil || *row.ReviewedBy != reviewerID {
		return fmt.Errorf("annotation was not reviewed by %s", login)
	}
	return nil
}

// request issues an HTTP request against the test server, authenticating
// with login's session token when login is non-empty.
func (s *StepsContext) request(method, path, login string, body io.Reader, contentType string) error {
	req, err := http.NewRequest(method, s.tc.ServerURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if login != "" {
		token, ok := s.tokens[login]
		if !ok {
			return fmt.Errorf("%s is not logged in", login)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	s.response = resp
	s.responseBody, err = io.ReadAll(resp.Body)
	return err
}
