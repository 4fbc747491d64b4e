package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio_server/core/domain"
	"portfolio_server/pkg/response"
)

// fakeEducationRepo is an in-memory education store recording lookups.
type fakeEducationRepo struct {
	byID    map[primitive.ObjectID]domain.Education
	order   []primitive.ObjectID
	err     error
	lookups int
}

func newFakeEducationRepo() *fakeEducationRepo {
	return &fakeEducationRepo{byID: make(map[primitive.ObjectID]domain.Education)}
}

func (f *fakeEducationRepo) List(ctx context.Context) ([]domain.Education, error) {
	if f.err != nil {
		return nil, f.err
	}
	educations := []domain.Education{}
	for _, id := range f.order {
		educations = append(educations, f.byID[id])
	}
	return educations, nil
}

func (f *fakeEducationRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Education, error) {
	f.lookups++
	if f.err != nil {
		return nil, f.err
	}
	education, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	return &education, nil
}

func (f *fakeEducationRepo) Create(ctx context.Context, input *domain.EducationInput, now time.Time) (*domain.Education, error) {
	if f.err != nil {
		return nil, f.err
	}
	education := domain.Education{
		ID:             primitive.NewObjectID(),
		School:         input.School,
		Course:         input.Course,
		Specialization: input.Specialization,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		DateCreated:    &now,
	}
	f.byID[education.ID] = education
	f.order = append(f.order, education.ID)
	return &education, nil
}

func (f *fakeEducationRepo) Update(ctx context.Context, id primitive.ObjectID, input *domain.EducationInput, now time.Time) (*domain.Education, error) {
	if f.err != nil {
		return nil, f.err
	}
	education, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	education.School = input.School
	education.Course = input.Course
	education.Specialization = input.Specialization
	education.StartDate = input.StartDate
	education.EndDate = input.EndDate
	education.DateModified = &now
	f.byID[id] = education
	return &education, nil
}

func (f *fakeEducationRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.byID[id]; !ok {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

func newEducationApp(repo *fakeEducationRepo) *fiber.App {
	app := fiber.New()
	api := app.Group("/api/v1")
	NewEducationHandler(repo).Register(api)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, response.Envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}

	var envelope response.Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		t.Fatalf("failed to decode body %q: %v", data, err)
	}
	return resp.StatusCode, envelope
}

func dataMap(t *testing.T, envelope response.Envelope) map[string]any {
	t.Helper()
	m, ok := envelope.Data.(map[string]any)
	if !ok {
		t.Fatalf("envelope data = %T, want object", envelope.Data)
	}
	return m
}

func TestEducationList(t *testing.T) {
	repo := newFakeEducationRepo()
	app := newEducationApp(repo)

	status, envelope := doJSON(t, app, "GET", "/api/v1/educations", nil)
	if status != 200 || !envelope.Success {
		t.Fatalf("list: status = %d, success = %v", status, envelope.Success)
	}
	if list, ok := envelope.Data.([]any); !ok || len(list) != 0 {
		t.Errorf("list data = %#v, want empty array", envelope.Data)
	}

	repo.err = fmt.Errorf("connection reset")
	status, envelope = doJSON(t, app, "GET", "/api/v1/educations", nil)
	if status != 500 {
		t.Fatalf("list with store error: status = %d, want 500", status)
	}
	if envelope.Error != "connection reset" {
		t.Errorf("list error = %q, want the store message verbatim", envelope.Error)
	}
}

func TestEducationCreateThenGet(t *testing.T) {
	repo := newFakeEducationRepo()
	app := newEducationApp(repo)

	payload := map[string]any{
		"school":  "MIT",
		"course":  "Computer Science",
		"ignored": "dropped silently",
	}
	status, envelope := doJSON(t, app, "POST", "/api/v1/educations", payload)
	if status != 200 || !envelope.Success {
		t.Fatalf("create: status = %d, success = %v, error = %q", status, envelope.Success, envelope.Error)
	}

	created := dataMap(t, envelope)
	if created["school"] != "MIT" || created["course"] != "Computer Science" {
		t.Errorf("created fields = %v, want the whitelisted input back", created)
	}
	if created["dateCreated"] == nil {
		t.Error("created document has no dateCreated")
	}
	if created["dateModified"] != nil {
		t.Errorf("created document has dateModified = %v, want null", created["dateModified"])
	}
	if _, ok := created["ignored"]; ok {
		t.Error("unlisted payload field survived the whitelist")
	}

	id := created["id"].(string)
	status, envelope = doJSON(t, app, "GET", "/api/v1/educations/"+id, nil)
	if status != 200 {
		t.Fatalf("get after create: status = %d", status)
	}
	got := dataMap(t, envelope)
	if got["school"] != "MIT" {
		t.Errorf("get after create school = %v, want MIT", got["school"])
	}
}

func TestEducationUpdate(t *testing.T) {
	repo := newFakeEducationRepo()
	app := newEducationApp(repo)

	_, envelope := doJSON(t, app, "POST", "/api/v1/educations", map[string]any{
		"school": "MIT", "course": "CS", "specialization": "AI",
	})
	id := dataMap(t, envelope)["id"].(string)

	status, envelope := doJSON(t, app, "PUT", "/api/v1/educations/"+id, map[string]any{
		"school": "Stanford", "course": "EE",
	})
	if status != 200 {
		t.Fatalf("update: status = %d, error = %q", status, envelope.Error)
	}

	updated := dataMap(t, envelope)
	if updated["school"] != "Stanford" || updated["course"] != "EE" {
		t.Errorf("updated fields = %v", updated)
	}
	// full-field replace: the omitted specialization is unset
	if spec, ok := updated["specialization"]; ok && spec != "" && spec != nil {
		t.Errorf("specialization = %v, want unset after full replace", spec)
	}

	created, err := time.Parse(time.RFC3339Nano, updated["dateCreated"].(string))
	if err != nil {
		t.Fatal(err)
	}
	modified, err := time.Parse(time.RFC3339Nano, updated["dateModified"].(string))
	if err != nil {
		t.Fatal(err)
	}
	if !modified.After(created) {
		t.Errorf("dateModified %v is not after dateCreated %v", modified, created)
	}

	// structurally valid id with no match
	status, envelope = doJSON(t, app, "PUT", "/api/v1/educations/"+primitive.NewObjectID().Hex(), map[string]any{
		"school": "X", "course": "Y",
	})
	if status != 400 || envelope.Error != "Education cannot be updated!" {
		t.Errorf("update missing: status = %d, error = %q", status, envelope.Error)
	}
}

func TestEducationDeleteThenGet(t *testing.T) {
	repo := newFakeEducationRepo()
	app := newEducationApp(repo)

	_, envelope := doJSON(t, app, "POST", "/api/v1/educations", map[string]any{
		"school": "MIT", "course": "CS",
	})
	id := dataMap(t, envelope)["id"].(string)

	status, envelope := doJSON(t, app, "DELETE", "/api/v1/educations/"+id, nil)
	if status != 200 || envelope.Message != "Education has been deleted" {
		t.Fatalf("delete: status = %d, message = %q", status, envelope.Message)
	}

	status, envelope = doJSON(t, app, "GET", "/api/v1/educations/"+id, nil)
	if status != 400 || envelope.Error != "Education not found" {
		t.Errorf("get after delete: status = %d, error = %q", status, envelope.Error)
	}

	status, envelope = doJSON(t, app, "DELETE", "/api/v1/educations/"+id, nil)
	if status != 400 || envelope.Error != "Education not found!" {
		t.Errorf("delete missing: status = %d, error = %q", status, envelope.Error)
	}
}

func TestEducationInvalidID(t *testing.T) {
	repo := newFakeEducationRepo()
	app := newEducationApp(repo)

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/educations/not-an-id"},
		{"PUT", "/api/v1/educations/not-an-id"},
		{"DELETE", "/api/v1/educations/not-an-id"},
	}

	for _, tt := range paths {
		t.Run(tt.method, func(t *testing.T) {
			status, envelope := doJSON(t, app, tt.method, tt.path, map[string]any{})
			if status != 400 || envelope.Error != "Education id is invalid" {
				t.Errorf("%s: status = %d, error = %q", tt.method, status, envelope.Error)
			}
		})
	}

	if repo.lookups != 0 {
		t.Errorf("store lookups = %d, want 0 for invalid ids", repo.lookups)
	}
}
