package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"event-registration-platform/internal/models"
	"event-registration-platform/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventRouter(service *mockEventService) http.Handler {
	handler := NewEventHandler(service)

	r := chi.NewRouter()
	r.Post("/event/search", handler.Search)
	r.Get("/event/{id}", handler.Get)
	r.Post("/event", handler.Create)
	r.Put("/event/{id}", handler.Update)
	r.Put("/event/{id}/publish", handler.Publish)
	r.Post("/event/mine/search", handler.ListMine)
	return r
}

func TestSearchHandler(t *testing.T) {
	service := &mockEventService{
		searchPublishedFunc: func(params services.EventSearchParams) ([]*models.Event, int, error) {
			assert.Equal(t, "tech", params.Search)
			assert.Equal(t, "conference", params.Category)
			assert.Equal(t, map[string]int{"start_date": 1}, params.Sort)
			return []*models.Event{
				{ID: 1, Title: "Tech Conference", Status: models.StatusPublished},
			}, 1, nil
		},
	}

	body := `{"search":"tech","category":"conference","sort":{"start_date":1},"per_page":20,"page":1}`
	rec := httptest.NewRecorder()
	eventRouter(service).ServeHTTP(rec, authedRequest("POST", "/event/search", body, nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Ok    bool           `json:"ok"`
		Data  []models.Event `json:"data"`
		Total int            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Ok)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, 1, resp.Total)
}

func TestGetEventHandler(t *testing.T) {
	service := &mockEventService{
		getByIDFunc: func(id int) (*models.Event, error) {
			assert.Equal(t, 3, id)
			return &models.Event{ID: 3, Title: "JavaScript Workshop", Price: 4999}, nil
		},
	}

	rec := httptest.NewRecorder()
	eventRouter(service).ServeHTTP(rec, authedRequest("GET", "/event/3", "", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "JavaScript Workshop")
}

func TestGetEventHandler_NotFound(t *testing.T) {
	service := &mockEventService{
		getByIDFunc: func(id int) (*models.Event, error) {
			return nil, models.ErrEventNotFound
		},
	}

	rec := httptest.NewRecorder()
	eventRouter(service).ServeHTTP(rec, authedRequest("GET", "/event/42", "", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestGetEventHandler_InvalidID(t *testing.T) {
	service := &mockEventService{}

	rec := httptest.NewRecorder()
	eventRouter(service).ServeHTTP(rec, authedRequest("GET", "/event/abc", "", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateEventHandler(t *testing.T) {
	organizer := &models.User{ID: 5, Role: models.RoleOrganizer}
	service := &mockEventService{
		createFunc: func(req *models.EventCreateRequest, u *models.User) (*models.Event, error) {
			assert.Equal(t, "New Event", req.Title)
			assert.Equal(t, organizer.ID, u.ID)
			return &models.Event{ID: 1, Title: req.Title, Status: models.StatusDraft}, nil
		},
	}

	start := time.Now().Add(24 * time.Hour).Format(time.RFC3339)
	body := `{"title":"New Event","start_date":"` + start + `","capacity":100}`
	rec := httptest.NewRecorder()
	eventRouter(service).ServeHTTP(rec, authedRequest("POST", "/event", body, organizer))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "draft")
}

func TestCreateEventHandler_Forbidden(t *testing.T) {
	user := &models.User{ID: 1, Role: models.RoleUser}
	service := &mockEventService{
		createFunc: func(req *models.EventCreateRequest, u *models.User) (*models.Event, error) {
			return nil, models.ErrForbidden
		},
	}

	rec := httptest.NewRecorder()
	eventRouter(service).ServeHTTP(rec, authedRequest("POST", "/event", `{"title":"Nope"}`, user))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPublishEventHandler(t *testing.T) {
	organizer := &models.User{ID: 5, Role: models.RoleOrganizer}
	service := &mockEventService{
		publishFunc: func(id int, u *models.User) (*models.Event, error) {
			assert.Equal(t, 3, id)
			return &models.Event{ID: 3, Status: models.StatusPublished}, nil
		},
	}

	rec := httptest.NewRecorder()
	eventRouter(service).ServeHTTP(rec, authedRequest("PUT", "/event/3/publish", "", organizer))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "published")
}

func TestListMineHandler(t *testing.T) {
	organizer := &models.User{ID: 5, Role: models.RoleOrganizer}
	service := &mockEventService{
		listForOrganizerFunc: func(organizerID, perPage, page int) ([]*models.Event, int, error) {
			assert.Equal(t, 5, organizerID)
			return []*models.Event{{ID: 1}, {ID: 2}}, 2, nil
		},
	}

	rec := httptest.NewRecorder()
	eventRouter(service).ServeHTTP(rec, authedRequest("POST", "/event/mine/search", `{"per_page":20,"page":1}`, organizer))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
}
