//go:build integration
// +build integration

package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	dbadapter "taskify/internal/adapter/db"
	httpadapter "taskify/internal/adapter/http"
	"taskify/internal/adapter/http/dto"
	"taskify/internal/adapter/http/handlers"
	appservice "taskify/internal/app/service"
	"taskify/pkg/result"
)

type envelopeBody struct {
	IsSuccess bool            `json:"isSuccess"`
	IsFailed  bool            `json:"isFailed"`
	Value     json.RawMessage `json:"value"`
	Errors    []result.Error  `json:"errors"`
}

type TasksIntegrationSuite struct {
	IntegrationSuiteBase
	router *gin.Engine
}

func TestTasksIntegrationSuite(t *testing.T) {
	suite.Run(t, new(TasksIntegrationSuite))
}

func (s *TasksIntegrationSuite) SetupTest() {
	s.ResetDatabase()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	healthHandler := handlers.NewHealthHandler(s.DB)
	taskRepository := dbadapter.NewTaskRepository(s.DB)
	taskService := appservice.NewTaskService(taskRepository, nil)
	taskHandler := handlers.NewTaskHandler(taskService)
	httpadapter.RegisterRoutes(router, healthHandler, taskHandler)

	s.router = router
}

func (s *TasksIntegrationSuite) request(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *TasksIntegrationSuite) createTask(title, description string) dto.TaskItem {
	payload, err := json.Marshal(map[string]string{"title": title, "description": description})
	s.Require().NoError(err)

	rec := s.request(http.MethodPost, "/api/tasks", string(payload))
	s.Require().Equal(http.StatusOK, rec.Code)

	var got envelopeBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().True(got.IsSuccess)

	var item dto.TaskItem
	s.Require().NoError(json.Unmarshal(got.Value, &item))
	return item
}

func (s *TasksIntegrationSuite) TestCreateTask_PersistsAndReturnsToDo() {
	item := s.createTask("Buy milk", "2% low-fat")

	s.Require().NotEmpty(item.ID)
	s.Require().Equal("Buy milk", item.Title)
	s.Require().Equal("2% low-fat", *item.Description)
	s.Require().Equal("ToDo", item.Status)
	s.Require().Equal(item.CreatedAt, item.UpdatedAt)

	var count int
	s.Require().NoError(s.DB.Get(&count, "SELECT COUNT(*) FROM tasks WHERE id = ?", item.ID))
	s.Require().Equal(1, count)
}

func (s *TasksIntegrationSuite) TestCreateTask_ValidationFailureWritesNothing() {
	rec := s.request(http.MethodPost, "/api/tasks", `{"title":"   "}`)
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	var got envelopeBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().True(got.IsFailed)
	s.Require().Len(got.Errors, 1)
	s.Require().Equal("Validation.Title", got.Errors[0].Code)

	var count int
	s.Require().NoError(s.DB.Get(&count, "SELECT COUNT(*) FROM tasks"))
	s.Require().Equal(0, count)
}

func (s *TasksIntegrationSuite) TestListTasks_NewestFirstAndFiltered() {
	first := s.createTask("first", "")
	second := s.createTask("second", "")

	rec := s.request(http.MethodGet, "/api/tasks", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var got envelopeBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))

	var items []dto.TaskItem
	s.Require().NoError(json.Unmarshal(got.Value, &items))
	s.Require().Len(items, 2)
	s.Require().Equal(second.ID, items[0].ID)
	s.Require().Equal(first.ID, items[1].ID)

	// Move one task to Done and filter for it, case-insensitively.
	update := `{"title":"second","description":"","status":"Done"}`
	upd := s.request(http.MethodPut, "/api/tasks/"+second.ID, update)
	s.Require().Equal(http.StatusOK, upd.Code)

	for _, filter := range []string{"done", "Done", "DONE"} {
		rec := s.request(http.MethodGet, "/api/tasks?status="+filter, "")
		s.Require().Equal(http.StatusOK, rec.Code)

		var filtered envelopeBody
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &filtered))

		var filteredItems []dto.TaskItem
		s.Require().NoError(json.Unmarshal(filtered.Value, &filteredItems))
		s.Require().Len(filteredItems, 1, filter)
		s.Require().Equal(second.ID, filteredItems[0].ID)
	}
}

func (s *TasksIntegrationSuite) TestListTasks_InvalidStatusFilter() {
	rec := s.request(http.MethodGet, "/api/tasks?status=archived", "")
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	var got envelopeBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().True(got.IsFailed)
	s.Require().Equal("TaskItem.InvalidStatus", got.Errors[0].Code)
}

func (s *TasksIntegrationSuite) TestUpdateTask_OverwritesAndAdvancesUpdatedAt() {
	item := s.createTask("Buy milk", "2% low-fat")

	rec := s.request(http.MethodPut, "/api/tasks/"+item.ID,
		`{"title":"Buy milk","description":"whole milk","status":"Done"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got envelopeBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().True(got.IsSuccess)

	var updated dto.TaskItem
	s.Require().NoError(json.Unmarshal(got.Value, &updated))
	s.Require().Equal(item.ID, updated.ID)
	s.Require().Equal("whole milk", *updated.Description)
	s.Require().Equal("Done", updated.Status)
	s.Require().Equal(item.CreatedAt, updated.CreatedAt)

	before, err := time.Parse(time.RFC3339Nano, item.UpdatedAt)
	s.Require().NoError(err)
	after, err := time.Parse(time.RFC3339Nano, updated.UpdatedAt)
	s.Require().NoError(err)
	s.Require().True(after.After(before))
}

func (s *TasksIntegrationSuite) TestDeleteTask_FullLifecycle() {
	item := s.createTask("Buy milk", "2% low-fat")

	rec := s.request(http.MethodDelete, "/api/tasks/"+item.ID, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var got envelopeBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().True(got.IsSuccess)

	// The id is gone afterwards.
	after := s.request(http.MethodGet, "/api/tasks/"+item.ID, "")
	s.Require().Equal(http.StatusBadRequest, after.Code)

	var missing envelopeBody
	s.Require().NoError(json.Unmarshal(after.Body.Bytes(), &missing))
	s.Require().Equal("TaskItem.TaskNotFound", missing.Errors[0].Code)
}

func (s *TasksIntegrationSuite) TestDeleteTask_MissingID() {
	rec := s.request(http.MethodDelete, "/api/tasks/5f0c3295-2a6c-4b7a-9a3d-4f8b6c1d2e3f", "")
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	var got envelopeBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().True(got.IsFailed)
	s.Require().Equal("TaskItem.TaskNotFound", got.Errors[0].Code)
}
