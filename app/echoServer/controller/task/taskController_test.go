package task_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	taskctrl "github.com/yunus169/book-review-project-final-project/app/echoServer/controller/task"
	taskrepo "github.com/yunus169/book-review-project-final-project/repository/task"
	tasksvc "github.com/yunus169/book-review-project-final-project/service/task"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// These tests run the controller against the real file-backed store.

func newController(t *testing.T) *taskctrl.Controller {
	t.Helper()
	repo := taskrepo.New(filepath.Join(t.TempDir(), "tasks.json"))
	return &taskctrl.Controller{Svc: tasksvc.New(repo), V: validator.New(), Log: slog.Default()}
}

func newCtx(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func addTask(t *testing.T, h *taskctrl.Controller, body string) *httptest.ResponseRecorder {
	t.Helper()
	c, rec := newCtx(t, http.MethodPost, "/tasks", body)
	require.NoError(t, h.Create(c))
	return rec
}

func TestCreate_EmptyStoreGetsIDOne(t *testing.T) {
	h := newController(t)
	rec := addTask(t, h, `{"title":"first","description":"d","category":"home"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"id":1`)
	require.Contains(t, rec.Body.String(), `"completed":false`)
}

func TestCreate_MissingFieldRejected(t *testing.T) {
	h := newController(t)
	c, rec := newCtx(t, http.MethodPost, "/tasks", `{"title":"no description"}`)

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDelete_UnknownIDStill204(t *testing.T) {
	h := newController(t)
	c, rec := newCtx(t, http.MethodDelete, "/", "")
	c.SetPath("/tasks/:id")
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestComplete_SetsFlag(t *testing.T) {
	h := newController(t)
	addTask(t, h, `{"title":"t","description":"d","category":"x"}`)

	c, rec := newCtx(t, http.MethodPut, "/", "")
	c.SetPath("/tasks/:id/complete")
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.Complete(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"completed":true`)
}

func TestComplete_UnknownID404(t *testing.T) {
	h := newController(t)
	c, rec := newCtx(t, http.MethodPut, "/", "")
	c.SetPath("/tasks/:id/complete")
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, h.Complete(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestList_CompletedQueryFilter(t *testing.T) {
	h := newController(t)
	addTask(t, h, `{"title":"a","description":"d","category":"x"}`)
	addTask(t, h, `{"title":"b","description":"d","category":"x"}`)

	c, _ := newCtx(t, http.MethodPut, "/", "")
	c.SetPath("/tasks/:id/complete")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Complete(c))

	c, rec := newCtx(t, http.MethodGet, "/tasks?completed=true", "")
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"title":"a"`)
	require.NotContains(t, rec.Body.String(), `"title":"b"`)
}

func TestList_BadCompletedValue(t *testing.T) {
	h := newController(t)
	c, rec := newCtx(t, http.MethodGet, "/tasks?completed=maybe", "")

	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdate_PartialKeepsOtherFields(t *testing.T) {
	h := newController(t)
	addTask(t, h, `{"title":"old","description":"keep","category":"home"}`)

	c, rec := newCtx(t, http.MethodPut, "/", `{"title":"new"}`)
	c.SetPath("/tasks/:id")
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"title":"new"`)
	require.Contains(t, rec.Body.String(), `"description":"keep"`)
}

func TestCategories_Distinct(t *testing.T) {
	h := newController(t)
	addTask(t, h, `{"title":"a","description":"d","category":"home"}`)
	addTask(t, h, `{"title":"b","description":"d","category":"work"}`)
	addTask(t, h, `{"title":"c","description":"d","category":"home"}`)

	c, rec := newCtx(t, http.MethodGet, "/tasks/categories", "")
	require.NoError(t, h.Categories(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `["home","work"]`, rec.Body.String())
}
