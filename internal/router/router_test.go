package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/tutoring-api/internal/config"
	"github.com/deppfellow/tutoring-api/internal/errs"
	"github.com/deppfellow/tutoring-api/internal/handler"
	loggerPkg "github.com/deppfellow/tutoring-api/internal/logger"
	"github.com/deppfellow/tutoring-api/internal/middleware"
	"github.com/deppfellow/tutoring-api/internal/model"
	"github.com/deppfellow/tutoring-api/internal/repository"
	"github.com/deppfellow/tutoring-api/internal/server"
	"github.com/deppfellow/tutoring-api/internal/service"
)

const testUserID = "local-tester"

// fakeAuth stands in for Clerk and authenticates every request as
// testUserID.
func fakeAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(middleware.UserIDKey, testUserID)
		c.Set(middleware.UserRoleKey, "tutor")
		return next(c)
	}
}

func denyAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return errs.NewUnauthorizedError("Unauthorized", false)
	}
}

type testAPI struct {
	echo *echo.Echo
}

func newTestAPI(t *testing.T, auth echo.MiddlewareFunc) *testAPI {
	t.Helper()

	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				CORSAllowedOrigins: []string{"*"},
			},
			Store:         config.StoreConfig{IDScheme: "short"},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger:        &logger,
		LoggerService: &loggerPkg.LoggerService{},
	}

	repos := repository.NewRepositories(s)
	services, err := service.NewService(s, repos)
	require.NoError(t, err)
	h := handler.NewHandlers(s, services, repos)

	mw := middleware.NewMiddlewares(s)
	e := echo.New()
	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler
	e.Use(middleware.RequestID(), mw.ContextEnhancer.EnhanceContext(), mw.Global.Recover())

	registerSystemRoutes(e, h)
	registerV1Routes(e.Group("/api/v1"), h, auth)

	return &testAPI{echo: e}
}

func (api *testAPI) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestStatus(t *testing.T) {
	api := newTestAPI(t, fakeAuth)

	rec := api.do(t, http.MethodPost, "/api/v1/courses", `{"name":"Algebra","semesterNumber":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = api.do(t, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[struct {
		Status string `json:"status"`
		Checks struct {
			Store struct {
				Status  string         `json:"status"`
				Records map[string]int `json:"records"`
			} `json:"store"`
		} `json:"checks"`
	}](t, rec)

	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "healthy", body.Checks.Store.Status)
	assert.Equal(t, 1, body.Checks.Store.Records["courses"])
}

func TestProfileRoutes(t *testing.T) {
	api := newTestAPI(t, fakeAuth)

	rec := api.do(t, http.MethodPost, "/api/v1/profiles", `{
		"email":"ana@example.com","firstName":"Ana","lastName":"Lima",
		"gender":"female","role":"student","semesterNumber":3
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[model.Profile](t, rec)
	assert.Equal(t, testUserID, created.ID)

	rec = api.do(t, http.MethodGet, "/api/v1/profiles/email/ana@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decode[model.Profile](t, rec).ID)

	rec = api.do(t, http.MethodPatch, "/api/v1/profiles/"+created.ID, `{"bio":"likes proofs"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "likes proofs", decode[model.Profile](t, rec).Bio)

	rec = api.do(t, http.MethodDelete, "/api/v1/profiles/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/v1/profiles/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestValidationErrors(t *testing.T) {
	api := newTestAPI(t, fakeAuth)

	rec := api.do(t, http.MethodPost, "/api/v1/courses", `{"semesterNumber":20}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[errs.HTTPError](t, rec)
	fields := make([]string, 0, len(body.Errors))
	for _, fe := range body.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"name", "semesterNumber"}, fields)

	rec = api.do(t, http.MethodPost, "/api/v1/semesters", `{
		"name":"Fall","year":2026,
		"startDate":"2026-09-01T00:00:00Z","endDate":"2026-08-01T00:00:00Z"
	}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "endDate", decode[errs.HTTPError](t, rec).Errors[0].Field)
}

func TestSemesterCourseRoutes(t *testing.T) {
	api := newTestAPI(t, fakeAuth)

	rec := api.do(t, http.MethodPost, "/api/v1/courses", `{"id":"calc-1","name":"Calculus I","semesterNumber":1}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = api.do(t, http.MethodPost, "/api/v1/semesters", `{"id":"2026-1","name":"Spring","year":2026}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = api.do(t, http.MethodPost, "/api/v1/semesters/2026-1/courses/calc-1", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	courses := decode[[]model.Course](t, rec)
	require.Len(t, courses, 1)
	assert.Equal(t, "Calculus I", courses[0].Name)

	rec = api.do(t, http.MethodGet, "/api/v1/semesters/2026-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[model.Semester](t, rec).Courses, 1)

	rec = api.do(t, http.MethodPost, "/api/v1/semesters/2026-1/courses/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodDelete, "/api/v1/semesters/2026-1/courses/calc-1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/v1/semesters/2026-1/courses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]model.Course](t, rec))

	rec = api.do(t, http.MethodGet, "/api/v1/courses?semesterNumber=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Course](t, rec), 1)
}

func TestTutoringRoutes(t *testing.T) {
	api := newTestAPI(t, fakeAuth)

	rec := api.do(t, http.MethodPost, "/api/v1/tutoring-sessions", `{
		"id":"ts-1","tutorId":"tutor-1","courseId":"calc-1","title":"Limits","price":25,
		"materials":[{"title":"Notes"}],
		"availableTimes":[{"dayOfWeek":1,"startTime":"09:00","endTime":"10:00"}]
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	session := decode[model.TutoringSession](t, rec)
	require.Len(t, session.Materials, 1)
	require.Len(t, session.AvailableTimes, 1)
	assert.Equal(t, "ts-1", session.Materials[0].TutoringID)

	rec = api.do(t, http.MethodPost, "/api/v1/tutoring-sessions/ts-1/reviews", `{"reviewerId":"student-1","rating":5}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	review := decode[model.TutoringReview](t, rec)
	assert.Equal(t, "ts-1", review.TutoringID)

	rec = api.do(t, http.MethodPatch, "/api/v1/materials/"+session.Materials[0].ID, `{"title":"Lecture notes"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Lecture notes", decode[model.TutoringMaterial](t, rec).Title)

	rec = api.do(t, http.MethodPost, "/api/v1/tutoring-sessions/ts-1/available-times", `{"dayOfWeek":2,"startTime":"11:00","endTime":"10:00"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/v1/tutoring-sessions?tutorId=tutor-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decode[[]model.TutoringSession](t, rec)
	require.Len(t, listed, 1)
	assert.Len(t, listed[0].Reviews, 1)

	rec = api.do(t, http.MethodDelete, "/api/v1/tutoring-sessions/ts-1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/v1/tutoring-sessions/ts-1/materials", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodDelete, "/api/v1/reviews/"+review.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWritesRequireAuth(t *testing.T) {
	api := newTestAPI(t, denyAuth)

	rec := api.do(t, http.MethodPost, "/api/v1/courses", `{"name":"Algebra","semesterNumber":1}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(t, http.MethodDelete, "/api/v1/materials/m-1", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/v1/courses", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
