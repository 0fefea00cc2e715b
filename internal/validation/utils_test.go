package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/tutoring-api/internal/errs"
)

type createThingRequest struct {
	ID    string  `param:"id" json:"-" validate:"required"`
	Name  string  `json:"name" validate:"required,min=2"`
	Email *string `json:"email" validate:"omitempty,email"`
	Slot  string  `json:"slot" validate:"omitempty,datetime=15:04"`
}

func (r *createThingRequest) Validate() error {
	return Struct(r)
}

type customRequest struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (r *customRequest) Validate() error {
	if r.End < r.Start {
		return CustomValidationErrors{{Field: "end", Message: "must not be before start"}}
	}
	return nil
}

func newContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/things/thing-1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/things/:id")
	c.SetParamNames("id")
	c.SetParamValues("thing-1")
	return c
}

func TestBindAndValidate(t *testing.T) {
	t.Run("valid payload binds params and body", func(t *testing.T) {
		req := &createThingRequest{}
		err := BindAndValidate(newContext(`{"name":"Algebra","id":"spoofed"}`), req)

		require.NoError(t, err)
		assert.Equal(t, "thing-1", req.ID)
		assert.Equal(t, "Algebra", req.Name)
	})

	t.Run("field errors use json names", func(t *testing.T) {
		err := BindAndValidate(newContext(`{"name":"A","email":"nope","slot":"25:99"}`), &createThingRequest{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.ElementsMatch(t, []errs.FieldError{
			{Field: "name", Error: "must be at least 2 characters"},
			{Field: "email", Error: "must be a valid email address"},
			{Field: "slot", Error: "must match the layout 15:04"},
		}, httpErr.Errors)
	})

	t.Run("malformed body", func(t *testing.T) {
		err := BindAndValidate(newContext(`{"name":`), &createThingRequest{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.NotEmpty(t, httpErr.Message)
		assert.Empty(t, httpErr.Errors)
	})

	t.Run("custom validation errors", func(t *testing.T) {
		err := BindAndValidate(newContext(`{"start":5,"end":1}`), &customRequest{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, []errs.FieldError{{Field: "end", Error: "must not be before start"}}, httpErr.Errors)
	})
}
