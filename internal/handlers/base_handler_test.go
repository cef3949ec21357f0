package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freelance_backend/internal/auth"
	"freelance_backend/internal/models"
	"freelance_backend/internal/services/dto"
	"freelance_backend/internal/validator"
	"freelance_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext(method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/", nil)
	} else {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	c.Request = req
	return c, rec
}

func TestBindAndValidateOptionalJSON(t *testing.T) {
	h := NewBaseHandler(validator.New())

	t.Run("empty body", func(t *testing.T) {
		c, _ := newTestContext(http.MethodPatch, "")
		var req dto.FeedbackRequest
		assert.True(t, h.BindAndValidate_OptionalJSON(c, &req))
		assert.Empty(t, req.Feedback)
	})

	t.Run("with feedback", func(t *testing.T) {
		c, _ := newTestContext(http.MethodPatch, `{"feedback":"Great portfolio"}`)
		var req dto.FeedbackRequest
		assert.True(t, h.BindAndValidate_OptionalJSON(c, &req))
		assert.Equal(t, "Great portfolio", req.Feedback)
	})

	t.Run("malformed", func(t *testing.T) {
		c, rec := newTestContext(http.MethodPatch, `{"feedback":`)
		var req dto.FeedbackRequest
		assert.False(t, h.BindAndValidate_OptionalJSON(c, &req))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBindAndValidateJSONRejectsInvalidOutcome(t *testing.T) {
	h := NewBaseHandler(validator.New())
	c, rec := newTestContext(http.MethodPatch, `{"outcome":"MAYBE","feedback":"x"}`)

	var req dto.DecideApplicationRequest
	assert.False(t, h.BindAndValidate_JSON(c, &req))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestGetCaller(t *testing.T) {
	h := NewBaseHandler(validator.New())

	c, rec := newTestContext(http.MethodGet, "")
	_, ok := h.GetCaller(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c, _ = newTestContext(http.MethodGet, "")
	want := auth.Caller{UserID: "u1", Role: models.UserRoleClient}
	c.Set(string(contextkeys.CallerContextKey), want)
	got, ok := h.GetCaller(c)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestGetDBPanicsWithoutMiddleware(t *testing.T) {
	h := NewBaseHandler(validator.New())
	c, _ := newTestContext(http.MethodGet, "")
	assert.Panics(t, func() { h.GetDB(c) })
}
