package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Whillz7/BizFinTrackr/internal/service"
)

func TestRenderErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", fmt.Errorf("%w: quantity must be positive", service.ErrInvalidInput), http.StatusUnprocessableEntity},
		{"invalid credentials", service.ErrInvalidCredential, http.StatusUnauthorized},
		{"access denied", service.ErrAccessDenied, http.StatusForbidden},
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"duplicate name", service.ErrDuplicateName, http.StatusConflict},
		{"duplicate code", service.ErrDuplicateCode, http.StatusConflict},
		{"insufficient stock", service.ErrInsufficientStock, http.StatusConflict},
		{"internal", fmt.Errorf("%w: connection reset", service.ErrInternal), http.StatusInternalServerError},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			renderError(c, tc.err)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestRenderErrorDoesNotLeakInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	renderError(c, fmt.Errorf("%w: dial tcp 10.0.0.5:5432: i/o timeout", service.ErrInternal))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}
