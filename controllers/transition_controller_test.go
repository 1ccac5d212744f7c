package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alaw989/vp-eng-nuxt-sub002/dtos"
	"github.com/alaw989/vp-eng-nuxt-sub002/transition"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionController(t *testing.T) {
	controller := NewTransitionController(transition.NewSelector())

	t.Run("should select the transition for the given paths", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/transition?from=/projects&to=/projects/tampa-marina-complex", nil)

		require.NoError(t, controller.Select(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)

		var res dtos.TransitionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "slide-left", res.Transition)
		assert.Equal(t, "/projects", res.From)
	})

	t.Run("should honor reduced motion", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/transition?from=/projects&to=/projects/x&reducedMotion=true", nil)

		require.NoError(t, controller.Select(e.NewContext(req, rec)))
		assert.Contains(t, rec.Body.String(), `"transition":"page"`)
	})

	t.Run("should return a bad request without a target path", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/transition?from=/projects", nil)

		err := controller.Select(e.NewContext(req, rec))
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("should return a bad request for an invalid reducedMotion flag", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/transition?to=/about&reducedMotion=maybe", nil)

		err := controller.Select(e.NewContext(req, rec))
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}
