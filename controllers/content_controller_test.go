package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alaw989/vp-eng-nuxt-sub002/dtos"
	"github.com/alaw989/vp-eng-nuxt-sub002/mocks"
	"github.com/alaw989/vp-eng-nuxt-sub002/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContentController(t *testing.T) {
	items := []dtos.ContentItem{{ID: 1, Title: "Tampa Marina Complex", Slug: "tampa-marina-complex"}}

	t.Run("should forward the query values and return the upstream data", func(t *testing.T) {
		svc := mocks.NewContentService(t)
		svc.On("Fetch", mock.Anything, shared.CollectionProjects, shared.ContentQuery{
			Page:     "2",
			PerPage:  "6",
			Category: "marine",
			Featured: "true",
		}).Return(shared.Ok(items))

		e := echo.New()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/projects?page=2&perPage=6&category=marine&featured=true", nil)
		ctx := e.NewContext(req, rec)

		err := NewContentController(svc).ListProjects(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var res dtos.ContentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.True(t, res.Success)
		assert.False(t, res.FallbackUsed)
		assert.Empty(t, res.Error)
		assert.Equal(t, items, res.Data)
	})

	t.Run("should accept per_page as well", func(t *testing.T) {
		svc := mocks.NewContentService(t)
		svc.On("Fetch", mock.Anything, shared.CollectionServices, shared.ContentQuery{PerPage: "3"}).Return(shared.Ok(items))

		e := echo.New()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/services?per_page=3", nil)

		require.NoError(t, NewContentController(svc).ListServices(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should answer with 200 even if the fallback is used", func(t *testing.T) {
		svc := mocks.NewContentService(t)
		svc.On("Fetch", mock.Anything, shared.CollectionTestimonials, shared.ContentQuery{}).
			Return(shared.Fallback(items, fmt.Errorf("%w: connection refused", shared.ErrUpstreamUnavailable)))

		e := echo.New()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/testimonials", nil)

		require.NoError(t, NewContentController(svc).ListTestimonials(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)

		var res dtos.ContentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.True(t, res.Success)
		assert.True(t, res.FallbackUsed)
		assert.Contains(t, res.Error, "connection refused")
	})

	t.Run("should omit the error for an empty upstream result", func(t *testing.T) {
		svc := mocks.NewContentService(t)
		svc.On("Fetch", mock.Anything, shared.CollectionProjects, shared.ContentQuery{}).
			Return(shared.Fallback(items, shared.ErrEmptyResult))

		e := echo.New()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)

		require.NoError(t, NewContentController(svc).ListProjects(e.NewContext(req, rec)))
		assert.NotContains(t, rec.Body.String(), `"error"`)
		assert.Contains(t, rec.Body.String(), `"fallbackUsed":true`)
	})
}
