package services

import (
	"context"
	"encoding/xml"
	"net/url"
	"testing"

	"github.com/alaw989/vp-eng-nuxt-sub002/dtos"
	"github.com/alaw989/vp-eng-nuxt-sub002/mocks"
	"github.com/alaw989/vp-eng-nuxt-sub002/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func parseSitemapLocs(t *testing.T, b []byte) []string {
	t.Helper()
	var set sitemapURLSet
	require.NoError(t, xml.Unmarshal(b, &set))
	locs := make([]string, 0, len(set.URLs))
	for _, u := range set.URLs {
		locs = append(locs, u.Loc)
	}
	return locs
}

func TestSitemapRender(t *testing.T) {
	cfg := shared.Config{SiteURL: "https://vp-associates.com"}
	perPage := url.Values{"per_page": {"100"}}

	t.Run("should add a detail page for every project and service", func(t *testing.T) {
		client := mocks.NewUpstreamContentClient(t)
		client.On("List", mock.Anything, shared.CollectionProjects, perPage).Return([]dtos.ContentItem{
			{Title: "Tampa Marina Complex", Slug: "tampa-marina-complex", Date: "2024-01-02T10:00:00"},
		}, nil)
		client.On("List", mock.Anything, shared.CollectionServices, perPage).Return([]dtos.ContentItem{
			{Title: "Structural Steel Design", Slug: "structural-steel-design"},
		}, nil)

		b, err := NewSitemapService(cfg, client).Render(context.Background())
		require.NoError(t, err)

		locs := parseSitemapLocs(t, b)
		assert.Len(t, locs, len(StaticSitemapEntries)+2)
		assert.Equal(t, "https://vp-associates.com/", locs[0])
		assert.Contains(t, locs, "https://vp-associates.com/projects/tampa-marina-complex")
		assert.Contains(t, locs, "https://vp-associates.com/services/structural-steel-design")
		assert.Contains(t, string(b), "<lastmod>2024-01-02</lastmod>")
		assert.Contains(t, string(b), `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
	})

	t.Run("should degrade to the static entries if the upstream fails", func(t *testing.T) {
		client := mocks.NewUpstreamContentClient(t)
		client.On("List", mock.Anything, shared.CollectionProjects, perPage).Return(nil, shared.ErrUpstreamUnavailable)
		client.On("List", mock.Anything, shared.CollectionServices, perPage).Return([]dtos.ContentItem{
			{Title: "Structural Steel Design", Slug: "structural-steel-design"},
		}, nil).Maybe()

		b, err := NewSitemapService(cfg, client).Render(context.Background())
		require.NoError(t, err)

		locs := parseSitemapLocs(t, b)
		require.Len(t, locs, len(StaticSitemapEntries))
		for i, e := range StaticSitemapEntries {
			assert.Equal(t, cfg.SiteURL+e.Path, locs[i])
		}
	})

	t.Run("should not list the same path twice", func(t *testing.T) {
		client := mocks.NewUpstreamContentClient(t)
		item := dtos.ContentItem{Title: "Bridge", Slug: "bridge"}
		client.On("List", mock.Anything, shared.CollectionProjects, perPage).Return([]dtos.ContentItem{item, item}, nil)
		client.On("List", mock.Anything, shared.CollectionServices, perPage).Return([]dtos.ContentItem{}, nil)

		entries := NewSitemapService(cfg, client).Entries(context.Background())
		assert.Len(t, entries, len(StaticSitemapEntries)+1)
	})
}

func TestLastModFromDate(t *testing.T) {
	assert.Equal(t, "2023-09-15", lastModFromDate("2023-09-15T09:00:00"))
	assert.Equal(t, "", lastModFromDate(""))
	assert.Equal(t, "", lastModFromDate("2023"))
}
