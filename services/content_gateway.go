// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/alaw989/vp-eng-nuxt-sub002/dtos"
	"github.com/alaw989/vp-eng-nuxt-sub002/monitoring"
	"github.com/alaw989/vp-eng-nuxt-sub002/shared"
	"github.com/pkg/errors"
)

type collectionSpec struct {
	kind           shared.CollectionKind
	defaultPerPage string
	// page, category and featured are only forwarded for filterable collections
	filterable bool
	fallback   func() []dtos.ContentItem
}

var (
	projectsSpec = collectionSpec{
		kind:           shared.CollectionProjects,
		defaultPerPage: "12",
		filterable:     true,
		fallback:       FallbackProjects,
	}
	servicesSpec = collectionSpec{
		kind:           shared.CollectionServices,
		defaultPerPage: "100",
		fallback:       FallbackServices,
	}
	testimonialsSpec = collectionSpec{
		kind:           shared.CollectionTestimonials,
		defaultPerPage: "100",
		fallback:       FallbackTestimonials,
	}
)

// ContentGateway fetches one collection from the upstream and substitutes the fallback
// literal whenever the upstream fails or has nothing to offer. Fetch never fails.
type ContentGateway struct {
	spec   collectionSpec
	client shared.UpstreamContentClient
}

var _ shared.ContentGateway = (*ContentGateway)(nil)

func NewProjectsGateway(client shared.UpstreamContentClient) *ContentGateway {
	return &ContentGateway{spec: projectsSpec, client: client}
}

func NewServicesGateway(client shared.UpstreamContentClient) *ContentGateway {
	return &ContentGateway{spec: servicesSpec, client: client}
}

func NewTestimonialsGateway(client shared.UpstreamContentClient) *ContentGateway {
	return &ContentGateway{spec: testimonialsSpec, client: client}
}

func (g *ContentGateway) Kind() shared.CollectionKind {
	return g.spec.kind
}

func orDefault(val, def string) string {
	if val == "" {
		return def
	}
	return val
}

// UpstreamQuery substitutes defaults and drops parameters the collection does not know.
func (g *ContentGateway) UpstreamQuery(q shared.ContentQuery) url.Values {
	v := url.Values{}
	v.Set("per_page", orDefault(q.PerPage, g.spec.defaultPerPage))
	if g.spec.filterable {
		v.Set("page", orDefault(q.Page, "1"))
		if q.Category != "" {
			v.Set("category", q.Category)
		}
		if q.Featured != "" {
			v.Set("featured", q.Featured)
		}
	}
	v.Set("_embed", "true")
	return v
}

func (g *ContentGateway) Fetch(ctx context.Context, q shared.ContentQuery) shared.FetchResult {
	items, err := g.client.List(ctx, g.spec.kind, g.UpstreamQuery(q))
	if err == nil && len(items) == 0 {
		err = shared.ErrEmptyResult
	}

	if err != nil {
		reason := shared.FailureReason(err)
		monitoring.ContentFallbackUsed.WithLabelValues(string(g.spec.kind), reason).Inc()
		slog.Warn("serving fallback content", "kind", g.spec.kind, "reason", reason, "err", err)
		return shared.Fallback(g.spec.fallback(), err)
	}

	return shared.Ok(items)
}

var ErrUnknownCollection = errors.New("unknown collection")

// ContentService dispatches to the gateway of a collection kind.
type ContentService struct {
	gateways map[shared.CollectionKind]shared.ContentGateway
}

var _ shared.ContentService = (*ContentService)(nil)

func NewContentService(client shared.UpstreamContentClient) *ContentService {
	return NewContentServiceFromGateways(
		NewProjectsGateway(client),
		NewServicesGateway(client),
		NewTestimonialsGateway(client),
	)
}

func NewContentServiceFromGateways(gateways ...shared.ContentGateway) *ContentService {
	m := make(map[shared.CollectionKind]shared.ContentGateway, len(gateways))
	for _, g := range gateways {
		m[g.Kind()] = g
	}
	return &ContentService{gateways: m}
}

// Fetch on an unknown kind is a programming error. It returns an empty fallback
// result instead of panicking inside a request.
func (s *ContentService) Fetch(ctx context.Context, kind shared.CollectionKind, q shared.ContentQuery) shared.FetchResult {
	g, ok := s.gateways[kind]
	if !ok {
		slog.Error("no gateway for collection", "kind", kind)
		return shared.Fallback([]dtos.ContentItem{}, errors.Wrap(ErrUnknownCollection, string(kind)))
	}
	return g.Fetch(ctx, q)
}
