// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package controllers

import (
	"net/http"

	"github.com/alaw989/vp-eng-nuxt-sub002/shared"
)

type ContentController struct {
	contentService shared.ContentService
}

func NewContentController(contentService shared.ContentService) *ContentController {
	return &ContentController{
		contentService: contentService,
	}
}

// content endpoints never fail, the gateway falls back to the bundled literals
func (cc *ContentController) list(c shared.Context, kind shared.CollectionKind) error {
	res := cc.contentService.Fetch(c.Request().Context(), kind, contentQueryFromRequest(c))
	return c.JSON(http.StatusOK, res.ToResponse())
}

func contentQueryFromRequest(c shared.Context) shared.ContentQuery {
	perPage := c.QueryParam("perPage")
	if perPage == "" {
		perPage = c.QueryParam("per_page")
	}
	return shared.ContentQuery{
		Page:     c.QueryParam("page"),
		PerPage:  perPage,
		Category: c.QueryParam("category"),
		Featured: c.QueryParam("featured"),
	}
}

func (cc *ContentController) ListProjects(c shared.Context) error {
	return cc.list(c, shared.CollectionProjects)
}

func (cc *ContentController) ListServices(c shared.Context) error {
	return cc.list(c, shared.CollectionServices)
}

func (cc *ContentController) ListTestimonials(c shared.Context) error {
	return cc.list(c, shared.CollectionTestimonials)
}
