// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package controllers

import (
	"net/http"

	"github.com/alaw989/vp-eng-nuxt-sub002/dtos"
	"github.com/alaw989/vp-eng-nuxt-sub002/shared"
	"github.com/labstack/echo/v4"
)

type TransitionController struct {
	selector shared.TransitionSelector
}

func NewTransitionController(selector shared.TransitionSelector) *TransitionController {
	return &TransitionController{selector: selector}
}

func (t *TransitionController) Select(c shared.Context) error {
	var req dtos.TransitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not bind request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
	}

	return c.JSON(http.StatusOK, dtos.TransitionResponse{
		From:       req.From,
		To:         req.To,
		Transition: t.selector.Select(req.From, req.To, req.ReducedMotion),
	})
}
