// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package controllers

import (
	"log/slog"
	"net/http"

	"github.com/alaw989/vp-eng-nuxt-sub002/analytics"
	"github.com/alaw989/vp-eng-nuxt-sub002/dtos"
	"github.com/alaw989/vp-eng-nuxt-sub002/monitoring"
	"github.com/alaw989/vp-eng-nuxt-sub002/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type AnalyticsController struct {
	sink shared.EventSink
}

func NewAnalyticsController(sink shared.EventSink) *AnalyticsController {
	return &AnalyticsController{sink: sink}
}

func (a *AnalyticsController) RecordEvent(c shared.Context) error {
	var req dtos.AnalyticsEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not bind request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
	}
	if err := analytics.ValidateEventName(req.Name); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
	}

	if req.ClientID == "" {
		// clients without the ga cookie are recorded as anonymous
		req.ClientID = uuid.NewString()
	}

	ctx := analytics.WithClientID(c.Request().Context(), req.ClientID)
	if err := a.sink.Record(ctx, req.Name, req.Params); err != nil {
		if errors.Is(err, analytics.ErrInvalidEventName) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
		}
		// analytics must never break the page, the event is dropped
		slog.Warn("could not record analytics event", "event", req.Name, "err", err)
		return c.NoContent(http.StatusAccepted)
	}

	monitoring.AnalyticsEvents.WithLabelValues(req.Name).Inc()
	return c.NoContent(http.StatusAccepted)
}
