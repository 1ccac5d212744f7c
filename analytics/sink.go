// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package analytics records page and interaction events. Exactly one sink is
// registered per process.
package analytics

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/alaw989/vp-eng-nuxt-sub002/shared"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var ErrInvalidEventName = errors.New("invalid event name")

// same rules as google analytics 4 applies to event names
var eventNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{0,39}$`)

func ValidateEventName(name string) error {
	if !eventNamePattern.MatchString(name) {
		return errors.Wrapf(ErrInvalidEventName, "%q", name)
	}
	return nil
}

type clientIDKey struct{}

// WithClientID attaches the anonymous client id the event belongs to.
func WithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientIDKey{}, clientID)
}

func ClientIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(clientIDKey{}).(string); ok {
		return id
	}
	return ""
}

// LogSink writes events to the structured log. Used when no analytics backend is configured.
type LogSink struct{}

var _ shared.EventSink = LogSink{}

func (LogSink) Record(ctx context.Context, eventName string, properties map[string]any) error {
	if err := ValidateEventName(eventName); err != nil {
		return err
	}
	slog.Info("analytics event", "event", eventName, "clientId", ClientIDFromContext(ctx), "properties", properties)
	return nil
}

func NewSink(cfg shared.Config) shared.EventSink {
	if cfg.AnalyticsEnabled() {
		slog.Info("recording analytics events with the measurement protocol", "measurementId", cfg.GAMeasurementID)
		return NewMeasurementProtocolSink(cfg.GAMeasurementID, cfg.GAAPISecret)
	}
	return LogSink{}
}

var Module = fx.Options(
	fx.Provide(NewSink),
)
