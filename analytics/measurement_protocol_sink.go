// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/alaw989/vp-eng-nuxt-sub002/shared"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const DefaultMeasurementProtocolEndpoint = "https://www.google-analytics.com/mp/collect"

var ErrMissingClientID = errors.New("missing client id")

type measurementProtocolEvent struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params,omitempty"`
}

type measurementProtocolPayload struct {
	ClientID string                     `json:"client_id"`
	Events   []measurementProtocolEvent `json:"events"`
}

// MeasurementProtocolSink forwards events to google analytics 4.
type MeasurementProtocolSink struct {
	endpoint      string
	measurementID string
	apiSecret     string
	httpClient    *http.Client
}

var _ shared.EventSink = (*MeasurementProtocolSink)(nil)

func NewMeasurementProtocolSink(measurementID, apiSecret string) *MeasurementProtocolSink {
	return &MeasurementProtocolSink{
		endpoint:      DefaultMeasurementProtocolEndpoint,
		measurementID: measurementID,
		apiSecret:     apiSecret,
		httpClient: &http.Client{
			Timeout:   5 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// WithEndpoint points the sink at a different collect endpoint, e.g. the debug endpoint.
func (s *MeasurementProtocolSink) WithEndpoint(endpoint string, client *http.Client) *MeasurementProtocolSink {
	s.endpoint = endpoint
	if client != nil {
		s.httpClient = client
	}
	return s
}

func (s *MeasurementProtocolSink) Record(ctx context.Context, eventName string, properties map[string]any) error {
	if err := ValidateEventName(eventName); err != nil {
		return err
	}
	clientID := ClientIDFromContext(ctx)
	if clientID == "" {
		return ErrMissingClientID
	}

	body, err := json.Marshal(measurementProtocolPayload{
		ClientID: clientID,
		Events:   []measurementProtocolEvent{{Name: eventName, Params: properties}},
	})
	if err != nil {
		return errors.Wrap(err, "could not marshal event")
	}

	q := url.Values{}
	q.Set("measurement_id", s.measurementID)
	q.Set("api_secret", s.apiSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"?"+q.Encode(), bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "could not create request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "could not send event")
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("measurement protocol responded with status %d", res.StatusCode)
	}
	return nil
}
