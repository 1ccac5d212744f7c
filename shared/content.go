// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package shared

import (
	"github.com/alaw989/vp-eng-nuxt-sub002/dtos"
	"github.com/pkg/errors"
)

type CollectionKind string

const (
	CollectionProjects     CollectionKind = "projects"
	CollectionServices     CollectionKind = "services"
	CollectionTestimonials CollectionKind = "testimonials"
)

var CollectionKinds = []CollectionKind{CollectionProjects, CollectionServices, CollectionTestimonials}

func (k CollectionKind) IsValid() bool {
	switch k {
	case CollectionProjects, CollectionServices, CollectionTestimonials:
		return true
	}
	return false
}

// the failure taxonomy of a content fetch. None of them ever reaches a site visitor.
var (
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUpstreamError       = errors.New("upstream returned an error status")
	ErrUpstreamMalformed   = errors.New("upstream response malformed")
	ErrEmptyResult         = errors.New("upstream returned no items")
)

// FailureReason maps an error to a short label of the taxonomy. Used for metrics and logs.
func FailureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyResult):
		return "empty"
	case errors.Is(err, ErrUpstreamMalformed):
		return "malformed"
	case errors.Is(err, ErrUpstreamError):
		return "error_status"
	default:
		return "unavailable"
	}
}

// ContentQuery carries the raw query values of a content request. Values are passed
// through to the upstream without validation, empty ones get the collection default.
type ContentQuery struct {
	Page     string
	PerPage  string
	Category string
	Featured string
}

// FetchResult is either Ok(items) or Fallback(items, reason). Items is never empty.
type FetchResult struct {
	Items        []dtos.ContentItem
	FallbackUsed bool
	Reason       error
}

func Ok(items []dtos.ContentItem) FetchResult {
	return FetchResult{Items: items}
}

func Fallback(items []dtos.ContentItem, reason error) FetchResult {
	return FetchResult{Items: items, FallbackUsed: true, Reason: reason}
}

// ErrorMessage is only set for hard failures. An empty upstream result falls back silently.
func (r FetchResult) ErrorMessage() string {
	if r.Reason == nil || errors.Is(r.Reason, ErrEmptyResult) {
		return ""
	}
	return r.Reason.Error()
}

func (r FetchResult) ToResponse() dtos.ContentResponse {
	return dtos.ContentResponse{
		Success:      true,
		Data:         r.Items,
		FallbackUsed: r.FallbackUsed,
		Error:        r.ErrorMessage(),
	}
}
