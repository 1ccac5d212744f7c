// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package transition decides which animation the site plays when navigating
// between two pages.
package transition

import (
	"strings"

	"github.com/alaw989/vp-eng-nuxt-sub002/shared"
)

const (
	Page       = "page"
	SlideLeft  = "slide-left"
	SlideRight = "slide-right"
)

// pathMatcher reports whether a path belongs to a rule side.
type pathMatcher func(path string) bool

func exact(p string) pathMatcher {
	return func(path string) bool {
		return path == p
	}
}

// childOf matches exactly one non-empty segment below prefix, /projects/foo but not
// /projects/foo/bar or /projects/.
func childOf(prefix string) pathMatcher {
	return func(path string) bool {
		rest, ok := strings.CutPrefix(path, prefix+"/")
		return ok && rest != "" && !strings.Contains(rest, "/")
	}
}

type rule struct {
	from       pathMatcher
	to         pathMatcher
	transition string
}

// evaluated in order, first match wins
var rules = []rule{
	{from: exact("/projects"), to: childOf("/projects"), transition: SlideLeft},
	{from: childOf("/projects"), to: exact("/projects"), transition: SlideRight},
	{from: exact("/services"), to: childOf("/services"), transition: SlideLeft},
	{from: childOf("/services"), to: exact("/services"), transition: SlideRight},
}

type Selector struct{}

var _ shared.TransitionSelector = Selector{}

func NewSelector() Selector {
	return Selector{}
}

func (Selector) Select(fromPath, toPath string, reducedMotion bool) string {
	return Select(fromPath, toPath, reducedMotion)
}

// Select returns the transition name for a navigation from fromPath to toPath.
// Users that prefer reduced motion always get the plain page transition.
func Select(fromPath, toPath string, reducedMotion bool) string {
	if reducedMotion {
		return Page
	}
	for _, r := range rules {
		if r.from(fromPath) && r.to(toPath) {
			return r.transition
		}
	}
	return Page
}
