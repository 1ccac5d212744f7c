// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package seo

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Difference struct {
	Path  string
	Field string
	Old   string
	New   string
}

// normalizeTitle makes titles comparable that only differ in casing or whitespace,
// e.g. "about us | VP Associates" and "About Us | VP Associates".
func normalizeTitle(s string) string {
	// a Caser keeps state, one per call
	return cases.Title(language.English).String(collapse(s))
}

// canonicalPath compares canonical urls by path, the host changes with the migration.
func canonicalPath(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return strings.TrimSuffix(u.Path, "/")
}

// Diff lists the fields that differ between the old and the new metadata of path.
func Diff(path string, old, new Metadata) []Difference {
	var diffs []Difference
	add := func(field, o, n string) {
		if o != n {
			diffs = append(diffs, Difference{Path: path, Field: field, Old: o, New: n})
		}
	}

	if normalizeTitle(old.Title) != normalizeTitle(new.Title) {
		add("title", old.Title, new.Title)
	}
	add("description", old.Description, new.Description)
	add("robots", old.Robots, new.Robots)
	if canonicalPath(old.Canonical) != canonicalPath(new.Canonical) {
		add("canonical", old.Canonical, new.Canonical)
	}
	add("h1", strings.Join(old.H1, " / "), strings.Join(new.H1, " / "))

	keys := make([]string, 0, len(old.OpenGraph)+len(new.OpenGraph))
	for k := range old.OpenGraph {
		keys = append(keys, k)
	}
	for k := range new.OpenGraph {
		if _, ok := old.OpenGraph[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	for _, k := range keys {
		// og:url carries the host
		if k == "og:url" {
			if canonicalPath(old.OpenGraph[k]) != canonicalPath(new.OpenGraph[k]) {
				add(k, old.OpenGraph[k], new.OpenGraph[k])
			}
			continue
		}
		add(k, old.OpenGraph[k], new.OpenGraph[k])
	}
	return diffs
}

type Comparer struct {
	client *http.Client
}

func NewComparer(client *http.Client) *Comparer {
	if client == nil {
		client = http.DefaultClient
	}
	return &Comparer{client: client}
}

func (c *Comparer) Fetch(ctx context.Context, pageURL string) (Metadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return Metadata{}, err
	}
	res, err := c.client.Do(req)
	if err != nil {
		return Metadata{}, errors.Wrapf(err, "could not fetch %s", pageURL)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return Metadata{}, errors.Errorf("%s responded with status %d", pageURL, res.StatusCode)
	}
	return Extract(io.LimitReader(res.Body, 10<<20))
}

// Compare fetches every path from both sites and returns all differences.
func (c *Comparer) Compare(ctx context.Context, oldBase, newBase string, paths []string) ([]Difference, error) {
	oldBase = strings.TrimSuffix(oldBase, "/")
	newBase = strings.TrimSuffix(newBase, "/")

	var diffs []Difference
	for _, p := range paths {
		oldMD, err := c.Fetch(ctx, oldBase+p)
		if err != nil {
			return nil, err
		}
		newMD, err := c.Fetch(ctx, newBase+p)
		if err != nil {
			diffs = append(diffs, Difference{Path: p, Field: "status", Old: "ok", New: err.Error()})
			continue
		}
		diffs = append(diffs, Diff(p, oldMD, newMD)...)
	}
	return diffs, nil
}

func Render(w io.Writer, diffs []Difference) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Path", "Field", "Old", "New"})
	for _, d := range diffs {
		t.AppendRow(table.Row{d.Path, d.Field, d.Old, d.New})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
