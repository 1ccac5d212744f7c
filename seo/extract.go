// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package seo compares the search relevant metadata of the old and the new site so
// rankings survive the migration.
package seo

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type Metadata struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	H1          []string
	OpenGraph   map[string]string
}

// Extract reads the metadata from an html document.
func Extract(r io.Reader) (Metadata, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Metadata{}, errors.Wrap(err, "could not parse html")
	}

	md := Metadata{OpenGraph: map[string]string{}}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Title:
				if md.Title == "" {
					md.Title = collapse(textContent(n))
				}
			case atom.Meta:
				name := strings.ToLower(attr(n, "name"))
				property := strings.ToLower(attr(n, "property"))
				content := collapse(attr(n, "content"))
				switch {
				case name == "description":
					md.Description = content
				case name == "robots":
					md.Robots = strings.ToLower(content)
				case strings.HasPrefix(property, "og:"):
					md.OpenGraph[property] = content
				}
			case atom.Link:
				if strings.EqualFold(attr(n, "rel"), "canonical") {
					md.Canonical = attr(n, "href")
				}
			case atom.H1:
				md.H1 = append(md.H1, collapse(textContent(n)))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return md, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
