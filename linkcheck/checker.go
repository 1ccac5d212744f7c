// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package linkcheck crawls a site and validates every link it finds.
package linkcheck

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/alaw989/vp-eng-nuxt-sub002/utils"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	MaxPages    int
	Concurrency int
	Retries     int
	Timeout     time.Duration
	// only internal links are validated if set
	SkipExternal bool
}

func (o Options) withDefaults() Options {
	if o.MaxPages <= 0 {
		o.MaxPages = 200
	}
	if o.Concurrency <= 0 {
		o.Concurrency = 8
	}
	if o.Retries < 0 {
		o.Retries = 0
	}
	if o.Timeout <= 0 {
		o.Timeout = 10 * time.Second
	}
	return o
}

type LinkResult struct {
	URL        string
	Status     int
	Err        error
	Attempts   int
	FoundOn    []string
	IsInternal bool
}

func (r LinkResult) Broken() bool {
	return r.Err != nil || r.Status >= 400
}

type Report struct {
	PagesCrawled int
	Links        []LinkResult
}

func (r Report) Broken() []LinkResult {
	return utils.Filter(r.Links, LinkResult.Broken)
}

type Checker struct {
	client *http.Client
	opts   Options
}

func NewChecker(client *http.Client, opts Options) *Checker {
	opts = opts.withDefaults()
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &Checker{client: client, opts: opts}
}

// Check crawls every same-host page reachable from base (up to MaxPages) and validates
// all links found on the way.
func (c *Checker) Check(ctx context.Context, base string) (Report, error) {
	baseURL, err := url.Parse(base)
	if err != nil || baseURL.Host == "" {
		return Report{}, errors.Errorf("invalid base url %q", base)
	}

	foundOn := map[string][]string{}
	visited := map[string]bool{}
	queue := []string{normalize(baseURL)}
	visited[queue[0]] = true
	foundOn[queue[0]] = nil

	pages := 0
	for len(queue) > 0 && pages < c.opts.MaxPages {
		batch := queue[:min(len(queue), c.opts.MaxPages-pages)]
		queue = queue[len(batch):]
		pages += len(batch)

		links, err := c.crawlBatch(ctx, batch)
		if err != nil {
			return Report{}, err
		}
		for i, page := range batch {
			for _, l := range links[i] {
				if !slices.Contains(foundOn[l], page) {
					foundOn[l] = append(foundOn[l], page)
				}
				if visited[l] || !sameHost(baseURL, l) {
					continue
				}
				visited[l] = true
				queue = append(queue, l)
			}
		}
	}

	targets := make([]string, 0, len(foundOn))
	for l := range foundOn {
		if c.opts.SkipExternal && !sameHost(baseURL, l) {
			continue
		}
		targets = append(targets, l)
	}
	slices.Sort(targets)

	results := make([]LinkResult, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Concurrency)
	for i, target := range targets {
		g.Go(func() error {
			res := c.validate(gctx, target)
			res.FoundOn = foundOn[target]
			res.IsInternal = sameHost(baseURL, target)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	return Report{PagesCrawled: pages, Links: results}, nil
}

// crawlBatch fetches the pages concurrently and returns the absolute links per page.
func (c *Checker) crawlBatch(ctx context.Context, pages []string) ([][]string, error) {
	out := make([][]string, len(pages))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Concurrency)
	for i, page := range pages {
		g.Go(func() error {
			links, err := c.extractLinks(gctx, page)
			if err != nil {
				// broken pages are reported by the validation step
				slog.Debug("could not crawl page", "page", page, "err", err)
				return nil
			}
			out[i] = links
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, ctx.Err()
}

func (c *Checker) extractLinks(ctx context.Context, page string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, page, nil)
	if err != nil {
		return nil, err
	}
	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, errors.Errorf("status %d", res.StatusCode)
	}
	if !strings.Contains(res.Header.Get("Content-Type"), "html") {
		return nil, nil
	}

	pageURL, _ := url.Parse(page)
	return ExtractLinks(pageURL, io.LimitReader(res.Body, 10<<20))
}

// ExtractLinks returns the absolute http(s) urls of all anchors, images, scripts and
// stylesheets in the document, without fragments and deduplicated.
func ExtractLinks(pageURL *url.URL, r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse html")
	}

	seen := map[string]bool{}
	var links []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if attr := linkAttr(n.Data); attr != "" {
				for _, a := range n.Attr {
					if a.Key != attr {
						continue
					}
					if abs, ok := resolve(pageURL, a.Val); ok && !seen[abs] {
						seen[abs] = true
						links = append(links, abs)
					}
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return links, nil
}

func linkAttr(tag string) string {
	switch tag {
	case "a", "link":
		return "href"
	case "img", "script", "source", "iframe":
		return "src"
	}
	return ""
}

func resolve(base *url.URL, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "#") {
		return "", false
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "", false
	}
	abs := base.ResolveReference(u)
	if abs.Scheme != "http" && abs.Scheme != "https" {
		return "", false
	}
	return normalize(abs), true
}

func normalize(u *url.URL) string {
	n := *u
	n.Fragment = ""
	n.RawFragment = ""
	if n.Path == "" {
		n.Path = "/"
	}
	return n.String()
}

func sameHost(base *url.URL, link string) bool {
	u, err := url.Parse(link)
	return err == nil && strings.EqualFold(u.Host, base.Host)
}

func retryable(status int, err error) bool {
	if err != nil {
		return true
	}
	return status == http.StatusTooManyRequests || status >= 500
}

// validate tries HEAD first and falls back to GET for servers that do not support it.
func (c *Checker) validate(ctx context.Context, link string) LinkResult {
	res := LinkResult{URL: link}
	for attempt := 0; attempt <= c.opts.Retries; attempt++ {
		res.Attempts = attempt + 1
		res.Status, res.Err = c.status(ctx, http.MethodHead, link)
		if res.Err == nil && (res.Status == http.StatusMethodNotAllowed || res.Status == http.StatusNotImplemented) {
			res.Status, res.Err = c.status(ctx, http.MethodGet, link)
		}
		if !retryable(res.Status, res.Err) || ctx.Err() != nil {
			break
		}
		if attempt < c.opts.Retries {
			select {
			case <-ctx.Done():
			case <-time.After(time.Duration(attempt+1) * 200 * time.Millisecond):
			}
		}
	}
	return res
}

func (c *Checker) status(ctx context.Context, method, link string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, link, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", "vpeng-linkcheck")
	res, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 1<<20))
	res.Body.Close()
	return res.StatusCode, nil
}
