// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"encoding/xml"

	"github.com/alaw989/vp-eng-nuxt-sub002/shared"
	"github.com/pkg/errors"
)

type rssDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Items         []rssItem `xml:"item"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	Description string  `xml:"description"`
	PubDate     string  `xml:"pubDate"`
	GUID        rssGUID `xml:"guid"`
}

type placeholderPost struct {
	title       string
	path        string
	description string
	pubDate     string
}

// the feed has no backing content yet, the entries are placeholders
var placeholderPosts = []placeholderPost{
	{
		title:       "Designing Marine Structures for Florida's Coast",
		path:        "/news/designing-marine-structures",
		description: "How wave loads, corrosion and storm surge shape the design of docks and seawalls.",
		pubDate:     "Mon, 15 Jan 2024 09:00:00 -0500",
	},
	{
		title:       "What the Milestone Inspection Law Means for Condominium Owners",
		path:        "/news/milestone-inspections",
		description: "A short guide to recertification inspections for buildings three stories and taller.",
		pubDate:     "Thu, 02 Nov 2023 09:00:00 -0400",
	},
	{
		title:       "Tampa Marina Complex Completed",
		path:        "/projects/tampa-marina-complex",
		description: "The 240-slip marina opened to the public after two years of construction.",
		pubDate:     "Fri, 15 Sep 2023 09:00:00 -0400",
	},
}

type rssService struct {
	siteURL string
}

var _ shared.RSSService = (*rssService)(nil)

func NewRSSService(cfg shared.Config) *rssService {
	return &rssService{siteURL: cfg.SiteURL}
}

func (s *rssService) Render() ([]byte, error) {
	doc := rssDocument{
		Version: "2.0",
		Channel: rssChannel{
			Title:         "VP Associates",
			Link:          s.siteURL,
			Description:   "Structural engineering news and projects from VP Associates.",
			Language:      "en-us",
			LastBuildDate: placeholderPosts[0].pubDate,
		},
	}
	for _, p := range placeholderPosts {
		link := s.siteURL + p.path
		doc.Channel.Items = append(doc.Channel.Items, rssItem{
			Title:       p.title,
			Link:        link,
			Description: p.description,
			PubDate:     p.pubDate,
			GUID:        rssGUID{IsPermaLink: true, Value: link},
		})
	}

	b, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "could not marshal rss feed")
	}
	return append([]byte(xml.Header), b...), nil
}
