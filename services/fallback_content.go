// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import "github.com/alaw989/vp-eng-nuxt-sub002/dtos"

// The fallback literals are served whenever the wordpress upstream is unavailable or
// empty. They share the shape of upstream items so rendering never needs a "no data" branch.
// Every call returns a fresh slice.

func FallbackProjects() []dtos.ContentItem {
	return []dtos.ContentItem{
		{
			ID:      1,
			Title:   "Tampa Marina Complex",
			Slug:    "tampa-marina-complex",
			Excerpt: "Structural design of a 240-slip marina with dry storage, ship store and waterfront restaurant.",
			Date:    "2023-06-15T00:00:00",
			Fields: map[string]any{
				"category": "Marine",
				"location": "Tampa, FL",
				"year":     "2023",
				"featured": true,
			},
		},
		{
			ID:      2,
			Title:   "Westshore Office Tower",
			Slug:    "westshore-office-tower",
			Excerpt: "Post-tensioned concrete frame for a 12-story class A office building with structured parking.",
			Date:    "2022-11-02T00:00:00",
			Fields: map[string]any{
				"category": "Commercial",
				"location": "Tampa, FL",
				"year":     "2022",
				"featured": true,
			},
		},
		{
			ID:      3,
			Title:   "Clearwater Beach Residences",
			Slug:    "clearwater-beach-residences",
			Excerpt: "Coastal high-velocity hurricane zone design for a 48-unit condominium on deep foundations.",
			Date:    "2022-04-20T00:00:00",
			Fields: map[string]any{
				"category": "Residential",
				"location": "Clearwater, FL",
				"year":     "2022",
				"featured": true,
			},
		},
		{
			ID:      4,
			Title:   "Brandon Distribution Center",
			Slug:    "brandon-distribution-center",
			Excerpt: "Tilt-wall warehouse with long-span steel joist roof and mezzanine for a regional distributor.",
			Date:    "2021-09-08T00:00:00",
			Fields: map[string]any{
				"category": "Industrial",
				"location": "Brandon, FL",
				"year":     "2021",
				"featured": false,
			},
		},
		{
			ID:      5,
			Title:   "St. Petersburg Pier Pavilion",
			Slug:    "st-petersburg-pier-pavilion",
			Excerpt: "Steel and timber pavilion on the pier approach, designed for 150 mph wind and wave uplift.",
			Date:    "2020-12-01T00:00:00",
			Fields: map[string]any{
				"category": "Public",
				"location": "St. Petersburg, FL",
				"year":     "2020",
				"featured": false,
			},
		},
	}
}

func FallbackServices() []dtos.ContentItem {
	return []dtos.ContentItem{
		{
			ID:      101,
			Title:   "Structural Design",
			Slug:    "structural-design",
			Excerpt: "Complete structural engineering for new construction in concrete, steel, masonry and wood.",
			Fields:  map[string]any{"icon": "building", "order": 1},
		},
		{
			ID:      102,
			Title:   "Marine Structures",
			Slug:    "marine-structures",
			Excerpt: "Docks, seawalls, boat lifts and waterfront structures designed for coastal exposure.",
			Fields:  map[string]any{"icon": "anchor", "order": 2},
		},
		{
			ID:      103,
			Title:   "Foundation Design",
			Slug:    "foundation-design",
			Excerpt: "Shallow and deep foundation systems coordinated with the geotechnical report.",
			Fields:  map[string]any{"icon": "layers", "order": 3},
		},
		{
			ID:      104,
			Title:   "Structural Inspections",
			Slug:    "structural-inspections",
			Excerpt: "Condition assessments, milestone and recertification inspections with repair recommendations.",
			Fields:  map[string]any{"icon": "search", "order": 4},
		},
		{
			ID:      105,
			Title:   "Renovation & Retrofit",
			Slug:    "renovation-retrofit",
			Excerpt: "Strengthening and adaptive reuse of existing buildings, including hurricane hardening.",
			Fields:  map[string]any{"icon": "tool", "order": 5},
		},
		{
			ID:      106,
			Title:   "Construction Support",
			Slug:    "construction-support",
			Excerpt: "Shop drawing review, RFIs, site observation and threshold inspection during construction.",
			Fields:  map[string]any{"icon": "clipboard", "order": 6},
		},
	}
}

func FallbackTestimonials() []dtos.ContentItem {
	return []dtos.ContentItem{
		{
			ID:      201,
			Title:   "Michael R.",
			Slug:    "michael-r",
			Excerpt: "Responsive, thorough and always on schedule. Their drawings made permitting painless.",
			Fields:  map[string]any{"company": "Bayside Development Group", "role": "Project Manager", "rating": 5},
		},
		{
			ID:      202,
			Title:   "Sandra L.",
			Slug:    "sandra-l",
			Excerpt: "They found a foundation solution that saved us weeks on a difficult coastal site.",
			Fields:  map[string]any{"company": "Gulf Coast Builders", "role": "Owner", "rating": 5},
		},
		{
			ID:      203,
			Title:   "David K.",
			Slug:    "david-k",
			Excerpt: "Clear communication from schematic design through the final inspection.",
			Fields:  map[string]any{"company": "Hillsborough Architects", "role": "Principal Architect", "rating": 5},
		},
		{
			ID:      204,
			Title:   "Jennifer T.",
			Slug:    "jennifer-t",
			Excerpt: "Our recertification inspection was handled professionally and explained in plain language.",
			Fields:  map[string]any{"company": "Harbor View Condominium Association", "role": "Board President", "rating": 5},
		},
		{
			ID:      205,
			Title:   "Carlos M.",
			Slug:    "carlos-m",
			Excerpt: "Quick turnaround on shop drawing reviews kept our steel erection on track.",
			Fields:  map[string]any{"company": "Suncoast Steel Erectors", "role": "Operations Manager", "rating": 5},
		},
		{
			ID:      206,
			Title:   "Patricia W.",
			Slug:    "patricia-w",
			Excerpt: "The retrofit design let us keep the building occupied during the whole project.",
			Fields:  map[string]any{"company": "Pinellas Property Management", "role": "Facilities Director", "rating": 5},
		},
	}
}
