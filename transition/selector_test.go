package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	cases := []struct {
		name          string
		from          string
		to            string
		reducedMotion bool
		expected      string
	}{
		{"should slide left into a project", "/projects", "/projects/tampa-marina-complex", false, SlideLeft},
		{"should slide right back to the projects", "/projects/tampa-marina-complex", "/projects", false, SlideRight},
		{"should slide left into a service", "/services", "/services/structural-steel-design", false, SlideLeft},
		{"should slide right back to the services", "/services/structural-steel-design", "/services", false, SlideRight},
		{"should use the page transition for unrelated pages", "/about", "/contact", false, Page},
		{"should honor reduced motion", "/projects", "/projects/x", true, Page},
		{"should honor reduced motion on the way back", "/services/x", "/services", true, Page},
		{"should not match nested segments", "/projects", "/projects/a/b", false, Page},
		{"should not match an empty segment", "/projects", "/projects/", false, Page},
		{"should not slide across collections", "/projects", "/services/x", false, Page},
		{"should not slide between two detail pages", "/projects/a", "/projects/b", false, Page},
		{"should not match a prefix lookalike", "/projects", "/projectsx/a", false, Page},
		{"should use the page transition for empty paths", "", "", false, Page},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, Select(c.from, c.to, c.reducedMotion))
		})
	}
}

func TestSelectIsIdempotent(t *testing.T) {
	s := NewSelector()
	first := s.Select("/projects", "/projects/x", false)
	for range 10 {
		assert.Equal(t, first, s.Select("/projects", "/projects/x", false))
	}
}
