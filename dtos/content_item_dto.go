package dtos

import (
	"bytes"
	"encoding/json"

	"github.com/gosimple/slug"
	"github.com/pkg/errors"
)

// ContentItem is a single entry of a content collection (a project, a service or a
// testimonial). Items are built per request and never mutated afterwards.
type ContentItem struct {
	ID            int            `json:"id,omitempty"`
	Title         string         `json:"title"`
	Slug          string         `json:"slug"`
	Excerpt       string         `json:"excerpt,omitempty"`
	Content       string         `json:"content,omitempty"`
	Date          string         `json:"date,omitempty"`
	FeaturedImage string         `json:"featuredImage,omitempty"`
	Fields        map[string]any `json:"fields,omitempty"`
}

var ErrInvalidContentItem = errors.New("content item requires a title and a slug")

// Validate checks the required fields of an item.
func (c ContentItem) Validate() error {
	if c.Title == "" || c.Slug == "" {
		return errors.Wrapf(ErrInvalidContentItem, "id=%d", c.ID)
	}
	return nil
}

// renderedText accepts both a plain string and the wordpress {"rendered": "..."} object.
type renderedText string

func (r *renderedText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = renderedText(s)
		return nil
	}

	var obj struct {
		Rendered string `json:"rendered"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*r = renderedText(obj.Rendered)
	return nil
}

type wireContentItem struct {
	ID            int             `json:"id"`
	Title         renderedText    `json:"title"`
	Slug          string          `json:"slug"`
	Excerpt       renderedText    `json:"excerpt"`
	Content       renderedText    `json:"content"`
	Date          string          `json:"date"`
	FeaturedImage string          `json:"featuredImage"`
	Fields        map[string]any  `json:"fields"`
	ACF           json.RawMessage `json:"acf"`
	Embedded      struct {
		FeaturedMedia []struct {
			SourceURL string `json:"source_url"`
		} `json:"wp:featuredmedia"`
	} `json:"_embedded"`
}

// UnmarshalJSON decodes both the flattened representation produced by MarshalJSON
// and the raw wordpress REST representation.
func (c *ContentItem) UnmarshalJSON(b []byte) error {
	var w wireContentItem
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	fields := scalarFields(w.Fields)
	// wordpress sends "acf": [] if a post has no custom fields
	if acf := bytes.TrimSpace(w.ACF); len(acf) > 0 && acf[0] == '{' {
		var m map[string]any
		if err := json.Unmarshal(acf, &m); err != nil {
			return err
		}
		for k, v := range scalarFields(m) {
			if fields == nil {
				fields = make(map[string]any, len(m))
			}
			fields[k] = v
		}
	}

	featuredImage := w.FeaturedImage
	if featuredImage == "" && len(w.Embedded.FeaturedMedia) > 0 {
		featuredImage = w.Embedded.FeaturedMedia[0].SourceURL
	}

	s := w.Slug
	if s == "" && w.Title != "" {
		s = slug.Make(string(w.Title))
	}

	*c = ContentItem{
		ID:            w.ID,
		Title:         string(w.Title),
		Slug:          s,
		Excerpt:       string(w.Excerpt),
		Content:       string(w.Content),
		Date:          w.Date,
		FeaturedImage: featuredImage,
		Fields:        fields,
	}
	return nil
}

// only scalar values are kept, nested objects and arrays are dropped
func scalarFields(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}
	res := make(map[string]any, len(m))
	for k, v := range m {
		switch v.(type) {
		case string, float64, bool, int, int64:
			res[k] = v
		}
	}
	if len(res) == 0 {
		return nil
	}
	return res
}

// ContentResponse is the envelope returned by every content endpoint.
type ContentResponse struct {
	Success      bool          `json:"success"`
	Data         []ContentItem `json:"data"`
	FallbackUsed bool          `json:"fallbackUsed"`
	Error        string        `json:"error,omitempty"`
}
