// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package visual captures screenshots of site pages and compares them against a
// baseline to catch visual regressions during the migration.
package visual

import (
	"os"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Viewport struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type Page struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

type Manifest struct {
	BaseURL   string        `yaml:"baseUrl"`
	Settle    time.Duration `yaml:"settle"`
	Retries   int           `yaml:"retries"`
	Pages     []Page        `yaml:"pages"`
	Viewports []Viewport    `yaml:"viewports"`
}

var DefaultViewports = []Viewport{
	{Name: "mobile", Width: 375, Height: 812},
	{Name: "tablet", Width: 768, Height: 1024},
	{Name: "desktop", Width: 1440, Height: 900},
}

var ErrInvalidManifest = errors.New("invalid manifest")

func ParseManifest(b []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return m, errors.Wrap(err, "could not parse manifest")
	}

	if len(m.Viewports) == 0 {
		m.Viewports = DefaultViewports
	}
	if m.Retries <= 0 {
		m.Retries = 3
	}
	m.BaseURL = strings.TrimSuffix(m.BaseURL, "/")

	if len(m.Pages) == 0 {
		return m, errors.Wrap(ErrInvalidManifest, "no pages")
	}
	for _, p := range m.Pages {
		if p.Name == "" || !strings.HasPrefix(p.Path, "/") {
			return m, errors.Wrapf(ErrInvalidManifest, "page %q needs a name and an absolute path", p.Path)
		}
	}
	for _, v := range m.Viewports {
		if v.Name == "" || v.Width <= 0 || v.Height <= 0 {
			return m, errors.Wrapf(ErrInvalidManifest, "viewport %q needs a name and a positive size", v.Name)
		}
	}
	return m, nil
}

func LoadManifest(path string) (Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, errors.Wrap(err, "could not read manifest")
	}
	return ParseManifest(b)
}

// ShotFileName is stable across runs so baseline and current shots line up.
func ShotFileName(p Page, v Viewport) string {
	return slug.Make(p.Name) + "--" + slug.Make(v.Name) + ".png"
}
