// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package visual

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/pkg/errors"
)

// Shooter renders a single url at a viewport and returns a png.
type Shooter interface {
	Shoot(ctx context.Context, url string, viewport Viewport, settle time.Duration) ([]byte, error)
}

type Shot struct {
	Page     Page
	Viewport Viewport
	File     string
	Attempts int
	Err      error
}

// Capture shoots every page at every viewport into outDir. A failing shot is retried
// and, if it keeps failing, reported in the result instead of aborting the run.
func Capture(ctx context.Context, shooter Shooter, m Manifest, outDir string) ([]Shot, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "could not create output directory")
	}

	shots := make([]Shot, 0, len(m.Pages)*len(m.Viewports))
	for _, p := range m.Pages {
		for _, v := range m.Viewports {
			shot := Shot{Page: p, Viewport: v, File: filepath.Join(outDir, ShotFileName(p, v))}
			url := m.BaseURL + p.Path

			for attempt := 1; attempt <= m.Retries; attempt++ {
				if err := ctx.Err(); err != nil {
					return shots, err
				}
				shot.Attempts = attempt

				var png []byte
				png, shot.Err = shooter.Shoot(ctx, url, v, m.Settle)
				if shot.Err == nil {
					shot.Err = os.WriteFile(shot.File, png, 0o644)
				}
				if shot.Err == nil {
					break
				}
				slog.Warn("screenshot failed", "url", url, "viewport", v.Name, "attempt", attempt, "err", shot.Err)
				if attempt < m.Retries {
					time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
				}
			}
			shots = append(shots, shot)
		}
	}
	return shots, nil
}

// RodShooter drives a headless chrome. One page is opened per shot and closed afterwards.
type RodShooter struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration
}

var _ Shooter = (*RodShooter)(nil)

// NewRodShooter connects to controlURL, or launches a local headless browser if it is empty.
func NewRodShooter(controlURL string, timeout time.Duration) (*RodShooter, error) {
	s := &RodShooter{timeout: timeout}
	if controlURL == "" {
		s.launcher = launcher.New().Headless(true)
		u, err := s.launcher.Launch()
		if err != nil {
			return nil, errors.Wrap(err, "could not launch browser")
		}
		controlURL = u
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, errors.Wrap(err, "could not connect to browser")
	}
	s.browser = browser
	return s, nil
}

func (s *RodShooter) Shoot(ctx context.Context, url string, viewport Viewport, settle time.Duration) ([]byte, error) {
	page, err := s.browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, errors.Wrap(err, "could not open page")
	}
	defer page.Close() // nolint: errcheck

	if err := (proto.EmulationSetDeviceMetricsOverride{
		Width:             viewport.Width,
		Height:            viewport.Height,
		DeviceScaleFactor: 1.0,
		Mobile:            viewport.Width < 768,
	}).Call(page); err != nil {
		return nil, errors.Wrap(err, "could not set viewport")
	}

	page = page.Timeout(s.timeout)
	if err := page.Navigate(url); err != nil {
		return nil, errors.Wrap(err, "could not navigate")
	}
	if err := page.WaitLoad(); err != nil {
		return nil, errors.Wrap(err, "page did not load")
	}
	if settle > 0 {
		// lazy images and entrance animations
		time.Sleep(settle)
	}

	return page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
}

func (s *RodShooter) Close() error {
	err := s.browser.Close()
	if s.launcher != nil {
		s.launcher.Cleanup()
	}
	return err
}
