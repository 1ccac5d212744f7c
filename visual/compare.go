// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package visual

import (
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/disintegration/imaging"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
)

type DiffStatus string

const (
	DiffOK       DiffStatus = "ok"
	DiffChanged  DiffStatus = "changed"
	DiffMissing  DiffStatus = "missing"
	DiffResized  DiffStatus = "resized"
	DiffUnusable DiffStatus = "unreadable"
)

type Diff struct {
	File          string
	Status        DiffStatus
	MismatchRatio float64
	DiffImage     string
}

// per channel difference (0-255) below which two pixels count as equal, absorbs
// anti aliasing noise between renders
const channelTolerance = 16

// MismatchRatio returns the share of pixels that differ between a and b together with
// a mask that marks differing pixels red. Images of different size are fully mismatched.
func MismatchRatio(a, b image.Image) (float64, *image.NRGBA) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return 1, nil
	}

	mask := imaging.Grayscale(a)
	total := ab.Dx() * ab.Dy()
	if total == 0 {
		return 0, mask
	}

	mismatched := 0
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			if !pixelsEqual(a.At(ab.Min.X+x, ab.Min.Y+y), b.At(bb.Min.X+x, bb.Min.Y+y)) {
				mismatched++
				mask.Set(x, y, color.NRGBA{R: 255, A: 255})
			}
		}
	}
	return float64(mismatched) / float64(total), mask
}

func pixelsEqual(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return channelClose(ar, br) && channelClose(ag, bg) && channelClose(ab, bb) && channelClose(aa, ba)
}

func channelClose(a, b uint32) bool {
	// RGBA returns 16 bit channels
	a, b = a>>8, b>>8
	if a > b {
		return a-b <= channelTolerance
	}
	return b-a <= channelTolerance
}

// Compare matches every png in baselineDir with the file of the same name in currentDir.
// Diff masks of changed shots are written to diffDir if it is not empty.
func Compare(baselineDir, currentDir, diffDir string, threshold float64) ([]Diff, error) {
	files, err := doublestar.Glob(os.DirFS(baselineDir), "**/*.png")
	if err != nil {
		return nil, errors.Wrap(err, "could not list baseline")
	}
	slices.Sort(files)

	if diffDir != "" {
		if err := os.MkdirAll(diffDir, 0o755); err != nil {
			return nil, errors.Wrap(err, "could not create diff directory")
		}
	}

	diffs := make([]Diff, 0, len(files))
	for _, f := range files {
		diff := Diff{File: f}

		base, err := imaging.Open(filepath.Join(baselineDir, f))
		if err != nil {
			diff.Status = DiffUnusable
			diffs = append(diffs, diff)
			continue
		}
		current, err := imaging.Open(filepath.Join(currentDir, f))
		if err != nil {
			diff.Status = DiffMissing
			diff.MismatchRatio = 1
			diffs = append(diffs, diff)
			continue
		}

		ratio, mask := MismatchRatio(base, current)
		diff.MismatchRatio = ratio
		switch {
		case mask == nil:
			diff.Status = DiffResized
		case ratio > threshold:
			diff.Status = DiffChanged
		default:
			diff.Status = DiffOK
		}

		if diff.Status == DiffChanged && diffDir != "" {
			diff.DiffImage = filepath.Join(diffDir, filepath.Base(f))
			if err := imaging.Save(mask, diff.DiffImage); err != nil {
				return diffs, errors.Wrap(err, "could not write diff image")
			}
		}
		diffs = append(diffs, diff)
	}
	return diffs, nil
}

func Failed(diffs []Diff) bool {
	return slices.ContainsFunc(diffs, func(d Diff) bool {
		return d.Status != DiffOK
	})
}

func RenderDiffs(w io.Writer, diffs []Diff) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Screenshot", "Status", "Mismatch", "Diff"})
	for _, d := range diffs {
		t.AppendRow(table.Row{d.File, d.Status, formatPercent(d.MismatchRatio), d.DiffImage})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

func RenderShots(w io.Writer, shots []Shot) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Page", "Viewport", "Attempts", "File", "Error"})
	for _, s := range shots {
		errMsg := ""
		if s.Err != nil {
			errMsg = s.Err.Error()
		}
		t.AppendRow(table.Row{s.Page.Path, s.Viewport.Name, s.Attempts, s.File, errMsg})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
