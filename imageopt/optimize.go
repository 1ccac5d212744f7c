// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package imageopt shrinks the images migrated from the old site: oversized images are
// scaled down to a maximum width and everything is re-encoded.
package imageopt

import (
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/disintegration/imaging"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pkg/errors"
)

const DefaultPattern = "**/*.{jpg,jpeg,png,JPG,JPEG,PNG}"

type Options struct {
	SrcDir   string
	OutDir   string
	Pattern  string
	MaxWidth int
	Quality  int
	Force    bool
}

func (o Options) withDefaults() Options {
	if o.Pattern == "" {
		o.Pattern = DefaultPattern
	}
	if o.MaxWidth <= 0 {
		o.MaxWidth = 1920
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = 80
	}
	return o
}

type Result struct {
	File           string
	OriginalBytes  int64
	OptimizedBytes int64
	Resized        bool
	Skipped        bool
	Err            error
}

func (r Result) Saved() int64 {
	if r.Skipped || r.Err != nil {
		return 0
	}
	return r.OriginalBytes - r.OptimizedBytes
}

// Discover returns the source images relative to opts.SrcDir in a stable order.
func Discover(opts Options) ([]string, error) {
	opts = opts.withDefaults()
	files, err := doublestar.Glob(os.DirFS(opts.SrcDir), opts.Pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Wrap(err, "could not glob source images")
	}
	slices.Sort(files)
	return files, nil
}

func upToDate(src, dst os.FileInfo) bool {
	return dst != nil && !dst.ModTime().Before(src.ModTime())
}

// OptimizeFile optimizes a single image, rel is relative to opts.SrcDir. The output
// keeps the relative path below opts.OutDir.
func OptimizeFile(opts Options, rel string) Result {
	opts = opts.withDefaults()
	res := Result{File: rel}
	src := filepath.Join(opts.SrcDir, rel)
	dst := filepath.Join(opts.OutDir, rel)

	srcInfo, err := os.Stat(src)
	if err != nil {
		res.Err = errors.Wrap(err, "could not stat source")
		return res
	}
	res.OriginalBytes = srcInfo.Size()

	if dstInfo, err := os.Stat(dst); err == nil && !opts.Force && upToDate(srcInfo, dstInfo) {
		res.Skipped = true
		res.OptimizedBytes = dstInfo.Size()
		return res
	}

	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		res.Err = errors.Wrap(err, "could not decode image")
		return res
	}

	if img.Bounds().Dx() > opts.MaxWidth {
		img = imaging.Resize(img, opts.MaxWidth, 0, imaging.Lanczos)
		res.Resized = true
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		res.Err = errors.Wrap(err, "could not create output directory")
		return res
	}

	var encodeOpts []imaging.EncodeOption
	switch strings.ToLower(filepath.Ext(rel)) {
	case ".png":
		encodeOpts = append(encodeOpts, imaging.PNGCompressionLevel(png.BestCompression))
	default:
		encodeOpts = append(encodeOpts, imaging.JPEGQuality(opts.Quality))
	}
	if err := imaging.Save(img, dst, encodeOpts...); err != nil {
		res.Err = errors.Wrap(err, "could not encode image")
		return res
	}

	dstInfo, err := os.Stat(dst)
	if err != nil {
		res.Err = errors.Wrap(err, "could not stat output")
		return res
	}
	res.OptimizedBytes = dstInfo.Size()
	return res
}

// Run optimizes every discovered image. progress is called once per file.
func Run(opts Options, progress func(Result)) ([]Result, error) {
	files, err := Discover(opts)
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(files))
	for _, f := range files {
		res := OptimizeFile(opts, f)
		if progress != nil {
			progress(res)
		}
		results = append(results, res)
	}
	return results, nil
}

func Render(w io.Writer, results []Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"File", "Before", "After", "Saved", "Note"})

	var before, after, saved int64
	for _, r := range results {
		note := ""
		switch {
		case r.Err != nil:
			note = r.Err.Error()
		case r.Skipped:
			note = "up to date"
		case r.Resized:
			note = "resized"
		}
		t.AppendRow(table.Row{r.File, humanBytes(r.OriginalBytes), humanBytes(r.OptimizedBytes), humanBytes(r.Saved()), note})
		before += r.OriginalBytes
		after += r.OptimizedBytes
		saved += r.Saved()
	}
	t.AppendFooter(table.Row{"Total", humanBytes(before), humanBytes(after), humanBytes(saved), ""})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}
