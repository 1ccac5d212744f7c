package visual

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		m, err := ParseManifest([]byte(`
baseUrl: https://vp-associates.com/
settle: 750ms
pages:
  - name: Home
    path: /
  - name: Projects
    path: /projects
`))
		require.NoError(t, err)
		assert.Equal(t, "https://vp-associates.com", m.BaseURL)
		assert.Equal(t, 750*time.Millisecond, m.Settle)
		assert.Equal(t, 3, m.Retries)
		assert.Equal(t, DefaultViewports, m.Viewports)
		assert.Len(t, m.Pages, 2)
	})

	t.Run("should reject a manifest without pages", func(t *testing.T) {
		_, err := ParseManifest([]byte(`baseUrl: http://localhost:3000`))
		assert.ErrorIs(t, err, ErrInvalidManifest)
	})

	t.Run("should reject relative paths", func(t *testing.T) {
		_, err := ParseManifest([]byte("pages:\n  - name: About\n    path: about\n"))
		assert.ErrorIs(t, err, ErrInvalidManifest)
	})

	t.Run("should reject broken viewports", func(t *testing.T) {
		_, err := ParseManifest([]byte("pages:\n  - name: About\n    path: /about\nviewports:\n  - name: tiny\n    width: 0\n    height: 10\n"))
		assert.ErrorIs(t, err, ErrInvalidManifest)
	})
}

func TestShotFileName(t *testing.T) {
	assert.Equal(t, "our-projects--desktop.png", ShotFileName(Page{Name: "Our Projects", Path: "/projects"}, Viewport{Name: "Desktop"}))
}

func solid(w, h int, c color.Color) *image.NRGBA {
	return imaging.New(w, h, c)
}

func TestMismatchRatio(t *testing.T) {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	t.Run("should be zero for identical images", func(t *testing.T) {
		ratio, mask := MismatchRatio(solid(10, 10, white), solid(10, 10, white))
		assert.Equal(t, 0.0, ratio)
		assert.NotNil(t, mask)
	})

	t.Run("should ignore anti aliasing noise", func(t *testing.T) {
		ratio, _ := MismatchRatio(solid(10, 10, white), solid(10, 10, color.NRGBA{R: 250, G: 250, B: 250, A: 255}))
		assert.Equal(t, 0.0, ratio)
	})

	t.Run("should count differing pixels", func(t *testing.T) {
		b := solid(10, 10, white)
		for x := range 10 {
			b.Set(x, 0, color.NRGBA{A: 255})
		}
		ratio, mask := MismatchRatio(solid(10, 10, white), b)
		assert.InDelta(t, 0.1, ratio, 0.0001)
		assert.Equal(t, color.NRGBA{R: 255, A: 255}, mask.NRGBAAt(0, 0))
	})

	t.Run("should treat a size change as a full mismatch", func(t *testing.T) {
		ratio, mask := MismatchRatio(solid(10, 10, white), solid(10, 12, white))
		assert.Equal(t, 1.0, ratio)
		assert.Nil(t, mask)
	})
}

func TestCompare(t *testing.T) {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.NRGBA{A: 255}

	baseline, current, diffDir := t.TempDir(), t.TempDir(), filepath.Join(t.TempDir(), "diff")
	require.NoError(t, imaging.Save(solid(4, 4, white), filepath.Join(baseline, "home--desktop.png")))
	require.NoError(t, imaging.Save(solid(4, 4, white), filepath.Join(current, "home--desktop.png")))
	require.NoError(t, imaging.Save(solid(4, 4, white), filepath.Join(baseline, "about--desktop.png")))
	require.NoError(t, imaging.Save(solid(4, 4, black), filepath.Join(current, "about--desktop.png")))
	require.NoError(t, imaging.Save(solid(4, 4, white), filepath.Join(baseline, "contact--desktop.png")))

	diffs, err := Compare(baseline, current, diffDir, 0.01)
	require.NoError(t, err)
	require.Len(t, diffs, 3)

	byFile := map[string]Diff{}
	for _, d := range diffs {
		byFile[d.File] = d
	}
	assert.Equal(t, DiffOK, byFile["home--desktop.png"].Status)
	assert.Equal(t, DiffChanged, byFile["about--desktop.png"].Status)
	assert.FileExists(t, byFile["about--desktop.png"].DiffImage)
	assert.Equal(t, DiffMissing, byFile["contact--desktop.png"].Status)
	assert.True(t, Failed(diffs))

	var out bytes.Buffer
	RenderDiffs(&out, diffs)
	assert.Contains(t, out.String(), "about--desktop.png")
	assert.Contains(t, out.String(), "100.00%")
}

type flakyShooter struct {
	failures int
	calls    int
}

func (f *flakyShooter) Shoot(ctx context.Context, url string, v Viewport, settle time.Duration) ([]byte, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("navigation timeout")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, solid(2, 2, color.White)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func TestCapture(t *testing.T) {
	m := Manifest{
		BaseURL:   "http://localhost:3000",
		Retries:   3,
		Pages:     []Page{{Name: "Home", Path: "/"}},
		Viewports: []Viewport{{Name: "mobile", Width: 375, Height: 812}},
	}

	t.Run("should retry a failing shot", func(t *testing.T) {
		out := t.TempDir()
		shooter := &flakyShooter{failures: 1}

		shots, err := Capture(context.Background(), shooter, m, out)
		require.NoError(t, err)
		require.Len(t, shots, 1)
		assert.NoError(t, shots[0].Err)
		assert.Equal(t, 2, shots[0].Attempts)
		assert.FileExists(t, filepath.Join(out, "home--mobile.png"))
	})

	t.Run("should report a shot that keeps failing", func(t *testing.T) {
		out := t.TempDir()
		shooter := &flakyShooter{failures: 10}

		shots, err := Capture(context.Background(), shooter, m, out)
		require.NoError(t, err)
		require.Len(t, shots, 1)
		assert.Error(t, shots[0].Err)
		assert.Equal(t, 3, shots[0].Attempts)

		_, statErr := os.Stat(filepath.Join(out, "home--mobile.png"))
		assert.True(t, os.IsNotExist(statErr))
	})
}
