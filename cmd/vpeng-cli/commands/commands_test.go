package commands

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSlugCommand(t *testing.T) {
	out, err := run(t, "slug", "Tampa Marina Complex")
	require.NoError(t, err)
	assert.Equal(t, "tampa-marina-complex", out)
}

func TestTransitionCommand(t *testing.T) {
	out, err := run(t, "transition", "/projects", "/projects/tampa-marina-complex")
	require.NoError(t, err)
	assert.Equal(t, "slide-left\n", out)

	out, err = run(t, "transition", "/projects", "/projects/tampa-marina-complex", "--reduced-motion")
	require.NoError(t, err)
	assert.Equal(t, "page\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:")
}

func TestVisualDiffCommand(t *testing.T) {
	baseline, current := t.TempDir(), t.TempDir()
	white := imaging.New(4, 4, color.White)
	require.NoError(t, imaging.Save(white, filepath.Join(baseline, "home--desktop.png")))
	require.NoError(t, imaging.Save(white, filepath.Join(current, "home--desktop.png")))

	t.Run("should pass for identical runs", func(t *testing.T) {
		_, err := run(t, "visual-diff", baseline, current)
		assert.NoError(t, err)
	})

	t.Run("should fail for a changed shot", func(t *testing.T) {
		black := imaging.New(4, 4, color.Black)
		require.NoError(t, imaging.Save(black, filepath.Join(current, "home--desktop.png")))

		out, err := run(t, "visual-diff", baseline, current, "--threshold", "0.5")
		assert.ErrorIs(t, err, errFailedCheck)
		assert.Contains(t, out, "changed")
	})
}

func TestOptimizeImagesCommand(t *testing.T) {
	src, out := t.TempDir(), t.TempDir()
	require.NoError(t, imaging.Save(imaging.New(800, 10, color.White), filepath.Join(src, "hero.jpg")))

	_, err := run(t, "optimize-images", src, "--out", out, "--max-width", "400")
	require.NoError(t, err)

	img, err := imaging.Open(filepath.Join(out, "hero.jpg"))
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
}

func TestConfigFileValues(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".vpeng.yaml"), []byte("reduced-motion: true\n"), 0o644))

	out, err := run(t, "transition", "/projects", "/projects/x")
	require.NoError(t, err)
	assert.Equal(t, "page\n", out)
}

func TestMissingExplicitConfigFile(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "transition", "/a", "/b")
	assert.Error(t, err)
	cfgFile = ""
}
