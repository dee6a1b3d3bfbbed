package capture

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivenext/drivenext/internal/logging"
)

func writeImage(t *testing.T, dir, name, body string, mod time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	require.NoError(t, os.Chtimes(path, mod, mod))
	return path
}

func TestLibraryImportCopiesBytes(t *testing.T) {
	src := writeImage(t, t.TempDir(), "scan.JPG", "jpeg-bytes", time.Now())
	lib := NewLibrary(filepath.Join(t.TempDir(), "photos"))

	ref, err := lib.Import(KindPassport, src)
	require.NoError(t, err)

	assert.True(t, ref.Attached())
	assert.Equal(t, KindPassport, ref.Kind)
	assert.Equal(t, lib.Dir(), filepath.Dir(ref.Path))
	assert.True(t, strings.HasPrefix(filepath.Base(ref.Path), "passport_"))
	assert.Equal(t, ".jpg", filepath.Ext(ref.Path))

	data, err := os.ReadFile(ref.Path)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))

	require.NoError(t, lib.Remove(ref))
	assert.NoFileExists(t, ref.Path)
	assert.FileExists(t, src)
}

func TestGalleryPicksNewestImage(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	writeImage(t, dir, "old.png", "old", base)
	writeImage(t, dir, "new.jpeg", "new", base.Add(time.Minute))
	writeImage(t, dir, "notes.txt", "ignored", base.Add(2*time.Minute))

	g := NewGallery(dir, nil, NewLibrary(t.TempDir()))

	images, err := g.Images()
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "new.jpeg", filepath.Base(images[0]))

	ref, err := g.Capture(context.Background(), KindLicense)
	require.NoError(t, err)
	data, err := os.ReadFile(ref.Path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestGalleryEmptyIsUnavailable(t *testing.T) {
	g := NewGallery(filepath.Join(t.TempDir(), "missing"), nil, NewLibrary(t.TempDir()))

	_, err := g.Capture(context.Background(), KindLicense)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCameraWithoutCommandIsUnavailable(t *testing.T) {
	c := NewCamera("", NewLibrary(t.TempDir()), logging.Discard())

	_, err := c.Capture(context.Background(), KindLicense)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCameraSubstitutesOutputPath(t *testing.T) {
	lib := NewLibrary(t.TempDir())
	c := NewCamera("snap --quality 90 --out {output}", lib, logging.Discard())

	var gotName string
	var gotArgs []string
	c.run = func(_ context.Context, name string, args ...string) error {
		gotName, gotArgs = name, args
		return os.WriteFile(args[len(args)-1], []byte("frame"), 0o644)
	}

	ref, err := c.Capture(context.Background(), KindLicense)
	require.NoError(t, err)

	assert.Equal(t, "snap", gotName)
	assert.Equal(t, []string{"--quality", "90", "--out"}, gotArgs[:3])
	assert.NotContains(t, gotArgs[3], OutputPlaceholder)
	assert.NoFileExists(t, gotArgs[3])

	data, err := os.ReadFile(ref.Path)
	require.NoError(t, err)
	assert.Equal(t, "frame", string(data))
}

func TestCameraFailureIsUnavailable(t *testing.T) {
	c := NewCamera("snap {output}", NewLibrary(t.TempDir()), logging.Discard())
	c.run = func(context.Context, string, ...string) error { return errors.New("no device") }

	_, err := c.Capture(context.Background(), KindLicense)
	assert.ErrorIs(t, err, ErrUnavailable)
}

type stubSource struct {
	ref   PhotoRef
	err   error
	calls int
}

func (s *stubSource) Capture(context.Context, PhotoKind) (PhotoRef, error) {
	s.calls++
	return s.ref, s.err
}

func TestWithFallback(t *testing.T) {
	t.Run("camera failure falls back to gallery", func(t *testing.T) {
		camera := &stubSource{err: ErrUnavailable}
		gallery := &stubSource{ref: PhotoRef{Kind: KindLicense, Path: "/photos/a.jpg"}}
		var reported error

		ref, err := WithFallback(camera, gallery, func(_ PhotoKind, err error) { reported = err }).
			Capture(context.Background(), KindLicense)

		require.NoError(t, err)
		assert.Equal(t, "/photos/a.jpg", ref.Path)
		assert.ErrorIs(t, reported, ErrUnavailable)
		assert.Equal(t, 1, gallery.calls)
	})

	t.Run("camera success skips gallery", func(t *testing.T) {
		camera := &stubSource{ref: PhotoRef{Kind: KindPassport, Path: "/photos/b.jpg"}}
		gallery := &stubSource{}

		ref, err := WithFallback(camera, gallery, nil).Capture(context.Background(), KindPassport)

		require.NoError(t, err)
		assert.Equal(t, "/photos/b.jpg", ref.Path)
		assert.Zero(t, gallery.calls)
	})

	t.Run("cancellation does not fall back", func(t *testing.T) {
		camera := &stubSource{err: ErrCancelled}
		gallery := &stubSource{}

		_, err := WithFallback(camera, gallery, nil).Capture(context.Background(), KindPassport)

		assert.ErrorIs(t, err, ErrCancelled)
		assert.Zero(t, gallery.calls)
	})
}
