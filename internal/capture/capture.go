// Package capture obtains document photos for the registration wizard. A
// photo comes either from a camera command or from a gallery directory and is
// always copied into the application's photo library before it is referenced.
package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrUnavailable is returned when a source cannot be used on this device.
	ErrUnavailable = errors.New("capture: source unavailable")
	// ErrCancelled is returned when the user backs out of a source.
	ErrCancelled = errors.New("capture: cancelled")
)

type PhotoKind int

const (
	KindLicense PhotoKind = iota + 1
	KindPassport
)

func (k PhotoKind) String() string {
	switch k {
	case KindLicense:
		return "license"
	case KindPassport:
		return "passport"
	default:
		return "unknown"
	}
}

// PhotoRef points at a photo inside the library. The zero value means no
// photo has been attached.
type PhotoRef struct {
	Kind PhotoKind
	Path string
}

func (r PhotoRef) Attached() bool {
	return r.Path != ""
}

// Source produces a photo of the requested kind.
type Source interface {
	Capture(ctx context.Context, kind PhotoKind) (PhotoRef, error)
}

// Library is the directory captured photos are copied into.
type Library struct {
	dir string
}

func NewLibrary(dir string) *Library {
	return &Library{dir: dir}
}

func (l *Library) Dir() string {
	return l.dir
}

// Import copies src into the library under a fresh name. The bytes are
// copied unchanged.
func (l *Library) Import(kind PhotoKind, src string) (PhotoRef, error) {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return PhotoRef{}, fmt.Errorf("capture: create library: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return PhotoRef{}, fmt.Errorf("capture: open %s: %w", src, err)
	}
	defer in.Close()

	name := fmt.Sprintf("%s_%s%s", kind, uuid.NewString(), strings.ToLower(filepath.Ext(src)))
	dst := filepath.Join(l.dir, name)

	out, err := os.Create(dst)
	if err != nil {
		return PhotoRef{}, fmt.Errorf("capture: create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return PhotoRef{}, fmt.Errorf("capture: copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return PhotoRef{}, fmt.Errorf("capture: close %s: %w", dst, err)
	}

	return PhotoRef{Kind: kind, Path: dst}, nil
}

// Remove deletes a library photo. References outside the library are left alone.
func (l *Library) Remove(ref PhotoRef) error {
	if !ref.Attached() || filepath.Dir(ref.Path) != filepath.Clean(l.dir) {
		return nil
	}
	if err := os.Remove(ref.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// OutputPlaceholder is replaced with the target file path in a camera command.
const OutputPlaceholder = "{output}"

// Camera runs an external capture command that writes a JPEG to the path
// substituted for OutputPlaceholder.
type Camera struct {
	args    []string
	library *Library
	logger  *slog.Logger

	run func(ctx context.Context, name string, args ...string) error
}

// NewCamera parses command with strings.Fields. An empty command yields a
// camera that is always unavailable.
func NewCamera(command string, library *Library, logger *slog.Logger) *Camera {
	return &Camera{
		args:    strings.Fields(command),
		library: library,
		logger:  logger,
		run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
	}
}

func (c *Camera) Capture(ctx context.Context, kind PhotoKind) (PhotoRef, error) {
	if len(c.args) == 0 {
		return PhotoRef{}, ErrUnavailable
	}

	tmp, err := os.CreateTemp("", "drivenext-capture-*.jpg")
	if err != nil {
		return PhotoRef{}, fmt.Errorf("capture: temp file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	args := make([]string, len(c.args))
	for i, a := range c.args {
		args[i] = strings.ReplaceAll(a, OutputPlaceholder, tmpPath)
	}

	c.logger.Debug("Running camera command", "command", args[0], "kind", kind)
	if err := c.run(ctx, args[0], args[1:]...); err != nil {
		if ctx.Err() != nil {
			return PhotoRef{}, ErrCancelled
		}
		return PhotoRef{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if info, err := os.Stat(tmpPath); err != nil || info.Size() == 0 {
		return PhotoRef{}, fmt.Errorf("%w: camera produced no image", ErrUnavailable)
	}

	return c.library.Import(kind, tmpPath)
}

// ChooseFunc lets the user pick one of the candidate files. It returns
// ErrCancelled when the user backs out.
type ChooseFunc func(ctx context.Context, kind PhotoKind, candidates []string) (string, error)

// NewestFirst picks the most recently modified candidate. Candidates are
// already sorted that way.
func NewestFirst(_ context.Context, _ PhotoKind, candidates []string) (string, error) {
	return candidates[0], nil
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".webp": true,
}

// Gallery offers the image files of a directory.
type Gallery struct {
	dir     string
	choose  ChooseFunc
	library *Library
}

func NewGallery(dir string, choose ChooseFunc, library *Library) *Gallery {
	if choose == nil {
		choose = NewestFirst
	}
	return &Gallery{dir: dir, choose: choose, library: library}
}

// Images lists the gallery's images, most recently modified first.
func (g *Gallery) Images() ([]string, error) {
	entries, err := os.ReadDir(g.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("capture: read gallery: %w", err)
	}

	type candidate struct {
		path    string
		modUnix int64
	}
	var found []candidate
	for _, e := range entries {
		if e.IsDir() || !imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		found = append(found, candidate{filepath.Join(g.dir, e.Name()), info.ModTime().UnixNano()})
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].modUnix != found[j].modUnix {
			return found[i].modUnix > found[j].modUnix
		}
		return found[i].path < found[j].path
	})

	paths := make([]string, len(found))
	for i, c := range found {
		paths[i] = c.path
	}
	return paths, nil
}

func (g *Gallery) Capture(ctx context.Context, kind PhotoKind) (PhotoRef, error) {
	images, err := g.Images()
	if err != nil {
		return PhotoRef{}, err
	}
	if len(images) == 0 {
		return PhotoRef{}, fmt.Errorf("%w: gallery %s has no images", ErrUnavailable, g.dir)
	}

	chosen, err := g.choose(ctx, kind, images)
	if err != nil {
		return PhotoRef{}, err
	}
	return g.library.Import(kind, chosen)
}

type fallback struct {
	primary    Source
	secondary  Source
	onFallback func(kind PhotoKind, err error)
}

// WithFallback tries primary and falls back to secondary when primary fails
// for any reason other than cancellation. onFallback is told about the
// failure so it can be surfaced as a notice; it may be nil.
func WithFallback(primary, secondary Source, onFallback func(kind PhotoKind, err error)) Source {
	return &fallback{primary: primary, secondary: secondary, onFallback: onFallback}
}

func (f *fallback) Capture(ctx context.Context, kind PhotoKind) (PhotoRef, error) {
	ref, err := f.primary.Capture(ctx, kind)
	if err == nil || errors.Is(err, ErrCancelled) {
		return ref, err
	}
	if f.onFallback != nil {
		f.onFallback(kind, err)
	}
	return f.secondary.Capture(ctx, kind)
}
