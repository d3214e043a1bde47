// Package capture grabs the client area of a window and saves it as PNG.
package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/kbinani/screenshot"

	"github.com/clickaround/sadam-tools/internal/artifacts"
	"github.com/clickaround/sadam-tools/internal/paths"
	"github.com/clickaround/sadam-tools/internal/window"
)

// ErrEmptyRegion is returned when trimming the frame leaves nothing to grab.
var ErrEmptyRegion = errors.New("capture region is empty")

// Insets is the frame thickness trimmed from each edge of a window.
type Insets struct {
	Left, Top, Right, Bottom int
}

// DefaultInsets drops a standard Windows frame and title bar.
var DefaultInsets = Insets{Left: 8, Top: 31, Right: 8, Bottom: 8}

// Region returns the screen rectangle inside w's frame.
func Region(w window.Window, in Insets) (image.Rectangle, error) {
	width := w.Width - in.Left - in.Right
	height := w.Height - in.Top - in.Bottom
	if width <= 0 || height <= 0 {
		return image.Rectangle{}, fmt.Errorf("%w: window %dx%d, insets %+v", ErrEmptyRegion, w.Width, w.Height, in)
	}
	x, y := w.Left+in.Left, w.Top+in.Top
	return image.Rect(x, y, x+width, y+height), nil
}

// Grabber reads the screen pixels inside a rectangle.
type Grabber func(image.Rectangle) (*image.RGBA, error)

// Locator resolves the window to capture.
type Locator func(ctx context.Context) (window.Window, error)

// Capturer waits for the target window to settle, then grabs it.
type Capturer struct {
	Grab   Grabber
	Delay  time.Duration
	Insets Insets
}

// New returns a Capturer that reads the real screen.
func New(delay time.Duration, in Insets) *Capturer {
	return &Capturer{Grab: screenshot.CaptureRect, Delay: delay, Insets: in}
}

// Shot waits c.Delay, locates the window again (it may have moved while the
// app was loading), grabs its client area and writes dir/name.png.
func (c *Capturer) Shot(ctx context.Context, locate Locator, dir, name string) (artifacts.Artifact, error) {
	file, ok := paths.PNGName(name)
	if !ok {
		return artifacts.Artifact{}, fmt.Errorf("invalid screenshot name %q", name)
	}

	if err := sleep(ctx, c.Delay); err != nil {
		return artifacts.Artifact{}, err
	}

	w, err := locate(ctx)
	if err != nil {
		return artifacts.Artifact{}, err
	}
	r, err := Region(w, c.Insets)
	if err != nil {
		return artifacts.Artifact{}, err
	}
	slog.Debug("grabbing region", "window", w.Title, "rect", r)

	img, err := c.Grab(r)
	if err != nil {
		return artifacts.Artifact{}, fmt.Errorf("grab %v: %w", r, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return artifacts.Artifact{}, fmt.Errorf("encoding png: %w", err)
	}
	path := filepath.Join(dir, file)
	if err := paths.AtomicWrite(path, buf.Bytes()); err != nil {
		return artifacts.Artifact{}, fmt.Errorf("writing %s: %w", path, err)
	}
	b := img.Bounds()
	return artifacts.New(artifacts.KindScreenshot, path, b.Dx(), b.Dy(), buf.Bytes()), nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
