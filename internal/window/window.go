// Package window enumerates top-level OS windows and finds one by title.
package window

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"
)

// ErrNotFound is returned by Find when no window title matches.
var ErrNotFound = errors.New("window not found")

// Window is a visible top-level window and its outer rectangle in screen
// coordinates.
type Window struct {
	Title  string
	Left   int
	Top    int
	Width  int
	Height int
}

// Bounds returns the window's outer rectangle.
func (w Window) Bounds() image.Rectangle {
	return image.Rect(w.Left, w.Top, w.Left+w.Width, w.Top+w.Height)
}

func (w Window) String() string {
	return fmt.Sprintf("%q at (%d,%d) %dx%d", w.Title, w.Left, w.Top, w.Width, w.Height)
}

// Lister enumerates windows. List is the platform implementation.
type Lister func(ctx context.Context) ([]Window, error)

// Match returns the windows whose title contains title, ignoring case, in
// enumeration order. An empty title matches every window.
func Match(windows []Window, title string) []Window {
	needle := strings.ToLower(title)
	var out []Window
	for _, w := range windows {
		if strings.Contains(strings.ToLower(w.Title), needle) {
			out = append(out, w)
		}
	}
	return out
}

// Find returns the first window whose title contains title.
func Find(ctx context.Context, title string) (Window, error) {
	return FindWith(ctx, List, title)
}

// FindWith is Find with an explicit enumerator.
func FindWith(ctx context.Context, list Lister, title string) (Window, error) {
	all, err := list(ctx)
	if err != nil {
		return Window{}, fmt.Errorf("listing windows: %w", err)
	}
	m := Match(all, title)
	if len(m) == 0 {
		return Window{}, fmt.Errorf("no window matching %q: %w", title, ErrNotFound)
	}
	return m[0], nil
}

// parseGeometryShell parses `xdotool getwindowgeometry --shell` output.
func parseGeometryShell(out string) (x, y, w, h int, err error) {
	vals := map[string]int{}
	for _, line := range strings.Split(out, "\n") {
		k, v, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			continue
		}
		vals[k] = n
	}
	for _, k := range []string{"X", "Y", "WIDTH", "HEIGHT"} {
		if _, ok := vals[k]; !ok {
			return 0, 0, 0, 0, fmt.Errorf("geometry output missing %s", k)
		}
	}
	return vals["X"], vals["Y"], vals["WIDTH"], vals["HEIGHT"], nil
}

// parseTabbed parses lines of "title\tx\ty\twidth\theight". The title may
// itself contain tabs; the last four fields are always the rectangle.
// Malformed lines and untitled windows are skipped.
func parseTabbed(out string) []Window {
	var ws []Window
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		fields := strings.Split(line, "\t")
		if len(fields) < 5 {
			continue
		}
		n := len(fields)
		var nums [4]int
		ok := true
		for i, f := range fields[n-4:] {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				ok = false
				break
			}
			nums[i] = v
		}
		title := strings.Join(fields[:n-4], "\t")
		if !ok || title == "" {
			continue
		}
		ws = append(ws, Window{Title: title, Left: nums[0], Top: nums[1], Width: nums[2], Height: nums[3]})
	}
	return ws
}
