package window

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// List returns visible X11 windows with a title using xdotool.
func List(ctx context.Context) ([]Window, error) {
	out, err := exec.CommandContext(ctx, "xdotool", "search", "--onlyvisible", "--name", ".").Output()
	if err != nil {
		// xdotool exits 1 when nothing matches.
		if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() == 1 && len(out) == 0 {
			return nil, nil
		}
		return nil, fmt.Errorf("xdotool: %w (is xdotool installed?)", err)
	}

	var ws []Window
	for _, id := range strings.Fields(string(out)) {
		name, err := exec.CommandContext(ctx, "xdotool", "getwindowname", id).Output()
		if err != nil {
			continue
		}
		title := strings.TrimSpace(string(name))
		if title == "" {
			continue
		}
		geo, err := exec.CommandContext(ctx, "xdotool", "getwindowgeometry", "--shell", id).Output()
		if err != nil {
			continue
		}
		x, y, w, h, err := parseGeometryShell(string(geo))
		if err != nil {
			continue
		}
		ws = append(ws, Window{Title: title, Left: x, Top: y, Width: w, Height: h})
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ws, nil
}
