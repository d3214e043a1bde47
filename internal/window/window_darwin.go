package window

import (
	"context"
	"fmt"
	"os/exec"
)

const listScript = `set out to ""
tell application "System Events"
	repeat with p in (every process whose visible is true)
		try
			repeat with w in (every window of p)
				try
					set {x, y} to position of w
					set {ww, hh} to size of w
					set out to out & (name of w) & tab & x & tab & y & tab & ww & tab & hh & linefeed
				end try
			end repeat
		end try
	end repeat
end tell
return out`

// List returns windows of visible processes via System Events. The calling
// terminal needs the Accessibility permission.
func List(ctx context.Context) ([]Window, error) {
	out, err := exec.CommandContext(ctx, "osascript", "-e", listScript).Output()
	if err != nil {
		return nil, fmt.Errorf("osascript: %w", err)
	}
	return parseTabbed(string(out)), nil
}
