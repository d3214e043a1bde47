package window

import (
	"context"
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                = windows.NewLazySystemDLL("user32.dll")
	pEnumWindows          = user32.NewProc("EnumWindows")
	pIsWindowVisible      = user32.NewProc("IsWindowVisible")
	pIsIconic             = user32.NewProc("IsIconic")
	pGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
	pGetWindowTextW       = user32.NewProc("GetWindowTextW")
	pGetWindowRect        = user32.NewProc("GetWindowRect")
)

// enumCB is created once; Windows callbacks are a finite resource.
var (
	enumMu  sync.Mutex
	enumOut []Window
	enumCB  = windows.NewCallback(enumProc)
)

// List returns visible, non-minimised top-level windows with a title, in
// Z order (topmost first), using EnumWindows.
func List(ctx context.Context) ([]Window, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	enumMu.Lock()
	defer enumMu.Unlock()
	enumOut = nil

	if r, _, err := pEnumWindows.Call(enumCB, 0); r == 0 {
		return nil, fmt.Errorf("EnumWindows: %w", err)
	}
	ws := enumOut
	enumOut = nil
	return ws, nil
}

func enumProc(hwnd uintptr, _ uintptr) uintptr {
	if r, _, _ := pIsWindowVisible.Call(hwnd); r == 0 {
		return 1
	}
	if r, _, _ := pIsIconic.Call(hwnd); r != 0 {
		return 1
	}
	title := windowText(hwnd)
	if title == "" {
		return 1
	}
	var rc windows.Rect
	if r, _, _ := pGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&rc))); r == 0 {
		return 1
	}
	enumOut = append(enumOut, Window{
		Title:  title,
		Left:   int(rc.Left),
		Top:    int(rc.Top),
		Width:  int(rc.Right - rc.Left),
		Height: int(rc.Bottom - rc.Top),
	})
	return 1
}

func windowText(hwnd uintptr) string {
	n, _, _ := pGetWindowTextLengthW.Call(hwnd)
	if n == 0 {
		return ""
	}
	buf := make([]uint16, n+1)
	pGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf)
}
