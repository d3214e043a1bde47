package paths

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	AppDirName     = "sadam"
	ConfigFileName = "sadam-config.json"
	HistoryDBName  = "sadam.db"
	DirPerm        = 0755
	FilePerm       = 0644
)

// AtomicWrite writes data to path via "<path>.tmp" and a rename, creating
// the parent directory if needed. Screenshots and every icon set file (the
// master PNG, the downscaled PNGs and the .ico) go through it, so a failed
// or interrupted run leaves either the previous image or none, never a
// truncated one that a later history entry would point at.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// DataDir returns the directory holding sadam's per-user state: the
// ConfigFileName settings file (searched after the one next to the
// executable) and the HistoryDBName SQLite log of written images.
//
//   - Windows: %APPDATA%\sadam
//   - Unix:    ~/.config/sadam
//
// Falls back to os.TempDir()/sadam if neither is available. Screenshots and
// icons are not stored here; they go to the output directory given on the
// command line.
func DataDir() string {
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppDirName)
	}
	return filepath.Join(home, ".config", AppDirName)
}

// PNGName turns a file stem into a bare "<stem>.png" name. It reports false
// for empty stems and stems that contain a path separator.
func PNGName(stem string) (string, bool) {
	if stem == "" || strings.ContainsAny(stem, `/\`) || stem == "." || stem == ".." {
		return "", false
	}
	if strings.EqualFold(filepath.Ext(stem), ".png") {
		return stem, true
	}
	return stem + ".png", true
}
