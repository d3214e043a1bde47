// Package artifacts records the image files written by sadam so earlier
// icon sets and screenshots can be listed and pruned.
package artifacts

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Kind classifies a written image.
type Kind string

const (
	KindIcon       Kind = "icon"
	KindScreenshot Kind = "screenshot"
)

// Artifact describes one image file on disk.
type Artifact struct {
	Kind   Kind      `json:"kind"`
	Path   string    `json:"path"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Bytes  int       `json:"bytes"`
	SHA256 string    `json:"sha256"`
	Time   time.Time `json:"time"`
}

// New builds an Artifact for data just written to path, stamped with the
// current time.
func New(kind Kind, path string, width, height int, data []byte) Artifact {
	sum := sha256.Sum256(data)
	return Artifact{
		Kind:   kind,
		Path:   path,
		Width:  width,
		Height: height,
		Bytes:  len(data),
		SHA256: hex.EncodeToString(sum[:]),
		Time:   time.Now(),
	}
}

// String is the one-line form used by `sadam history`.
func (a Artifact) String() string {
	return fmt.Sprintf("%s  %-10s  %4dx%-4d  %8d  %s",
		a.Time.Local().Format("2006-01-02 15:04:05"), a.Kind, a.Width, a.Height, a.Bytes, a.Path)
}

// DayCutoff returns midnight (local time) of the first day in a window of
// the given number of days ending today.
func DayCutoff(days int) time.Time {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, -(days - 1))
}
