package iconset

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/clickaround/sadam-tools/internal/artifacts"
	"github.com/clickaround/sadam-tools/internal/moonicon"
	"github.com/clickaround/sadam-tools/internal/paths"
)

const (
	MasterName = "app_icon.png"
	ICOName    = "app_icon.ico"
)

// icoSizes are the entries embedded in the Windows .ico file.
var icoSizes = []int{256, 48, 32, 16}

// Options controls which files Generate writes.
type Options struct {
	MasterSize int
	Sizes      []int
	ICO        bool
}

// SizedName returns the file name for a downscaled icon.
func SizedName(size int) string {
	return fmt.Sprintf("app_icon_%d.png", size)
}

// Generate renders the master icon, writes it and every downscaled copy into
// dir, and optionally bundles an .ico. Artifacts are returned in write order.
func Generate(dir string, opts Options) ([]artifacts.Artifact, error) {
	if opts.MasterSize < 1 {
		return nil, fmt.Errorf("master size must be >= 1, got %d", opts.MasterSize)
	}
	for _, s := range opts.Sizes {
		if s < 1 {
			return nil, fmt.Errorf("icon size must be >= 1, got %d", s)
		}
	}

	master := moonicon.Draw(opts.MasterSize)

	var out []artifacts.Artifact
	a, err := writePNG(filepath.Join(dir, MasterName), master)
	if err != nil {
		return nil, err
	}
	out = append(out, a)

	for _, s := range opts.Sizes {
		a, err := writePNG(filepath.Join(dir, SizedName(s)), moonicon.Resize(master, s))
		if err != nil {
			return out, err
		}
		out = append(out, a)
	}

	if opts.ICO {
		a, err := writeICO(filepath.Join(dir, ICOName), master)
		if err != nil {
			return out, err
		}
		out = append(out, a)
	}
	return out, nil
}

func writePNG(path string, img image.Image) (artifacts.Artifact, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return artifacts.Artifact{}, fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := paths.AtomicWrite(path, buf.Bytes()); err != nil {
		return artifacts.Artifact{}, fmt.Errorf("writing %s: %w", path, err)
	}
	b := img.Bounds()
	return artifacts.New(artifacts.KindIcon, path, b.Dx(), b.Dy(), buf.Bytes()), nil
}

func writeICO(path string, master image.Image) (artifacts.Artifact, error) {
	masterSize := master.Bounds().Dx()
	var imgs []image.Image
	for _, s := range icoSizes {
		if s > masterSize {
			continue
		}
		imgs = append(imgs, moonicon.Resize(master, s))
	}
	if len(imgs) == 0 {
		imgs = append(imgs, master)
	}

	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, imgs); err != nil {
		return artifacts.Artifact{}, fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := paths.AtomicWrite(path, buf.Bytes()); err != nil {
		return artifacts.Artifact{}, fmt.Errorf("writing %s: %w", path, err)
	}
	largest := imgs[0].Bounds()
	return artifacts.New(artifacts.KindIcon, path, largest.Dx(), largest.Dy(), buf.Bytes()), nil
}
