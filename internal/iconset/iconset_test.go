package iconset

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/clickaround/sadam-tools/internal/artifacts"
)

func decodePNGSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return cfg.Width, cfg.Height
}

func TestGenerateWritesAllSizes(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets", "icons")
	opts := Options{MasterSize: 128, Sizes: []int{64, 48, 16}}

	got, err := Generate(dir, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("artifacts = %d, want 4", len(got))
	}

	w, h := decodePNGSize(t, filepath.Join(dir, MasterName))
	if w != 128 || h != 128 {
		t.Errorf("master = %dx%d, want 128x128", w, h)
	}
	for i, s := range opts.Sizes {
		p := filepath.Join(dir, SizedName(s))
		w, h := decodePNGSize(t, p)
		if w != s || h != s {
			t.Errorf("%s = %dx%d, want %dx%d", p, w, h, s, s)
		}
		a := got[i+1]
		if a.Path != p || a.Width != s || a.Kind != artifacts.KindIcon {
			t.Errorf("artifact %d = %+v", i+1, a)
		}
		fi, _ := os.Stat(p)
		if int64(a.Bytes) != fi.Size() {
			t.Errorf("artifact bytes = %d, file size = %d", a.Bytes, fi.Size())
		}
	}
	if _, err := os.Stat(filepath.Join(dir, ICOName)); !os.IsNotExist(err) {
		t.Errorf("ico written without ICO option: %v", err)
	}
}

func TestGenerateICO(t *testing.T) {
	dir := t.TempDir()
	got, err := Generate(dir, Options{MasterSize: 64, ICO: true})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("artifacts = %d, want 2", len(got))
	}

	f, err := os.Open(filepath.Join(dir, ICOName))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	imgs, err := ico.DecodeAll(f)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	// 256 is above the master size, so only 48, 32 and 16 are embedded.
	if len(imgs) != 3 {
		t.Fatalf("ico entries = %d, want 3", len(imgs))
	}
	if w := imgs[0].Bounds().Dx(); w != 48 {
		t.Errorf("first entry width = %d, want 48", w)
	}
	if got[1].Width != 48 {
		t.Errorf("ico artifact width = %d, want 48", got[1].Width)
	}
}

func TestGenerateRejectsBadSizes(t *testing.T) {
	tests := []Options{
		{MasterSize: 0},
		{MasterSize: 64, Sizes: []int{32, -1}},
	}
	for _, opts := range tests {
		dir := filepath.Join(t.TempDir(), "out")
		if _, err := Generate(dir, opts); err == nil {
			t.Errorf("Generate(%+v) succeeded, want error", opts)
		}
		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			t.Errorf("Generate(%+v) created %s before failing", opts, dir)
		}
	}
}

func TestSizedName(t *testing.T) {
	if got := SizedName(192); got != "app_icon_192.png" {
		t.Errorf("SizedName(192) = %q", got)
	}
}
