package moonicon

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"testing"
)

func TestMoonAt(t *testing.T) {
	tests := []struct {
		size int
		want Moon
	}{
		{140, Moon{CX: 65, CY: 70, Radius: 44}},
		{1024, Moon{CX: 476, CY: 512, Radius: 327}},
		{48, Moon{CX: 23, CY: 24, Radius: 15}},
	}
	for _, tt := range tests {
		if got := MoonAt(tt.size); got != tt.want {
			t.Errorf("MoonAt(%d) = %+v, want %+v", tt.size, got, tt.want)
		}
	}
}

func TestSkyColor(t *testing.T) {
	// Focal point is the brightest colour of the gradient.
	if got, want := SkyColor(100, 65, 35), (color.NRGBA{44, 62, 80, 255}); got != want {
		t.Errorf("SkyColor at focus = %v, want %v", got, want)
	}
	// Farther from the focus is darker.
	near := SkyColor(100, 60, 40)
	far := SkyColor(100, 0, 99)
	if far.R >= near.R || far.B >= near.B {
		t.Errorf("far %v should be darker than near %v", far, near)
	}
}

func TestScatterStarsAvoidMoon(t *testing.T) {
	for _, size := range []int{140, 512, 1024} {
		m := MoonAt(size)
		stars := ScatterStars(size, m)
		if len(stars) == 0 || len(stars) > 15 {
			t.Fatalf("size %d: got %d stars, want 1..15", size, len(stars))
		}
		limit := float64(m.Radius) * 1.4
		for _, s := range stars {
			d := math.Hypot(float64(s.X-m.CX), float64(s.Y-m.CY))
			if d < limit {
				t.Errorf("size %d: star %+v is %.1f from moon, want >= %.1f", size, s, d, limit)
			}
			if s.X < 0 || s.X > size || s.Y < 0 || s.Y > size {
				t.Errorf("size %d: star %+v out of range", size, s)
			}
			if s.Alpha < 100 {
				t.Errorf("size %d: star alpha %d < 100", size, s.Alpha)
			}
		}
	}
}

func TestScatterStarsDeterministic(t *testing.T) {
	m := MoonAt(512)
	a := ScatterStars(512, m)
	b := ScatterStars(512, m)
	if len(a) != len(b) {
		t.Fatalf("len %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("star %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestDrawSizeAndOpacity(t *testing.T) {
	img := Draw(140)
	if b := img.Bounds(); b.Dx() != 140 || b.Dy() != 140 {
		t.Fatalf("bounds = %v, want 140x140", b)
	}
	for y := 0; y < 140; y++ {
		for x := 0; x < 140; x++ {
			if a := img.NRGBAAt(x, y).A; a != 255 {
				t.Fatalf("pixel (%d,%d) alpha = %d, want 255", x, y, a)
			}
		}
	}
}

func TestDrawDeterministic(t *testing.T) {
	a := Draw(96)
	b := Draw(96)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two renders at the same size differ")
	}
}

func TestDrawCrescentGradient(t *testing.T) {
	img := Draw(140)
	// Left limb of the crescent at the moon's vertical centre: halfway
	// through the beige-to-gold gradient.
	got := img.NRGBAAt(35, 70)
	want := color.NRGBA{220, 199, 150, 255}
	if got != want {
		t.Errorf("crescent pixel = %v, want %v", got, want)
	}

	// Inside the inner disc the crescent is cut away, so the pixel keeps
	// the sky + glow blend instead of the moon gradient.
	cut := img.NRGBAAt(87, 70)
	if cut == want || cut.R > 150 {
		t.Errorf("cut-out pixel = %v, expected sky-toned", cut)
	}
}

func TestDrawGlowWarmsSky(t *testing.T) {
	img := Draw(140)
	// Just above the moon's top edge, inside the glow.
	x, y := 65, 22
	got := img.NRGBAAt(x, y)
	sky := SkyColor(140, x, y)
	if got.R <= sky.R {
		t.Errorf("glow pixel R = %d, want > sky R %d", got.R, sky.R)
	}
	if got == sky {
		t.Error("glow pixel unchanged from sky")
	}
}

func TestDrawBigStar(t *testing.T) {
	img := Draw(140)
	if got := img.NRGBAAt(107, 45); got != bigStarColor {
		t.Errorf("big star centre = %v, want %v", got, bigStarColor)
	}
	if got := img.NRGBAAt(92, 100); got != smallStarColor {
		t.Errorf("small star centre = %v, want %v", got, smallStarColor)
	}
}

func TestStarPoints(t *testing.T) {
	pts := starPoints(0, 0, 10)
	if len(pts) != 10 {
		t.Fatalf("len = %d, want 10", len(pts))
	}
	// First vertex points straight up.
	if math.Abs(pts[0].x) > 1e-9 || math.Abs(pts[0].y+10) > 1e-9 {
		t.Errorf("pts[0] = %+v, want (0,-10)", pts[0])
	}
	for i, p := range pts {
		want := 10.0
		if i%2 == 1 {
			want = 4
		}
		if r := math.Hypot(p.x, p.y); math.Abs(r-want) > 1e-9 {
			t.Errorf("pts[%d] radius = %f, want %f", i, r, want)
		}
	}
	if !insidePolygon(pts, 0, 0) {
		t.Error("centre should be inside star")
	}
	if insidePolygon(pts, 9, 9) {
		t.Error("(9,9) should be outside star")
	}
}

func TestBlendOverOpaque(t *testing.T) {
	img := Draw(4)
	img.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 255})
	blend(img, 0, 0, color.NRGBA{255, 255, 255, 51})
	got := img.NRGBAAt(0, 0)
	if got.A != 255 || got.R != 51 {
		t.Errorf("blend = %v, want R=51 A=255", got)
	}
}

func TestResize(t *testing.T) {
	src := Draw(256)
	for _, size := range []int{128, 48, 16} {
		dst := Resize(src, size)
		if b := dst.Bounds(); b.Dx() != size || b.Dy() != size {
			t.Errorf("Resize(%d) bounds = %v", size, b)
		}
	}
}

func TestDrawSparkleBlendsOverSky(t *testing.T) {
	const size = 140
	x, y := 14, 14 // upper-left sparkle centre

	// Rebuild the expected pixel: sky, any scattered star covering it,
	// then the sparkle, each composited over the previous layer.
	want := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	want.SetNRGBA(0, 0, SkyColor(size, x, y))
	for _, s := range ScatterStars(size, MoonAt(size)) {
		if math.Hypot(float64(x-s.X), float64(y-s.Y)) <= float64(s.Radius) {
			blend(want, 0, 0, color.NRGBA{255, 255, 255, s.Alpha})
		}
	}
	blend(want, 0, 0, sparkleColor)

	got := Draw(size).NRGBAAt(x, y)
	if got != want.NRGBAAt(0, 0) {
		t.Errorf("sparkle pixel = %v, want %v", got, want.NRGBAAt(0, 0))
	}
	if got.A != 255 {
		t.Errorf("sparkle alpha = %d, want 255 (composited, not replaced)", got.A)
	}
	if sky := SkyColor(size, x, y); got.R <= sky.R {
		t.Errorf("sparkle R = %d, want brighter than sky R %d", got.R, sky.R)
	}
}

func TestBlendSparkleOverPlainSky(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{28, 37, 49, 255})
	blend(img, 0, 0, sparkleColor)
	if got, want := img.NRGBAAt(0, 0), (color.NRGBA{188, 191, 194, 255}); got != want {
		t.Errorf("blend = %v, want %v", got, want)
	}
}
