// Package moonicon draws the sadam app icon: a night-sky gradient with a
// glowing crescent moon and a handful of stars. Everything is generated
// procedurally so any resolution can be rendered from the same geometry.
package moonicon

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	xdraw "golang.org/x/image/draw"
)

// refSize is the size the star and sparkle constants were designed at.
const refSize = 140

// Seed fixes the scattered star layout so every render is identical.
const Seed = 42

var (
	skyInner  = [3]float64{44, 62, 80}
	skyOuter  = [3]float64{13, 13, 20}
	moonTop   = [3]float64{245, 230, 202}
	moonBase  = [3]float64{196, 169, 98}
	glowColor = color.NRGBA{196, 169, 98, 0}

	bigStarColor   = color.NRGBA{196, 169, 98, 255}
	smallStarColor = color.NRGBA{232, 213, 163, 255}
	sparkleColor   = color.NRGBA{255, 255, 255, 180}
)

// Moon is the crescent's outer disc in pixel coordinates.
type Moon struct {
	CX, CY int
	Radius int
}

// MoonAt returns the moon geometry for an icon of the given size.
func MoonAt(size int) Moon {
	return Moon{
		CX:     size/2 - size/28,
		CY:     size / 2,
		Radius: int(float64(size) * 0.32),
	}
}

// keepOut reports whether (x, y) is too close to the moon for a scattered star.
func (m Moon) keepOut(x, y int) bool {
	return math.Hypot(float64(x-m.CX), float64(y-m.CY)) < float64(m.Radius)*1.4
}

// Star is a round background star.
type Star struct {
	X, Y   int
	Radius int
	Alpha  uint8
}

// ScatterStars places up to 15 background stars with a fixed seed, giving up
// after 100 attempts. Candidates inside the moon's keep-out zone are skipped.
func ScatterStars(size int, m Moon) []Star {
	rng := rand.New(rand.NewPCG(Seed, 0))
	var stars []Star
	for attempts := 0; len(stars) < 15 && attempts < 100; attempts++ {
		x := rng.IntN(size + 1)
		y := rng.IntN(size + 1)
		if m.keepOut(x, y) {
			continue
		}
		stars = append(stars, Star{
			X:      x,
			Y:      y,
			Radius: (2 + rng.IntN(4)) * size / refSize,
			Alpha:  uint8(100 + rng.Float64()*155),
		})
	}
	return stars
}

// Draw renders the icon at size×size. The result is fully opaque.
func Draw(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	m := MoonAt(size)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, SkyColor(size, x, y))
		}
	}

	for _, s := range ScatterStars(size, m) {
		fillDisc(img, float64(s.X), float64(s.Y), float64(s.Radius),
			color.NRGBA{255, 255, 255, s.Alpha})
	}

	drawGlow(img, m)
	drawCrescent(img, m)

	scale := float64(size) / refSize
	cx, cy := float64(m.CX), float64(m.CY)
	shift := float64(size) * 0.05
	fillPolygon(img, starPoints(cx+35*scale+shift, cy-25*scale, 12*scale), bigStarColor)
	fillPolygon(img, starPoints(cx+20*scale+shift, cy+30*scale, 8*scale), smallStarColor)

	sparkle := float64(3 * size / refSize)
	for _, p := range [][2]float64{{0.1, 0.1}, {0.9, 0.1}, {0.9, 0.9}, {0.1, 0.9}} {
		x := float64(int(float64(size) * p[0]))
		y := float64(int(float64(size) * p[1]))
		fillDisc(img, x, y, sparkle, sparkleColor)
	}
	return img
}

// SkyColor is the background gradient at (x, y): bright near the upper
// right focal point, fading to near-black at 1.2×size away.
func SkyColor(size, x, y int) color.NRGBA {
	fx, fy := float64(size)*0.65, float64(size)*0.35
	d := math.Hypot(float64(x)-fx, float64(y)-fy)
	t := math.Min(d/(float64(size)*1.2), 1)
	return lerp(skyInner, skyOuter, t, 255)
}

// drawGlow blends a warm halo of concentric rings (radius step 3) behind
// the moon. The innermost ring covering a pixel sets its opacity.
func drawGlow(img *image.NRGBA, m Moon) {
	g := int(float64(m.Radius) * 1.3)
	if g <= 0 {
		return
	}
	b := img.Bounds().Intersect(image.Rect(m.CX-g, m.CY-g, m.CX+g+1, m.CY+g+1))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			d := math.Hypot(float64(x-m.CX), float64(y-m.CY))
			if d > float64(g) {
				continue
			}
			ring := g - 3*int((float64(g)-d)/3)
			if ring <= 0 {
				ring += 3
			}
			c := glowColor
			c.A = uint8(50 * (1 - float64(ring)/float64(g)))
			blend(img, x, y, c)
		}
	}
}

// drawCrescent paints the outer disc minus an offset inner disc with a
// vertical gradient from pale beige at the top to gold at the bottom.
func drawCrescent(img *image.NRGBA, m Moon) {
	r := m.Radius
	innerR := float64(int(float64(r) * 0.85))
	innerCX := float64(m.CX + int(float64(r)*0.5))
	top := float64(m.CY - r)

	b := img.Bounds().Intersect(image.Rect(m.CX-r, m.CY-r, m.CX+r+1, m.CY+r+1))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if math.Hypot(float64(x-m.CX), float64(y-m.CY)) > float64(r) {
				continue
			}
			if math.Hypot(float64(x)-innerCX, float64(y-m.CY)) <= innerR {
				continue
			}
			t := (float64(y) - top) / float64(2*r)
			t = math.Max(0, math.Min(1, t))
			img.SetNRGBA(x, y, lerp(moonTop, moonBase, t, 255))
		}
	}
}

type point struct{ x, y float64 }

// starPoints returns the 10 vertices of a five-pointed star, alternating
// between the outer radius and 0.4× it, starting straight up.
func starPoints(cx, cy, r float64) []point {
	pts := make([]point, 10)
	for i := range pts {
		angle := float64(i)*math.Pi/5 - math.Pi/2
		radius := r
		if i%2 == 1 {
			radius = r * 0.4
		}
		pts[i] = point{cx + radius*math.Cos(angle), cy + radius*math.Sin(angle)}
	}
	return pts
}

// fillPolygon fills pixels whose coordinates fall inside pts (even-odd rule).
func fillPolygon(img *image.NRGBA, pts []point, c color.NRGBA) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.x), math.Max(maxX, p.x)
		minY, maxY = math.Min(minY, p.y), math.Max(maxY, p.y)
	}
	b := img.Bounds().Intersect(image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if insidePolygon(pts, float64(x), float64(y)) {
				blend(img, x, y, c)
			}
		}
	}
}

func insidePolygon(pts []point, x, y float64) bool {
	in := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.y > y) != (b.y > y) && x < (b.x-a.x)*(y-a.y)/(b.y-a.y)+a.x {
			in = !in
		}
	}
	return in
}

// fillDisc composites c over every pixel within r of (cx, cy).
func fillDisc(img *image.NRGBA, cx, cy, r float64, c color.NRGBA) {
	b := img.Bounds().Intersect(image.Rect(
		int(math.Floor(cx-r)), int(math.Floor(cy-r)),
		int(math.Ceil(cx+r))+1, int(math.Ceil(cy+r))+1))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if math.Hypot(float64(x)-cx, float64(y)-cy) <= r {
				blend(img, x, y, c)
			}
		}
	}
}

// blend composites src over the pixel at (x, y) using straight alpha.
func blend(img *image.NRGBA, x, y int, src color.NRGBA) {
	if src.A == 255 {
		img.SetNRGBA(x, y, src)
		return
	}
	dst := img.NRGBAAt(x, y)
	sa := float64(src.A) / 255
	da := float64(dst.A) / 255
	oa := sa + da*(1-sa)
	if oa == 0 {
		img.SetNRGBA(x, y, color.NRGBA{})
		return
	}
	mix := func(s, d uint8) uint8 {
		return uint8(math.Round((float64(s)*sa + float64(d)*da*(1-sa)) / oa))
	}
	img.SetNRGBA(x, y, color.NRGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: uint8(math.Round(oa * 255)),
	})
}

func lerp(from, to [3]float64, t float64, a uint8) color.NRGBA {
	ch := func(i int) uint8 { return uint8(from[i]*(1-t) + to[i]*t) }
	return color.NRGBA{ch(0), ch(1), ch(2), a}
}

// Resize scales src to size×size with a Catmull-Rom kernel.
func Resize(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
