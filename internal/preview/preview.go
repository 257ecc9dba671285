// Package preview renders a course overview image.
package preview

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/woozymasta/stagesmap/internal/geo"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	supersample = 2
	marginRatio = 0.1
)

var (
	background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	pathColor  = color.RGBA{0x1e, 0x63, 0xc8, 0xff}
	stageColor = color.RGBA{0xd2, 0x2d, 0x2d, 0xff}
	startColor = color.RGBA{0x2d, 0xa0, 0x3c, 0xff}
	labelColor = color.RGBA{0x20, 0x20, 0x20, 0xff}
)

// Render draws the path through points and a labeled marker per stage on a
// size x size canvas. The course is fitted with a margin and keeps its
// proportions in meters.
func Render(points []geo.GeoPoint, size int) *image.RGBA {
	big := image.NewRGBA(image.Rect(0, 0, size*supersample, size*supersample))
	draw.Draw(big, big.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	px := project(points, size*supersample)

	for i := 1; i < len(px); i++ {
		drawLine(big, px[i-1], px[i], 2*supersample, pathColor)
	}
	for i := len(px) - 1; i >= 0; i-- {
		c := stageColor
		if i == 0 {
			c = startColor
		}
		fillCircle(big, px[i], 5*supersample, c)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), big, big.Bounds(), draw.Over, nil)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
	}
	for i, p := range px {
		d.Dot = fixed.P(int(p.X/supersample)+8, int(p.Y/supersample)-6)
		d.DrawString(geo.StageName(i))
	}

	return dst
}

// Encode writes img as lossy WebP.
func Encode(w io.Writer, img image.Image) error {
	return webp.Encode(w, img, &webp.Options{Lossless: false, Quality: 85})
}

type point struct{ X, Y float64 }

// project maps points to pixel space on a canvas of the given size,
// north up, using the flat-earth scale at the first point.
func project(points []geo.GeoPoint, canvas int) []point {
	if len(points) == 0 {
		return nil
	}

	origin := points[0]
	lonMeters := geo.MetersPerDegreeLon * math.Cos(origin.Lat*math.Pi/180)

	local := make([]point, len(points))
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, p := range points {
		x := (p.Lon - origin.Lon) * lonMeters
		y := (p.Lat - origin.Lat) / geo.LatDegreesPerMeter
		local[i] = point{x, y}
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	margin := float64(canvas) * marginRatio
	usable := float64(canvas) - 2*margin
	extent := math.Max(maxX-minX, maxY-minY)
	scale := 0.0
	if extent > 0 {
		scale = usable / extent
	}

	// Center the course on both axes.
	offX := margin + (usable-(maxX-minX)*scale)/2
	offY := margin + (usable-(maxY-minY)*scale)/2

	out := make([]point, len(local))
	for i, l := range local {
		out[i] = point{
			X: offX + (l.X-minX)*scale,
			Y: float64(canvas) - (offY + (l.Y-minY)*scale),
		}
	}
	return out
}

func drawLine(img *image.RGBA, a, b point, width int, c color.Color) {
	steps := int(math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y)))
	if steps == 0 {
		steps = 1
	}
	half := width / 2
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		x := int(a.X + (b.X-a.X)*t)
		y := int(a.Y + (b.Y-a.Y)*t)
		r := image.Rect(x-half, y-half, x+half+1, y+half+1)
		draw.Draw(img, r, &image.Uniform{c}, image.Point{}, draw.Src)
	}
}

func fillCircle(img *image.RGBA, center point, radius int, c color.Color) {
	cx, cy := int(center.X), int(center.Y)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				img.Set(cx+dx, cy+dy, c)
			}
		}
	}
}
