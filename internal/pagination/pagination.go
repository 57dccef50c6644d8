// Package pagination cuts a tall document bitmap into page-sized strips and
// assembles them into a PDF.
package pagination

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// PageSize is a physical page size in millimetres.
type PageSize struct {
	WidthMM  float64
	HeightMM float64
}

// A4 is the only page size exports use.
var A4 = PageSize{WidthMM: 210, HeightMM: 297}

// MaxWidthPx is A4 at 300 DPI. Wider captures are scaled down before slicing.
const MaxWidthPx = 2480

// PageHeightPx converts the page height into the pixel space of a bitmap
// whose width spans the full page width.
func PageHeightPx(bitmapWidth int, size PageSize) int {
	if bitmapWidth <= 0 || size.WidthMM <= 0 {
		return 0
	}
	h := int(math.Round(float64(bitmapWidth) * size.HeightMM / size.WidthMM))
	if h < 1 {
		h = 1
	}
	return h
}

// PageCount returns how many pages a bitmap of the given size needs.
// A zero-height bitmap still produces one (blank) page, and a height that is
// an exact multiple of the page height produces no trailing blank page.
func PageCount(width, height int, size PageSize) int {
	pageH := PageHeightPx(width, size)
	if height <= 0 || pageH <= 0 {
		return 1
	}
	return (height + pageH - 1) / pageH
}

// FitWidth scales img down to maxWidth pixels wide, keeping its aspect ratio.
// Images already within the limit, or a non-positive limit, return img as is.
func FitWidth(img image.Image, maxWidth int) image.Image {
	b := img.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth || b.Dy() <= 0 {
		return img
	}
	h := max(int(math.Round(float64(b.Dy())*float64(maxWidth)/float64(b.Dx()))), 1)
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Slice cuts img into successive full-width strips of one page height each,
// top to bottom. The last strip may be shorter than a page.
func Slice(img image.Image, size PageSize) []image.Image {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width <= 0 || height <= 0 {
		w := max(width, 1)
		return []image.Image{blankPage(w, PageHeightPx(w, size))}
	}

	pageH := PageHeightPx(width, size)
	count := PageCount(width, height, size)
	strips := make([]image.Image, 0, count)
	for i := 0; i < count; i++ {
		top := i * pageH
		stripH := min(pageH, height-top)
		dst := image.NewRGBA(image.Rect(0, 0, width, stripH))
		sr := image.Rect(b.Min.X, b.Min.Y+top, b.Max.X, b.Min.Y+top+stripH)
		draw.Copy(dst, image.Point{}, img, sr, draw.Src, nil)
		strips = append(strips, dst)
	}
	return strips
}

func blankPage(w, h int) image.Image {
	page := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(page, page.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return page
}
