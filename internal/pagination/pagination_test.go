package pagination

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// striped returns a width x height bitmap whose rows encode their y coordinate.
func striped(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		c := color.RGBA{R: uint8(y % 256), G: uint8(y / 256 % 256), B: 0, A: 255}
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func rowOf(img image.Image, y int) int {
	r, g, _, _ := img.At(0, y).RGBA()
	return int(r>>8) + int(g>>8)*256
}

func TestPageHeightPx(t *testing.T) {
	assert.Equal(t, 297, PageHeightPx(210, A4))
	assert.Equal(t, 2246, PageHeightPx(1588, A4))
	assert.Equal(t, 1123, PageHeightPx(794, A4))
	assert.Zero(t, PageHeightPx(0, A4))
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		name   string
		height int
		want   int
	}{
		{"empty", 0, 1},
		{"one row", 1, 1},
		{"exactly one page", 297, 1},
		{"one row over", 298, 2},
		{"exact multiple", 297 * 3, 3},
		{"partial third", 297*2 + 10, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PageCount(210, tc.height, A4))
		})
	}
}

func TestSlice_ExactMultipleHasNoTrailingPage(t *testing.T) {
	strips := Slice(striped(210, 297*2), A4)

	require.Len(t, strips, 2)
	for _, s := range strips {
		assert.Equal(t, 210, s.Bounds().Dx())
		assert.Equal(t, 297, s.Bounds().Dy())
	}
}

func TestSlice_LastStripIsShorter(t *testing.T) {
	strips := Slice(striped(210, 297+50), A4)

	require.Len(t, strips, 2)
	assert.Equal(t, 297, strips[0].Bounds().Dy())
	assert.Equal(t, 50, strips[1].Bounds().Dy())
}

func TestSlice_PreservesContentOrder(t *testing.T) {
	strips := Slice(striped(210, 700), A4)

	require.Len(t, strips, 3)
	assert.Equal(t, 0, rowOf(strips[0], 0))
	assert.Equal(t, 296, rowOf(strips[0], 296))
	assert.Equal(t, 297, rowOf(strips[1], 0))
	assert.Equal(t, 594, rowOf(strips[2], 0))
	assert.Equal(t, 699, rowOf(strips[2], strips[2].Bounds().Dy()-1))
}

func TestSlice_OffsetBounds(t *testing.T) {
	src := striped(210, 400).SubImage(image.Rect(0, 100, 210, 400))

	strips := Slice(src, A4)
	require.Len(t, strips, 2)
	assert.Equal(t, 100, rowOf(strips[0], 0))
	assert.Equal(t, 3, strips[1].Bounds().Dy())
}

func TestSlice_EmptyImageYieldsOneBlankPage(t *testing.T) {
	strips := Slice(image.NewRGBA(image.Rect(0, 0, 210, 0)), A4)

	require.Len(t, strips, 1)
	assert.Equal(t, 297, strips[0].Bounds().Dy())
	r, g, b, _ := strips[0].At(10, 10).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})
}

func TestFitWidth_ScalesWideCaptures(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 840, 1188))
	for y := 0; y < 1188; y++ {
		for x := 0; x < 840; x++ {
			src.Set(x, y, color.RGBA{R: 200, G: 10, B: 10, A: 255})
		}
	}

	got := FitWidth(src, 210)
	assert.Equal(t, image.Rect(0, 0, 210, 297), got.Bounds())
	r, g, b, _ := got.At(105, 150).RGBA()
	assert.InDelta(t, 200, int(r>>8), 1)
	assert.InDelta(t, 10, int(g>>8), 1)
	assert.InDelta(t, 10, int(b>>8), 1)

	strips := Slice(got, A4)
	require.Len(t, strips, 1)
	assert.Equal(t, PageCount(840, 1188, A4), len(strips))
}

func TestFitWidth_LeavesNarrowCapturesAlone(t *testing.T) {
	src := striped(210, 400)

	assert.Same(t, src, FitWidth(src, 210))
	assert.Same(t, src, FitWidth(src, 0))
}
