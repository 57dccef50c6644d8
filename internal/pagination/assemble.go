package pagination

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// MimeType is the media type of assembled documents.
const MimeType = "application/pdf"

// Meta carries the PDF's document information.
type Meta struct {
	Title   string
	Author  string
	Creator string
	Created time.Time
}

// Assemble builds a PDF with one page per strip. Each strip is drawn from the
// top of its page at full page width, keeping its aspect ratio.
func Assemble(strips []image.Image, size PageSize, meta Meta) ([]byte, error) {
	if len(strips) == 0 {
		return nil, &Error{Op: "assemble", Cause: errors.New("no pages")}
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: size.WidthMM, Ht: size.HeightMM},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetCreator(meta.Creator, true)
	if !meta.Created.IsZero() {
		pdf.SetCreationDate(meta.Created)
		pdf.SetModificationDate(meta.Created)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	for i, strip := range strips {
		b := strip.Bounds()
		if b.Dx() <= 0 || b.Dy() <= 0 {
			return nil, &Error{Op: "assemble", Cause: fmt.Errorf("page %d is empty", i+1)}
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, strip); err != nil {
			return nil, &Error{Op: "encode", Cause: fmt.Errorf("page %d: %w", i+1, err)}
		}

		name := fmt.Sprintf("page-%d", i+1)
		pdf.RegisterImageOptionsReader(name, opts, &buf)
		pdf.AddPage()
		heightMM := float64(b.Dy()) * size.WidthMM / float64(b.Dx())
		pdf.ImageOptions(name, 0, 0, size.WidthMM, heightMM, false, opts, 0, "")
		if err := pdf.Error(); err != nil {
			return nil, &Error{Op: "assemble", Cause: fmt.Errorf("page %d: %w", i+1, err)}
		}
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, &Error{Op: "output", Cause: err}
	}
	return out.Bytes(), nil
}
