package wordproc

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"time"
)

// MimeType is the media type of a .docx package.
const MimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// zipEpoch is the earliest timestamp the zip format can carry.
var zipEpoch = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

// Meta carries the package's core properties.
type Meta struct {
	Title     string
	Author    string
	Generator string
	// Created stamps every zip entry and docProps/core.xml, so identical
	// documents pack to identical bytes.
	Created time.Time
}

func (m Meta) created() time.Time {
	if m.Created.Before(zipEpoch) {
		return zipEpoch
	}
	return m.Created.UTC().Truncate(time.Second)
}

type part struct {
	name  string
	write func(*strings.Builder)
}

// Pack serializes the paragraphs into a single-section .docx package.
func Pack(ctx context.Context, paragraphs []Paragraph, meta Meta) ([]byte, error) {
	parts := []part{
		{"[Content_Types].xml", func(sb *strings.Builder) { sb.WriteString(contentTypesXML) }},
		{"_rels/.rels", func(sb *strings.Builder) { sb.WriteString(packageRelsXML) }},
		{"word/document.xml", func(sb *strings.Builder) { writeDocumentXML(sb, paragraphs) }},
		{"word/_rels/document.xml.rels", func(sb *strings.Builder) { sb.WriteString(documentRelsXML) }},
		{"word/styles.xml", func(sb *strings.Builder) { sb.WriteString(stylesXML) }},
		{"docProps/core.xml", func(sb *strings.Builder) { writeCoreXML(sb, meta) }},
	}

	var output bytes.Buffer
	writer := zip.NewWriter(&output)
	modified := meta.created()

	for _, p := range parts {
		if err := ctx.Err(); err != nil {
			return nil, &PackError{Part: p.name, Cause: err}
		}
		var sb strings.Builder
		p.write(&sb)
		if err := writeZipEntry(writer, p.name, modified, sb.String()); err != nil {
			return nil, &PackError{Part: p.name, Cause: err}
		}
	}

	if err := writer.Close(); err != nil {
		return nil, &PackError{Cause: err}
	}
	return output.Bytes(), nil
}

func writeZipEntry(writer *zip.Writer, name string, modified time.Time, content string) error {
	header := &zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: modified,
	}
	dst, err := writer.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = dst.Write([]byte(content))
	return err
}
