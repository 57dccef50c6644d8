package wordproc

import (
	"encoding/xml"
	"strconv"
	"strings"
	"unicode/utf8"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const (
	nsWordML = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsRels   = "http://schemas.openxmlformats.org/package/2006/relationships"
)

// A4 in twips with 0.75in side margins.
const sectionProps = `<w:sectPr><w:pgSz w:w="11906" w:h="16838"/>` +
	`<w:pgMar w:top="1080" w:right="1080" w:bottom="1080" w:left="1080" w:header="708" w:footer="708" w:gutter="0"/></w:sectPr>`

// validXMLRune reports whether r may appear in an XML 1.0 document.
func validXMLRune(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= utf8.MaxRune:
		return true
	}
	return false
}

// escape drops characters XML cannot carry and escapes the rest.
func escape(sb *strings.Builder, s string) {
	clean := strings.Map(func(r rune) rune {
		if r == utf8.RuneError || !validXMLRune(r) {
			return -1
		}
		return r
	}, s)
	// EscapeText only fails when the writer does; strings.Builder never does.
	_ = xml.EscapeText(sb, []byte(clean))
}

func writeDocumentXML(sb *strings.Builder, paragraphs []Paragraph) {
	sb.WriteString(xmlHeader)
	sb.WriteString(`<w:document xmlns:w="` + nsWordML + `"><w:body>`)
	for _, p := range paragraphs {
		writeParagraph(sb, p)
	}
	sb.WriteString(sectionProps)
	sb.WriteString(`</w:body></w:document>`)
}

func writeParagraph(sb *strings.Builder, p Paragraph) {
	sb.WriteString("<w:p>")
	if p.Style != StyleNormal || p.Align != AlignLeft || p.SpacingBefore > 0 || p.SpacingAfter > 0 {
		sb.WriteString("<w:pPr>")
		if p.Style != StyleNormal {
			sb.WriteString(`<w:pStyle w:val="` + string(p.Style) + `"/>`)
		}
		if p.SpacingBefore > 0 || p.SpacingAfter > 0 {
			sb.WriteString(`<w:spacing w:before="` + strconv.Itoa(p.SpacingBefore) +
				`" w:after="` + strconv.Itoa(p.SpacingAfter) + `"/>`)
		}
		if p.Align != AlignLeft {
			sb.WriteString(`<w:jc w:val="` + string(p.Align) + `"/>`)
		}
		sb.WriteString("</w:pPr>")
	}
	for _, r := range p.Runs {
		writeRun(sb, r)
	}
	sb.WriteString("</w:p>")
}

func writeRun(sb *strings.Builder, r Run) {
	sb.WriteString("<w:r>")
	if r.Bold || r.Italic || r.Color != "" || r.Size > 0 {
		sb.WriteString("<w:rPr>")
		if r.Bold {
			sb.WriteString("<w:b/>")
		}
		if r.Italic {
			sb.WriteString("<w:i/>")
		}
		if r.Color != "" {
			sb.WriteString(`<w:color w:val="`)
			escape(sb, r.Color)
			sb.WriteString(`"/>`)
		}
		if r.Size > 0 {
			size := strconv.Itoa(r.Size)
			sb.WriteString(`<w:sz w:val="` + size + `"/><w:szCs w:val="` + size + `"/>`)
		}
		sb.WriteString("</w:rPr>")
	}
	for i, line := range strings.Split(r.Text, "\n") {
		if i > 0 {
			sb.WriteString("<w:br/>")
		}
		for j, chunk := range strings.Split(line, "\t") {
			if j > 0 {
				sb.WriteString("<w:tab/>")
			}
			if chunk == "" {
				continue
			}
			sb.WriteString(`<w:t xml:space="preserve">`)
			escape(sb, chunk)
			sb.WriteString("</w:t>")
		}
	}
	sb.WriteString("</w:r>")
}

const contentTypesXML = xmlHeader +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
	`</Types>`

const packageRelsXML = xmlHeader +
	`<Relationships xmlns="` + nsRels + `">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`</Relationships>`

const documentRelsXML = xmlHeader +
	`<Relationships xmlns="` + nsRels + `">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`</Relationships>`

const stylesXML = xmlHeader +
	`<w:styles xmlns:w="` + nsWordML + `">` +
	`<w:docDefaults><w:rPrDefault><w:rPr>` +
	`<w:rFonts w:ascii="Calibri" w:hAnsi="Calibri" w:cs="Calibri"/><w:sz w:val="22"/><w:szCs w:val="22"/>` +
	`</w:rPr></w:rPrDefault><w:pPrDefault><w:pPr><w:spacing w:after="0" w:line="264" w:lineRule="auto"/></w:pPr></w:pPrDefault></w:docDefaults>` +
	`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/>` +
	`<w:rPr><w:sz w:val="36"/><w:szCs w:val="36"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/>` +
	`<w:pPr><w:keepNext/><w:pBdr><w:bottom w:val="single" w:sz="6" w:space="1" w:color="1F3A5F"/></w:pBdr><w:outlineLvl w:val="0"/></w:pPr>` +
	`<w:rPr><w:b/><w:sz w:val="28"/><w:szCs w:val="28"/></w:rPr></w:style>` +
	`</w:styles>`

func writeCoreXML(sb *strings.Builder, meta Meta) {
	sb.WriteString(xmlHeader)
	sb.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" ` +
		`xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" ` +
		`xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	sb.WriteString("<dc:title>")
	escape(sb, meta.Title)
	sb.WriteString("</dc:title><dc:creator>")
	escape(sb, meta.Author)
	sb.WriteString("</dc:creator><cp:lastModifiedBy>")
	escape(sb, meta.Generator)
	sb.WriteString("</cp:lastModifiedBy>")
	stamp := meta.created().Format("2006-01-02T15:04:05Z")
	sb.WriteString(`<dcterms:created xsi:type="dcterms:W3CDTF">` + stamp + `</dcterms:created>`)
	sb.WriteString(`<dcterms:modified xsi:type="dcterms:W3CDTF">` + stamp + `</dcterms:modified>`)
	sb.WriteString("</cp:coreProperties>")
}
