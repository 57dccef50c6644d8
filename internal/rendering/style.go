package rendering

import (
	"fmt"
	"strings"
)

// Page layout constants of the PDF source markup: A4 width at 96 DPI.
const (
	PageWidthPx   = 794
	PageHeightPx  = 1123
	BodyPaddingPx = 36
	BaseFontPx    = 11.5
	LineHeight    = 1.5
	AccentColor   = "#1F3A5F"
	MutedColor    = "#5A6270"
)

type cssRule struct {
	selector string
	decls    [][2]string
}

// rules only use bare tags and classes defined by the document template, so the
// fragment renders the same whatever stylesheet the hosting page has loaded.
var rules = []cssRule{
	{"*", [][2]string{{"margin", "0"}, {"padding", "0"}, {"box-sizing", "border-box"}, {"border", "0"}, {"background", "transparent"}, {"text-decoration", "none"}, {"text-transform", "none"}, {"letter-spacing", "normal"}, {"float", "none"}}},
	{"html", [][2]string{{"background", "#FFFFFF"}, {"width", fmt.Sprintf("%dpx", PageWidthPx)}}},
	{"body", [][2]string{{"background", "#FFFFFF"}, {"color", "#222222"}, {"width", fmt.Sprintf("%dpx", PageWidthPx)}, {"min-height", fmt.Sprintf("%dpx", PageHeightPx)}, {"padding", fmt.Sprintf("%dpx", BodyPaddingPx)}, {"font-family", "Helvetica, Arial, sans-serif"}, {"font-size", fmt.Sprintf("%gpx", BaseFontPx)}, {"line-height", fmt.Sprintf("%g", LineHeight)}, {"text-align", "left"}}},
	{".document", [][2]string{{"display", "block"}, {"width", "100%"}}},
	{"h1", [][2]string{{"display", "block"}, {"font-size", "22px"}, {"font-weight", "bold"}, {"color", AccentColor}, {"text-align", "center"}, {"margin-bottom", "4px"}}},
	{".contact", [][2]string{{"display", "block"}, {"font-size", "10.5px"}, {"color", MutedColor}, {"text-align", "center"}}},
	{".target", [][2]string{{"display", "block"}, {"font-size", "11px"}, {"font-style", "italic"}, {"color", MutedColor}, {"text-align", "center"}, {"margin-top", "2px"}}},
	{".section", [][2]string{{"display", "block"}, {"margin-top", "16px"}}},
	{"h2", [][2]string{{"display", "block"}, {"font-size", "14px"}, {"font-weight", "bold"}, {"color", AccentColor}, {"border-bottom", "1px solid " + AccentColor}, {"padding-bottom", "2px"}, {"margin-bottom", "8px"}, {"text-transform", "uppercase"}}},
	{"p", [][2]string{{"display", "block"}, {"margin", "0"}}},
	{".text-block", [][2]string{{"white-space", "pre-wrap"}, {"text-align", "justify"}}},
	{".entry", [][2]string{{"display", "block"}, {"margin-bottom", "10px"}}},
	{".entry-primary", [][2]string{{"font-weight", "bold"}, {"font-size", "12px"}}},
	{".entry-secondary", [][2]string{{"font-style", "italic"}}},
	{".entry-dates", [][2]string{{"font-size", "10px"}, {"color", MutedColor}}},
	{".entry-description", [][2]string{{"white-space", "pre-wrap"}, {"margin-top", "2px"}}},
	{".entry-detail", [][2]string{{"font-size", "10.5px"}}},
	{".label", [][2]string{{"font-weight", "bold"}}},
	{".skill-line", [][2]string{{"margin-bottom", "2px"}}},
	{".footer", [][2]string{{"display", "block"}, {"margin-top", "24px"}, {"font-size", "9px"}, {"color", MutedColor}, {"text-align", "center"}}},
}

var stylesheet = buildStylesheet()

func buildStylesheet() string {
	var sb strings.Builder
	for _, r := range rules {
		sb.WriteString(r.selector + " {")
		for _, d := range r.decls {
			sb.WriteString(" " + d[0] + ": " + d[1] + " !important;")
		}
		sb.WriteString(" }\n")
	}
	return sb.String()
}

// Stylesheet returns the inline stylesheet of the PDF source markup. Every
// declaration is !important so host page rules cannot bleed into the sandbox.
func Stylesheet() string {
	return stylesheet
}
