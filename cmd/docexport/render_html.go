package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/docexport/internal/rendering"
)

var renderHTMLCmd = &cobra.Command{
	Use:   "render-html",
	Short: "Write the markup a PDF export would rasterize",
	Long:  "Renders the self-contained HTML used as the PDF source so it can be inspected in a browser.",
	RunE:  runRenderHTML,
}

var (
	renderHTMLInput string
	renderHTMLKind  string
	renderHTMLOut   string
)

func init() {
	renderHTMLCmd.Flags().StringVarP(&renderHTMLInput, "in", "i", "", "Path to the wizard payload JSON, or - for stdin (required)")
	renderHTMLCmd.Flags().StringVarP(&renderHTMLKind, "kind", "k", "resume", "Document kind: resume or sop")
	renderHTMLCmd.Flags().StringVarP(&renderHTMLOut, "out", "o", "", "Output HTML file (default stdout)")

	_ = renderHTMLCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(renderHTMLCmd)
}

func runRenderHTML(cmd *cobra.Command, _ []string) error {
	doc, err := loadDocument(renderHTMLInput, renderHTMLKind, cmd.InOrStdin())
	if err != nil {
		return err
	}

	markup, err := rendering.RenderMarkup(doc)
	if err != nil {
		return fmt.Errorf("failed to render markup: %w", err)
	}

	if renderHTMLOut == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), markup)
		return err
	}

	if dir := filepath.Dir(renderHTMLOut); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(renderHTMLOut, []byte(markup), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", renderHTMLOut)
	return nil
}
