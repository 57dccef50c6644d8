package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/docexport/internal/export"
	"github.com/jonathan/docexport/internal/observability"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a wizard payload as PDF, Word or text",
	Long: `Reads SOP or Resume wizard form state (JSON) and writes the exported file
into the output directory. --format all writes every format concurrently.`,
	RunE: runExport,
}

var (
	exportInput   string
	exportKind    string
	exportFormat  string
	exportOutDir  string
	exportName    string
	exportVerbose bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportInput, "in", "i", "", "Path to the wizard payload JSON, or - for stdin (required)")
	exportCmd.Flags().StringVarP(&exportKind, "kind", "k", "resume", "Document kind: resume or sop")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: pdf, word, txt or all (default from config)")
	exportCmd.Flags().StringVarP(&exportOutDir, "out", "o", "", "Output directory (default from config)")
	exportCmd.Flags().StringVarP(&exportName, "name", "n", "", "Output filename without extension")
	exportCmd.Flags().BoolVarP(&exportVerbose, "verbose", "v", false, "Print a document outline and export details")

	_ = exportCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(exportCmd)
}

// exportFormats resolves the --format flag.
func exportFormats(raw string) ([]export.Format, error) {
	if strings.EqualFold(strings.TrimSpace(raw), "all") {
		return export.Formats(), nil
	}
	f, err := export.ParseFormat(raw)
	if err != nil {
		return nil, err
	}
	return []export.Format{f}, nil
}

func runExport(cmd *cobra.Command, _ []string) error {
	formatFlag := exportFormat
	if formatFlag == "" {
		formatFlag = appConfig.DefaultFormat
	}
	formats, err := exportFormats(formatFlag)
	if err != nil {
		return err
	}

	doc, err := loadDocument(exportInput, exportKind, cmd.InOrStdin())
	if err != nil {
		return err
	}

	outDir := exportOutDir
	if outDir == "" {
		outDir = appConfig.OutputDir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	verbose := exportVerbose || appConfig.Verbose
	printer := observability.NewPrinter(cmd.OutOrStdout())
	if verbose {
		printer.PrintDocumentOutline(doc)
	}

	svc := newService(export.NewDirSaver(outDir))

	// errgroup.Group carries no context, so a failed format never cancels the
	// others; Wait returns the first failure once every export has finished.
	results := make([]export.Result, len(formats))
	var g errgroup.Group
	for i, f := range formats {
		g.Go(func() error {
			res := svc.Export(cmd.Context(), doc, f, exportName)
			results[i] = res
			if !res.Success {
				return fmt.Errorf("%s export failed: %s", f, res.Message)
			}
			return nil
		})
	}
	err = g.Wait()

	for _, res := range results {
		if verbose {
			printer.PrintResult(observability.ExportSummary{
				Success:  res.Success,
				Message:  res.Message,
				Filename: res.Filename,
				MimeType: res.MimeType,
				Size:     res.Size,
				Pages:    res.Pages,
				ExportID: res.ExportID,
			})
		} else {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.Message)
		}
	}
	return err
}
