package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/docexport/internal/document"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a wizard payload against its JSON Schema",
	RunE:  runValidate,
}

var (
	validateInput string
	validateKind  string
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to the wizard payload JSON, or - for stdin (required)")
	validateCmd.Flags().StringVarP(&validateKind, "kind", "k", "resume", "Document kind: resume or sop")

	_ = validateCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	kind, err := document.ParseKind(validateKind)
	if err != nil {
		return err
	}
	payload, err := readPayload(validateInput, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if err := document.Validate(kind, payload); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✅ %s payload is valid\n", kind.Label())
	return nil
}
