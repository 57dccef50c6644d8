// Package main provides the docexport CLI, which exports wizard documents as
// PDF, Word or plain text and can serve the same exports over HTTP.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonathan/docexport/internal/config"
	"github.com/jonathan/docexport/internal/export"
	"github.com/jonathan/docexport/internal/observability"
	"github.com/jonathan/docexport/internal/sandbox"
)

var (
	configFile string
	logLevel   string

	appConfig config.Config
	logger    = zerolog.Nop()

	// now stamps decoded documents; tests pin it.
	now = time.Now
	// newSandbox builds the PDF rendering sandbox; tests swap in a fake.
	newSandbox = func(cfg *config.Config, log zerolog.Logger) sandbox.Sandbox {
		sb := sandbox.NewChromeSandbox(cfg.Browser.ChromePath, log)
		if t := cfg.BrowserTimeout(); t > 0 {
			sb.Timeout = t
		}
		return sb
	}
)

var rootCmd = &cobra.Command{
	Use:               "docexport",
	Short:             "Export Statement of Purpose and Resume documents",
	Long:              "docexport turns SOP and Resume wizard form state into PDF, Word (.docx) or plain-text files.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadAppConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error, disabled)")
}

// loadAppConfig resolves defaults, the config file, the environment and
// flags, in that order of increasing precedence.
func loadAppConfig(cmd *cobra.Command, _ []string) error {
	cfg := config.Defaults()
	if configFile != "" {
		fileCfg, err := config.LoadConfig(configFile)
		if err != nil {
			return err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	logger = observability.NewLogger(cfg.Log, cmd.ErrOrStderr())
	return nil
}

// newService builds the export facade from the loaded configuration.
func newService(saver export.Saver) *export.Service {
	raster := sandbox.DefaultOptions()
	raster.Settle = appConfig.SettleOptions()

	return export.NewService(export.Options{
		Sandbox: newSandbox(&appConfig, logger),
		Saver:   saver,
		Raster:  raster,
		Timeout: appConfig.ExportTimeout(),
		Logger:  logger,
	})
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
