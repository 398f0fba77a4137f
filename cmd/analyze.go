// -- cmd/analyze.go --
package cmd

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/storeforge/api/schemas"
	"github.com/xkilldash9x/storeforge/internal/config"
	"github.com/xkilldash9x/storeforge/internal/observability"
	"github.com/xkilldash9x/storeforge/internal/service"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// componentFactory builds the pipeline components; swappable in tests.
var componentFactory = service.NewComponentFactory()

// newAnalyzeCmd creates and configures the `analyze` command.
func newAnalyzeCmd() *cobra.Command {
	analyzeCmd := &cobra.Command{
		Use:   "analyze [url]",
		Short: "Analyzes a website's design and synthesizes a store template",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Bind flags so command-line values override config and env.
			if err := viper.BindPFlag("browser.headless", cmd.Flags().Lookup("headless")); err != nil {
				return err
			}
			return viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := observability.GetLogger()

			cfg := config.Get()
			if err := viper.Unmarshal(cfg); err != nil {
				return fmt.Errorf("failed to apply flag overrides: %w", err)
			}

			url := normalizeURL(args[0])
			output := viper.GetString("output")
			previewDir := viper.GetString("preview-dir")

			logger.Info("Starting analysis",
				zap.String("url", url),
				zap.Bool("headless", cfg.Browser.Headless),
			)

			components, err := componentFactory.Create(ctx, cfg, logger)
			if err != nil {
				return fmt.Errorf("failed to initialize components: %w", err)
			}
			defer components.Shutdown()

			result, err := components.Pipeline.AnalyzeWebsite(ctx, url)
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			if previewDir != "" {
				if err := writePreviews(previewDir, result.Preview); err != nil {
					logger.Warn("Failed to write preview screenshots.", zap.Error(err))
				}
			}

			return writeResult(output, result)
		},
	}

	analyzeCmd.Flags().StringP("output", "o", "", "write the analysis result JSON to this file instead of stdout")
	analyzeCmd.Flags().String("preview-dir", "", "directory to export desktop/mobile preview screenshots into")
	analyzeCmd.Flags().Bool("headless", true, "run the browser headless")
	return analyzeCmd
}

// normalizeURL defaults the scheme to https when none is supplied.
func normalizeURL(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}

// writeResult encodes the result as indented JSON to the output path, or
// stdout when no path was given.
func writeResult(path string, result any) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write result to %s: %w", path, err)
	}
	return nil
}

// writePreviews decodes the base64 preview images and writes them as PNGs.
func writePreviews(dir string, preview schemas.PreviewImages) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, encoded := range map[string]string{
		"preview-desktop.png": preview.Desktop,
		"preview-mobile.png":  preview.Mobile,
	} {
		if encoded == "" {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return fmt.Errorf("failed to decode %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return err
		}
	}
	return nil
}
