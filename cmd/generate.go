// -- cmd/generate.go --
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/storeforge/api/schemas"
	"github.com/xkilldash9x/storeforge/internal/config"
	"github.com/xkilldash9x/storeforge/internal/observability"
)

// newGenerateCmd creates and configures the `generate` command.
func newGenerateCmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Creates a draft store from a base template",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := observability.GetLogger()

			cfg := config.Get()
			if err := viper.Unmarshal(cfg); err != nil {
				return fmt.Errorf("failed to apply flag overrides: %w", err)
			}

			req := schemas.GenerateStoreRequest{
				OwnerID:    viper.GetString("owner"),
				TemplateID: viper.GetString("template"),
				Info: schemas.StoreInfo{
					Name:        viper.GetString("name"),
					Subdomain:   viper.GetString("subdomain"),
					Description: viper.GetString("description"),
				},
			}

			if path := viper.GetString("customizations"); path != "" {
				custom, err := loadCustomizations(path)
				if err != nil {
					return err
				}
				req.Customizations = custom
			}

			components, err := componentFactory.Create(ctx, cfg, logger)
			if err != nil {
				return fmt.Errorf("failed to initialize components: %w", err)
			}
			defer components.Shutdown()

			result, err := components.Pipeline.GenerateStore(ctx, req)
			if err != nil {
				return fmt.Errorf("store generation failed: %w", err)
			}

			logger.Info("Store created",
				zap.String("store_id", result.StoreID),
				zap.String("url", result.URL),
				zap.String("status", string(result.Status)),
			)
			return writeResult(viper.GetString("output"), result)
		},
	}

	generateCmd.Flags().String("name", "", "store name (required)")
	generateCmd.Flags().String("owner", "", "owner identity for the store record (required)")
	generateCmd.Flags().String("template", "", "base template id (see the templates command)")
	generateCmd.Flags().String("subdomain", "", "subdomain override (defaults to a name-derived value)")
	generateCmd.Flags().String("description", "", "short store description")
	generateCmd.Flags().String("customizations", "", "path to a JSON file with template customizations")
	generateCmd.Flags().StringP("output", "o", "", "write the result JSON to this file instead of stdout")
	_ = generateCmd.MarkFlagRequired("name")
	_ = generateCmd.MarkFlagRequired("owner")
	return generateCmd
}

// loadCustomizations reads a customization set from a JSON file.
func loadCustomizations(path string) (*schemas.TemplateCustomizations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read customizations file: %w", err)
	}
	var custom schemas.TemplateCustomizations
	if err := json.Unmarshal(data, &custom); err != nil {
		return nil, fmt.Errorf("failed to parse customizations file: %w", err)
	}
	return &custom, nil
}
