package commands

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"ai-diagnostics/config"
	app "ai-diagnostics/internal/application"
	"ai-diagnostics/internal/container"
	"ai-diagnostics/internal/domain/port"
	"ai-diagnostics/internal/infrastructure/catalog"
	"ai-diagnostics/internal/infrastructure/vision"
	"ai-diagnostics/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "ai-diagnostics",
	Short: "AI Diagnostics demo",
	Long:  `AI Diagnostics shows a canned list of findings for an uploaded scan. There is no model behind it: results come from fixed tables per body region.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig читает конфиг и создаёт логгер по LOG_LEVEL
func loadConfig() (*config.Config, *pterm.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.New(cfg.LogLevel), nil
}

// newContainer собирает сервисы приложения
func newContainer(cfg *config.Config, sessions port.SessionRepository) *container.Container {
	return container.New(
		sessions,
		catalog.NewStaticCatalog(),
		vision.NewDecoder(vision.DefaultMaxDisplayWidth, cfg.MaxImagePixels),
		app.NewSimulator(cfg.ProgressSteps, cfg.ProgressStepDelay),
	)
}
