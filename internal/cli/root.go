// Package cli implements the yearbook CLI commands.
package cli

import (
	"fmt"
	"os"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/spf13/cobra"

	"github.com/hearthside/yearbook"
	"github.com/hearthside/yearbook/internal/config"
	"github.com/hearthside/yearbook/logging"
	"github.com/hearthside/yearbook/memory"
	"github.com/hearthside/yearbook/model"
	anthropicmodel "github.com/hearthside/yearbook/model/anthropic"
	openaimodel "github.com/hearthside/yearbook/model/openai"
)

var (
	fileFlag     string
	providerFlag string
	modelFlag    string
	logLevelFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "yearbook",
	Short: "Record family memories and generate an AI year in review",
	Long: "yearbook records short family memories (a story, the author, optionally a photo)\n" +
		"across a fixed set of categories, keeps them in a local JSON slot, and turns the\n" +
		"collection into an AI-written year in review with keyword themes and a\n" +
		"conceptual soundtrack.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "Memory slot path (default: $YEARBOOK_DATA_FILE or ~/.yearbook/family_memories_2025.json)")
	RootCmd.PersistentFlags().StringVar(&providerFlag, "provider", "", "AI provider: openai, anthropic or mock (default: $YEARBOOK_PROVIDER or openai)")
	RootCmd.PersistentFlags().StringVar(&modelFlag, "model", "", "Model name override")
	RootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")
}

// loadConfig resolves file/env configuration and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if fileFlag != "" {
		cfg.DataFile = fileFlag
	}
	if providerFlag != "" {
		cfg.Provider = providerFlag
	}
	if modelFlag != "" {
		cfg.Model = modelFlag
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}
	return cfg, cfg.Validate()
}

// newApp builds the façade from the resolved configuration.
func newApp() (*yearbook.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.New(&logging.Config{Level: level, Format: cfg.LogFormat, Output: os.Stderr})

	backend, err := newModel(cfg)
	if err != nil {
		return nil, err
	}

	app := yearbook.New(func(o *yearbook.Options) {
		o.Slot = memory.NewFileSlot(cfg.DataFile)
		o.Model = backend
		o.Logger = logger
		o.MinMemories = cfg.MinMemories
	})
	return app, nil
}

func newModel(cfg *config.Config) (model.Model, error) {
	switch cfg.Provider {
	case "openai":
		return openaimodel.NewModel(func(o *openaimodel.Options) {
			if cfg.Model != "" {
				o.Model = cfg.Model
			}
		}), nil
	case "anthropic":
		return anthropicmodel.NewModel(func(o *anthropicmodel.Options) {
			if cfg.Model != "" {
				o.Model = anthropicsdk.Model(cfg.Model)
			}
		}), nil
	case "mock":
		return model.NewMockModel("mock", "mock"), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
