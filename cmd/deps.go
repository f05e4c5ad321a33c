package cmd

import (
	"fmt"

	"github.com/abhisek/lessonloop/internal/agents"
	"github.com/abhisek/lessonloop/internal/config"
	"github.com/abhisek/lessonloop/internal/llm"
	"github.com/abhisek/lessonloop/internal/logging"
	"github.com/abhisek/lessonloop/internal/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// deps are the process-wide dependencies shared by every command.
type deps struct {
	cfg    config.Config
	logger *zap.Logger
	client *agents.Client
	orch   *pipeline.Orchestrator
}

// buildDeps loads configuration, opens the logger and wires the pipeline.
// console adds a stderr log core; the TUI passes false.
func buildDeps(cmd *cobra.Command, console bool) (*deps, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if p, _ := cmd.Flags().GetString("log-file"); p != "" {
		cfg.LogFile = p
	}
	level := cfg.LogLevel
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = "debug"
	}
	opts := logging.Options{File: cfg.LogFile, Level: level}
	if console {
		opts.Console = true
		// The console stays quiet unless asked; the file still gets level.
		opts.ConsoleLevel = "warn"
		if level == "debug" {
			opts.ConsoleLevel = level
		}
	}
	logger, err := logging.New(opts)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	provider, err := llm.NewProvider(cmd.Context(), cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("init model provider: %w", err)
	}

	client := agents.NewClient(provider, cfg.Agents, logger)
	orch := pipeline.New(agents.NewGenerator(client), agents.NewReviewer(client), logger)

	logger.Info("lessonloop starting",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", client.ModelID()),
		zap.String("env_file", cfg.EnvFile),
	)

	return &deps{cfg: cfg, logger: logger, client: client, orch: orch}, nil
}
