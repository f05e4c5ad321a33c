package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/abhisek/lessonloop/internal/content"
	"github.com/abhisek/lessonloop/internal/pipeline"
	"github.com/abhisek/lessonloop/internal/ui/render"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the pipeline once without the TUI",
	Long: `Draft, review and (if needed) refine content for one grade and topic,
printing stage progress and the accepted result.

With --format json or yaml only the result document is written to stdout;
progress goes to stderr.`,
	Args: cobra.NoArgs,
	RunE: runGenerateCmd,
}

func init() {
	generateCmd.Flags().Int("grade", 4, "Grade level (1-12)")
	generateCmd.Flags().String("topic", pipeline.DefaultTopic, "Topic to teach")
	generateCmd.Flags().StringP("format", "o", formatText, "Output format: text, json or yaml")
	generateCmd.Flags().Bool("json", false, "Shorthand for --format json")
	generateCmd.Flags().Int("width", 80, "Wrap width for text output (0 disables)")
}

// generateOutput is the json/yaml result document.
type generateOutput struct {
	RunID   string                  `json:"run_id" yaml:"run_id"`
	Grade   int                     `json:"grade" yaml:"grade"`
	Topic   string                  `json:"topic" yaml:"topic"`
	Verdict content.ReviewVerdict   `json:"verdict" yaml:"verdict"`
	Refined bool                    `json:"refined" yaml:"refined"`
	Result  content.GeneratorResult `json:"result" yaml:"result"`
	Notices []string                `json:"notices" yaml:"notices"`
}

func runGenerateCmd(cmd *cobra.Command, args []string) error {
	grade, _ := cmd.Flags().GetInt("grade")
	topic, _ := cmd.Flags().GetString("topic")
	format, _ := cmd.Flags().GetString("format")
	asJSON, _ := cmd.Flags().GetBool("json")
	width, _ := cmd.Flags().GetInt("width")

	if asJSON {
		format = formatJSON
	}
	switch format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	in := pipeline.Input{Grade: grade, Topic: topic}
	if err := in.Validate(); err != nil {
		return err
	}

	d, err := buildDeps(cmd, true)
	if err != nil {
		return err
	}
	defer d.logger.Sync()

	return generate(cmd.Context(), d.orch, in, generateOptions{
		Format: format,
		Width:  width,
		Out:    cmd.OutOrStdout(),
		Status: cmd.ErrOrStderr(),
	})
}

type generateOptions struct {
	Format string // formatText when empty
	Width  int
	// Out receives the result; Status receives progress for document formats.
	Out    io.Writer
	Status io.Writer
}

func generate(ctx context.Context, orch *pipeline.Orchestrator, in pipeline.Input, opts generateOptions) error {
	text := opts.Format == "" || opts.Format == formatText
	progress := opts.Out
	if !text {
		progress = opts.Status
	}
	in.Observer = func(p pipeline.Progress) {
		fmt.Fprintln(progress, render.StageLabel(p))
	}

	run, err := orch.Run(ctx, in)
	if err != nil {
		return err
	}

	if text {
		fmt.Fprintln(opts.Out)
		fmt.Fprint(opts.Out, render.Run(run, opts.Width))
		return nil
	}

	out := generateOutput{
		RunID:   run.ID,
		Grade:   run.Grade,
		Topic:   run.Topic,
		Verdict: run.Verdict,
		Refined: run.WasRefined(),
		Result:  run.Final,
		Notices: make([]string, 0, len(run.Notices)),
	}
	for _, n := range run.Notices {
		out.Notices = append(out.Notices, n.Message())
	}

	if opts.Format == formatYAML {
		enc := yaml.NewEncoder(opts.Out)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(opts.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
