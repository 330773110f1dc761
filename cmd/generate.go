package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"slidecraft/internal/app"
	"slidecraft/internal/console"
	"slidecraft/internal/outline"
	"slidecraft/pkg/config"
)

var plain bool

func init() {
	rootCmd.Flags().BoolVar(&plain, "plain", false, "Use plain line prompts even on a terminal")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := app.PrepareConfig(ctx, cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	result, err := app.BuildService(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = result.Close() }()

	prompter, interactive := newPrompter()
	pipeline := app.NewPipeline(result.Service, prompter)
	if interactive {
		pipeline.WithStepRunner(spinnerStep)
	}

	saved, err := pipeline.Run(ctx)
	if err != nil {
		slog.Error("Presentation failed", "error", err)
		return err
	}

	slog.Info("Presentation complete", "path", saved.Path, "slides", saved.Slides, "remote", saved.RemoteURL)
	return nil
}

func newPrompter() (outline.Prompter, bool) {
	if !plain && isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()) {
		return console.NewFormPrompter(os.Stdout), true
	}
	return console.NewLinePrompter(os.Stdin, os.Stdout), false
}

func spinnerStep(title string, fn func() error) error {
	var err error
	if spinErr := spinner.New().
		Title(title).
		Action(func() { err = fn() }).
		Run(); spinErr != nil {
		return spinErr
	}
	return err
}
