// Command toybox is an interactive terminal client that turns an image
// and/or a text prompt into a stylized collectible toy-box render via the
// Gemini API.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mhpenta/toybox"
	"github.com/mhpenta/toybox/config"
	"github.com/mhpenta/toybox/provider/gemini"
	"github.com/mhpenta/toybox/tui"
)

var (
	flagConfig     string
	flagOutputDir  string
	flagImageModel string
	flagTextModel  string
	flagDebug      bool
)

var rootCmd = &cobra.Command{
	Use:   "toybox",
	Short: "Generate collectible toy-box style images with Gemini",
	Long: `toybox is an interactive client for a stylized image generator.
Attach a reference image and/or type a prompt, optionally let the model
rewrite the prompt first, and render isometric toy-box scenes. Results are
kept in a bounded session history and can be saved to disk.

The GEMINI_API_KEY environment variable must be set.`,
	SilenceUsage: true,
	RunE:         run,
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the models the Gemini provider calls",
	Run: func(cmd *cobra.Command, args []string) {
		for _, info := range gemini.Models() {
			fmt.Printf("%-28s %s\n", info.Name, info.Purpose)
			for _, ratio := range info.SupportedAspectRatios {
				fmt.Printf("%-28s   ratio %s\n", "", ratio)
			}
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to a YAML config file")
	rootCmd.Flags().StringVarP(&flagOutputDir, "output-dir", "o", "", "directory saved images are written to")
	rootCmd.Flags().StringVar(&flagImageModel, "image-model", "", "Gemini model used for image generation")
	rootCmd.Flags().StringVar(&flagTextModel, "text-model", "", "Gemini model used for enhancement and brainstorming")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "write debug logs to toybox.log in the output directory")
	rootCmd.AddCommand(modelsCmd)
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if flagConfig != "" {
		if err := cfg.LoadFile(flagConfig); err != nil {
			return err
		}
	}
	if flagOutputDir != "" {
		cfg.OutputDir = flagOutputDir
	}
	if flagImageModel != "" {
		cfg.ImageModel = flagImageModel
	}
	if flagTextModel != "" {
		cfg.TextModel = flagTextModel
	}
	if flagDebug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	client, err := gemini.New(cmd.Context(), cfg.APIKey,
		gemini.WithModels(cfg.ImageModel, cfg.TextModel),
		gemini.WithEnhanceCacheTTL(cfg.EnhanceCacheTTL),
		gemini.WithLogger(logger),
	)
	if err != nil {
		if errors.Is(err, toybox.ErrMissingAPIKey) {
			return fmt.Errorf("GEMINI_API_KEY environment variable is required")
		}
		return err
	}

	session := toybox.NewSession(client,
		toybox.WithLogger(logger),
		toybox.WithHistoryCapacity(cfg.HistorySize),
	)
	exporter := toybox.NewFileExporter(cfg.OutputDir)

	program := tea.NewProgram(tui.New(session, exporter), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// newLogger builds the application logger. The TUI owns the terminal, so
// debug logs go to a file in the output directory; without --debug logging
// is discarded.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	if !cfg.Debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(cfg.OutputDir, "toybox.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
