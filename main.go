package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v9"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dskvich/story-generator/pkg/cli/handlers"
	"github.com/dskvich/story-generator/pkg/codec"
	"github.com/dskvich/story-generator/pkg/database"
	"github.com/dskvich/story-generator/pkg/domain"
	"github.com/dskvich/story-generator/pkg/logger"
	"github.com/dskvich/story-generator/pkg/repository"
	"github.com/dskvich/story-generator/pkg/stats"
)

type Config struct {
	StoreFile   string `env:"STORY_STORE_FILE" envDefault:"valid-data.txt"`
	DatabaseURL string `env:"DATABASE_URL"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"warn"`
}

type promptStore interface {
	Save(ctx context.Context, prompt *domain.Prompt) error
	Each(ctx context.Context, sink codec.Sink) error
	Close() error
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runMain(args []string, stdout, stderr io.Writer) error {
	ctx, cancelFn := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancelFn()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parsing env config: %w", err)
	}

	// cobra falls back to os.Args on a nil slice.
	if args == nil {
		args = []string{}
	}

	rootCmd := newRootCmd(cfg, stdout, stderr)
	rootCmd.SetArgs(args)

	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd(cfg Config, stdout, stderr io.Writer) *cobra.Command {
	var (
		storeFile string
		verbose   bool
		format    string
	)

	rootCmd := &cobra.Command{
		Use:   "story-generator",
		Short: "Turn prompts into short stories and keep statistics about them",
		Long: `story-generator renders a JSON prompt into a one-sentence story about Anna,
stores every valid prompt in an append-only file (one JSON object per line),
and reports statistics over everything stored so far.

Example:
  story-generator generate '{"number": 3, "unit_of_measure": "mile", "place": "work", "adjective": "shiny", "noun": "coin"}'
  story-generator stats`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(stderr, cfg.LogLevel, verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New("a subcommand is required")
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().StringVarP(&storeFile, "file", "f", cfg.StoreFile, "path of the prompt store")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug details to stderr")

	generateCmd := &cobra.Command{
		Use:   "generate DATA",
		Short: "Generate and print a story from JSON input, and store the input if valid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cfg, storeFile, func(store promptStore) error {
				return handlers.Generate(store, stdout)(cmd.Context(), args)
			})
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Calculate and print statistics about valid inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reportFormat, err := stats.ParseFormat(format)
			if err != nil {
				return err
			}
			return withStore(cfg, storeFile, func(store promptStore) error {
				return handlers.Stats(store, stdout, reportFormat)(cmd.Context(), args)
			})
		},
	}
	statsCmd.Flags().StringVar(&format, "format", string(stats.FormatText), "report format: text, markdown or html")

	rootCmd.AddCommand(generateCmd, statsCmd)

	return rootCmd
}

func setupLogger(w io.Writer, levelName string, verbose bool) error {
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(logger.NewHandler(w, &logger.Options{Level: level})))
	return nil
}

// withStore opens the configured store, runs fn and closes the store again.
// PostgreSQL is used when DATABASE_URL is set, the store file otherwise.
func withStore(cfg Config, storeFile string, fn func(store promptStore) error) (err error) {
	var store promptStore

	if cfg.DatabaseURL != "" {
		db, err := database.NewDB(cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("initializing database: %w", err)
		}
		store = repository.NewPromptRepository(db)
	} else {
		store = repository.NewFilePromptRepository(storeFile)
	}

	defer func() {
		if closeErr := store.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing store: %w", closeErr)
		}
	}()

	return fn(store)
}
