package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/bandwise/internal/config"
	"github.com/abhisek/bandwise/internal/logging"
	"github.com/abhisek/bandwise/internal/store"
)

// cfg is filled in by the root command before any subcommand runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "bandwise",
	Short: "IELTS preparation assistant",
	Long: "Bandwise serves IELTS practice questions, grades answers, projects band scores\n" +
		"and builds study plans, with Arabic translation of the material.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		if err := config.LoadEnvFiles(envFile); err != nil {
			return err
		}
		c, err := config.FromEnv()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if v, _ := cmd.Flags().GetString("log-level"); v != "" {
			lvl, err := logging.ParseLevel(v)
			if err != nil {
				return err
			}
			c.LogLevel = lvl
		}
		cfg = c
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BANDWISE_DB env var)")
	rootCmd.PersistentFlags().String("env-file", ".env", "Load environment variables from this file if it exists")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides BANDWISE_LOG_LEVEL)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(syllabusCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then BANDWISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore opens the event database for cmd.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func stderrLogger() *slog.Logger {
	return logging.New(os.Stderr, cfg.LogLevel)
}
