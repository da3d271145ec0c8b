package cmd

import (
	"fmt"
	"os"
	"time"

	"MoodFM/catalog"
	"MoodFM/config"
	"MoodFM/core/recommend"
	"MoodFM/logger"

	"github.com/spf13/cobra"
)

var (
	catalogPath string
	seed        int64
	logLevel    string

	// engine is built once per invocation by setup.
	engine *recommend.Engine
)

var rootCmd = &cobra.Command{
	Use:   "moodfm",
	Short: "MoodFM recommends tracks by your favorite artists and current mood.",
	Long: `MoodFM picks tracks from a built-in catalog that match your mood.
Run without a subcommand for an interactive session.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd.InOrStdin(), cmd.OutOrStdout(), engine)
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "JSON catalog file to use instead of the built-in one")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "seed for fallback sampling (0 seeds from the clock)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

// setup loads configuration, lets flags override it, and builds the engine.
func setup(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.CatalogPath = catalogPath
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		OutputPath: cfg.LogFile,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		return fmt.Errorf("failed to initialise logger: %w", err)
	}
	if level := logger.LogLevel(cfg.LogLevel); !level.Known() {
		logger.Warn("unknown log level, using warn", logger.String("level", cfg.LogLevel))
	}

	start := time.Now()
	cat, source, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		logger.Error("failed to load catalog", logger.String("source", source), logger.ErrorField(err))
		return err
	}
	logger.Info("catalog loaded",
		logger.String("source", source),
		logger.Int("artists", cat.Len()),
		logger.Duration("elapsed", time.Since(start)))

	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	logger.Debug("sampling seed", logger.Int64("seed", s))

	engine, err = recommend.NewEngine(cat, recommend.WithSeed(s))
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	return nil
}

func loadCatalog(path string) (*catalog.Catalog, string, error) {
	if path == "" {
		cat, err := catalog.Default()
		return cat, "embedded", err
	}
	cat, err := catalog.Load(path)
	return cat, path, err
}
