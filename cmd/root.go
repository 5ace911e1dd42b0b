package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/breezeops/breezectl/breeze"
	"github.com/breezeops/breezectl/config"
)

var (
	cfgFile      string
	cfg          *config.Config
	logger       zerolog.Logger
	breezeClient *breeze.Client

	// Command flags
	dryRun bool

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "breezectl",
	Short: "A CLI for your Breeze church management account",
	Long: `breezectl talks to the BreezeChMS API to list and manage people,
tags, events, attendance, contributions, funds and pledges from the
command line.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion sets the version information from build flags
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "validate and log requests without sending them")

	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and the Breeze client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override dry-run from command line if specified
	if cmd.Flags().Changed("dry-run") {
		cfg.Safety.DryRun = dryRun
	}

	// Create Breeze client
	breezeClient, err = breeze.NewClient(
		cfg.Breeze.URL,
		cfg.Breeze.APIKey,
		logger,
		breeze.WithDryRun(cfg.Safety.DryRun),
		breeze.WithUserAgent("breezectl/"+version),
	)
	if err != nil {
		return fmt.Errorf("failed to create Breeze client: %w", err)
	}

	if cfg.Safety.DryRun {
		logger.Info().Msg("Dry run enabled, no requests will be sent")
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only on a real terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to Breeze",
	Long:  `Test the connection to your Breeze account and display basic information.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to Breeze at %s...\n", cfg.Breeze.URL)

	ctx := context.Background()
	if err := breezeClient.TestConnection(ctx); err != nil {
		return err
	}
	fmt.Println("✓ Connection successful!")

	if breezeClient.DryRun() {
		fmt.Println("(dry run: no request was actually sent)")
		return nil
	}

	// Get some basic stats
	funds, err := breezeClient.ListFunds(ctx, false)
	if err != nil {
		return fmt.Errorf("failed to get funds: %w", err)
	}

	folders, err := breezeClient.ListTagFolders(ctx)
	if err != nil {
		return fmt.Errorf("failed to get tag folders: %w", err)
	}

	fmt.Printf("\nBreeze Statistics:\n")
	fmt.Printf("- Giving funds: %d\n", len(funds))
	fmt.Printf("- Tag folders: %d\n", len(folders))

	return nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// No config or client needed
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("breezectl %s (built %s)\n", version, buildTime)
	},
}
