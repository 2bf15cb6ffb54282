package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/johngriebel/griddy-go/auth"
	"github.com/johngriebel/griddy-go/config"
	"github.com/johngriebel/griddy-go/griddy"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	store   *auth.Store
	client  *griddy.Client

	appVersion   = "dev"
	appBuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "griddy",
	Short: "A CLI for the Griddy NFL data API",
	Long: `griddy is a CLI for browsing NFL games, stats, teams, and players
through the Griddy API. It handles bearer-token authentication and retries
transient failures with exponential backoff.`,
	PersistentPreRunE: initializeApp,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if client != nil {
			client.Close()
		}
	},
}

// SetVersion records build metadata injected by the linker.
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
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
}

// initializeApp initializes the configuration, logger, and API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	store = auth.NewStore(auth.Credentials{
		AccessToken:  cfg.API.AccessToken,
		RefreshToken: cfg.API.RefreshToken,
	})

	client, err = griddy.New(cfg.API.BaseURL, store,
		griddy.WithTimeout(cfg.API.Timeout),
		griddy.WithRetryConfig(cfg.RetryConfig()),
		griddy.WithUserAgent("griddy-cli/"+appVersion),
		griddy.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
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

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Color only when requested and stderr is a terminal
	useColor := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
