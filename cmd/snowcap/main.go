package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/genricoloni/snowcap/internal/config"
	"github.com/genricoloni/snowcap/internal/domain"
	"github.com/genricoloni/snowcap/internal/engine"
	"github.com/genricoloni/snowcap/internal/imagefile"
	"github.com/genricoloni/snowcap/internal/platform"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

// verboseLogging switches the logger to the development configuration
type verboseLogging bool

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:           "snowcap",
	Short:         "Multi-monitor screen capture",
	Long:          `snowcap captures one monitor, every monitor, or any region of the virtual desktop into a single image.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(captureCmd)
	rootCmd.AddCommand(monitorsCmd)
	rootCmd.AddCommand(pointerCmd)
	rootCmd.AddCommand(permissionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// AppOptions builds the application graph
func AppOptions(cfgFile string, verbose bool) fx.Option {
	return fx.Options(
		// Logger configuration
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),

		fx.Supply(
			config.FilePath(cfgFile),
			verboseLogging(verbose),
		),

		// Provide dependencies
		fx.Provide(
			newLogger,
			fx.Annotate(config.NewAppConfig, fx.As(new(domain.Config))),
			imagefile.NewWriter,
			engine.NewEngine,
		),

		platform.Module,
	)
}

// newLogger creates a new zap logger instance.
// Only warnings reach stderr unless verbose logging is on.
func newLogger(v verboseLogging) (*zap.Logger, error) {
	if v {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	return cfg.Build()
}

// withApp starts the application graph, runs fn and stops the graph again
func withApp(fn func(ctx context.Context, eng *engine.Engine, cfg domain.Config) error) error {
	var (
		eng *engine.Engine
		cfg domain.Config
	)

	app := fx.New(
		AppOptions(cfgFile, verbose),
		fx.Populate(&eng, &cfg),
	)

	// Handle interrupts while a capture is running
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}

	runErr := fn(ctx, eng, cfg)

	if err := app.Stop(context.Background()); err != nil && runErr == nil {
		return fmt.Errorf("failed to stop: %w", err)
	}
	return runErr
}
