// Command youngfin is the terminal gateway to the Young Finance API.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/finance-tracker/young-finance/internal/gateway/client"
)

const defaultAPIURL = "http://localhost:8080"

// app carries the per-invocation configuration shared by all commands.
type app struct {
	v       *viper.Viper
	cfgFile string
	api     *client.Client
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:               "youngfin",
		Short:             "Finanzas personales para jóvenes desde la terminal",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.init,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/youngfin/config.yaml)")
	flags.String("api-url", defaultAPIURL, "base URL of the Young Finance API")
	flags.Duration("timeout", 0, "per-request timeout (default 10s)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")

	_ = a.v.BindPFlag("api.url", flags.Lookup("api-url"))
	_ = a.v.BindPFlag("api.timeout", flags.Lookup("timeout"))
	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", flags.Lookup("log-format"))

	root.AddCommand(
		a.dashboardCmd(),
		a.summaryCmd(),
		a.trendsCmd(),
		a.transactionsCmd(),
		a.budgetsCmd(),
		a.goalsCmd(),
		a.categoriesCmd(),
		a.lessonsCmd(),
		a.importCmd(),
	)

	return root
}

func (a *app) init(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "youngfin"))
		}
		a.v.AddConfigPath(".")
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("YOUNGFIN")
	_ = a.v.BindEnv("api.url", "YOUNGFIN_API_URL")
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := setupLogging(cmd.ErrOrStderr(), a.v.GetString("logging.level"), a.v.GetString("logging.format")); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	var opts []client.Option
	if timeout := a.v.GetDuration("api.timeout"); timeout > 0 {
		opts = append(opts, client.WithTimeout(timeout))
	}

	api, err := client.New(a.v.GetString("api.url"), opts...)
	if err != nil {
		return err
	}
	a.api = api

	slog.Debug("using api", "url", a.v.GetString("api.url"))
	return nil
}

func setupLogging(w io.Writer, level, format string) error {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}

	opts := &slog.HandlerOptions{Level: slogLevel}

	var handler slog.Handler
	switch format {
	case "console":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return fmt.Errorf("invalid log format: %s", format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}
