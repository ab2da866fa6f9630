package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"

	app "github.com/rocketscienceinc/tictactoe-console/internal"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

var version = "dev"

var CLI struct {
	Config   string           `short:"c" default:"config.yml" help:"Path to YAML configuration file"`
	LogLevel string           `short:"l" help:"Log level (overrides config)"`
	Version  kong.VersionFlag `short:"v" help:"Print version and exit"`
}

// main - is the entry point of the application. It initializes the configuration, logger, and runs the game session.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	kong.Parse(&CLI,
		kong.Name("tictactoe"),
		kong.Description("Tic-tac-toe in the terminal for two players or against the computer."),
		kong.Vars{"version": version},
	)

	conf := initConfig()

	logFile, closeLog := openLogFile(conf)
	defer closeLog()

	logger := initLogger(conf, logFile)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		logger.Info("received signal, quitting", "signal", sig.String())
		closeLog()
		fmt.Fprintln(os.Stdout, "\nBye!")
		os.Exit(0)
	}()

	if err := app.RunApp(context.Background(), logger, conf, os.Stdin, os.Stdout); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	conf := config.MustLoad(CLI.Config)

	if CLI.LogLevel != "" {
		conf.LogLevel = CLI.LogLevel
		if err := conf.Validate(); err != nil {
			panic(err)
		}
	}

	return conf
}

// openLogFile keeps the log away from the game screen. "-" sends it to stderr.
func openLogFile(conf *config.Config) (io.Writer, func()) {
	if conf.LogFile == "-" {
		return os.Stderr, func() {}
	}

	file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		panic(fmt.Errorf("failed to open log file: %w", err))
	}

	return file, func() {
		_ = file.Close()
	}
}

// initialize logger.
func initLogger(conf *config.Config, out io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	if conf.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(charmlog.NewWithOptions(out, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "tictactoe",
		Level:           charmlog.Level(level),
	}))
}
