package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-term/internal/app"
	"github.com/vancomm/minesweeper-term/internal/config"
	"github.com/vancomm/minesweeper-term/internal/game"
	"github.com/vancomm/minesweeper-term/internal/mines"
	"github.com/vancomm/minesweeper-term/internal/records"
	"github.com/vancomm/minesweeper-term/internal/sound"
)

const (
	exitFailure     = 1
	exitConfigError = 3
)

var (
	log = logrus.New()

	configPath string
)

func init() {
	const usage = "config file path (built-in defaults if empty)"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "usage: %s [-c config] [play|guide|records] [flags] [preset]\n", os.Args[0])
		flag.PrintDefaults()
	}
}

func setupLogging(cfg *config.Config) {
	logLevel := logrus.InfoLevel
	if cfg.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)

	// the terminal belongs to the game; log lines only go to the file
	log.SetOutput(io.Discard)
	mines.Log = log
	game.Log = log

	if cfg.Log.File == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to open log file %s: %s\n", cfg.Log.File, err)
		return
	}
	log.AddHook(hook)
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitConfigError
	}

	setupLogging(cfg)

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	command, args := "play", flag.Args()
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		switch args[0] {
		case "play", "guide", "records":
			command, args = args[0], args[1:]
		}
	}

	switch command {
	case "guide":
		printGuide(os.Stdout, cfg)
		return 0
	case "records":
		return listRecords(ctx, cfg, args)
	default:
		return play(ctx, cfg, args)
	}
}

func play(ctx context.Context, cfg *config.Config, args []string) int {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	fs.Int("width", 0, "field width, 0 fits the terminal")
	fs.Int("height", 0, "field height, 0 fits the terminal")
	fs.Int("mines", 0, "number of mines, 0 means 15% of the cells")
	fs.Int("density", 0, "percentage of cells with mines (1-99)")
	fs.Bool("question-mark", cfg.UseQuestionMark, "cycle flags through a question mark")
	fs.Bool("no-separator", false, "do not draw separators between cells")
	fs.Bool("no-mine-count", false, "do not show the remaining mine count")
	fs.Bool("sound", cfg.Sound, "play sounds")
	fs.Bool("debug", false, "enable debug commands")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return exitConfigError
	}

	src := map[string][]string{}
	fs.Visit(func(f *flag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		src[key] = []string{f.Value.String()}
	})
	if fs.NArg() > 0 {
		src["preset"] = []string{fs.Arg(0)}
	}
	opts, err := config.DecodePlayOptions(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid options:", err)
		return exitConfigError
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "unable to create screen:", err)
		return exitFailure
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "unable to initialize screen:", err)
		return exitFailure
	}

	width, height := screen.Size()
	settings, err := cfg.Resolve(opts, width, height)
	if err != nil {
		screen.Fini()
		fmt.Fprintln(os.Stderr, err)
		return exitConfigError
	}
	log.WithFields(logrus.Fields{
		"params":    settings.Params,
		"separator": settings.ShowSeparator,
		"mineCount": settings.ShowMineCount,
		"sound":     settings.Sound,
		"debug":     settings.Debug,
	}).Debug("play settings")

	store := openStore(ctx, cfg)
	defer store.Close()

	player := sound.Open(settings.Sound, log)
	defer player.Close()

	summary, err := app.New(log, cfg, settings, screen, store, player).Start(ctx)
	screen.Fini()
	if err != nil {
		log.WithError(err).Error("game stopped")
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}

	log.WithFields(logrus.Fields{
		"result":  summary.Result,
		"elapsed": summary.ElapsedSeconds(),
	}).Info("exiting")
	return summary.Result.ExitCode()
}

func openStore(ctx context.Context, cfg *config.Config) records.Store {
	if !cfg.Records.Enabled {
		return records.Nop{}
	}
	url, err := config.DbURL(cfg.Records.URL)
	if err != nil {
		log.WithError(err).Warn("records are disabled")
		return records.Nop{}
	}
	store, err := records.Open(ctx, url, cfg.Records.Player)
	if err != nil {
		log.WithError(err).Error("unable to open records")
		return records.Nop{}
	}
	return store
}
