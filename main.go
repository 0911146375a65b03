package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	eb "github.com/hajimehoshi/ebiten/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"
	"github.com/sirupsen/logrus"

	"sweeper/board"
	"sweeper/config"
	"sweeper/stage"
)

var log = logrus.New()

var (
	FlagConfig     string
	FlagDifficulty string
	FlagSeed       string
	FlagPProf      bool
	FlagDumpConfig bool
)

func init() {
	flag.StringVar(&FlagConfig, "config", "", "path to a YAML config file")
	flag.StringVar(&FlagDifficulty, "difficulty", "", "beginner, intermediate or expert, overrides the config")
	flag.StringVar(&FlagSeed, "seed", "", "hex seed of the first game, overrides the config")
	flag.BoolVar(&FlagPProf, "pprof", false, "enable pprof")
	flag.BoolVar(&FlagDumpConfig, "dump-config", false, "print the effective config and exit")
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if FlagConfig != "" {
		var err error
		if cfg, err = config.Load(FlagConfig); err != nil {
			return cfg, err
		}
	}

	if FlagDifficulty != "" {
		cfg.Difficulty = FlagDifficulty
	}
	if FlagSeed != "" {
		cfg.Seed = FlagSeed
	}

	return cfg, cfg.Validate()
}

func setupLogging(cfg config.Config) {
	level, err := cfg.Level()
	if err != nil {
		// validated on load
		level = logrus.InfoLevel
	}

	for _, l := range []*logrus.Logger{log, board.Log, stage.Log} {
		l.SetOutput(os.Stderr)
		l.SetLevel(level)
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	if FlagDumpConfig {
		data, err := cfg.Marshal()
		if err != nil {
			log.WithError(err).Fatal("unable to render config")
		}
		fmt.Print(string(data))
		return
	}

	setupLogging(cfg)

	if FlagPProf {
		go func() {
			log.Info("initializing pprof")
			log.Info(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	InitClipboardManager()

	app, err := NewApp(cfg)
	if err != nil {
		log.WithError(err).Fatal("unable to start game")
	}

	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(app.ScreenSize())
	eb.SetWindowTitle("Minesweeper")

	if err := eb.RunGame(app); err != nil {
		log.WithError(err).Fatal("game exited")
	}
}
