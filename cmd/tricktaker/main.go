package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"tricktaker/internal/cli"
	"tricktaker/internal/config"
	"tricktaker/internal/util"
	"tricktaker/pkg/game"
)

// Version is the program version
var Version = "v0.0.0-dev"

var (
	players  = flag.String("players", "", "comma separated player names, missing names are generated")
	count    = flag.Int("n", 0, "number of players when fewer names are given")
	seed     = flag.Int64("seed", 0, "shuffle seed, 0 uses crypto/rand")
	schedule = flag.String("schedule", "", "path to a YAML schedule of rounds")
	version  = flag.Bool("version", false, "print the version and exit")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Println(Version)
		return
	}

	setupLogger()

	cfg := config.Instance()
	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	prompt := cli.NewPrompter(os.Stdin, os.Stdout, cli.NewStyles(interactive))

	names, err := playerNames(cfg, prompt)
	if err != nil {
		logrus.WithError(err).Fatal("could not get players")
	}

	options, err := gameOptions(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("could not load schedule")
	}

	g, err := game.NewGame(logrus.StandardLogger(), names, options)
	if err != nil {
		logrus.WithError(err).Fatal("could not start game")
	}

	logrus.WithFields(logrus.Fields{
		"game":        g.ID(),
		"players":     names,
		"interactive": interactive,
	}).Debug("starting game")

	if err := cli.NewSession(logrus.StandardLogger(), g, prompt).Run(); err != nil {
		if errors.Is(err, cli.ErrInputClosed) {
			fmt.Println()
			os.Exit(1)
		}

		logrus.WithError(err).Fatal("game ended with an error")
	}
}

// playerNames returns the names from the flags, then the config, then asks for them
func playerNames(cfg config.Config, prompt *cli.Prompter) ([]string, error) {
	names := util.SplitNames(*players)
	if len(names) == 0 {
		names = cfg.Players
	}

	if *count > 0 {
		if len(names) > *count {
			return nil, fmt.Errorf("%d names given for %d players", len(names), *count)
		}

		return util.FillNames(names, *count), nil
	}

	if len(names) > 0 {
		return names, nil
	}

	return prompt.AskPlayers(2, cfg.MaxPlayers)
}

func gameOptions(cfg config.Config) (game.Options, error) {
	options := game.DefaultOptions()
	options.MaxPlayers = cfg.MaxPlayers
	options.Seed = cfg.Seed
	if *seed != 0 {
		options.Seed = *seed
	}

	path := cfg.ScheduleFile
	if *schedule != "" {
		path = *schedule
	}

	if path != "" {
		s, err := game.LoadSchedule(path)
		if err != nil {
			return options, err
		}

		options.Schedule = s
	}

	return options, nil
}

func setupLogger() {
	cfg := config.Instance()
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if cfg.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	logrus.SetOutput(os.Stderr)
}
