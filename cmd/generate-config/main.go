package main

import (
	"flag"
	"os"

	"gopkg.in/yaml.v2"

	"tricktaker/internal/config"
	"tricktaker/pkg/game"
)

var schedule = flag.Bool("schedule", false, "print the default schedule instead of the config")

func main() {
	flag.Parse()

	if *schedule {
		data, err := game.MarshalSchedule(game.DefaultSchedule())
		if err != nil {
			panic(err)
		}

		if _, err := os.Stdout.Write(data); err != nil {
			panic(err)
		}

		return
	}

	if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
		panic(err)
	}
}
