package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"skirmish/internal/combat"
	"skirmish/internal/config"
	"skirmish/internal/logger"
)

func main() {
	fs := pflag.NewFlagSet("skirmish", pflag.ExitOnError)
	config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])

	cfgFile, _ := fs.GetString("config")
	settings, err := config.LoadSettings(cfgFile, fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger.Init(settings.LogLevel, settings.LogFormat, os.Stderr)

	if err := run(settings); err != nil {
		logger.Log.WithError(err).Error("skirmish failed")
		os.Exit(1)
	}
}

func run(s *config.Settings) error {
	sc := config.DefaultScenario()
	if s.Scenario != "" {
		loaded, err := config.LoadScenario(s.Scenario)
		if err != nil {
			return err
		}
		sc = loaded
	}

	first, second, err := combat.BuildEncounter(sc)
	if err != nil {
		return err
	}

	maxRounds := sc.MaxRounds
	if s.MaxRounds > 0 {
		maxRounds = s.MaxRounds
	}
	res, err := combat.RunEncounter(first, second, combat.EncounterOptions{
		MaxRounds: maxRounds,
		Record:    s.Events,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.Out, combat.MarshalPretty(res), 0644); err != nil {
		return err
	}
	outcome := "draw"
	if !res.Draw {
		outcome = res.Winner + " wins"
	}
	fmt.Printf("Scenario %q finished after %d rounds: %s -> %s\n", sc.Name, res.Rounds, outcome, s.Out)
	return nil
}
