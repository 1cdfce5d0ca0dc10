// Package wizard runs the interactive form behind `scicalc init`.
package wizard

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/germanamz/scicalc/pkg/config"
)

// answers is the raw form state. Numbers are collected as text.
type answers struct {
	Theme          string
	ShowScientific bool
	DisplayWidth   string
	Addr           string
}

// Run prompts for the main settings, starting from base.
func Run(base config.Config) (config.Config, error) {
	a := fromConfig(base)

	if err := form(&a).Run(); err != nil {
		return config.Config{}, err
	}

	return a.apply(base)
}

func form(a *answers) *huh.Form {
	themes := make([]huh.Option[string], 0, len(config.Themes))
	for _, t := range config.Themes {
		themes = append(themes, huh.NewOption(t, t))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themes...).
				Value(&a.Theme),
			huh.NewConfirm().
				Title("Show scientific keys?").
				Value(&a.ShowScientific),
		),
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Display width (%d-%d)", config.MinDisplayWidth, config.MaxDisplayWidth)).
				Value(&a.DisplayWidth).
				Validate(validateWidth),
			huh.NewInput().
				Title("Keypad server address").
				Value(&a.Addr),
		),
	)
}

func fromConfig(c config.Config) answers {
	return answers{
		Theme:          c.Theme,
		ShowScientific: c.ShowScientific,
		DisplayWidth:   strconv.Itoa(c.DisplayWidth),
		Addr:           c.Server.Addr,
	}
}

func (a answers) apply(base config.Config) (config.Config, error) {
	w, err := strconv.Atoi(a.DisplayWidth)
	if err != nil {
		return config.Config{}, fmt.Errorf("wizard: display width: %w", err)
	}

	cfg := base
	cfg.Theme = a.Theme
	cfg.ShowScientific = a.ShowScientific
	cfg.DisplayWidth = w
	cfg.Server.Addr = a.Addr

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func validateWidth(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("must be a number")
	}
	if n < config.MinDisplayWidth || n > config.MaxDisplayWidth {
		return fmt.Errorf("must be between %d and %d", config.MinDisplayWidth, config.MaxDisplayWidth)
	}
	return nil
}
