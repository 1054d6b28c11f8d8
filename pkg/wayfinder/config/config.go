// Package config loads navigation manifests: TOML files that declare the
// screens of an application, their transition tables, navigator settings,
// and optionally a scripted sequence of navigation steps.
//
//	root = "home"
//
//	[navigator]
//	timeout = "2s"
//	animation = "150ms"
//
//	[[screen]]
//	id = "home"
//
//	  [[screen.transition]]
//	  target = "detail"
//	  direction = "show"
//	  primitive = "push"
//
//	[[screen]]
//	id = "detail"
//
//	  [[screen.transition]]
//	  target = "detail"
//	  direction = "hide"
//	  primitive = "pop"
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/constants"
)

// Manifest is the top-level configuration file.
type Manifest struct {
	Root      string          `toml:"root" validate:"required"`
	Navigator NavigatorConfig `toml:"navigator"`
	Logging   LoggingConfig   `toml:"logging"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Locale    LocaleConfig    `toml:"locale"`
	Screens   []ScreenConfig  `toml:"screen" validate:"required,min=1,dive"`
	Steps     []StepConfig    `toml:"step" validate:"dive"`
}

type NavigatorConfig struct {
	Timeout   time.Duration `toml:"timeout" validate:"gte=0s"`
	Animation time.Duration `toml:"animation" validate:"gte=0s"`
}

type LoggingConfig struct {
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Path  string `toml:"path"`
}

type MetricsConfig struct {
	Enabled   bool   `toml:"enabled"`
	Namespace string `toml:"namespace"`
}

type LocaleConfig struct {
	Language string   `toml:"language"`
	Files    []string `toml:"files"`
}

// ScreenConfig declares one screen kind. A screen with Tabs is a tab
// container that starts on InitialTab, or on the first tab when unset.
type ScreenConfig struct {
	ID          string             `toml:"id" validate:"required"`
	Tabs        []string           `toml:"tabs"`
	InitialTab  string             `toml:"initial_tab"`
	Transitions []TransitionConfig `toml:"transition" validate:"dive"`
}

// TransitionConfig is one row of a screen's transition table.
type TransitionConfig struct {
	Target    string `toml:"target" validate:"required"`
	Direction string `toml:"direction" validate:"required,oneof=show hide"`
	Primitive string `toml:"primitive" validate:"required,oneof=push pop present dismiss"`
	Dismiss   string `toml:"dismiss" validate:"omitempty,oneof=self presented"`
}

// StepConfig is one scripted navigation call.
type StepConfig struct {
	Op          string   `toml:"op" validate:"required,oneof=navigate show hide"`
	Route       []string `toml:"route"`
	Identifiers []string `toml:"identifiers"`
	Identifier  string   `toml:"identifier"`
	Animated    bool     `toml:"animated"`
	Atomic      bool     `toml:"atomic"`
}

var validate = validator.New()

// Load reads and validates a manifest file.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return Manifest{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return m, nil
}

// Parse decodes a manifest, applies defaults and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (Manifest, error) {
	var m Manifest
	md, err := toml.Decode(string(data), &m)
	if err != nil {
		return Manifest{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Manifest{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	m.applyDefaults()
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

func (m *Manifest) applyDefaults() {
	if m.Navigator.Timeout == 0 {
		m.Navigator.Timeout = constants.DefaultTransitionTimeout
	}
	if m.Metrics.Namespace == "" {
		m.Metrics.Namespace = constants.DefaultMetricsNamespace
	}
	if m.Locale.Language == "" {
		m.Locale.Language = "en"
	}
	for i := range m.Screens {
		s := &m.Screens[i]
		if len(s.Tabs) > 0 && s.InitialTab == "" {
			s.InitialTab = s.Tabs[0]
		}
	}
}

// Validate checks field constraints and that every identifier a manifest
// refers to is declared.
func (m Manifest) Validate() error {
	if err := validate.Struct(m); err != nil {
		return err
	}

	var errs []error
	declared := make(map[string]bool, len(m.Screens))
	for _, s := range m.Screens {
		if declared[s.ID] {
			errs = append(errs, fmt.Errorf("screen %q declared twice", s.ID))
		}
		declared[s.ID] = true
	}

	if !declared[m.Root] {
		errs = append(errs, fmt.Errorf("root %q is not a declared screen", m.Root))
	}

	for _, s := range m.Screens {
		for _, tab := range s.Tabs {
			if !declared[tab] {
				errs = append(errs, fmt.Errorf("screen %q: tab %q is not a declared screen", s.ID, tab))
			}
		}
		if s.InitialTab != "" && !contains(s.Tabs, s.InitialTab) {
			errs = append(errs, fmt.Errorf("screen %q: initial tab %q is not one of its tabs", s.ID, s.InitialTab))
		}
		for _, t := range s.Transitions {
			if err := t.check(declared); err != nil {
				errs = append(errs, fmt.Errorf("screen %q: %w", s.ID, err))
			}
		}
	}

	for i, step := range m.Steps {
		if step.Op == "navigate" && len(step.Route) == 0 {
			errs = append(errs, fmt.Errorf("step %d: navigate needs a route", i+1))
		}
		if step.Op == "show" && len(step.Identifiers) == 0 {
			errs = append(errs, fmt.Errorf("step %d: show needs identifiers", i+1))
		}
	}

	return errors.Join(errs...)
}

func (t TransitionConfig) check(declared map[string]bool) error {
	switch t.Primitive {
	case "push", "present":
		if t.Direction != "show" {
			return fmt.Errorf("%s of %q must be a show transition", t.Primitive, t.Target)
		}
		if !declared[t.Target] {
			return fmt.Errorf("%s target %q is not a declared screen", t.Primitive, t.Target)
		}
	case "pop", "dismiss":
		if t.Direction != "hide" {
			return fmt.Errorf("%s of %q must be a hide transition", t.Primitive, t.Target)
		}
	}
	return nil
}

// Screen returns the declaration for id.
func (m Manifest) Screen(id string) (ScreenConfig, bool) {
	for _, s := range m.Screens {
		if s.ID == id {
			return s, true
		}
	}
	return ScreenConfig{}, false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
