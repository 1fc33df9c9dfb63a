package neko

import (
	"errors"
	"fmt"
	"io/ioutil"
	"time"

	"gopkg.in/yaml.v3"
)

// Options are the character tuning constants
type Options struct {
	// Tick is the time between state re-evaluations
	Tick time.Duration
	// Dmax is the proximity radius: closer than that the character stops running
	Dmax float64
	// Step is the distance covered per tick while running
	Step float64
	// FourWay restricts run sprites to n, e, s and w
	FourWay bool

	// StillTransition is the idle bout the still state starts after a while:
	// yawn, itch or scratch. Empty means yawn.
	StillTransition StateName

	// ItchTicks is the number of ticks per itch frame, ItchCount the number of frames
	ItchTicks, ItchCount int
	// ScratchTicks is the number of ticks per scratch frame, ScratchCount the number of frames
	ScratchTicks, ScratchCount int
	// ScratchDisableAlert keeps the character scratching when the pointer goes away
	ScratchDisableAlert bool
}

// DefaultOptions are the stock tuning constants
var DefaultOptions = Options{
	Tick: 300 * time.Millisecond,
	Dmax: 15,
	Step: 15,

	StillTransition: StateYawn,

	ItchTicks: 1,
	ItchCount: 6,

	ScratchTicks:        2,
	ScratchCount:        4,
	ScratchDisableAlert: true,
}

// Validate checks the options
func (o Options) Validate() error {
	if o.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %v", o.Tick)
	}
	if o.Step <= 0 {
		return fmt.Errorf("step must be positive, got %v", o.Step)
	}
	if o.Dmax < 0 {
		return errors.New("dmax must not be negative")
	}
	switch o.StillTransition {
	case "", StateYawn, StateItch, StateScratch:
	default:
		return fmt.Errorf("still transition must be yawn, itch or scratch, got '%s'", o.StillTransition)
	}
	if o.ItchTicks < 0 || o.ItchCount < 0 || o.ScratchTicks < 0 || o.ScratchCount < 0 {
		return errors.New("itch and scratch ticks must not be negative")
	}
	return nil
}

// IdleState returns the state the still state hands over to when idle
func (o Options) IdleState() StateName {
	if o.StillTransition == "" {
		return StateYawn
	}
	return o.StillTransition
}

// Directions returns the direction table used for run sprites
func (o Options) Directions() DirectionTable {
	if o.FourWay {
		return MajorDirections
	}
	return DefaultDirections
}

type optionsFile struct {
	DT      *int     `yaml:"dt"`
	Dmax    *float64 `yaml:"dmax"`
	Step    *float64 `yaml:"step"`
	FourWay *bool    `yaml:"four_way"`

	StillTransition     *string `yaml:"still_transition"`
	ItchTicks           *int    `yaml:"itch_ticks"`
	ItchCount           *int    `yaml:"itch_count"`
	ScratchTicks        *int    `yaml:"scratch_ticks"`
	ScratchCount        *int    `yaml:"scratch_count"`
	ScratchDisableAlert *bool   `yaml:"scratch_disable_alert"`
}

// ParseOptions applies the YAML document data on top of base.
// dt is given in milliseconds. Keys absent from the document keep base values.
func ParseOptions(data []byte, base Options) (Options, error) {
	var f optionsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return base, fmt.Errorf("failed to parse options: %w", err)
	}

	opts := base
	if f.DT != nil {
		opts.Tick = time.Duration(*f.DT) * time.Millisecond
	}
	if f.Dmax != nil {
		opts.Dmax = *f.Dmax
	}
	if f.Step != nil {
		opts.Step = *f.Step
	}
	if f.FourWay != nil {
		opts.FourWay = *f.FourWay
	}
	if f.StillTransition != nil {
		opts.StillTransition = StateName(*f.StillTransition)
	}
	if f.ItchTicks != nil {
		opts.ItchTicks = *f.ItchTicks
	}
	if f.ItchCount != nil {
		opts.ItchCount = *f.ItchCount
	}
	if f.ScratchTicks != nil {
		opts.ScratchTicks = *f.ScratchTicks
	}
	if f.ScratchCount != nil {
		opts.ScratchCount = *f.ScratchCount
	}
	if f.ScratchDisableAlert != nil {
		opts.ScratchDisableAlert = *f.ScratchDisableAlert
	}

	if err := opts.Validate(); err != nil {
		return base, err
	}
	return opts, nil
}

// LoadOptions reads a YAML options file and applies it on top of base
func LoadOptions(path string, base Options) (Options, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseOptions(data, base)
}
