package main

import (
	"context"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/rmcsoft/neko"
	"github.com/rmcsoft/neko/audio/speaker"
	"github.com/rmcsoft/neko/display/ebitendisplay"
	"github.com/rmcsoft/neko/display/termdisplay"
)

const (
	backendWindow = "window"
	backendTerm   = "term"
)

type options struct {
	Backend  string  `short:"b" long:"backend" choice:"window" choice:"term" default:"window" description:"Display backend"`
	AssetDir string  `short:"i" long:"asset-dir" description:"Sprite directory with <sprite>.<ext> files"`
	AssetExt string  `long:"asset-ext" default:"gif" description:"Sprite file extension"`
	Config   string  `short:"c" long:"config" description:"YAML options file"`
	DT       int     `long:"dt" description:"Tick duration in milliseconds (default 300)"`
	Dmax     float64 `long:"dmax" description:"Proximity radius (default 15)"`
	Step     float64 `long:"step" description:"Distance covered per tick while running (default 15)"`
	FourWay  bool    `long:"four-way" description:"Use n, e, s and w run sprites only"`
	Idle     string  `long:"still-transition" choice:"yawn" choice:"itch" choice:"scratch" description:"Idle bout started by the still state (default yawn)"`
	Sound    bool    `short:"s" long:"sound" description:"Play sound cues"`
	Width    int     `long:"width" default:"640" description:"Window width"`
	Height   int     `long:"height" default:"480" description:"Window height"`
	LogFile  string  `long:"log-file" description:"Write the log to a file"`
	Verbose  bool    `short:"v" long:"verbose" description:"Debug logging"`
}

func parseArgs(args []string) (options, *flags.Parser, error) {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		return opts, parser, err
	}

	if opts.AssetDir != "" {
		dir, err := filepath.Abs(opts.AssetDir)
		if err != nil {
			return opts, parser, err
		}
		opts.AssetDir = dir
	}

	return opts, parser, nil
}

func isSet(parser *flags.Parser, longName string) bool {
	option := parser.FindOptionByLongName(longName)
	return option != nil && option.IsSet()
}

// characterOptions merges the defaults, the options file and the flags, in that order
func characterOptions(opts options, parser *flags.Parser) (neko.Options, error) {
	result := neko.DefaultOptions

	if opts.Config != "" {
		var err error
		if result, err = neko.LoadOptions(opts.Config, result); err != nil {
			return result, err
		}
	}

	if isSet(parser, "dt") {
		result.Tick = time.Duration(opts.DT) * time.Millisecond
	}
	if isSet(parser, "dmax") {
		result.Dmax = opts.Dmax
	}
	if isSet(parser, "step") {
		result.Step = opts.Step
	}
	if opts.FourWay {
		result.FourWay = true
	}
	if isSet(parser, "still-transition") {
		result.StillTransition = neko.StateName(opts.Idle)
	}

	return result, result.Validate()
}

func setupLogging(opts options) (io.Closer, error) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if opts.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		logrus.SetOutput(f)
		return f, nil
	}

	// The terminal backend owns the screen
	if opts.Backend == backendTerm {
		logrus.SetOutput(ioutil.Discard)
	}
	return ioutil.NopCloser(nil), nil
}

func makeSoundPlayer(opts options) *speaker.Player {
	if !opts.Sound {
		return nil
	}

	player := speaker.NewPlayer()
	if err := player.Init(); err != nil {
		// Non-fatal, the character can run without sound
		logrus.Warn("Audio initialization failed: ", err)
		return nil
	}
	return player
}

func runWindow(opts options, nekoOpts neko.Options, player *speaker.Player) error {
	window, err := ebitendisplay.New(ebitendisplay.Config{
		Width:    opts.Width,
		Height:   opts.Height,
		AssetDir: opts.AssetDir,
		AssetExt: opts.AssetExt,
	})
	if err != nil {
		return err
	}
	if err := window.Watch(); err != nil {
		logrus.Warn("Sprites will not be reloaded: ", err)
	}

	character, err := neko.NewCharacter(nekoOpts, nil, window, nil)
	if err != nil {
		return err
	}
	if player != nil {
		character.SetSoundPlayer(player)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		err := character.Run(ctx, window.PointerSource())
		window.Close()
		done <- err
	}()

	err = window.Run("neko")
	cancel()
	if runErr := <-done; err == nil {
		err = runErr
	}
	return err
}

func runTerm(nekoOpts neko.Options, player *speaker.Player) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}

	term, err := termdisplay.New(screen)
	if err != nil {
		return err
	}
	defer term.Fini()

	character, err := neko.NewCharacter(nekoOpts, nil, term, nil)
	if err != nil {
		return err
	}
	if player != nil {
		character.SetSoundPlayer(player)
	}

	return character.Run(context.Background(), term)
}

func main() {
	opts, parser, err := parseArgs(os.Args[1:])
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	logFile, err := setupLogging(opts)
	if err != nil {
		logrus.Fatal(err)
	}
	defer logFile.Close()

	nekoOpts, err := characterOptions(opts, parser)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.Debugf("Options: %+v", nekoOpts)

	player := makeSoundPlayer(opts)
	if player != nil {
		defer player.Close()
	}

	switch opts.Backend {
	case backendTerm:
		err = runTerm(nekoOpts, player)
	default:
		err = runWindow(opts, nekoOpts, player)
	}
	if err != nil {
		logrus.Fatal(err)
	}
}
