package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/showdown/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `kong:"default='showdown.hcl',type='path',help='Config file (missing file uses defaults)'"`
	LogLevel string `kong:"help='Override log level (debug, info, warn, error)'"`
	NoColor  bool   `kong:"help='Disable colored output'"`
	Dump     bool   `kong:"help='Dump full score structs after output'"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Rank     RankCmd          `cmd:"" help:"Classify five-card hands"`
	Best     BestCmd          `cmd:"" help:"Select the strongest of several hands"`
	Selftest SelftestCmd      `cmd:"" help:"Run the built-in reference cases"`
	Serve    ServeCmd         `cmd:"" help:"Run the websocket ranking service"`
	Play     PlayCmd          `cmd:"" help:"Rank hands interactively"`
}

// app is bound into every command's Run method
type app struct {
	cfg    *config.Config
	logger *log.Logger
	out    io.Writer
}

// newApp loads configuration and applies the global flags on top of it
func newApp(g Globals, out, logOut io.Writer) (*app, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}

	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.NoColor {
		cfg.Output.NoColor = true
	}
	if g.Dump {
		cfg.Output.Dump = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Output.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	return &app{
		cfg:    cfg,
		logger: cfg.NewLogger(logOut),
		out:    out,
	}, nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("showdown"),
		kong.Description("Rank five-card poker hands and pick the strongest"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	a, err := newApp(cli.Globals, os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(a)
	ctx.FatalIfErrorf(err)
}
