package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/germanamz/scicalc/cmd/scicalc/internal/app"
	"github.com/germanamz/scicalc/cmd/scicalc/internal/keyref"
	"github.com/germanamz/scicalc/cmd/scicalc/internal/wizard"
	"github.com/germanamz/scicalc/pkg/calc"
	"github.com/germanamz/scicalc/pkg/config"
	"github.com/germanamz/scicalc/pkg/tools/calctools"
	"github.com/germanamz/scicalc/pkg/tools/mcpserver"
	"github.com/germanamz/scicalc/pkg/wsserver"
	"golang.org/x/term"
)

// loadConfig loads .env and then the resolved configuration file.
func loadConfig(f commonFlags) (config.Config, error) {
	if err := loadDotEnv(*f.env); err != nil {
		return config.Config{}, err
	}

	cfg, _, err := config.LoadResolved(*f.config)
	return cfg, err
}

// newLogger returns a text logger on w at the configured level.
func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func runTUI(f commonFlags, logFile string) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	// The UI owns the terminal, so logs only go to an explicit file.
	var sink io.Writer = io.Discard
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // path comes from the command line
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer func() { _ = file.Close() }()
		sink = file
	}

	log, err := newLogger(cfg, sink)
	if err != nil {
		return err
	}

	model, err := app.New(cfg, log)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(model).Run()
	return err
}

func evalCmd(args []string) error {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: scicalc eval [flags] KEY...\n\nPress keys on a cleared calculator and print the display.\nExample: scicalc eval 7 + 2 '*' 3 =\n\nFlags:\n")
		fs.PrintDefaults()
	}
	trace := fs.Bool("trace", false, "print the display after every key")
	_ = fs.Parse(args)

	return runEval(os.Stdout, fs.Args(), *trace)
}

// runEval folds the keys from a cleared state and writes the display. With
// trace set each key is printed next to the display it produced.
func runEval(w io.Writer, labels []string, trace bool) error {
	if len(labels) == 0 {
		return errors.New("eval: no keys given")
	}

	toks, err := calc.ParseTokens(labels)
	if err != nil {
		return fmt.Errorf("eval: %w", err)
	}

	s := calc.Initial()
	for _, tok := range toks {
		s = calc.Apply(s, tok)
		if trace {
			fmt.Fprintf(w, "%-6s %s\n", tok, s.Display)
		}
	}

	if !trace {
		fmt.Fprintln(w, s.Display)
	}
	return nil
}

func keysCmd(args []string) error {
	fs := flag.NewFlagSet("keys", flag.ExitOnError)
	common := addCommonFlags(fs)
	raw := fs.Bool("raw", false, "print Markdown without terminal styling")
	_ = fs.Parse(args)

	cfg, err := loadConfig(common)
	if err != nil {
		return err
	}

	bindings := make(map[string]calc.Token, len(app.TokenKeys))
	for k, tok := range app.TokenKeys {
		bindings[k] = tok
	}
	extra, err := cfg.Bindings()
	if err != nil {
		return err
	}
	for k, tok := range extra {
		bindings[k] = tok
	}

	md := keyref.Markdown(bindings)
	if *raw || !term.IsTerminal(int(os.Stdout.Fd())) { //nolint:gosec // fd fits in int
		fmt.Print(md)
		return nil
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint:gosec // fd fits in int
	if err != nil || width <= 0 {
		width = 80
	}

	out, err := keyref.Render(md, width, lipgloss.HasDarkBackground())
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func initCmd(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: scicalc init [flags]\n\nWrite a configuration file interactively.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	path := fs.String("config", config.FileName, "file to write")
	user := fs.Bool("user", false, "write to the user config dir instead")
	_ = fs.Parse(args)

	target := *path
	if *user {
		target = config.UserPath()
		if target == "" {
			return errors.New("init: cannot determine user config dir")
		}
	}

	base := config.Default()
	if existing, err := config.Load(target); err == nil {
		base = existing
	}

	cfg, err := wizard.Run(base)
	if err != nil {
		return err
	}

	if err := config.Write(target, cfg); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	fmt.Printf("Wrote %s\n", target)
	return nil
}

func mcpCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	common := addCommonFlags(fs)
	_ = fs.Parse(args)

	cfg, err := loadConfig(common)
	if err != nil {
		return err
	}

	// stdout carries the protocol; logs go to stderr.
	log, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}

	sessions := calctools.NewSessions()
	srv := mcpserver.New("scicalc", version, log)
	srv.Register(calctools.New(sessions).Tools())

	log.Info("serving MCP over stdio")
	err = srv.Serve(ctx, os.Stdin, os.Stdout)
	log.Info("MCP server stopped", "sessions", sessions.Len())

	return err
}

func serveCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	common := addCommonFlags(fs)
	addr := fs.String("addr", "", "listen address (default from config)")
	origins := fs.String("origins", "", "comma-separated origin patterns allowed to connect")
	_ = fs.Parse(args)

	cfg, err := loadConfig(common)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}

	listen := cfg.Server.Addr
	if *addr != "" {
		listen = *addr
	}

	var opts []wsserver.Option
	if *origins != "" {
		opts = append(opts, wsserver.WithOriginPatterns(strings.Split(*origins, ",")...))
	}

	return wsserver.New(log, opts...).ListenAndServe(ctx, listen)
}
