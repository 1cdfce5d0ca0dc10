// Scicalc is a scientific calculator for the terminal. Without a command it
// opens the interactive keypad; the commands evaluate key sequences from the
// shell, print the key reference, write a configuration file, or serve the
// calculator over MCP and WebSocket.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

const version = "0.3.0"

const usage = `Usage: scicalc [flags]
       scicalc <command> [flags]

Commands:
  eval    Press keys from the command line and print the display
  keys    Show the keyboard reference
  init    Write a configuration file interactively
  mcp     Serve the calculator as MCP tools over stdio
  serve   Serve a WebSocket keypad

Flags:
`

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := dispatch(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		cancel()
		os.Exit(1)
	}
}

// dispatch handles subcommands before falling back to the interactive UI.
func dispatch(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "eval":
			return evalCmd(args[1:])
		case "keys":
			return keysCmd(args[1:])
		case "init":
			return initCmd(args[1:])
		case "mcp":
			return mcpCmd(ctx, args[1:])
		case "serve":
			return serveCmd(ctx, args[1:])
		}
	}

	fs := flag.NewFlagSet("scicalc", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}
	common := addCommonFlags(fs)
	logFile := fs.String("log-file", "", "write debug logs to this file")
	_ = fs.Parse(args)
	if fs.NArg() > 0 {
		fs.Usage()
		return fmt.Errorf("unknown command %q", fs.Arg(0))
	}

	return runTUI(common, *logFile)
}

// commonFlags are shared by every command that reads the configuration.
type commonFlags struct {
	config *string
	env    *string
}

func addCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		config: fs.String("config", "", "path to configuration file (default: ./scicalc.yaml, then the user config dir)"),
		env:    fs.String("env", ".env", "path to .env file (ignored if missing)"),
	}
}

// loadDotEnv loads environment variables from path. If the file does not exist
// it is silently ignored so that .env files remain optional.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
