// Package cmd implements the animator CLI commands.
//
// A root command dispatches to subcommands (shell, demo, version).
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/go-drift/animator/internal/config"
	"github.com/go-drift/animator/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "animator",
	Short: "Animator - keyframe timelines in the terminal",
	Long: `Animator edits keyframe animations on interactive timelines. Cues are
created, dragged and removed with pointer commands while the bound
animations play on a shared clock.

Use "animator <command> --help" for more information about a command.`,
	Usage: "animator <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// Global flags.
var (
	projectDir string
	plain      bool
	verbose    bool
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments, excluding the program
// name.
func Execute(args []string) error {
	args, done, err := parseGlobalFlags(args)
	if err != nil || done {
		return err
	}
	if len(args) == 0 {
		printHelp(os.Stdout, rootCmd)
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		printHelp(os.Stderr, rootCmd)
		return fmt.Errorf("unknown command: %s", args[0])
	}
	if slices.ContainsFunc(args[1:], isHelp) {
		printCommandHelp(os.Stdout, cmd)
		return nil
	}
	return cmd.Run(args[1:])
}

// parseGlobalFlags consumes the flags that may precede the command name.
// It reports done when a flag was fully handled (help, version).
func parseGlobalFlags(args []string) (rest []string, done bool, err error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if len(rest) > 0 {
			rest = append(rest, arg)
			continue
		}
		switch {
		case isHelp(arg):
			printHelp(os.Stdout, rootCmd)
			return nil, true, nil
		case arg == "-v" || arg == "--version":
			printVersion(os.Stdout)
			return nil, true, nil
		case arg == "--plain":
			plain = true
		case arg == "--verbose":
			verbose = true
		case arg == "--dir":
			if i+1 >= len(args) {
				return nil, false, fmt.Errorf("--dir requires a directory path")
			}
			i++
			projectDir = args[i]
		case strings.HasPrefix(arg, "--dir="):
			projectDir = strings.TrimPrefix(arg, "--dir=")
		default:
			rest = append(rest, arg)
		}
	}
	return rest, false, nil
}

func isHelp(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}

// resolveConfig loads animator.yaml from --dir or the project root.
func resolveConfig() (*config.Resolved, error) {
	dir := projectDir
	if dir == "" {
		root, err := config.FindProjectRoot()
		if err != nil {
			return nil, err
		}
		dir = root
	}
	return config.Resolve(dir)
}

// newLogger returns the CLI logger writing to w and routes reported
// errors through it.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: verbose})
	return logger
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "Animator version %s (built %s)\n", Version, BuildTime)
}

func printHelp(w io.Writer, cmd *Command) {
	fmt.Fprintf(w, "%s\n\nUsage:\n  %s\n\nCommands:\n", cmd.Long, cmd.Usage)
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprint(w, `
Flags:
  -h, --help           Show help for a command
  -v, --version        Show version information
  --dir DIR            Directory holding animator.yaml (default: project root)
  --plain              Render timelines without colors
  --verbose            Log debug messages and stack traces

Examples:
  animator shell            Edit the demo project interactively
  animator --plain demo     Replay the scripted editing session
`)
}

func printCommandHelp(w io.Writer, cmd *Command) {
	fmt.Fprintf(w, "%s\n\nUsage:\n  %s\n", cmd.Long, cmd.Usage)
}
