package cmd

import (
	"os"

	"github.com/go-drift/animator/cmd/animator/internal/shell"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Replay the scripted editing session",
		Long: `Replay a scripted session on simulated time.

The script creates two cues on an empty timeline with Ctrl+click, drags
the second one to the end, renders every timeline and then plays the
demo tracks for about a second before seeking.`,
		Usage: "animator demo",
		Run:   runDemo,
	})
}

func runDemo(args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr)
	return shell.RunDemo(cfg, os.Stdout, shell.Options{Logger: logger, Plain: plain})
}
