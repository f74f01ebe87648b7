package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-drift/animator/cmd/animator/internal/shell"
)

func init() {
	RegisterCommand(&Command{
		Name:  "shell",
		Short: "Edit the demo project interactively",
		Long: `Open the demo project in an interactive shell.

Each track is a timeline bound to one animation. Pointer commands act on
the selected track; cue edits rewrite the track's keyframes and the bound
visual follows immediately. The playback clock advances with wall time
between commands while playing.

Type "help" inside the shell for the command list.`,
		Usage: "animator shell",
		Run:   runShell,
	})
}

func runShell(args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	sh, err := shell.NewShell()
	if err != nil {
		return err
	}
	logger := newLogger(sh.Stdout())

	session, err := shell.NewSession(cfg, sh.Stdout(), shell.Options{Logger: logger, Plain: plain})
	if err != nil {
		return err
	}
	defer session.Close()
	sh.Attach(session)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Debug("shell started", "project", cfg.ProjectName, "root", cfg.Root)
	sh.Run(ctx)
	return nil
}
