package shell

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/go-drift/animator/pkg/errors"
)

// Shell runs a [Session] behind a readline prompt. The global clock is
// pumped once before every command, so playback advances with wall time
// between prompts.
type Shell struct {
	session *Session
	rl      *readline.Instance
}

// NewShell creates the prompt on the process terminal. Call
// [Shell.Stdout] for a log writer that does not garble the prompt, then
// [Shell.Attach] the session.
func NewShell() (*Shell, error) {
	return newShell(nil, nil)
}

// newShell creates the prompt on stdin and stdout; nil means the process
// terminal.
func newShell(stdin io.ReadCloser, stdout io.Writer) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "animator> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           stdin,
		Stdout:          stdout,
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("help"), readline.PcItem("tracks"), readline.PcItem("select"),
			readline.PcItem("press"), readline.PcItem("move"), readline.PcItem("release"),
			readline.PcItem("click"), readline.PcItem("drag"), readline.PcItem("leave"),
			readline.PcItem("toggle"), readline.PcItem("play"), readline.PcItem("pause"),
			readline.PcItem("seek"), readline.PcItem("frame"), readline.PcItem("cues"),
			readline.PcItem("render"), readline.PcItem("state"), readline.PcItem("quit"),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Shell{rl: rl}, nil
}

// Stdout returns a writer that coordinates with the readline input.
func (sh *Shell) Stdout() io.Writer {
	return sh.rl.Stdout()
}

// Attach sets the session commands run against.
func (sh *Shell) Attach(s *Session) {
	sh.session = s
}

// Run reads commands until EOF, quit or ctx is done. Cancelling ctx
// closes the prompt, which unblocks a pending read.
func (sh *Shell) Run(ctx context.Context) {
	defer sh.rl.Close()

	stop := context.AfterFunc(ctx, func() { sh.rl.Close() })
	defer stop()

	out := sh.rl.Stdout()
	sh.session.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := sh.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(out, "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		var execErr error
		if perr := errors.Guard("shell.Exec", func() {
			sh.session.Frame()
			execErr = sh.session.Exec(input)
		}); perr != nil {
			fmt.Fprintf(out, "Error: %v\n", perr)
			continue
		}
		if execErr != nil {
			if stderrors.Is(execErr, ErrQuit) {
				fmt.Fprintln(out, "Exiting...")
				return
			}
			fmt.Fprintf(out, "Error: %v\n", execErr)
		}
	}
}
