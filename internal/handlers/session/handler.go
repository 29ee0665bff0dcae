// Package session is the interactive front end of the notebook: a
// single-threaded loop that reads one command per line, runs it against the
// notebook, and prints the result.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/shlex"

	"github.com/KirkDiggler/tft-notebook/internal/errors"
	"github.com/KirkDiggler/tft-notebook/internal/orchestrators/notebook"
)

// DefaultPrompt is printed before each command
const DefaultPrompt = "tft> "

// HandlerConfig holds dependencies for the session handler
type HandlerConfig struct {
	Service notebook.Service
	In      io.Reader
	Out     io.Writer
	Prompt  string
}

// Validate ensures all required dependencies are provided
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.In == nil {
		vb.RequiredField("In")
	}
	if c.Out == nil {
		vb.RequiredField("Out")
	}
	return vb.Build()
}

// Handler drives one interactive session
type Handler struct {
	service notebook.Service
	in      io.Reader
	out     io.Writer
	prompt  string
	render  *renderer
}

// NewHandler creates a new session handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prompt := cfg.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	return &Handler{
		service: cfg.Service,
		in:      cfg.In,
		out:     cfg.Out,
		prompt:  prompt,
		render:  &renderer{out: cfg.Out},
	}, nil
}

// Run reads commands until quit, end of input, or ctx is done. Errors a user
// can correct are printed and the loop goes on; anything else ends it.
func (h *Handler) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(h.in)

	h.render.screen(h.service)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprint(h.out, h.prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return errors.Wrap(err, "failed to read command")
			}
			fmt.Fprintln(h.out)
			return nil
		}

		args, err := shlex.Split(scanner.Text())
		if err != nil {
			fmt.Fprintf(h.out, "error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		quit, err := h.Execute(ctx, args)
		if err != nil {
			if !errors.IsRecoverable(err) {
				return err
			}
			slog.DebugContext(ctx, "command failed", "command", args[0], "error", err)
			fmt.Fprintf(h.out, "error: %s\n", errors.GetMessage(err))
			continue
		}
		if quit {
			return nil
		}
	}
}

// Execute runs one tokenized command and reports whether the session should
// end
func (h *Handler) Execute(ctx context.Context, args []string) (bool, error) {
	name := strings.ToLower(args[0])
	cmd, ok := commands[name]
	if !ok {
		return false, errors.InvalidArgumentf("unknown command %q, try help", args[0])
	}

	rest := args[1:]
	if len(rest) < cmd.minArgs || (cmd.maxArgs >= 0 && len(rest) > cmd.maxArgs) {
		return false, errors.InvalidArgumentf("usage: %s", cmd.usage)
	}

	return cmd.run(ctx, h, rest)
}
