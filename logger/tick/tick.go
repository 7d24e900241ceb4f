package tick

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/k1LoW/errors"
	"github.com/mattn/go-colorable"
)

var (
	yellow = color.New(color.FgYellow).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
)

var _ slog.Handler = (*tickHandler)(nil)

// tickHandler renders generator log records as short colored one-liners.
// While watch mode idles, a spinner shows the tool is waiting.
type tickHandler struct {
	handler slog.Handler
	spinner *spinner.Spinner
	stdout  io.Writer
}

func New(h slog.Handler) (_ *tickHandler, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	stdout := colorable.NewColorableStdout()
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(stdout))
	if err := s.Color("yellow"); err != nil {
		return nil, err
	}
	// Not started yet: one-shot runs never idle, so the spinner goroutine only
	// spawns once watch mode reports it is waiting.
	return &tickHandler{
		handler: h,
		spinner: s,
		stdout:  stdout,
	}, nil
}

func (h *tickHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *tickHandler) Handle(ctx context.Context, r slog.Record) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	if r.Message == "waiting for changes" {
		if !h.spinner.Active() {
			h.spinner.Start()
		}
		return nil
	}
	if h.spinner.Active() {
		h.spinner.Stop()
	}
	switch r.Message {
	case "created icon":
		var file, mode string
		r.Attrs(func(attr slog.Attr) bool {
			if attr.Key == "file" {
				file = attr.Value.String()
			}
			if attr.Key == "mode" {
				mode = attr.Value.String()
			}
			return true
		})
		return h.write(green("✓") + " " + file + " " + gray("("+mode+")") + "\n")
	case "rasterization capability unavailable":
		return h.write(yellow("‣") + " no rasterizer available, drawing the logo procedurally\n")
	case "vector source not found":
		return h.write(yellow("‣") + " " + attrValue(r, "path") + " not found, drawing the logo procedurally\n")
	case "rasterizing vector source":
		return h.write("‣ rasterizing " + attrValue(r, "path") + "\n")
	case "vector source changed":
		return h.write(yellow("‣") + " vector source changed (" + attrValue(r, "op") + "), regenerating\n")
	case "generation completed":
		return h.write("done\n")
	}
	if r.Level >= slog.LevelError {
		return h.write(red("!") + " " + r.Message + "\n")
	}
	return nil
}

func (h *tickHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &tickHandler{handler: h.handler.WithAttrs(attrs), spinner: h.spinner, stdout: h.stdout}
}

func (h *tickHandler) WithGroup(name string) slog.Handler {
	return &tickHandler{handler: h.handler.WithGroup(name), spinner: h.spinner, stdout: h.stdout}
}

func (h *tickHandler) write(s string) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	_, err = h.stdout.Write([]byte(s))
	return err
}

func attrValue(r slog.Record, key string) string {
	var v string
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key == key {
			v = attr.Value.String()
		}
		return true
	})
	return v
}
