package icongen

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	osexec "os/exec"
	"strconv"
	"strings"

	"github.com/k1LoW/errors"
	"github.com/k1LoW/exec"
)

const envRasterizeSize = "ICONGEN_SIZE"

// ExternalRasterizer runs a user-supplied command once per size. The SVG
// document is passed on stdin and a PNG image is expected on stdout. The
// {{size}} placeholder in the command is replaced with the target size, which
// is also exported as ICONGEN_SIZE for the child process.
type ExternalRasterizer struct {
	command string
}

func NewExternalRasterizer(command string) *ExternalRasterizer {
	return &ExternalRasterizer{command: command}
}

// Available reports whether the command's binary resolves via PATH. A missing
// binary means the capability is absent, not that the run failed.
func (r *ExternalRasterizer) Available() bool {
	fields := strings.Fields(r.command)
	if len(fields) == 0 {
		return false
	}
	if _, err := osexec.LookPath(fields[0]); err != nil {
		return false
	}
	return true
}

func (r *ExternalRasterizer) Rasterize(ctx context.Context, svg []byte, size int) (_ image.Image, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	cmdStr := strings.ReplaceAll(r.command, "{{size}}", strconv.Itoa(size))
	c, args, err := buildCommand(cmdStr)
	if err != nil {
		return nil, err
	}
	cmd := exec.CommandContext(ctx, c, args...)
	cmd.Stdin = bytes.NewReader(svg)
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, envRasterizeSize+"="+strconv.Itoa(size))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to run rasterizer command: %w\nstderr: %s", err, stderr.String())
	}
	img, format, err := image.Decode(&stdout)
	if err != nil {
		return nil, fmt.Errorf("failed to decode rasterizer output: %w", err)
	}
	if format != "png" {
		return nil, fmt.Errorf("rasterizer output is %s, expected png", format)
	}
	if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
		return nil, fmt.Errorf("rasterizer output is %dx%d, expected %dx%d", b.Dx(), b.Dy(), size, size)
	}
	return img, nil
}

// buildCommand parses a command string and returns the command and arguments.
func buildCommand(cmdStr string) (string, []string, error) {
	shell, err := detectShell()
	if err != nil {
		return "", nil, err
	}
	return shell, []string{"-c", cmdStr}, nil
}

// detectShell detects the current shell.
func detectShell() (string, error) {
	shells := []string{
		os.Getenv("SHELL"),
		"/bin/bash",
		"/bin/sh",
	}
	for _, shell := range shells {
		if shell == "" {
			continue
		}
		if _, err := os.Stat(shell); err == nil {
			return shell, nil
		}
	}
	return "", fmt.Errorf("failed to detect shell")
}
