/*
Copyright © 2025 BlueHawk Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bluehawk/icongen"
	"github.com/bluehawk/icongen/config"
	"github.com/bluehawk/icongen/logger/tick"
	"github.com/bluehawk/icongen/version"
	"github.com/k1LoW/errors"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
)

var (
	outDir        string
	svgPath       string
	themePath     string
	rasterizerCmd string
	watchMode     bool
	debug         bool
)

var tb = newLogBuffer(100)

var rootCmd = &cobra.Command{
	Use:          "icongen",
	Short:        "icongen generates the PNG icon set for the BlueHawk browser extension",
	Long: `icongen generates the PNG icon set (icon16.png, icon48.png, icon128.png) for
the BlueHawk browser extension. It rasterizes icon.svg when present and draws
the hawk-and-key logo procedurally otherwise.`,
	SilenceUsage: true,
	Version:      fmt.Sprintf("%s (rev:%s)", version.Version, version.Revision),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator(newLogger())
		if err != nil {
			return err
		}
		if watchMode {
			return g.Watch(cmd.Context())
		}
		_, err = g.Generate(cmd.Context())
		return err
	},
}

type errorData struct {
	LatestLogs  []any     `json:"latest_logs"`
	StackTraces any       `json:"stack_traces"`
	CreatedAt   time.Time `json:"created_at"`
	Version     string    `json:"version"`
	Revision    string    `json:"revision"`
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Write stack trace log to state directory
		var latestLogs []any
		for _, line := range tb.Lines() {
			var m map[string]any
			if err := json.Unmarshal([]byte(line), &m); err != nil {
				latestLogs = append(latestLogs, line)
			} else {
				latestLogs = append(latestLogs, m)
			}
		}
		d := &errorData{
			LatestLogs:  latestLogs,
			StackTraces: errors.StackTraces(err),
			CreatedAt:   time.Now(),
			Version:     version.Version,
			Revision:    version.Revision,
		}
		b, err := json.Marshal(d)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		} else {
			dumpPath := filepath.Join(config.StateHomePath(), "error.json")
			if err := os.MkdirAll(config.StateHomePath(), 0o700); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "failed to create state directory: %v\n", err)
			} else if err := os.WriteFile(dumpPath, b, 0o600); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "failed to write error.json to %s: %v\n", dumpPath, err)
			}
		}
		os.Exit(1)
	}
}

// newGenerator builds a Generator from the persistent flags.
func newGenerator(logger *slog.Logger) (*icongen.Generator, error) {
	opts := []icongen.Option{
		icongen.WithOutDir(outDir),
	}
	if svgPath != "" {
		opts = append(opts, icongen.WithSVGPath(svgPath))
	}
	if themePath != "" {
		cfg, err := config.Load(resolveThemePath(themePath))
		if err != nil {
			return nil, err
		}
		if cfg.Theme != nil {
			opts = append(opts, icongen.WithTheme(mergeTheme(cfg.Theme)))
		}
	}
	if rasterizerCmd != "" {
		opts = append(opts, icongen.WithRasterizer(icongen.NewExternalRasterizer(rasterizerCmd)))
	}
	if logger != nil {
		opts = append(opts, icongen.WithLogger(logger))
	}
	return icongen.New(opts...)
}

// resolveThemePath allows a bare theme name to refer to a file in the
// XDG config directory, e.g. --theme ocean -> ~/.config/icongen/ocean.yml
func resolveThemePath(path string) string {
	if strings.ContainsRune(path, os.PathSeparator) || strings.Contains(path, ".") {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	for _, ext := range []string{".yml", ".yaml"} {
		candidate := filepath.Join(config.ConfigHomePath(), path+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return path
}

// mergeTheme overlays non-empty overrides onto the built-in palette.
func mergeTheme(t *config.Theme) icongen.Theme {
	merged := icongen.DefaultTheme
	if t.Background != "" {
		merged.Background = t.Background
	}
	if t.Silhouette != "" {
		merged.Silhouette = t.Silhouette
	}
	if t.Eye != "" {
		merged.Eye = t.Eye
	}
	if t.Key != "" {
		merged.Key = t.Key
	}
	return merged
}

func newLogger() *slog.Logger {
	jsonHandler := slog.NewJSONHandler(tb, &slog.HandlerOptions{Level: slog.LevelDebug})
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	tickHandler, err := tick.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	if err != nil {
		return slog.New(jsonHandler)
	}
	handlers := []slog.Handler{tickHandler, jsonHandler}
	if debug {
		handlers = append(handlers, slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", ".", "output directory for the icon files")
	rootCmd.PersistentFlags().StringVarP(&svgPath, "svg", "", "", "path of the vector source (default <out>/icon.svg)")
	rootCmd.PersistentFlags().StringVarP(&themePath, "theme", "", "", "palette overrides file (yaml)")
	rootCmd.PersistentFlags().StringVarP(&rasterizerCmd, "rasterizer", "", "", "external rasterizer command ({{size}} is replaced per icon)")
	rootCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "regenerate whenever the vector source changes")
	rootCmd.Flags().BoolVarP(&debug, "debug", "", false, "enable debug logging")
}
