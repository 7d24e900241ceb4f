package icongen

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/k1LoW/errors"
)

// Sizes are the icon sizes required by the browser extension manifest.
var Sizes = []int{16, 48, 128}

// DefaultSVGName is the vector source looked up in the output directory when
// no explicit path is given.
const DefaultSVGName = "icon.svg"

// Mode identifies which drawing path produced an icon.
type Mode string

const (
	ModeVector     Mode = "vector"
	ModeProcedural Mode = "procedural"
)

// Result describes one generated icon file.
type Result struct {
	File     string `json:"file"`
	Size     int    `json:"size"`
	Mode     Mode   `json:"mode"`
	Checksum uint32 `json:"checksum"`
}

// Generator produces the extension icon set, rasterizing the vector source
// when it is present and falling back to procedural drawing otherwise.
type Generator struct {
	outDir     string
	svgPath    string
	theme      Theme
	rasterizer Rasterizer
	logger     *slog.Logger
}

type Option func(*Generator) error

func WithOutDir(dir string) Option {
	return func(g *Generator) error {
		if dir == "" {
			return fmt.Errorf("output directory must not be empty")
		}
		g.outDir = dir
		return nil
	}
}

func WithSVGPath(path string) Option {
	return func(g *Generator) error {
		g.svgPath = path
		return nil
	}
}

func WithTheme(theme Theme) Option {
	return func(g *Generator) error {
		if err := theme.validate(); err != nil {
			return err
		}
		g.theme = theme
		return nil
	}
}

func WithRasterizer(r Rasterizer) Option {
	return func(g *Generator) error {
		g.rasterizer = r
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) error {
		g.logger = logger
		return nil
	}
}

// New creates a new Generator.
func New(opts ...Option) (_ *Generator, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	g := &Generator{
		outDir:     ".",
		theme:      DefaultTheme,
		rasterizer: NewSVGRasterizer(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	if g.svgPath == "" {
		g.svgPath = filepath.Join(g.outDir, DefaultSVGName)
	}
	return g, nil
}

// SVGPath returns the path of the vector source the generator reads.
func (g *Generator) SVGPath() string {
	return g.svgPath
}

// OutDir returns the directory the icon files are written into.
func (g *Generator) OutDir() string {
	return g.outDir
}

// IconName returns the output file name for a size, e.g. icon16.png.
func IconName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// Generate renders and writes the full icon set, overwriting existing files.
// The run is deterministic, so rerunning with the same inputs produces
// byte-for-byte identical files.
func (g *Generator) Generate(ctx context.Context) (_ []Result, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	icons, mode, err := g.render(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(icons))
	for _, ic := range icons {
		name := IconName(ic.size)
		path := filepath.Join(g.outDir, name)
		if err := os.WriteFile(path, ic.image.Bytes(), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		g.logger.Info("created icon",
			slog.String("file", name),
			slog.Int("size", ic.size),
			slog.String("mode", string(mode)),
		)
		results = append(results, Result{
			File:     name,
			Size:     ic.size,
			Mode:     mode,
			Checksum: ic.image.Checksum(),
		})
	}
	g.logger.Info("generation completed", slog.String("mode", string(mode)), slog.Int("icons", len(results)))
	return results, nil
}

type renderedIcon struct {
	size  int
	image *Image
}

// render builds the icon set in memory. The vector path is taken when the
// rasterization capability and the vector source are both present; a missing
// capability or a missing source is recoverable and switches to the
// procedural path, anything else is fatal.
func (g *Generator) render(ctx context.Context) (_ []renderedIcon, _ Mode, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if g.rasterizer == nil || !g.rasterizer.Available() {
		g.logger.Info("rasterization capability unavailable")
		icons, err := g.renderProcedural()
		if err != nil {
			return nil, "", err
		}
		return icons, ModeProcedural, nil
	}
	svg, err := os.ReadFile(g.svgPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			g.logger.Info("vector source not found", slog.String("path", g.svgPath))
			icons, err := g.renderProcedural()
			if err != nil {
				return nil, "", err
			}
			return icons, ModeProcedural, nil
		}
		return nil, "", fmt.Errorf("failed to read vector source %s: %w", g.svgPath, err)
	}
	g.logger.Info("rasterizing vector source", slog.String("path", g.svgPath))
	var icons []renderedIcon
	for _, size := range Sizes {
		img, err := g.rasterizer.Rasterize(ctx, svg, size)
		if err != nil {
			return nil, "", fmt.Errorf("failed to rasterize %s at %dpx: %w", g.svgPath, size, err)
		}
		i, err := newImageFromImage(img)
		if err != nil {
			return nil, "", err
		}
		icons = append(icons, renderedIcon{size: size, image: i})
	}
	return icons, ModeVector, nil
}

func (g *Generator) renderProcedural() (_ []renderedIcon, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	var icons []renderedIcon
	for _, size := range Sizes {
		i, err := newImageFromImage(drawLogo(size, g.theme))
		if err != nil {
			return nil, err
		}
		icons = append(icons, renderedIcon{size: size, image: i})
	}
	return icons, nil
}
