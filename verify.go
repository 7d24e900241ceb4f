package icongen

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/k1LoW/errors"
)

type VerifyStatus string

const (
	// StatusCurrent means the file on disk is byte-identical to a fresh render.
	StatusCurrent VerifyStatus = "current"
	// StatusReencoded means the bytes differ but the pixel content matches.
	StatusReencoded VerifyStatus = "reencoded"
	// StatusStale means the file is missing, undecodable, wrongly sized or
	// shows different content.
	StatusStale VerifyStatus = "stale"
)

// VerifyResult is the verification outcome for one icon file.
type VerifyResult struct {
	File   string       `json:"file"`
	Size   int          `json:"size"`
	Status VerifyStatus `json:"status"`
	Reason string       `json:"reason,omitempty"`
}

// Verify renders the icon set in memory and compares it against the files on
// disk without writing anything.
func (g *Generator) Verify(ctx context.Context) (_ []VerifyResult, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	icons, _, err := g.render(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]VerifyResult, 0, len(icons))
	for _, ic := range icons {
		name := IconName(ic.size)
		res := VerifyResult{File: name, Size: ic.size}
		got, err := NewImageFromFile(filepath.Join(g.outDir, name))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			res.Status = StatusStale
			res.Reason = "missing"
		case err != nil:
			res.Status = StatusStale
			res.Reason = "undecodable"
		default:
			res = g.compareIcon(res, ic, got)
		}
		results = append(results, res)
	}
	return results, nil
}

func (g *Generator) compareIcon(res VerifyResult, want renderedIcon, got *Image) VerifyResult {
	img, err := got.Image()
	if err != nil {
		res.Status = StatusStale
		res.Reason = "undecodable"
		return res
	}
	if b := img.Bounds(); b.Dx() != want.size || b.Dy() != want.size {
		res.Status = StatusStale
		res.Reason = fmt.Sprintf("wrong dimensions %dx%d", b.Dx(), b.Dy())
		return res
	}
	switch {
	case got.Checksum() == want.image.Checksum():
		res.Status = StatusCurrent
	case got.Equivalent(want.image):
		res.Status = StatusReencoded
	default:
		res.Status = StatusStale
		res.Reason = "content differs"
	}
	return res
}

// StaleCount returns how many results are stale.
func StaleCount(results []VerifyResult) int {
	count := 0
	for _, r := range results {
		if r.Status == StatusStale {
			count++
		}
	}
	return count
}
