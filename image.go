package icongen

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/corona10/goimagehash"
	"github.com/k1LoW/errors"
)

// Image is an encoded PNG icon together with lazily computed fingerprints.
type Image struct {
	i        image.Image
	b        []byte // Raw PNG data
	checksum uint32
	pHash    *goimagehash.ImageHash
}

func NewImageFromFile(path string) (_ *Image, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return newImageFromBuffer(f)
}

func newImageFromBuffer(r io.Reader) (_ *Image, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	_, mimeType, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if mimeType != "png" {
		return nil, fmt.Errorf("unsupported image type: %s", mimeType)
	}
	return &Image{b: b}, nil
}

func newImageFromImage(img image.Image) (_ *Image, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return &Image{i: img, b: buf.Bytes()}, nil
}

// Equivalent reports whether two icons show the same pixel content. Byte-equal
// data always matches; otherwise a perceptual hash comparison absorbs
// differences introduced by re-encoding.
func (i *Image) Equivalent(ii *Image) bool {
	if i == nil || ii == nil {
		return false
	}
	if i.Checksum() == ii.Checksum() {
		return true
	}
	aHash, err := i.PHash()
	if err != nil {
		return false
	}
	bHash, err := ii.PHash()
	if err != nil {
		return false
	}
	distance, err := aHash.Distance(bHash)
	if err != nil {
		return false
	}
	return distance < 5 // threshold for similarity
}

func (i *Image) Checksum() uint32 {
	if i == nil {
		return 0
	}
	if i.checksum == 0 {
		i.checksum = crc32.ChecksumIEEE(i.b)
	}
	return i.checksum
}

func (i *Image) Image() (image.Image, error) {
	if i == nil {
		return nil, fmt.Errorf("image is nil")
	}
	if i.i == nil {
		img, _, err := image.Decode(bytes.NewReader(i.b))
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		i.i = img
	}
	return i.i, nil
}

func (i *Image) PHash() (_ *goimagehash.ImageHash, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if i == nil {
		return nil, fmt.Errorf("image is nil")
	}
	if i.i == nil {
		if _, err := i.Image(); err != nil {
			return nil, err
		}
	}
	if i.pHash == nil {
		pHash, err := goimagehash.PerceptionHash(i.i)
		if err != nil {
			return nil, fmt.Errorf("failed to compute perceptual hash: %w", err)
		}
		i.pHash = pHash
	}
	return i.pHash, nil
}

func (i *Image) Bytes() []byte {
	if i == nil {
		return nil
	}
	return i.b
}
