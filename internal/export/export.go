// Package export encodes a scene into a file format.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"camper-renderer/internal/postprocess"
	"camper-renderer/internal/raster"
	"camper-renderer/internal/scene"
	"camper-renderer/internal/svg"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Format names an output encoding.
type Format string

const (
	SVG  Format = "svg"
	PNG  Format = "png"
	WebP Format = "webp"
	TGA  Format = "tga"
)

// Formats lists every supported format.
var Formats = []Format{SVG, PNG, WebP, TGA}

var ErrUnknownFormat = errors.New("export: unknown format")

// ParseFormat accepts a format name or file extension, case-insensitively.
// An empty name selects SVG.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".")); f {
	case "":
		return SVG, nil
	case SVG, PNG, WebP, TGA:
		return f, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, name)
}

func (f Format) ContentType() string {
	switch f {
	case SVG:
		return "image/svg+xml"
	case PNG:
		return "image/png"
	case WebP:
		return "image/webp"
	case TGA:
		return "image/x-tga"
	}
	return "application/octet-stream"
}

// Extension returns the file extension including the dot.
func (f Format) Extension() string { return "." + string(f) }

// Options controls bitmap output. SVG ignores them.
type Options struct {
	Format Format
	Raster raster.Options
	Trim   bool
	Margin int
}

// Encode writes sc to w in opts.Format.
func Encode(w io.Writer, sc scene.Scene, opts Options) error {
	f, err := ParseFormat(string(opts.Format))
	if err != nil {
		return err
	}
	if f == SVG {
		return svg.Encode(w, sc)
	}

	img := raster.Render(sc, opts.Raster)
	if opts.Trim {
		img = postprocess.Trim(img, opts.Margin)
	}
	return EncodeImage(w, img, f)
}

// EncodeImage writes a bitmap in one of the raster formats.
func EncodeImage(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case TGA:
		err = tga.Encode(w, img)
	default:
		return fmt.Errorf("%w %q for bitmap", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("export: encode %s: %w", f, err)
	}
	return nil
}

// Bytes encodes sc into memory.
func Bytes(sc scene.Scene, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, sc, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
