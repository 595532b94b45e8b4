/*
Package bmpadapter encodes canvases into bitmap file formats.

The canvas type implements image.Image, so this boils down to wiring the
BMP encoder of golang.org/x/image and the PNG encoder of the standard
library.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bmpadapter

import (
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/tinte/backend/gfx"
	"github.com/npillmayer/tinte/core"
	"golang.org/x/image/bmp"
)

// EncodeBMP writes a canvas in BMP format.
func EncodeBMP(w io.Writer, c *gfx.Canvas) error {
	return bmp.Encode(w, c)
}

// EncodePNG writes a canvas in PNG format.
func EncodePNG(w io.Writer, c *gfx.Canvas) error {
	return png.Encode(w, c)
}

// Save writes a canvas to a file, choosing the format from the file
// extension (".bmp" or ".png").
func Save(path string, c *gfx.Canvas) error {
	var encode func(io.Writer, *gfx.Canvas) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		encode = EncodeBMP
	case ".png":
		encode = EncodePNG
	default:
		return core.Error(core.EINVALID, "unsupported image format for %q", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create output file")
	}
	defer f.Close()
	return encode(f, c)
}
