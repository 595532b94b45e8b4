package bmpadapter

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tinte/backend/gfx"
	"github.com/npillmayer/tinte/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestEncodeBMPRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinte.gfx")
	defer teardown()
	//
	c := gfx.NewCanvas(8, 5)
	var buf bytes.Buffer
	require.NoError(t, EncodeBMP(&buf, c))
	img, err := bmp.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 5, img.Bounds().Dy())
}

func TestEncodePNGRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinte.gfx")
	defer teardown()
	//
	c := gfx.NewCanvas(8, 5)
	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, c))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 5, img.Bounds().Dy())
}

func TestSaveByExtension(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinte.gfx")
	defer teardown()
	//
	dir := t.TempDir()
	c := gfx.NewCanvas(4, 4)
	assert.NoError(t, Save(filepath.Join(dir, "out.bmp"), c))
	assert.NoError(t, Save(filepath.Join(dir, "out.PNG"), c))
	err := Save(filepath.Join(dir, "out.gif"), c)
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
}
