package ctex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertPNGContainer(t *testing.T) {
	dir := t.TempDir()
	pngMagic := []byte{0x89, 0x50, 0x4E, 0x47}
	path := writeContainer(t, dir, "icon.ctex", 1, pngMagic)

	result := Convert(path, "")
	require.NoError(t, result.Err)
	require.True(t, result.Ok())

	assert.Equal(t, filepath.Join(dir, "icon.png"), result.Output)
	assert.Equal(t, FormatPNG, result.Format)
	assert.Equal(t, 4, result.PayloadSize)
	assert.Contains(t, result.Message(), "PNG")
	assert.Contains(t, result.Message(), "4 bytes")

	written, err := os.ReadFile(result.Output)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, written)
}

func TestConvertCopiesPayloadVerbatim(t *testing.T) {
	dir := t.TempDir()

	// Payload bytes are opaque: the converter must not inspect or alter them.
	payload := make([]byte, 1000)
	for i := range payload {
		payload[i] = byte(i * 7)
	}
	path := writeContainer(t, dir, "sprite.ctex", 2, payload)

	result := Convert(path, "")
	require.NoError(t, result.Err)

	written, err := os.ReadFile(result.Output)
	require.NoError(t, err)
	assert.Equal(t, payload, written)
}

func TestConvertExtensionTable(t *testing.T) {
	testCases := []struct {
		name    string
		tag     uint32
		wantExt string
	}{
		{"image", 0, ".unknown"},
		{"png", 1, ".png"},
		{"webp", 2, ".webp"},
		{"basis", 3, ".basis"},
		{"tag_7", 7, ".format7"},
		{"tag_255", 255, ".format255"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeContainer(t, dir, "tex.ctex", tc.tag, []byte{0xAA})

			result := Convert(path, "")
			require.NoError(t, result.Err)
			assert.Equal(t, filepath.Join(dir, "tex"+tc.wantExt), result.Output)
		})
	}
}

func TestConvertHeaderOnlyFails(t *testing.T) {
	dir := t.TempDir()
	path := writeContainer(t, dir, "empty.ctex", 1, nil)

	result := Convert(path, "")
	require.ErrorIs(t, result.Err, ErrEmptyPayload)
	assert.Empty(t, result.Output)
	assert.Equal(t, "no image data found after header", result.Message())

	// No output file may be created on failure.
	_, err := os.Stat(filepath.Join(dir, "empty.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestConvertShortFileFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.ctex")
	require.NoError(t, os.WriteFile(path, make([]byte, 20), 0644))

	result := Convert(path, "")
	require.ErrorIs(t, result.Err, ErrFileTooSmall)
	assert.Contains(t, result.Message(), "got 20 bytes")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no output file may be created for short input")
}

func TestConvertMissingFileFails(t *testing.T) {
	result := Convert(filepath.Join(t.TempDir(), "missing.ctex"), "")
	require.ErrorIs(t, result.Err, ErrOpenFailed)
}

func TestConvertOutputDirOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeContainer(t, dir, "icon.ctex", 3, []byte{1, 2, 3})

	// Intermediate directories must be created.
	outDir := filepath.Join(dir, "out", "nested")
	result := Convert(path, outDir)
	require.NoError(t, result.Err)
	assert.Equal(t, filepath.Join(outDir, "icon.basis"), result.Output)

	written, err := os.ReadFile(result.Output)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, written)
}

func TestConvertIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := writeContainer(t, dir, "icon.ctex", 1, []byte{9, 8, 7})

	first := Convert(path, "")
	require.NoError(t, first.Err)
	firstBytes, err := os.ReadFile(first.Output)
	require.NoError(t, err)

	second := Convert(path, "")
	require.NoError(t, second.Err)
	secondBytes, err := os.ReadFile(second.Output)
	require.NoError(t, err)

	assert.Equal(t, first.Output, second.Output)
	assert.Equal(t, firstBytes, secondBytes)
}

func TestOutputPath(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		outputDir string
		format    Format
		want      string
	}{
		{"sibling", filepath.Join("a", "b", "icon.ctex"), "", FormatPNG, filepath.Join("a", "b", "icon.png")},
		{"override", filepath.Join("a", "icon.ctex"), "out", FormatWEBP, filepath.Join("out", "icon.webp")},
		{"uppercase_ext", filepath.Join("a", "ICON.CTEX"), "", FormatBasis, filepath.Join("a", "ICON.basis")},
		{"dotted_stem", "my.texture.ctex", "", FormatPNG, "my.texture.png"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, OutputPath(tc.input, tc.outputDir, tc.format))
		})
	}
}
