package ctex

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// writeContainer synthesizes a CTEX container on disk: a 56-byte header
// with the format tag at its fixed offset, followed by payload.
func writeContainer(t *testing.T, dir, name string, tag uint32, payload []byte) string {
	t.Helper()

	data := make([]byte, HeaderSize, HeaderSize+len(payload))
	binary.LittleEndian.PutUint32(data[FormatTagOffset:FormatTagOffset+FormatTagSize], tag)
	data = append(data, payload...)

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write container fixture: %v", err)
	}
	return path
}
