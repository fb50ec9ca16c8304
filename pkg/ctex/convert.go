package ctex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
)

const (
	dirPerms  = 0755
	filePerms = 0644
)

// Result is the outcome of converting one container file. Err carries a
// sentinel error kind wrapping the underlying cause; no failure escapes
// the converter as a panic or a bare return.
type Result struct {
	Input       string
	Output      string
	Format      Format
	PayloadSize int
	Err         error
}

// Ok reports whether the conversion succeeded.
func (r Result) Ok() bool {
	return r.Err == nil
}

// Message returns the human-readable diagnostic for the result.
func (r Result) Message() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return fmt.Sprintf("Format: %s, Size: %d bytes", r.Format.Name(), r.PayloadSize)
}

// Convert extracts the image payload from one container file. The output
// file shares the input's base name with the extension chosen from the
// format tag. It is written next to the input, or under outputDir when
// outputDir is non-empty.
func Convert(containerPath, outputDir string) Result {
	return ConvertWithLogger(containerPath, outputDir, hclog.NewNullLogger())
}

// ConvertWithLogger is Convert with a custom logger.
func ConvertWithLogger(containerPath, outputDir string, logger hclog.Logger) Result {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	result := Result{Input: containerPath}

	reader := NewReaderWithLogger(containerPath, logger)
	if err := reader.Open(); err != nil {
		result.Err = err
		return result
	}
	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close container", "path", containerPath, "error", err)
		}
	}()

	format, err := reader.ReadFormat()
	if err != nil {
		result.Err = err
		return result
	}
	result.Format = format

	payload, err := reader.ReadPayload()
	if err != nil {
		result.Err = err
		return result
	}
	result.PayloadSize = len(payload)

	outputPath := OutputPath(containerPath, outputDir, format)

	if err := os.MkdirAll(filepath.Dir(outputPath), dirPerms); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteFailed, err)
		return result
	}

	// Overwrite-in-place: running twice on the same input is safe.
	if err := os.WriteFile(outputPath, payload, filePerms); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteFailed, err)
		return result
	}

	logger.Debug("✅ Wrote image", "path", outputPath, "format", format.Name(), "bytes", len(payload))

	result.Output = outputPath
	return result
}

// OutputPath computes the destination path for a container's payload:
// the input base name without its extension plus the format's extension,
// placed under outputDir when non-empty, else beside the input.
func OutputPath(containerPath, outputDir string, format Format) string {
	base := filepath.Base(containerPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(containerPath)
	}

	return filepath.Join(dir, stem+format.Ext())
}
