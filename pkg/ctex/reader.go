package ctex

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Reader reads a single CTEX container file
type Reader struct {
	containerPath string
	file          *os.File
	size          int64
	logger        hclog.Logger
}

// NewReader creates a new CTEX reader
func NewReader(containerPath string) *Reader {
	return NewReaderWithLogger(containerPath, hclog.NewNullLogger())
}

// NewReaderWithLogger creates a new CTEX reader with a custom logger
func NewReaderWithLogger(containerPath string, logger hclog.Logger) *Reader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Reader{
		containerPath: containerPath,
		logger:        logger,
	}
}

// Open opens the container file and validates the minimum length
func (r *Reader) Open() error {
	if r.file != nil {
		return nil
	}

	file, err := os.Open(r.containerPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}

	if info.Size() < HeaderSize {
		file.Close()
		return fmt.Errorf("%w: got %d bytes", ErrFileTooSmall, info.Size())
	}

	r.file = file
	r.size = info.Size()

	r.logger.Debug("📂 Opened container", "path", r.containerPath, "size", info.Size())
	return nil
}

// Close closes the container file
func (r *Reader) Close() error {
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

// Size returns the total container file size. Valid after Open.
func (r *Reader) Size() int64 {
	return r.size
}

// PayloadSize returns the byte count after the fixed header. Valid after Open.
func (r *Reader) PayloadSize() int64 {
	return r.size - HeaderSize
}

// ReadFormat reads the 4-byte little-endian format tag at its fixed offset
func (r *Reader) ReadFormat() (Format, error) {
	if err := r.Open(); err != nil {
		return 0, err
	}

	var tag [FormatTagSize]byte
	if _, err := r.file.ReadAt(tag[:], FormatTagOffset); err != nil {
		// Should not occur given the length check in Open, but the
		// invariant is still enforced here.
		return 0, fmt.Errorf("%w: %v", ErrTruncatedHeader, err)
	}

	format := Format(binary.LittleEndian.Uint32(tag[:]))
	r.logger.Debug("🔍 Read format tag", "tag", uint32(format), "format", format.Name())

	return format, nil
}

// ReadPayload reads every byte after the fixed header
func (r *Reader) ReadPayload() ([]byte, error) {
	if err := r.Open(); err != nil {
		return nil, err
	}

	if _, err := r.file.Seek(HeaderSize, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedHeader, err)
	}

	payload, err := io.ReadAll(r.file)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}

	r.logger.Debug("📦 Read payload", "bytes", len(payload))
	return payload, nil
}
