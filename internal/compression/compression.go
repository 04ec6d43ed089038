// Package compression selects the codec used for dataset files on disk.
package compression

import (
	"fmt"
	"io"
	"strings"
)

// Algorithm defines compression types
type Algorithm uint8

const (
	None   Algorithm = 0
	Snappy Algorithm = 1
)

func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case Snappy:
		return "snappy"
	}
	return fmt.Sprintf("algorithm(%d)", uint8(a))
}

// Extension returns the file suffix appended to compressed files
func (a Algorithm) Extension() string {
	if a == Snappy {
		return ".snappy"
	}
	return ""
}

// ParseAlgorithm maps a configuration or flag value to an Algorithm
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return None, nil
	case "snappy":
		return Snappy, nil
	}
	return None, fmt.Errorf("unsupported compression algorithm: %q", name)
}

// ForPath picks the algorithm from the file suffix
func ForPath(path string) Algorithm {
	if strings.HasSuffix(strings.ToLower(path), Snappy.Extension()) {
		return Snappy
	}
	return None
}

// Compressor wraps dataset payloads, either whole in memory or as streams
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)

	// NewReader returns a reader yielding the decompressed stream of r
	NewReader(r io.Reader) io.Reader

	// NewWriter returns a writer compressing into w. Close flushes but does
	// not close w.
	NewWriter(w io.Writer) io.WriteCloser

	Algorithm() Algorithm
}

// GetCompressor returns a compressor for the given algorithm
func GetCompressor(algo Algorithm) (Compressor, error) {
	switch algo {
	case None:
		return &NoneCompressor{}, nil
	case Snappy:
		return NewSnappyCompressor(), nil
	default:
		return nil, fmt.Errorf("unsupported compression algorithm: %d", algo)
	}
}

// NoneCompressor passes data through unchanged
type NoneCompressor struct{}

func (n *NoneCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (n *NoneCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

func (n *NoneCompressor) NewReader(r io.Reader) io.Reader {
	return r
}

func (n *NoneCompressor) NewWriter(w io.Writer) io.WriteCloser {
	return nopWriteCloser{w}
}

func (n *NoneCompressor) Algorithm() Algorithm {
	return None
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
