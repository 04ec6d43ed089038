package dataset

import (
	"fmt"
	"os"

	"github.com/apodego/apode/internal/compression"
)

// LoadFile reads a CSV dataset from path. Files ending in .snappy are
// decoded as framed snappy streams.
func LoadFile(path string, maxRows int) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	codec, err := compression.GetCompressor(compression.ForPath(path))
	if err != nil {
		return nil, err
	}
	f, err := ReadCSV(codec.NewReader(file), maxRows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// WriteFile writes the frame as CSV to path, compressing it when the path
// ends in .snappy
func WriteFile(path string, f *Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset: %w", err)
	}

	codec, err := compression.GetCompressor(compression.ForPath(path))
	if err != nil {
		file.Close()
		return err
	}
	w := codec.NewWriter(file)
	if err := WriteCSV(w, f); err != nil {
		file.Close()
		return err
	}
	if err := w.Close(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush dataset: %w", err)
	}
	return file.Close()
}
