package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/apodego/apode/internal/compression"
	"github.com/apodego/apode/internal/config"
	"github.com/apodego/apode/internal/dataset"
	"github.com/apodego/apode/internal/logging"
	"github.com/apodego/apode/internal/models"
)

const csvExtension = ".csv"

// DatasetStore serves the CSV files of a directory by name. A dataset named
// "incomes" is read from incomes.csv or, failing that, incomes.csv.snappy.
// Files are parsed on every load; nothing is cached.
type DatasetStore struct {
	logger  *logging.Logger
	dataDir string
	maxRows int
}

// NewDatasetStore creates a new DatasetStore
func NewDatasetStore(logger *logging.Logger, cfg config.DatasetsConfig) *DatasetStore {
	return &DatasetStore{
		logger:  logger,
		dataDir: cfg.DataDir,
		maxRows: cfg.MaxRows,
	}
}

// ValidateName rejects names that could escape the data directory
func ValidateName(name string) error {
	if name == "" || len(name) > 128 {
		return fmt.Errorf("invalid dataset name %q", name)
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case (r == '_' || r == '-' || r == '.') && i > 0:
		default:
			return fmt.Errorf("invalid dataset name %q", name)
		}
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("invalid dataset name %q", name)
	}
	return nil
}

// List returns the datasets found in the data directory, sorted by name. A
// missing directory holds no datasets.
func (s *DatasetStore) List() ([]models.DatasetInfo, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.DatasetInfo{}, nil
		}
		return nil, NewServiceError(CodeInternal, fmt.Sprintf("failed to read data directory: %v", err))
	}

	byName := make(map[string]models.DatasetInfo)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, compressed, ok := datasetName(entry.Name())
		if !ok || ValidateName(name) != nil {
			continue
		}
		// plain files win over their compressed twin
		if existing, dup := byName[name]; dup && !existing.Compressed {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		byName[name] = models.DatasetInfo{
			Name:       name,
			File:       entry.Name(),
			Compressed: compressed,
			Size:       info.Size(),
		}
	}

	result := make([]models.DatasetInfo, 0, len(byName))
	for _, info := range byName {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Info loads a dataset and reports its file, columns and row count
func (s *DatasetStore) Info(ctx context.Context, name string) (*models.DatasetInfo, *dataset.Frame, error) {
	path, err := s.locate(name)
	if err != nil {
		return nil, nil, err
	}
	frame, err := s.load(ctx, name, path)
	if err != nil {
		return nil, nil, err
	}
	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, NewServiceError(CodeInternal, err.Error())
	}
	return &models.DatasetInfo{
		Name:       name,
		File:       filepath.Base(path),
		Compressed: compression.ForPath(path) == compression.Snappy,
		Size:       stat.Size(),
		Columns:    frame.Columns(),
		Rows:       frame.Rows(),
	}, frame, nil
}

// Load reads the named dataset
func (s *DatasetStore) Load(ctx context.Context, name string) (*dataset.Frame, error) {
	path, err := s.locate(name)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, name, path)
}

func (s *DatasetStore) load(ctx context.Context, name, path string) (*dataset.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	frame, err := dataset.LoadFile(path, s.maxRows)
	if err != nil {
		s.logger.Warn("Failed to load dataset", "dataset", name, "path", path, "error", err)
		return nil, NewServiceErrorWithDetails(CodeDatasetLoadError, err.Error(), map[string]interface{}{
			"dataset": name,
		})
	}
	s.logger.Debug("Dataset loaded", "dataset", name, "rows", frame.Rows(), "columns", len(frame.Columns()))
	return frame, nil
}

// locate resolves a dataset name to an existing file
func (s *DatasetStore) locate(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", NewServiceError(CodeInvalidRequest, err.Error())
	}
	base := filepath.Join(s.dataDir, name+csvExtension)
	for _, path := range []string{base, base + compression.Snappy.Extension()} {
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", NewServiceErrorWithDetails(CodeDatasetNotFound,
		fmt.Sprintf("dataset %q not found", name),
		map[string]interface{}{"dataset": name})
}

// datasetName strips the dataset extensions from a file name
func datasetName(file string) (name string, compressed bool, ok bool) {
	if trimmed, found := strings.CutSuffix(file, compression.Snappy.Extension()); found {
		file, compressed = trimmed, true
	}
	name, ok = strings.CutSuffix(file, csvExtension)
	return name, compressed, ok && name != ""
}
