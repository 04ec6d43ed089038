package services

import (
	"context"

	"github.com/apodego/apode/internal/config"
	"github.com/apodego/apode/internal/logging"
	"github.com/apodego/apode/internal/models"
	"github.com/apodego/apode/internal/utils"
)

// DatasetService exposes the generic surface of stored datasets:
// listings, descriptive statistics and generic plots
type DatasetService struct {
	logger  *logging.Logger
	store   *DatasetStore
	samples *sampleResolver
}

// NewDatasetService creates a new DatasetService
func NewDatasetService(logger *logging.Logger, store *DatasetStore, cfg *config.Config) *DatasetService {
	return &DatasetService{
		logger:  logger,
		store:   store,
		samples: newSampleResolver(store, cfg),
	}
}

// List returns the stored datasets
func (s *DatasetService) List() (*models.DatasetListResponse, error) {
	datasets, err := s.store.List()
	if err != nil {
		return nil, err
	}
	return &models.DatasetListResponse{Datasets: datasets}, nil
}

// Describe loads a dataset and evaluates every stat of every column
func (s *DatasetService) Describe(ctx context.Context, name string) (*models.DescribeResponse, error) {
	info, frame, err := s.store.Info(ctx, name)
	if err != nil {
		return nil, err
	}
	desc, err := frame.Describe()
	if err != nil {
		return nil, FromError(err)
	}
	for _, stats := range desc {
		for stat, v := range stats {
			if !utils.IsFinite(v) {
				delete(stats, stat)
			}
		}
	}
	return &models.DescribeResponse{
		Dataset: info.Name,
		Rows:    info.Rows,
		Columns: desc,
	}, nil
}

// Stat evaluates one descriptive statistic of a dataset column
func (s *DatasetService) Stat(ctx context.Context, req *models.SurfaceRequest) (*models.StatResponse, error) {
	data, column, err := s.samples.resolve(ctx, models.SampleRef{Dataset: req.Dataset, Column: req.Column})
	if err != nil {
		return nil, err
	}
	value, err := data.Stat(req.Name)
	if err != nil {
		return nil, FromError(err)
	}
	if !utils.IsFinite(value) {
		// std of a single row and stats of an empty column
		return nil, NewServiceError(CodeEmptySample, "stat "+req.Name+" is undefined for this column")
	}
	return &models.StatResponse{
		Dataset: req.Dataset,
		Column:  column,
		Stat:    req.Name,
		Value:   value,
	}, nil
}

// Plot builds one generic plot of a dataset column
func (s *DatasetService) Plot(ctx context.Context, req *models.SurfaceRequest) (*models.PlotResponse, error) {
	data, column, err := s.samples.resolve(ctx, models.SampleRef{Dataset: req.Dataset, Column: req.Column})
	if err != nil {
		return nil, err
	}
	series, err := data.PlotData(req.Name)
	if err != nil {
		return nil, FromError(err)
	}
	return &models.PlotResponse{
		Dataset: req.Dataset,
		Column:  column,
		Plot:    req.Name,
		Series:  series,
	}, nil
}
