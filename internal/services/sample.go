package services

import (
	"context"
	"fmt"

	"github.com/apodego/apode/internal/apode"
	"github.com/apodego/apode/internal/config"
	"github.com/apodego/apode/internal/models"
)

// sampleResolver binds the sample a request refers to
type sampleResolver struct {
	store    *DatasetStore
	datasets config.DatasetsConfig
	bins     int
}

func newSampleResolver(store *DatasetStore, cfg *config.Config) *sampleResolver {
	return &sampleResolver{
		store:    store,
		datasets: cfg.Datasets,
		bins:     cfg.Analytics.HistogramBins,
	}
}

// resolve returns the bound data and the effective column name. Inline
// values have no column.
func (r *sampleResolver) resolve(ctx context.Context, ref models.SampleRef) (*apode.Data, string, error) {
	opts := []apode.Option{apode.WithHistogramBins(r.bins)}

	if ref.Inline() {
		if r.datasets.MaxRows > 0 && len(ref.Values) > r.datasets.MaxRows {
			return nil, "", NewServiceError(CodeOutOfRange,
				fmt.Sprintf("sample has %d values, limit is %d", len(ref.Values), r.datasets.MaxRows))
		}
		data, err := apode.FromValues(ref.Values, opts...)
		if err != nil {
			return nil, "", FromError(err)
		}
		return data, "", nil
	}

	frame, err := r.store.Load(ctx, ref.Dataset)
	if err != nil {
		return nil, "", err
	}
	column := ref.Column
	if column == "" {
		column = r.datasets.DefaultColumn
	}
	data, err := apode.New(frame, column, opts...)
	if err != nil {
		return nil, "", NewServiceErrorWithDetails(CodeColumnNotFound, err.Error(), map[string]interface{}{
			"dataset": ref.Dataset,
			"column":  column,
			"columns": frame.Columns(),
		})
	}
	return data, column, nil
}
