package services

import (
	"context"
	"fmt"
	"time"

	"github.com/apodego/apode/internal/analytics"
	"github.com/apodego/apode/internal/analytics/concentration"
	"github.com/apodego/apode/internal/analytics/curve"
	"github.com/apodego/apode/internal/analytics/inequality"
	"github.com/apodego/apode/internal/analytics/welfare"
	"github.com/apodego/apode/internal/apode"
	"github.com/apodego/apode/internal/config"
	"github.com/apodego/apode/internal/dataset"
	"github.com/apodego/apode/internal/downsampling"
	"github.com/apodego/apode/internal/logging"
	"github.com/apodego/apode/internal/models"
	"github.com/apodego/apode/internal/utils"
)

// MeasureService evaluates scalar measures
type MeasureService struct {
	logger    *logging.Logger
	samples   *sampleResolver
	analytics config.AnalyticsConfig
}

// NewMeasureService creates a new MeasureService
func NewMeasureService(logger *logging.Logger, store *DatasetStore, cfg *config.Config) *MeasureService {
	return &MeasureService{
		logger:    logger,
		samples:   newSampleResolver(store, cfg),
		analytics: cfg.Analytics,
	}
}

// Catalog lists every family with its effective default method, plus the
// generic stat and plot names reachable through fallbacks
func (s *MeasureService) Catalog() models.CatalogResponse {
	families := make(map[string]models.FamilyInfo)
	for family, methods := range apode.Methods() {
		def := s.analytics.DefaultMethod(family)
		if def == "" {
			def = familyDefault(family)
		}
		families[family] = models.FamilyInfo{Default: def, Methods: methods}
	}
	return models.CatalogResponse{
		Families: families,
		Stats:    dataset.StatNames(),
		Plots:    dataset.PlotNames(),
	}
}

// Execute evaluates one measure
func (s *MeasureService) Execute(ctx context.Context, req *models.MeasureRequest) (*models.MeasureResponse, error) {
	startTime := time.Now()

	opts, err := analytics.ParseOptions(req.Options)
	if err != nil {
		return nil, s.fail(ctx, req.Family, req.Method, err)
	}

	data, column, err := s.samples.resolve(ctx, req.SampleRef)
	if err != nil {
		return nil, s.fail(ctx, req.Family, req.Method, err)
	}

	acc, err := data.Accessor(req.Family)
	if err != nil {
		return nil, s.fail(ctx, req.Family, req.Method, err)
	}

	method := req.Method
	if method == "" {
		method = s.analytics.DefaultMethod(req.Family)
	}
	if method == "" {
		method = acc.Default()
	}

	value, err := acc.Call(method, opts...)
	if err != nil {
		return nil, s.fail(ctx, req.Family, method, err)
	}
	if !utils.IsFinite(value) {
		return nil, s.fail(ctx, req.Family, method,
			fmt.Errorf("%s: result %v is not finite: %w", method, value, analytics.ErrDomain))
	}

	s.logger.WithContext(ctx).Debug("Measure computed",
		"family", req.Family,
		"method", method,
		"dataset", req.Dataset,
		"n", data.Sample().Len(),
		"latency_ms", time.Since(startTime).Milliseconds())

	return &models.MeasureResponse{
		Family:  req.Family,
		Method:  method,
		Dataset: req.Dataset,
		Column:  column,
		N:       data.Sample().Len(),
		Value:   value,
		Options: optionValues(opts),
	}, nil
}

func (s *MeasureService) fail(ctx context.Context, family, method string, err error) *ServiceError {
	svcErr := FromError(err)
	s.logger.WithContext(ctx).Warn("Measure failed",
		"family", family,
		"method", method,
		"code", svcErr.Code,
		"error", svcErr.Message)
	return svcErr
}

// CurveService builds distribution curves
type CurveService struct {
	logger      *logging.Logger
	samples     *sampleResolver
	defaultKind string
}

// NewCurveService creates a new CurveService
func NewCurveService(logger *logging.Logger, store *DatasetStore, cfg *config.Config) *CurveService {
	kind := cfg.Analytics.Curve
	if kind == "" {
		kind = curve.DefaultKind
	}
	return &CurveService{
		logger:      logger,
		samples:     newSampleResolver(store, cfg),
		defaultKind: kind,
	}
}

// Execute builds one curve
func (s *CurveService) Execute(ctx context.Context, req *models.CurveRequest) (*models.CurveResponse, error) {
	startTime := time.Now()

	kind := req.Kind
	if kind == "" {
		kind = s.defaultKind
	}

	opts, err := analytics.ParseOptions(req.Options)
	if err != nil {
		return nil, s.fail(ctx, kind, err)
	}
	mode, err := downsampling.ParseMode(req.Downsampling)
	if err != nil {
		return nil, s.fail(ctx, kind, NewServiceError(CodeInvalidOption, err.Error()))
	}

	data, column, err := s.samples.resolve(ctx, req.SampleRef)
	if err != nil {
		return nil, s.fail(ctx, kind, err)
	}

	ds, err := data.Plot().Call(kind, opts...)
	if err != nil {
		return nil, s.fail(ctx, kind, err)
	}
	if !utils.AllFinite(ds.Population, ds.Variable, ds.Line, ds.PovertyLine) {
		return nil, s.fail(ctx, kind, fmt.Errorf("%s: curve is not finite: %w", kind, analytics.ErrDomain))
	}

	resp := &models.CurveResponse{
		Dataset: req.Dataset,
		Column:  column,
		N:       data.Sample().Len(),
		Options: optionValues(opts),
		Curve:   ds,
	}
	if mode != downsampling.ModeNone {
		thinned, err := ds.Thin(mode, req.Points)
		if err != nil {
			return nil, s.fail(ctx, kind, NewServiceError(CodeInternal, err.Error()))
		}
		if thinned.Len() < ds.Len() {
			resp.Curve = thinned
			resp.Downsampling = string(mode)
			resp.Points = ds.Len()
		}
	}

	s.logger.WithContext(ctx).Debug("Curve computed",
		"kind", ds.Kind,
		"dataset", req.Dataset,
		"n", data.Sample().Len(),
		"points", resp.Curve.Len(),
		"downsampling", resp.Downsampling,
		"latency_ms", time.Since(startTime).Milliseconds())

	return resp, nil
}

func (s *CurveService) fail(ctx context.Context, kind string, err error) *ServiceError {
	svcErr := FromError(err)
	s.logger.WithContext(ctx).Warn("Curve failed",
		"kind", kind,
		"code", svcErr.Code,
		"error", svcErr.Message)
	return svcErr
}

// familyDefault is the built-in default method of a family
func familyDefault(family string) string {
	switch family {
	case concentration.Family:
		return concentration.DefaultMethod
	case welfare.Family:
		return welfare.DefaultMethod
	case inequality.Family:
		return inequality.DefaultMethod
	case curve.Family:
		return curve.DefaultKind
	}
	return ""
}

func optionValues(opts []analytics.Option) map[string]any {
	values := analytics.NewOptions(opts...).Values()
	if len(values) == 0 {
		return nil
	}
	return values
}
