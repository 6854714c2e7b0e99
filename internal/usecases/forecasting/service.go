// Package forecasting orquestra histórico, cache e motor de previsão para as requisições da API
package forecasting

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/demand-forecast-api/infrastructure/cache"
	"github.com/vfg2006/demand-forecast-api/infrastructure/repository"
	"github.com/vfg2006/demand-forecast-api/internal/config"
	"github.com/vfg2006/demand-forecast-api/internal/demand"
	"github.com/vfg2006/demand-forecast-api/internal/domain"
	"github.com/vfg2006/demand-forecast-api/pkg/apiErrors"
	"github.com/vfg2006/demand-forecast-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/forecaster.go -package=mocks

type Forecaster interface {
	GetStoreRange(ctx context.Context) (*domain.StoreRange, error)
	Predict(ctx context.Context, req PredictionRequest) (*domain.PredictionResponse, error)
	Sensitivity(ctx context.Context, req SensitivityRequest) (*domain.SensitivityResponse, error)
	RecentTrend(ctx context.Context, req PredictionRequest) (*domain.TrendResponse, error)
}

// PredictionRequest descreve uma avaliação. Model vazio usa a variante configurada.
type PredictionRequest struct {
	StoreID int
	Inputs  domain.ModelInputs
	Model   domain.ModelVariant
}

// SensitivityRequest sem dimensões calcula as curvas de todas as dimensões
type SensitivityRequest struct {
	PredictionRequest
	Dimensions []domain.Dimension
}

type Service struct {
	historyRepository repository.HistoryRepository
	historyCache      cache.HistoryCache
	defaultVariant    domain.ModelVariant
	samples           int
	trendWindow       int
}

func NewService(
	historyRepository repository.HistoryRepository,
	historyCache cache.HistoryCache,
	cfg config.Forecast,
) Forecaster {
	return &Service{
		historyRepository: historyRepository,
		historyCache:      historyCache,
		defaultVariant:    domain.ModelVariant(cfg.ModelVariant),
		samples:           cfg.SensitivitySamples,
		trendWindow:       cfg.TrendWindow,
	}
}

func (s *Service) GetStoreRange(ctx context.Context) (*domain.StoreRange, error) {
	storeRange, err := s.historyRepository.GetStoreRange(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao consultar faixa de lojas")
		return nil, NewForecastError(ErrDatasetUnavailable, apiErrors.ErrDatasetUnavailable, "falha ao consultar o histórico")
	}

	if storeRange == nil {
		return nil, NewForecastError(ErrDatasetUnavailable, apiErrors.ErrDatasetUnavailable, "dataset vazio ou ainda não carregado")
	}

	return storeRange, nil
}

func (s *Service) Predict(ctx context.Context, req PredictionRequest) (*domain.PredictionResponse, error) {
	model, err := s.resolveModel(req)
	if err != nil {
		return nil, err
	}

	history, baseline, err := s.baselineFor(ctx, req.StoreID)
	if err != nil {
		return nil, err
	}

	predicted := model.Predict(baseline, req.Inputs)
	result, err := demand.NewPredictionResult(baseline, predicted)
	if err != nil {
		if errors.Is(err, demand.ErrUndefinedRatio) {
			return nil, NewForecastErrorWithStore(err, apiErrors.ErrUndefinedRatio, req.StoreID, "média histórica igual a zero")
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"store_id":  req.StoreID,
		"model":     model.Variant(),
		"baseline":  baseline,
		"predicted": predicted,
	}).Debug("Previsão calculada")

	return &domain.PredictionResponse{
		StoreID:     req.StoreID,
		Model:       model.Variant(),
		Inputs:      req.Inputs,
		Result:      result,
		RecordCount: history.Len(),
	}, nil
}

func (s *Service) Sensitivity(ctx context.Context, req SensitivityRequest) (*domain.SensitivityResponse, error) {
	dimensions := req.Dimensions
	if len(dimensions) == 0 {
		dimensions = domain.Dimensions()
	}

	for _, d := range dimensions {
		if !d.IsValid() {
			return nil, NewForecastError(demand.ErrUnknownDimension, apiErrors.ErrInvalidRequest, string(d))
		}
	}

	model, err := s.resolveModel(req.PredictionRequest)
	if err != nil {
		return nil, err
	}

	_, baseline, err := s.baselineFor(ctx, req.StoreID)
	if err != nil {
		return nil, err
	}

	curves := make([]domain.SensitivityCurve, len(dimensions))
	errs := make([]error, len(dimensions))

	wg := sync.WaitGroup{}
	for i, d := range dimensions {
		wg.Add(1)

		go func(i int, d domain.Dimension) {
			defer wg.Done()

			r, _ := domain.RangeOf(d)
			curves[i], errs[i] = demand.Sweep(model, baseline, req.Inputs, d, utils.Linspace(r.Min, r.Max, s.samples))
		}(i, d)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, NewForecastErrorWithStore(err, apiErrors.ErrInvalidRequest, req.StoreID, "")
		}
	}

	return &domain.SensitivityResponse{
		StoreID: req.StoreID,
		Model:   model.Variant(),
		Inputs:  req.Inputs,
		Curves:  curves,
	}, nil
}

func (s *Service) RecentTrend(ctx context.Context, req PredictionRequest) (*domain.TrendResponse, error) {
	model, err := s.resolveModel(req)
	if err != nil {
		return nil, err
	}

	history, baseline, err := s.baselineFor(ctx, req.StoreID)
	if err != nil {
		return nil, err
	}

	recent := history.Recent(s.trendWindow)
	points := make([]domain.TrendPoint, 0, len(recent))
	for _, record := range recent {
		points = append(points, domain.TrendPoint{
			Date:        record.Date,
			WeeklySales: record.WeeklySales,
		})
	}

	return &domain.TrendResponse{
		StoreID:        req.StoreID,
		Points:         points,
		PredictedSales: model.Predict(baseline, req.Inputs),
	}, nil
}

// resolveModel valida as entradas e escolhe a variante do modelo
func (s *Service) resolveModel(req PredictionRequest) (demand.Model, error) {
	if invalid := req.Inputs.OutOfRange(); len(invalid) > 0 {
		return nil, NewForecastErrorWithStore(ErrInputOutOfRange, apiErrors.ErrOutOfRange, req.StoreID, joinDimensions(invalid))
	}

	variant := req.Model
	if variant == "" {
		variant = s.defaultVariant
	}

	model, err := demand.NewModel(variant)
	if err != nil {
		return nil, NewForecastError(err, apiErrors.ErrInvalidRequest, string(variant))
	}

	return model, nil
}

func (s *Service) baselineFor(ctx context.Context, storeID int) (domain.StoreHistory, float64, error) {
	history, err := s.loadHistory(ctx, storeID)
	if err != nil {
		return domain.StoreHistory{}, 0, err
	}

	baseline, err := demand.Baseline(history)
	if err != nil {
		if errors.Is(err, demand.ErrEmptyHistory) {
			return domain.StoreHistory{}, 0, NewForecastErrorWithStore(err, apiErrors.ErrStoreWithoutHistory, storeID, fmt.Sprintf("loja %d", storeID))
		}
		return domain.StoreHistory{}, 0, err
	}

	return history, baseline, nil
}

// loadHistory consulta o cache antes do repositório. Falhas de cache não interrompem a requisição.
// A geração é lida antes da série, então uma recarga concorrente só pode fazer a série nova ser
// gravada sob a geração antiga, nunca o contrário.
func (s *Service) loadHistory(ctx context.Context, storeID int) (domain.StoreHistory, error) {
	storeRange, err := s.GetStoreRange(ctx)
	if err != nil {
		return domain.StoreHistory{}, err
	}

	if !storeRange.Contains(storeID) {
		return domain.StoreHistory{}, NewForecastErrorWithStore(
			ErrStoreOutOfRange,
			apiErrors.ErrOutOfRange,
			storeID,
			fmt.Sprintf("loja %d fora de [%d, %d]", storeID, storeRange.MinStoreID, storeRange.MaxStoreID),
		)
	}

	generation := s.historyRepository.Generation()

	cached, err := s.historyCache.Get(ctx, generation, storeID)
	if err != nil {
		logrus.WithError(err).WithField("store_id", storeID).Warn("Erro ao ler histórico do cache")
	}
	if cached != nil {
		return *cached, nil
	}

	history, err := s.historyRepository.GetStoreHistory(ctx, storeID)
	if err != nil {
		logrus.WithError(err).WithField("store_id", storeID).Error("Erro ao buscar histórico da loja")
		return domain.StoreHistory{}, NewForecastErrorWithStore(ErrDatasetUnavailable, apiErrors.ErrDatasetUnavailable, storeID, "falha ao consultar o histórico")
	}

	if !history.IsEmpty() {
		if err := s.historyCache.Set(ctx, generation, history); err != nil {
			logrus.WithError(err).WithField("store_id", storeID).Warn("Erro ao gravar histórico no cache")
		}
	}

	return history, nil
}
