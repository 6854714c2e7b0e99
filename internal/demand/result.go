package demand

import "github.com/vfg2006/demand-forecast-api/internal/domain"

// NewPredictionResult calcula a variação percentual da previsão sobre a média histórica.
// Média zero retorna ErrUndefinedRatio em vez de infinito ou NaN.
func NewPredictionResult(baseline, predicted float64) (domain.PredictionResult, error) {
	if baseline == 0 {
		return domain.PredictionResult{}, ErrUndefinedRatio
	}

	return domain.PredictionResult{
		BaselineSales:  baseline,
		PredictedSales: predicted,
		PercentChange:  (predicted - baseline) / baseline * 100,
	}, nil
}
