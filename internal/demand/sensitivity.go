package demand

import (
	"fmt"

	"github.com/vfg2006/demand-forecast-api/internal/domain"
)

// Sweep avalia o modelo em cada x do domínio variando apenas a dimensão escolhida e
// mantendo as demais entradas fixas. O domínio é fornecido pelo chamador; um domínio vazio
// gera uma curva vazia. O ponto atual (valor corrente da dimensão e sua previsão) é sempre
// reportado.
func Sweep(
	model Model,
	baseline float64,
	inputs domain.ModelInputs,
	dimension domain.Dimension,
	xs []float64,
) (domain.SensitivityCurve, error) {
	currentX, ok := inputs.Value(dimension)
	if !ok {
		return domain.SensitivityCurve{}, fmt.Errorf("%w: %q", ErrUnknownDimension, dimension)
	}

	curve := domain.SensitivityCurve{
		Dimension: dimension,
		Domain:    make([]float64, 0, len(xs)),
		Values:    make([]float64, 0, len(xs)),
		Current: domain.CurvePoint{
			X: currentX,
			Y: model.Predict(baseline, inputs),
		},
	}

	for _, x := range xs {
		modified, _ := inputs.With(dimension, x)
		curve.Domain = append(curve.Domain, x)
		curve.Values = append(curve.Values, model.Predict(baseline, modified))
	}

	return curve, nil
}
