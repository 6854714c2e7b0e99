package demand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/demand-forecast-api/internal/domain"
)

func TestSweep(t *testing.T) {
	baseline := 20000.0
	inputs := domain.ModelInputs{
		IsHoliday:    true,
		Temperature:  55,
		FuelPrice:    3.1,
		CPI:          215,
		Unemployment: 8.5,
	}

	for _, model := range []Model{FactorModel{}, CoefficientModel{}} {
		for _, dimension := range domain.Dimensions() {
			t.Run(string(model.Variant())+"/"+string(dimension), func(t *testing.T) {
				r, ok := domain.RangeOf(dimension)
				require.True(t, ok)
				xs := []float64{r.Min, (r.Min + r.Max) / 2, r.Max}

				curve, err := Sweep(model, baseline, inputs, dimension, xs)
				require.NoError(t, err)

				assert.Equal(t, dimension, curve.Dimension)
				assert.Equal(t, xs, curve.Domain)
				require.Len(t, curve.Values, len(xs))

				for i, x := range xs {
					modified, _ := inputs.With(dimension, x)
					assert.Equal(t, model.Predict(baseline, modified), curve.Values[i])
				}

				currentX, _ := inputs.Value(dimension)
				assert.Equal(t, currentX, curve.Current.X)
				assert.Equal(t, model.Predict(baseline, inputs), curve.Current.Y)
			})
		}
	}
}

func TestSweep_SingleElementAtCurrentValue(t *testing.T) {
	inputs := domain.ModelInputs{Temperature: 82, FuelPrice: 3.9, CPI: 240, Unemployment: 6.2}

	for _, model := range []Model{FactorModel{}, CoefficientModel{}} {
		for _, dimension := range domain.Dimensions() {
			x, _ := inputs.Value(dimension)

			curve, err := Sweep(model, 31000, inputs, dimension, []float64{x})
			require.NoError(t, err)
			require.Len(t, curve.Values, 1)
			assert.Equal(t, model.Predict(31000, inputs), curve.Values[0])
		}
	}
}

func TestSweep_EmptyDomain(t *testing.T) {
	curve, err := Sweep(FactorModel{}, 20000, domain.ReferenceInputs(), domain.DimensionCPI, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, curve.Len())
	assert.Empty(t, curve.Values)
	assert.Equal(t, 20000.0, curve.Current.Y)
}

func TestSweep_DoesNotChangeOtherInputs(t *testing.T) {
	inputs := domain.ReferenceInputs()

	curve, err := Sweep(CoefficientModel{}, 20000, inputs, domain.DimensionFuelPrice, []float64{2, 3, 4, 5})
	require.NoError(t, err)

	// a curva de combustível do modelo aditivo é linear com inclinação igual ao coeficiente
	for i := 1; i < curve.Len(); i++ {
		assert.InDelta(t, CoefFuel, curve.Values[i]-curve.Values[i-1], 1e-6)
	}
	assert.Equal(t, domain.ReferenceInputs(), inputs)
}

func TestSweep_UnknownDimension(t *testing.T) {
	_, err := Sweep(FactorModel{}, 20000, domain.ReferenceInputs(), domain.Dimension("humidity"), []float64{1})
	assert.ErrorIs(t, err, ErrUnknownDimension)
}
