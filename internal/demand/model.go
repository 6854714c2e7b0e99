package demand

import (
	"fmt"
	"math"

	"github.com/vfg2006/demand-forecast-api/internal/domain"
)

// Model transforma a média histórica e as entradas correntes em uma venda prevista.
// Implementações são puras: mesmos argumentos, mesmo resultado.
type Model interface {
	Variant() domain.ModelVariant
	Predict(baseline float64, in domain.ModelInputs) float64
}

// NewModel escolhe a formulação do modelo. As duas variantes são igualmente válidas e
// não devem ser reconciliadas numericamente.
func NewModel(variant domain.ModelVariant) (Model, error) {
	switch variant {
	case domain.ModelVariantFactor:
		return FactorModel{}, nil
	case domain.ModelVariantCoefficient:
		return CoefficientModel{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownModelVariant, variant)
}

// Pontos de referência onde os ajustes são neutros
const (
	ReferenceTemperature  = 70.0
	ReferenceFuelPrice    = 3.5
	ReferenceCPI          = 220.0
	ReferenceUnemployment = 7.0
)

// Parâmetros do modelo multiplicativo
const (
	HolidayMultiplier       = 1.15
	TemperatureWidth        = 40.0
	FuelSensitivity         = 0.05
	CPISensitivity          = 0.002
	UnemploymentSensitivity = 0.04
)

// Coeficientes do modelo aditivo, decididos offline
const (
	CoefHoliday          = 6634.0369
	CoefFuel             = 11830.0
	CoefCPI              = -9.8499
	CoefUnemployment     = -418.9919
	TemperatureCurvature = -196.8391
)

// FactorModel multiplica a média por fatores independentes por entrada
type FactorModel struct{}

func (FactorModel) Variant() domain.ModelVariant {
	return domain.ModelVariantFactor
}

func (FactorModel) Predict(baseline float64, in domain.ModelInputs) float64 {
	return baseline *
		HolidayFactor(in.IsHoliday) *
		TemperatureFactor(in.Temperature) *
		FuelFactor(in.FuelPrice) *
		CPIFactor(in.CPI) *
		UnemploymentFactor(in.Unemployment)
}

func HolidayFactor(isHoliday bool) float64 {
	if isHoliday {
		return HolidayMultiplier
	}
	return 1.0
}

// TemperatureFactor é uma gaussiana centrada em 70°F com pico 1.0, sempre positiva
func TemperatureFactor(t float64) float64 {
	d := t - ReferenceTemperature
	return math.Exp(-(d * d) / (2 * TemperatureWidth * TemperatureWidth))
}

// FuelFactor penaliza linearmente acima de $3.5/gal. Não é limitado: fica negativo a partir de $23.5.
func FuelFactor(f float64) float64 {
	return 1 - (f-ReferenceFuelPrice)*FuelSensitivity
}

func CPIFactor(c float64) float64 {
	return 1 + (c-ReferenceCPI)*CPISensitivity
}

func UnemploymentFactor(u float64) float64 {
	return 1 - (u-ReferenceUnemployment)*UnemploymentSensitivity
}

// CoefficientModel soma termos por entrada à média. A parábola de temperatura não tem
// limite inferior, então previsões negativas são devolvidas como estão.
type CoefficientModel struct{}

func (CoefficientModel) Variant() domain.ModelVariant {
	return domain.ModelVariantCoefficient
}

func (CoefficientModel) Predict(baseline float64, in domain.ModelInputs) float64 {
	var holiday float64
	if in.IsHoliday {
		holiday = 1
	}

	return baseline +
		CoefHoliday*holiday +
		TemperatureEffect(in.Temperature) +
		CoefFuel*in.FuelPrice +
		CoefCPI*in.CPI +
		CoefUnemployment*in.Unemployment
}

// TemperatureEffect é uma parábola invertida com máximo zero em 70°F
func TemperatureEffect(t float64) float64 {
	d := t - ReferenceTemperature
	return TemperatureCurvature * d * d
}
