package domain

import (
	"fmt"
	"strings"
)

// Dimension identifica uma variável de entrada do modelo que pode ser varrida na análise de sensibilidade
type Dimension string

const (
	DimensionTemperature  Dimension = "temperature"
	DimensionFuelPrice    Dimension = "fuel_price"
	DimensionCPI          Dimension = "cpi"
	DimensionUnemployment Dimension = "unemployment"
)

// Dimensions retorna todas as dimensões na ordem de exibição
func Dimensions() []Dimension {
	return []Dimension{
		DimensionTemperature,
		DimensionFuelPrice,
		DimensionCPI,
		DimensionUnemployment,
	}
}

func (d Dimension) IsValid() bool {
	switch d {
	case DimensionTemperature, DimensionFuelPrice, DimensionCPI, DimensionUnemployment:
		return true
	}
	return false
}

// ParseDimension converte o texto recebido na API para uma Dimension
func ParseDimension(s string) (Dimension, error) {
	d := Dimension(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", fmt.Errorf("dimensão inválida: %q", s)
	}
	return d, nil
}

// InputRange é o intervalo reconhecido de uma variável de entrada
type InputRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r InputRange) Contains(x float64) bool {
	return x >= r.Min && x <= r.Max
}

var inputRanges = map[Dimension]InputRange{
	DimensionTemperature:  {Min: 20, Max: 120},
	DimensionFuelPrice:    {Min: 2.0, Max: 5.0},
	DimensionCPI:          {Min: 200, Max: 300},
	DimensionUnemployment: {Min: 3.0, Max: 15.0},
}

// RangeOf retorna o intervalo reconhecido da dimensão
func RangeOf(d Dimension) (InputRange, bool) {
	r, ok := inputRanges[d]
	return r, ok
}

// ModelInputs são os valores correntes das variáveis exógenas para uma avaliação.
// Temperatura em °F, combustível em $/gal e desemprego em %.
type ModelInputs struct {
	IsHoliday    bool    `json:"is_holiday"`
	Temperature  float64 `json:"temperature"`
	FuelPrice    float64 `json:"fuel_price"`
	CPI          float64 `json:"cpi"`
	Unemployment float64 `json:"unemployment"`
}

// ReferenceInputs são os valores de referência dos modelos (todos os fatores neutros)
func ReferenceInputs() ModelInputs {
	return ModelInputs{
		IsHoliday:    false,
		Temperature:  70,
		FuelPrice:    3.5,
		CPI:          220,
		Unemployment: 7,
	}
}

// Value lê o valor corrente de uma dimensão
func (m ModelInputs) Value(d Dimension) (float64, bool) {
	switch d {
	case DimensionTemperature:
		return m.Temperature, true
	case DimensionFuelPrice:
		return m.FuelPrice, true
	case DimensionCPI:
		return m.CPI, true
	case DimensionUnemployment:
		return m.Unemployment, true
	}
	return 0, false
}

// With retorna uma cópia das entradas com a dimensão alterada para x
func (m ModelInputs) With(d Dimension, x float64) (ModelInputs, bool) {
	switch d {
	case DimensionTemperature:
		m.Temperature = x
	case DimensionFuelPrice:
		m.FuelPrice = x
	case DimensionCPI:
		m.CPI = x
	case DimensionUnemployment:
		m.Unemployment = x
	default:
		return m, false
	}
	return m, true
}

// OutOfRange lista as dimensões cujo valor está fora do intervalo reconhecido
func (m ModelInputs) OutOfRange() []Dimension {
	var invalid []Dimension
	for _, d := range Dimensions() {
		value, _ := m.Value(d)
		r, _ := RangeOf(d)
		if !r.Contains(value) {
			invalid = append(invalid, d)
		}
	}
	return invalid
}
