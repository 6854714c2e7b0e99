package domain

import (
	"fmt"
	"strings"
	"time"
)

// ModelVariant identifica a formulação do modelo de previsão
type ModelVariant string

const (
	// ModelVariantFactor multiplica a média histórica por fatores de ajuste independentes
	ModelVariantFactor ModelVariant = "factor"
	// ModelVariantCoefficient soma termos lineares/quadráticos à média histórica
	ModelVariantCoefficient ModelVariant = "coefficient"
)

func ParseModelVariant(s string) (ModelVariant, error) {
	v := ModelVariant(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case ModelVariantFactor, ModelVariantCoefficient:
		return v, nil
	}
	return "", fmt.Errorf("modelo inválido: %q", s)
}

// PredictionResult é derivado a cada avaliação e nunca alterado depois de criado
type PredictionResult struct {
	BaselineSales  float64 `json:"baseline_sales"`
	PredictedSales float64 `json:"predicted_sales"`
	PercentChange  float64 `json:"percent_change"`
}

// CurvePoint marca o ponto de operação atual sobre a curva
type CurvePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SensitivityCurve é a venda prevista em função de uma única entrada, com as demais fixas
type SensitivityCurve struct {
	Dimension Dimension  `json:"dimension"`
	Domain    []float64  `json:"domain"`
	Values    []float64  `json:"values"`
	Current   CurvePoint `json:"current"`
}

func (c SensitivityCurve) Len() int {
	return len(c.Domain)
}

// PredictionResponse é o resultado de uma previsão entregue à camada de apresentação
type PredictionResponse struct {
	StoreID     int              `json:"store_id"`
	Model       ModelVariant     `json:"model"`
	Inputs      ModelInputs      `json:"inputs"`
	Result      PredictionResult `json:"result"`
	RecordCount int              `json:"record_count"`
}

// SensitivityResponse agrupa as curvas solicitadas para uma loja
type SensitivityResponse struct {
	StoreID int                `json:"store_id"`
	Model   ModelVariant       `json:"model"`
	Inputs  ModelInputs        `json:"inputs"`
	Curves  []SensitivityCurve `json:"curves"`
}

type TrendPoint struct {
	Date        time.Time `json:"date"`
	WeeklySales float64   `json:"weekly_sales"`
}

// TrendResponse traz as vendas recentes da loja e a previsão atual como linha de referência
type TrendResponse struct {
	StoreID        int          `json:"store_id"`
	Points         []TrendPoint `json:"points"`
	PredictedSales float64      `json:"predicted_sales"`
}
