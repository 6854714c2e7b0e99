package forecasting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/demand-forecast-api/internal/domain"
)

// Erros específicos para o contexto de previsão
var (
	ErrStoreOutOfRange    = errors.New("loja fora do intervalo do dataset")
	ErrInputOutOfRange    = errors.New("entrada fora do intervalo reconhecido")
	ErrDatasetUnavailable = errors.New("dataset histórico indisponível")
)

// ForecastError é um erro com contexto adicional para previsões
type ForecastError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	StoreID int    // Loja envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *ForecastError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ForecastError) Unwrap() error {
	return e.Err
}

func NewForecastError(err error, code string, details string) *ForecastError {
	return &ForecastError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewForecastErrorWithStore(err error, code string, storeID int, details string) *ForecastError {
	return &ForecastError{
		Err:     err,
		Code:    code,
		StoreID: storeID,
		Details: details,
	}
}

func joinDimensions(dims []domain.Dimension) string {
	names := make([]string, len(dims))
	for i, d := range dims {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}
