// Package demand contém o motor de previsão de vendas semanais: a média histórica da loja,
// os modelos de previsão e a varredura de sensibilidade. Nenhuma função deste pacote guarda
// estado entre chamadas.
package demand

import "github.com/vfg2006/demand-forecast-api/internal/domain"

// Baseline retorna a média aritmética das vendas semanais da série histórica.
// Falha com ErrEmptyHistory quando a série não tem registros.
func Baseline(history domain.StoreHistory) (float64, error) {
	if history.IsEmpty() {
		return 0, ErrEmptyHistory
	}

	var total float64
	for _, record := range history.Records {
		total += record.WeeklySales
	}

	return total / float64(history.Len()), nil
}
