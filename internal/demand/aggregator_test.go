package demand

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/demand-forecast-api/internal/domain"
)

func week(storeID int, day int, sales float64) domain.HistoryRecord {
	return domain.HistoryRecord{
		StoreID:     storeID,
		Date:        time.Date(2010, 2, day, 0, 0, 0, 0, time.UTC),
		WeeklySales: sales,
	}
}

func TestBaseline(t *testing.T) {
	tests := []struct {
		name     string
		history  domain.StoreHistory
		expected float64
		err      error
	}{
		{
			name:     "Histórico com um registro - média igual ao próprio valor",
			history:  domain.NewStoreHistory(1, []domain.HistoryRecord{week(1, 5, 1643690.90)}),
			expected: 1643690.90,
		},
		{
			name: "Histórico com vários registros - média aritmética",
			history: domain.NewStoreHistory(1, []domain.HistoryRecord{
				week(1, 5, 10000),
				week(1, 12, 20000),
				week(1, 19, 30000),
				week(1, 26, 40000),
			}),
			expected: 25000,
		},
		{
			name: "Registros de outra loja são ignorados",
			history: domain.NewStoreHistory(2, []domain.HistoryRecord{
				week(1, 5, 99999),
				week(2, 12, 1000),
				week(2, 19, 3000),
			}),
			expected: 2000,
		},
		{
			name:    "Histórico vazio - deve falhar",
			history: domain.NewStoreHistory(3, nil),
			err:     ErrEmptyHistory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseline, err := Baseline(tt.history)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.expected, baseline, 1e-9)
		})
	}
}

func TestBaseline_IndependentOfOrder(t *testing.T) {
	records := []domain.HistoryRecord{
		week(1, 5, 1500.5),
		week(1, 12, 2250),
		week(1, 19, 875.25),
		week(1, 26, 4000),
	}

	reversed := make([]domain.HistoryRecord, len(records))
	for i, record := range records {
		reversed[len(records)-1-i] = record
	}

	ordered := domain.StoreHistory{StoreID: 1, Records: records}
	unordered := domain.StoreHistory{StoreID: 1, Records: reversed}

	a, err := Baseline(ordered)
	require.NoError(t, err)
	b, err := Baseline(unordered)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, (1500.5+2250+875.25+4000)/4, a)
}
