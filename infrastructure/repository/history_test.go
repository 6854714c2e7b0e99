package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/demand-forecast-api/infrastructure/dataset"
	"github.com/vfg2006/demand-forecast-api/internal/domain"
)

const historySample = `Store,Date,Weekly_Sales,Holiday_Flag,Temperature,Fuel_Price,CPI,Unemployment
3,12-02-2010,20000,1,38.51,2.548,211.24,8.1
1,12-02-2010,22000,1,38.51,2.548,211.24,8.1
1,05-02-2010,20000,0,42.31,2.572,211.09,8.1
5,05-02-2010,15000,0,40.19,2.572,210.75,8.3
`

func TestDatasetHistoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewDatasetHistoryRepository(dataset.InlineSource{CSV: historySample})

	// Antes da carga não há faixa de lojas
	storeRange, err := repo.GetStoreRange(ctx)
	require.NoError(t, err)
	assert.Nil(t, storeRange)

	count, err := repo.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	storeRange, err = repo.GetStoreRange(ctx)
	require.NoError(t, err)
	require.NotNil(t, storeRange)
	assert.Equal(t, 1, storeRange.MinStoreID)
	assert.Equal(t, 5, storeRange.MaxStoreID)
	assert.Equal(t, 3, storeRange.Stores)

	tests := []struct {
		name     string
		storeID  int
		expected []float64
	}{
		{
			name:     "Loja com duas semanas ordenadas por data",
			storeID:  1,
			expected: []float64{20000, 22000},
		},
		{
			name:     "Loja dentro da faixa sem histórico",
			storeID:  2,
			expected: []float64{},
		},
		{
			name:     "Loja com uma semana",
			storeID:  5,
			expected: []float64{15000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history, err := repo.GetStoreHistory(ctx, tt.storeID)
			require.NoError(t, err)
			assert.Equal(t, tt.storeID, history.StoreID)

			sales := make([]float64, 0, history.Len())
			for _, record := range history.Records {
				sales = append(sales, record.WeeklySales)
			}
			assert.Equal(t, tt.expected, sales)
		})
	}
}

func TestDatasetHistoryRepository_ReloadErrorKeepsPreviousData(t *testing.T) {
	ctx := context.Background()
	source := &switchableSource{csv: historySample}
	repo := NewDatasetHistoryRepository(source)

	assert.Equal(t, uint64(0), repo.Generation())

	_, err := repo.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), repo.Generation())

	source.csv = "Store,Date\n1,05-02-2010\n"
	_, err = repo.Reload(ctx)
	require.Error(t, err)
	// recarga com falha não invalida as séries já em cache
	assert.Equal(t, uint64(1), repo.Generation())

	history, err := repo.GetStoreHistory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, history.Len())
}

type switchableSource struct {
	csv string
}

func (s *switchableSource) Name() string { return "test" }

func (s *switchableSource) Load(ctx context.Context) (*domain.SalesDataset, error) {
	return dataset.InlineSource{CSV: s.csv}.Load(ctx)
}
