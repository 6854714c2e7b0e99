package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Dataset:  Dataset{Source: DatasetSourceCSVFile, Path: "data/store_history.csv"},
		Cache:    Cache{Driver: CacheDriverMemory},
		Forecast: Forecast{ModelVariant: "factor", SensitivitySamples: 100, TrendWindow: 20},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "Configuração padrão válida", mutate: func(c *Config) {}},
		{name: "Fonte postgres não exige caminho", mutate: func(c *Config) {
			c.Dataset = Dataset{Source: DatasetSourcePostgres}
		}},
		{name: "CSV inline sem conteúdo", mutate: func(c *Config) {
			c.Dataset = Dataset{Source: DatasetSourceCSVInline}
		}, wantErr: true},
		{name: "Fonte desconhecida", mutate: func(c *Config) {
			c.Dataset.Source = "s3"
		}, wantErr: true},
		{name: "Driver de cache desconhecido", mutate: func(c *Config) {
			c.Cache.Driver = "memcached"
		}, wantErr: true},
		{name: "Variante de modelo desconhecida", mutate: func(c *Config) {
			c.Forecast.ModelVariant = "arima"
		}, wantErr: true},
		{name: "Quantidade de pontos inválida", mutate: func(c *Config) {
			c.Forecast.SensitivitySamples = 0
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
