package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Fontes de dados históricos suportadas
const (
	DatasetSourceCSVFile   = "csv_file"
	DatasetSourceCSVInline = "csv_inline"
	DatasetSourcePostgres  = "postgres"
)

// Drivers de cache de histórico suportados
const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Dataset        Dataset        `mapstructure:",squash"`
	Forecast       Forecast       `mapstructure:",squash"`
	Cache          Cache          `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
	Cors           Cors           `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Dataset struct {
	Source string `mapstructure:"dataset_source"`
	Path   string `mapstructure:"dataset_path"`
	CSV    string `mapstructure:"dataset_csv"`
}

type Forecast struct {
	ModelVariant       string `mapstructure:"forecast_model_variant"`
	SensitivitySamples int    `mapstructure:"forecast_sensitivity_samples"`
	TrendWindow        int    `mapstructure:"forecast_trend_window"`
}

type Cache struct {
	Driver        string        `mapstructure:"cache_driver"`
	TTL           time.Duration `mapstructure:"cache_ttl"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
}

type Auth struct {
	Enabled             bool          `mapstructure:"auth_enabled"`
	TokenTTL            time.Duration `mapstructure:"auth_token_ttl"`
	AdminEmail          string        `mapstructure:"auth_admin_email"`
	AdminPasswordHash   string        `mapstructure:"auth_admin_password_hash"`
	AnalystEmail        string        `mapstructure:"auth_analyst_email"`
	AnalystPasswordHash string        `mapstructure:"auth_analyst_password_hash"`
}

type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/forecast?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Defaults para a fonte do histórico de vendas
	viper.SetDefault("DATASET_SOURCE", DatasetSourceCSVFile)
	viper.SetDefault("DATASET_PATH", "data/store_history.csv")
	viper.SetDefault("DATASET_CSV", "")

	// Defaults para o motor de previsão
	viper.SetDefault("FORECAST_MODEL_VARIANT", "factor")
	viper.SetDefault("FORECAST_SENSITIVITY_SAMPLES", 100) // pontos por curva de sensibilidade
	viper.SetDefault("FORECAST_TREND_WINDOW", 20)         // semanas exibidas na tendência recente

	viper.SetDefault("CACHE_DRIVER", CacheDriverMemory)
	viper.SetDefault("CACHE_TTL", "1h")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_ADMIN_EMAIL", "")
	viper.SetDefault("AUTH_ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_ANALYST_EMAIL", "")
	viper.SetDefault("AUTH_ANALYST_PASSWORD_HASH", "")

	viper.SetDefault("DATASET_REFRESH_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica combinações de configuração que impedem a aplicação de iniciar
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case DatasetSourceCSVFile:
		if c.Dataset.Path == "" {
			return fmt.Errorf("DATASET_PATH é obrigatório para a fonte %s", c.Dataset.Source)
		}
	case DatasetSourceCSVInline:
		if c.Dataset.CSV == "" {
			return fmt.Errorf("DATASET_CSV é obrigatório para a fonte %s", c.Dataset.Source)
		}
	case DatasetSourcePostgres:
	default:
		return fmt.Errorf("fonte de dados inválida: %q", c.Dataset.Source)
	}

	switch c.Cache.Driver {
	case CacheDriverMemory, CacheDriverRedis:
	default:
		return fmt.Errorf("driver de cache inválido: %q", c.Cache.Driver)
	}

	switch c.Forecast.ModelVariant {
	case "factor", "coefficient":
	default:
		return fmt.Errorf("variante de modelo inválida: %q", c.Forecast.ModelVariant)
	}

	if c.Forecast.SensitivitySamples <= 0 {
		return fmt.Errorf("FORECAST_SENSITIVITY_SAMPLES deve ser positivo")
	}

	if c.Forecast.TrendWindow <= 0 {
		return fmt.Errorf("FORECAST_TREND_WINDOW deve ser positivo")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
