package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Moysklad         Moysklad         `mapstructure:",squash"`
	Retry            Retry            `mapstructure:",squash"`
	Aggregation      Aggregation      `mapstructure:",squash"`
	Payroll          Payroll          `mapstructure:",squash"`
	DailySalesReport DailySalesReport `mapstructure:",squash"`
	AllowedOrigins   []string         `mapstructure:"allowed_origins"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Moysklad holds the accounting API endpoint, the credential used by the
// settings provider and the business rules applied to catalog items.
type Moysklad struct {
	URL                    string        `mapstructure:"moysklad_url"`
	AccessToken            string        `mapstructure:"moysklad_access_token"`
	StoreID                string        `mapstructure:"moysklad_store_id"`
	RequestTimeout         time.Duration `mapstructure:"moysklad_request_timeout"`
	ExcludedCategoryPrefix string        `mapstructure:"moysklad_excluded_category_prefix"`
	BonusAttributeName     string        `mapstructure:"moysklad_bonus_attribute_name"`
}

type Retry struct {
	MaxAttempts int           `mapstructure:"moysklad_retry_max_attempts"`
	BaseDelay   time.Duration `mapstructure:"moysklad_retry_base_delay"`
	MaxDelay    time.Duration `mapstructure:"moysklad_retry_max_delay"`
}

type Aggregation struct {
	MaxConcurrentRequests int `mapstructure:"aggregation_max_concurrent_requests"`
	MaxConcurrentDates    int `mapstructure:"aggregation_max_concurrent_dates"`
}

type Payroll struct {
	BonusPerUnit float64 `mapstructure:"payroll_bonus_per_unit"`
}

type DailySalesReport struct {
	CronSchedule string `mapstructure:"daily_sales_report_cron"`
	LookbackDays int    `mapstructure:"daily_sales_report_lookback_days"`
	Enabled      bool   `mapstructure:"daily_sales_report_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")

	viper.SetDefault("MOYSKLAD_URL", "https://api.moysklad.ru/api/remap/1.2")
	viper.SetDefault("MOYSKLAD_ACCESS_TOKEN", "")
	viper.SetDefault("MOYSKLAD_STORE_ID", "")
	viper.SetDefault("MOYSKLAD_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("MOYSKLAD_EXCLUDED_CATEGORY_PREFIX", "Сигаретная продукция/Сигаретная продукция (табаконисты)")
	viper.SetDefault("MOYSKLAD_BONUS_ATTRIBUTE_NAME", "Целевой продукт")

	viper.SetDefault("MOYSKLAD_RETRY_MAX_ATTEMPTS", 3)
	viper.SetDefault("MOYSKLAD_RETRY_BASE_DELAY", "1s")
	viper.SetDefault("MOYSKLAD_RETRY_MAX_DELAY", "10s")

	viper.SetDefault("AGGREGATION_MAX_CONCURRENT_REQUESTS", 5)
	viper.SetDefault("AGGREGATION_MAX_CONCURRENT_DATES", 2)

	viper.SetDefault("PAYROLL_BONUS_PER_UNIT", 50)

	viper.SetDefault("DAILY_SALES_REPORT_CRON", "0 6 * * *") // every day at 6am
	viper.SetDefault("DAILY_SALES_REPORT_LOOKBACK_DAYS", 1)
	viper.SetDefault("DAILY_SALES_REPORT_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Viper não leu o .env, usando variáveis carregadas pelo godotenv: ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile looks for a .env file in the working directory and its parents.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório de trabalho: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente do processo")
}
