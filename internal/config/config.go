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

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	AdNetwork       AdNetwork       `mapstructure:",squash"`
	Exchange        Exchange        `mapstructure:",squash"`
	Metrics         Metrics         `mapstructure:",squash"`
	SnapshotCleanup SnapshotCleanup `mapstructure:",squash"`
	RatesSync       RatesSync       `mapstructure:",squash"`
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

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type AdNetwork struct {
	BaseURL        string `mapstructure:"ad_network_base_url"`
	AccessToken    string `mapstructure:"ad_network_access_token"`
	TimeoutSeconds int    `mapstructure:"ad_network_timeout_seconds"`
	MaxConcurrent  int    `mapstructure:"ad_network_max_concurrent"`
}

type Exchange struct {
	BaseURL     string `mapstructure:"exchange_base_url"`
	AccessToken string `mapstructure:"exchange_access_token"`
}

type Metrics struct {
	ReferenceCurrency   string        `mapstructure:"metrics_reference_currency"`
	FallbackTimezone    string        `mapstructure:"metrics_fallback_timezone"`
	TTLLastDay          time.Duration `mapstructure:"metrics_ttl_last_day"`
	TTLLast7Days        time.Duration `mapstructure:"metrics_ttl_last_7_days"`
	TTLLast30Days       time.Duration `mapstructure:"metrics_ttl_last_30_days"`
	TTLLast90Days       time.Duration `mapstructure:"metrics_ttl_last_90_days"`
	TTLCurrentMonth     time.Duration `mapstructure:"metrics_ttl_current_month"`
	SnapshotTTLFallback time.Duration `mapstructure:"metrics_ttl_fallback"`
}

type SnapshotCleanup struct {
	CronSchedule  string `mapstructure:"snapshot_cleanup_cron"`
	RetentionDays int    `mapstructure:"snapshot_cleanup_retention_days"`
	Enabled       bool   `mapstructure:"snapshot_cleanup_enabled"`
}

type RatesSync struct {
	CronSchedule string `mapstructure:"rates_sync_cron"`
	Enabled      bool   `mapstructure:"rates_sync_enabled"`
}

// TTLFor resolve o tempo de vida do snapshot conforme a granularidade do
// período. Tags desconhecidas caem no fallback.
func (m Metrics) TTLFor(periodTag string) time.Duration {
	switch periodTag {
	case "last_day":
		return m.TTLLastDay
	case "last_7_days":
		return m.TTLLast7Days
	case "last_30_days":
		return m.TTLLast30Days
	case "last_90_days":
		return m.TTLLast90Days
	case "current_month":
		return m.TTLCurrentMonth
	default:
		return m.SnapshotTTLFallback
	}
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/operations")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("AD_NETWORK_BASE_URL", "https://ads.example.com/api/v2")
	viper.SetDefault("AD_NETWORK_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("AD_NETWORK_TIMEOUT_SECONDS", 8)
	viper.SetDefault("AD_NETWORK_MAX_CONCURRENT", 5)

	viper.SetDefault("EXCHANGE_BASE_URL", "https://rates.example.com/api/v1")
	viper.SetDefault("EXCHANGE_ACCESS_TOKEN", "")

	viper.SetDefault("METRICS_REFERENCE_CURRENCY", "BRL")
	viper.SetDefault("METRICS_FALLBACK_TIMEZONE", "America/Sao_Paulo")

	// TTLs dos snapshots por granularidade do período
	viper.SetDefault("METRICS_TTL_LAST_DAY", "10m")
	viper.SetDefault("METRICS_TTL_LAST_7_DAYS", "30m")
	viper.SetDefault("METRICS_TTL_LAST_30_DAYS", "1h")
	viper.SetDefault("METRICS_TTL_LAST_90_DAYS", "3h")
	viper.SetDefault("METRICS_TTL_CURRENT_MONTH", "30m")
	viper.SetDefault("METRICS_TTL_FALLBACK", "10m")

	viper.SetDefault("SNAPSHOT_CLEANUP_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("SNAPSHOT_CLEANUP_RETENTION_DAYS", 30)
	viper.SetDefault("SNAPSHOT_CLEANUP_ENABLED", false)

	viper.SetDefault("RATES_SYNC_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("RATES_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
