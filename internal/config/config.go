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
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Document       Document       `mapstructure:",squash"`
	DocumentReload DocumentReload `mapstructure:",squash"`
	DocumentWatch  DocumentWatch  `mapstructure:",squash"`
	Dashboard      Dashboard      `mapstructure:",squash"`
}

type Server struct {
	Host               string        `mapstructure:"host"`
	Port               string        `mapstructure:"port"`
	CORSAllowedOrigins []string      `mapstructure:"cors_allowed_origins"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Document struct {
	Path string `mapstructure:"metrics_document_path"`
}

type DocumentReload struct {
	CronSchedule string `mapstructure:"document_reload_cron"`
	Enabled      bool   `mapstructure:"document_reload_enabled"`
}

type DocumentWatch struct {
	Enabled  bool          `mapstructure:"document_watch_enabled"`
	Debounce time.Duration `mapstructure:"document_watch_debounce"`
}

type Dashboard struct {
	DefaultTopN int `mapstructure:"default_top_n"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	viper.SetDefault("METRICS_DOCUMENT_PATH", "data/reddit_metrics.json")

	// Recarga agendada do documento
	viper.SetDefault("DOCUMENT_RELOAD_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("DOCUMENT_RELOAD_ENABLED", false)

	// Recarga quando o arquivo muda em disco
	viper.SetDefault("DOCUMENT_WATCH_ENABLED", false)
	viper.SetDefault("DOCUMENT_WATCH_DEBOUNCE", "2s")

	viper.SetDefault("DEFAULT_TOP_N", 10)

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

	if config.Dashboard.DefaultTopN <= 0 {
		logrus.WithField("default_top_n", config.Dashboard.DefaultTopN).Warn("DEFAULT_TOP_N inválido, usando 10")
		config.Dashboard.DefaultTopN = 10
	}

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
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
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
