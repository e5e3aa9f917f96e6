package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App     App     `mapstructure:",squash"`
	Server  Server  `mapstructure:",squash"`
	Cors    Cors    `mapstructure:",squash"`
	Dataset Dataset `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Dataset guarda os parâmetros da geração sintética, lidos uma única vez na
// inicialização e imutáveis durante a execução do processo.
type Dataset struct {
	Seed            int64    `mapstructure:"dataset_seed"`
	Days            int      `mapstructure:"dataset_days"`
	EndDate         string   `mapstructure:"dataset_end_date"` // YYYY-MM-DD, vazio = data de inicialização
	Products        []string `mapstructure:"dataset_products"`
	MinTransactions int      `mapstructure:"dataset_min_transactions"`
	MaxTransactions int      `mapstructure:"dataset_max_transactions"`
	MinAmount       int      `mapstructure:"dataset_min_amount"`
	MaxAmount       int      `mapstructure:"dataset_max_amount"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")

	viper.SetDefault("DATASET_SEED", 42)
	viper.SetDefault("DATASET_DAYS", 180) // 180 dias para um delta mais robusto
	viper.SetDefault("DATASET_END_DATE", "")
	viper.SetDefault("DATASET_PRODUCTS", "Laptop Pro,Monitor 4K,Tablet,Bluetooth Headphones,Wireless Charger")
	viper.SetDefault("DATASET_MIN_TRANSACTIONS", 10)
	viper.SetDefault("DATASET_MAX_TRANSACTIONS", 29)
	viper.SetDefault("DATASET_MIN_AMOUNT", 50)
	viper.SetDefault("DATASET_MAX_AMOUNT", 4999)
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

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
