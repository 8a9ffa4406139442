package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Meta       Meta       `mapstructure:",squash"`
	Rainforest Rainforest `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Meta concentra os parâmetros da Ad Library (Graph API)
type Meta struct {
	BaseURL        string `mapstructure:"meta_base_url"`
	URL            string `mapstructure:"-"`
	Version        string `mapstructure:"meta_version"`
	AccessToken    string `mapstructure:"meta_access_token"`
	Country        string `mapstructure:"meta_ad_country"`
	PageSize       int    `mapstructure:"meta_page_size"`
	RequestDelayMS int    `mapstructure:"meta_request_delay_ms"`
}

// Rainforest concentra os parâmetros da API de produtos da Amazon
type Rainforest struct {
	URL          string `mapstructure:"rainforest_url"`
	APIKey       string `mapstructure:"rainforest_api_key"`
	AmazonDomain string `mapstructure:"rainforest_amazon_domain"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v19.0")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_AD_COUNTRY", "IN")        // Anúncios ativos veiculados na Índia
	viper.SetDefault("META_PAGE_SIZE", 25)           // Página única, sem paginação
	viper.SetDefault("META_REQUEST_DELAY_MS", 500)   // Pausa entre concorrentes para não estourar rate limit

	viper.SetDefault("RAINFOREST_URL", "https://api.rainforestapi.com/request")
	viper.SetDefault("RAINFOREST_API_KEY", "")
	viper.SetDefault("RAINFOREST_AMAZON_DOMAIN", "amazon.in")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Permite que o Viper leia variáveis de ambiente

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	return config, nil
}

// HasMetaToken indica se a credencial da Ad Library está configurada
func (c *Config) HasMetaToken() bool {
	return c.Meta.AccessToken != ""
}

// HasRainforestKey indica se a credencial da API de produtos está configurada
func (c *Config) HasRainforestKey() bool {
	return c.Rainforest.APIKey != ""
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
