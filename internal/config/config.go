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
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Trendyol    Trendyol    `mapstructure:",squash"`
	Hepsiburada Hepsiburada `mapstructure:",squash"`
	N11         N11         `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	OrderSync   OrderSync   `mapstructure:",squash"`
	CatalogSync CatalogSync `mapstructure:",squash"`
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

// Trendyol guarda o endpoint base da API do Trendyol. As credenciais
// (api key/secret, supplier id, seller id) ficam por conta no banco.
type Trendyol struct {
	URL string `mapstructure:"trendyol_url"`
}

// Hepsiburada guarda o endpoint base da API do Hepsiburada
type Hepsiburada struct {
	URL string `mapstructure:"hepsiburada_url"`
}

// N11 guarda o endpoint base da API do n11
type N11 struct {
	URL string `mapstructure:"n11_url"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// OrderSync configura o ciclo de sincronização de pedidos
type OrderSync struct {
	CronSchedule      string `mapstructure:"order_sync_cron"`
	PageSize          int    `mapstructure:"order_sync_page_size"`
	MaxPages          int    `mapstructure:"order_sync_max_pages"`
	MaxConcurrentJobs int    `mapstructure:"order_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"order_sync_enabled"`
}

// CatalogSync configura o envio periódico de produtos para os marketplaces
type CatalogSync struct {
	CronSchedule string `mapstructure:"catalog_sync_cron"`
	BatchSize    int    `mapstructure:"catalog_sync_batch_size"`
	Enabled      bool   `mapstructure:"catalog_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/marketplace")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("TRENDYOL_URL", "https://api.trendyol.com/sapigw")
	viper.SetDefault("HEPSIBURADA_URL", "https://mpop.hepsiburada.com")
	viper.SetDefault("N11_URL", "https://api.n11.com/rest")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults da sincronização de pedidos
	viper.SetDefault("ORDER_SYNC_CRON", "0 */6 * * *") // A cada seis horas
	viper.SetDefault("ORDER_SYNC_PAGE_SIZE", 50)       // Tamanho de página nas APIs dos marketplaces
	viper.SetDefault("ORDER_SYNC_MAX_PAGES", 20)       // Teto de páginas por ciclo
	viper.SetDefault("ORDER_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("ORDER_SYNC_ENABLED", false)

	// Defaults da sincronização de catálogo
	viper.SetDefault("CATALOG_SYNC_CRON", "0 * * * *") // A cada hora
	viper.SetDefault("CATALOG_SYNC_BATCH_SIZE", 100)
	viper.SetDefault("CATALOG_SYNC_ENABLED", false)

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

	if err := config.validate(); err != nil {
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

// validate garante que a configuração carregada é utilizável antes de
// qualquer ciclo de sincronização rodar
func (c *Config) validate() error {
	if c.Trendyol.URL == "" || c.Hepsiburada.URL == "" || c.N11.URL == "" {
		return fmt.Errorf("endpoints dos marketplaces não configurados")
	}

	if c.OrderSync.PageSize < 1 || c.OrderSync.PageSize > 100 {
		return fmt.Errorf("order_sync_page_size deve estar entre 1 e 100, recebido %d", c.OrderSync.PageSize)
	}

	if c.OrderSync.MaxPages < 1 {
		return fmt.Errorf("order_sync_max_pages deve ser maior que zero, recebido %d", c.OrderSync.MaxPages)
	}

	return nil
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
