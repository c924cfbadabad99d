package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Spreadsheet Spreadsheet `mapstructure:",squash"`
	Sales       Sales       `mapstructure:",squash"`
	Chart       Chart       `mapstructure:",squash"`
	Cors        Cors        `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel  string         `mapstructure:"log_level"`
	Timezone  string         `mapstructure:"app_timezone"`
	PageTitle string         `mapstructure:"report_page_title"`
	Location  *time.Location `mapstructure:"-"`
}

type Spreadsheet struct {
	Path           string `mapstructure:"spreadsheet_path"`
	Sheet          string `mapstructure:"spreadsheet_sheet"`
	CacheEnabled   bool   `mapstructure:"spreadsheet_cache_enabled"`
	RefreshEnabled bool   `mapstructure:"spreadsheet_refresh_enabled"`
	RefreshCron    string `mapstructure:"spreadsheet_refresh_cron"`
}

type Sales struct {
	MonthlyTarget       float64  `mapstructure:"sales_monthly_target"`
	FallbackSalesperson string   `mapstructure:"sales_fallback_salesperson"`
	ExcludedOrderIDs    []string `mapstructure:"excluded_order_ids"`
}

type Chart struct {
	WidthCm  float64 `mapstructure:"chart_width_cm"`
	HeightCm float64 `mapstructure:"chart_height_cm"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 8000)

	v.SetDefault("LOG_LEVEL", "debug")
	v.SetDefault("APP_TIMEZONE", "America/Sao_Paulo")
	v.SetDefault("REPORT_PAGE_TITLE", "Sistema de Controle - Flash")

	v.SetDefault("SPREADSHEET_PATH", "planilha/SPEZIA.XLSX")
	v.SetDefault("SPREADSHEET_SHEET", "") // Primeira aba
	v.SetDefault("SPREADSHEET_CACHE_ENABLED", true)

	// Releitura periódica da planilha
	v.SetDefault("SPREADSHEET_REFRESH_ENABLED", false)
	v.SetDefault("SPREADSHEET_REFRESH_CRON", "*/5 * * * *") // A cada 5 minutos

	v.SetDefault("SALES_MONTHLY_TARGET", 50000)
	v.SetDefault("SALES_FALLBACK_SALESPERSON", "PAULO")
	v.SetDefault("EXCLUDED_ORDER_IDS", "")

	v.SetDefault("CHART_WIDTH_CM", 16)
	v.SetDefault("CHART_HEIGHT_CM", 10)

	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	v := viper.New()

	// Configurar valores padrão
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Sales.ExcludedOrderIDs = compact(config.Sales.ExcludedOrderIDs)
	config.Cors.AllowedOrigins = compact(config.Cors.AllowedOrigins)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	location, err := time.LoadLocation(config.App.Timezone)
	if err != nil {
		logrus.WithError(err).Warnf("Fuso horário %q indisponível, usando o horário local", config.App.Timezone)
		location = time.Local
	}
	config.App.Location = location

	return config, nil
}

// Validate confere os valores que impedem a aplicação de subir
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Spreadsheet.Path) == "" {
		errs = append(errs, errors.New("SPREADSHEET_PATH é obrigatório"))
	}
	if port, err := strconv.Atoi(c.Server.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("PORT inválida: %q", c.Server.Port))
	}
	if c.Sales.MonthlyTarget < 0 {
		errs = append(errs, fmt.Errorf("SALES_MONTHLY_TARGET não pode ser negativo: %v", c.Sales.MonthlyTarget))
	}
	if c.Spreadsheet.RefreshEnabled && strings.TrimSpace(c.Spreadsheet.RefreshCron) == "" {
		errs = append(errs, errors.New("SPREADSHEET_REFRESH_CRON é obrigatório com SPREADSHEET_REFRESH_ENABLED"))
	}
	if c.Chart.WidthCm <= 0 || c.Chart.HeightCm <= 0 {
		errs = append(errs, fmt.Errorf("dimensões do gráfico inválidas: %vx%v cm", c.Chart.WidthCm, c.Chart.HeightCm))
	}

	return errors.Join(errs...)
}

// Address retorna o endereço de escuta do servidor
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

func compact(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			result = append(result, value)
		}
	}
	return result
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
