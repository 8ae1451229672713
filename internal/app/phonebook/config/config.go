package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultEnv          = EnvProd
	defaultCatalogPath  = "catalog.csv"
	defaultPageSize     = 10
	defaultBackupSuffix = ".bak"
	defaultColor        = true
)

type Config struct {
	Env          string `mapstructure:"app_env"`
	CatalogPath  string `mapstructure:"catalog_path"`
	PageSize     int    `mapstructure:"page_size"`
	BackupSuffix string `mapstructure:"backup_suffix"`
	Color        bool   `mapstructure:"color"`
}

// Load собирает конфигурацию из .env, переменных окружения и уже прочитанного viper конфиг-файла.
// Относительный путь к каталогу разрешается от рабочей директории в момент загрузки.
func Load() (*Config, error) {
	// Загружаем .env файл если существует
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	viper.AutomaticEnv()

	// Устанавливаем значения по умолчанию
	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("CATALOG_PATH", defaultCatalogPath)
	viper.SetDefault("PAGE_SIZE", defaultPageSize)
	viper.SetDefault("BACKUP_SUFFIX", defaultBackupSuffix)
	viper.SetDefault("COLOR", defaultColor)

	catalogPath := viper.GetString("CATALOG_PATH")
	if catalogPath != "" && !filepath.IsAbs(catalogPath) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("ошибка определения рабочей директории: %w", err)
		}
		catalogPath = filepath.Join(wd, catalogPath)
	}

	config := &Config{
		Env:          viper.GetString("APP_ENV"),
		CatalogPath:  catalogPath,
		PageSize:     viper.GetInt("PAGE_SIZE"),
		BackupSuffix: viper.GetString("BACKUP_SUFFIX"),
		Color:        viper.GetBool("COLOR"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("ошибка конфигурации: %w", err)
	}

	return config, nil
}

// MustLoad загружает конфигурацию и паникует при ошибке.
func MustLoad() *Config {
	config, err := Load()
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) validate() error {
	if c.CatalogPath == "" {
		return fmt.Errorf("catalog_path не может быть пустым")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size должен быть больше нуля, получено %d", c.PageSize)
	}
	if c.BackupSuffix == "" {
		return fmt.Errorf("backup_suffix не может быть пустым")
	}
	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsDev проверяет, dev ли окружение
func (c *Config) IsDev() bool {
	return c.Env == EnvDev
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal
}
