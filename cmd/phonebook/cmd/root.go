// cmd/phonebook/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"phonebook/internal/app/phonebook"
	"phonebook/internal/app/phonebook/config"
	"phonebook/internal/utils/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	cfgFile     string
	catalogPath string
	debug       bool
)

var rootCmd = &cobra.Command{
	Use:   "phonebook",
	Short: "Phonebook - консольный телефонный справочник",
	Long: `Phonebook хранит контакты в текстовом файле catalog.csv: одна запись на строку,
шесть полей через ';' (фамилия, имя, отчество, организация, рабочий и личный телефон).

Без подкоманды запускается интерактивное меню. Номер записи - это номер ее строки в файле,
он меняется, если число строк меняется.`,
	PersistentPreRunE: setupApp,
	RunE:              runMenu,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Интерактивное меню",
	RunE:  runMenu,
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	// Загружаем конфигурацию
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if catalogPath != "" {
		abs, err := filepath.Abs(catalogPath)
		if err != nil {
			return fmt.Errorf("неверный путь к каталогу: %w", err)
		}
		cfg.CatalogPath = abs
	}

	env := cfg.Env
	if debug && !cfg.IsLocal() {
		env = config.EnvDev
	}
	log := logger.New(env)

	colorOn := cfg.Color && term.IsTerminal(int(os.Stdout.Fd()))
	app := phonebook.New(cfg, log, phonebook.WithColor(colorOn))

	log.Debug("app configured", "catalog", cfg.CatalogPath, "env", cfg.Env, "page_size", cfg.PageSize)
	cmd.SetContext(phonebook.WithContext(cmd.Context(), app))
	return nil
}

func runMenu(cmd *cobra.Command, _ []string) error {
	app, ok := phonebook.FromContext(cmd.Context())
	if !ok {
		return fmt.Errorf("приложение не инициализировано")
	}
	return app.Run(cmd.Context())
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Ищем конфиг в стандартных местах
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".phonebook"))
		}
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	return config.Load()
}

func init() {
	// Глобальные флаги
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "путь к файлу каталога (по умолчанию ./catalog.csv)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")

	// Команды будут добавлены в init() соответствующих файлов
}
