// cmd/phonebook/cmd/init.go
package cmd

import (
	"fmt"

	"phonebook/cmd/phonebook/cmd/contact"
	"phonebook/internal/app/phonebook"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Создать пустой каталог",
	Long: `Команда init создает пустой файл каталога, если его еще нет.
Существующий каталог не изменяется.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := phonebook.FromContext(cmd.Context())
		if !ok {
			return fmt.Errorf("приложение не инициализировано")
		}

		exists, err := app.Store().Exists()
		if err != nil {
			return err
		}
		if exists {
			fmt.Fprintf(cmd.OutOrStdout(), "Catalog already exists: %s\n", app.Store().Path())
			return nil
		}

		if err := app.Store().EnsureCreated(); err != nil {
			return fmt.Errorf("ошибка создания каталога: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Catalog created: %s\n", app.Store().Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(menuCmd)

	// Добавляем команды работы с записями
	rootCmd.AddCommand(contact.ListCmd)
	rootCmd.AddCommand(contact.AddCmd)
	rootCmd.AddCommand(contact.EditCmd)
	rootCmd.AddCommand(contact.FindCmd)
}
