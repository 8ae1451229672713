// cmd/phonebook/cmd/contact/list.go
package contact

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"phonebook/internal/app/phonebook"
	"phonebook/internal/domain/contact"
)

var (
	listPage int
	listSize int
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список записей",
	Long: `Постраничный просмотр каталога.

Без --page страницы показываются по одной, следующая - после нажатия Enter, 0 - выход.
С --page выводится только указанная страница.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := phonebook.FromContext(cmd.Context())
		if !ok {
			return fmt.Errorf("приложение не инициализировано")
		}

		if listPage <= 0 {
			return app.ReadRecords()
		}

		size := listSize
		if size <= 0 {
			size = app.PageSize()
		}

		page, err := app.Store().ReadPage((listPage-1)*size+1, size)
		if errors.Is(err, contact.ErrCatalogNotFound) {
			fmt.Fprintln(cmd.OutOrStdout(), "File is empty. Write data into file before reading.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("ошибка чтения каталога: %w", err)
		}

		app.PrintPage(page)
		return nil
	},
}

func init() {
	ListCmd.Flags().IntVarP(&listPage, "page", "p", 0, "номер страницы (с 1), без флага - интерактивный просмотр")
	ListCmd.Flags().IntVar(&listSize, "size", 0, "размер страницы (по умолчанию из конфигурации)")
}
