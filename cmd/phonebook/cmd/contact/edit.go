// cmd/phonebook/cmd/contact/edit.go
package contact

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"phonebook/internal/app/phonebook"
	"phonebook/internal/domain/contact"
)

var editRecord contact.Record

var EditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Изменить запись",
	Long: `Замена записи с указанным номером строки.

Если поля заданы флагами, незаданные поля сохраняют текущие значения.
Без флагов все поля запрашиваются заново. Если записи с таким номером нет,
каталог не меняется. Предыдущая версия каталога сохраняется в файл с суффиксом .bak.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := phonebook.FromContext(cmd.Context())
		if !ok {
			return fmt.Errorf("приложение не инициализировано")
		}

		id := args[0]
		if err := contact.ValidateID(id); err != nil {
			return fmt.Errorf("неверный ID записи: %w", err)
		}

		changed := changedFields(cmd)
		if len(changed) == 0 {
			return app.EditByID(id)
		}

		rec, err := currentRecord(app, id)
		if err != nil {
			return err
		}
		for _, f := range changed {
			rec[f] = editRecord[f]
		}

		if err := app.Store().Edit(id, rec); err != nil {
			return fmt.Errorf("ошибка изменения записи: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Catalog saved.")
		return nil
	},
}

// currentRecord возвращает текущее содержимое записи или пустую запись, если ее нет.
func currentRecord(app *phonebook.App, id string) (contact.Record, error) {
	entry, err := app.Store().FindByID(id)
	switch {
	case errors.Is(err, contact.ErrNotFound), errors.Is(err, contact.ErrCatalogNotFound):
		return contact.Record{}, nil
	case err != nil:
		return contact.Record{}, fmt.Errorf("ошибка чтения записи: %w", err)
	}
	return entry.Record(), nil
}

func init() {
	bindFieldFlags(EditCmd, &editRecord)
}
