// cmd/phonebook/cmd/contact/add.go
package contact

import (
	"fmt"

	"github.com/spf13/cobra"

	"phonebook/internal/app/phonebook"
	"phonebook/internal/domain/contact"
)

var addRecord contact.Record

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Добавить запись",
	Long: `Добавление новой записи в конец каталога.

Если ни одно поле не задано флагом, значения запрашиваются по очереди.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := phonebook.FromContext(cmd.Context())
		if !ok {
			return fmt.Errorf("приложение не инициализировано")
		}

		if len(changedFields(cmd)) == 0 {
			return app.AddRecord()
		}

		if err := app.Store().Append(addRecord); err != nil {
			return fmt.Errorf("ошибка добавления записи: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Record added.")
		return nil
	},
}

func init() {
	bindFieldFlags(AddCmd, &addRecord)
}
