// cmd/phonebook/cmd/contact/find.go
package contact

import (
	"fmt"

	"github.com/spf13/cobra"

	"phonebook/internal/app/phonebook"
	"phonebook/internal/domain/contact"
)

var findCriteria contact.Record

var FindCmd = &cobra.Command{
	Use:   "find [id]",
	Short: "Найти запись",
	Long: `Поиск по номеру записи или по полям.

Поиск по полям ищет подстроку без учета регистра, незаданные поля не учитываются.
Без аргумента и флагов параметры поиска запрашиваются интерактивно.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := phonebook.FromContext(cmd.Context())
		if !ok {
			return fmt.Errorf("приложение не инициализировано")
		}

		if len(args) == 1 {
			return app.ShowByID(args[0])
		}

		criteria := contact.Criteria(findCriteria)
		if criteria.IsEmpty() {
			return app.FindRecord()
		}
		return app.ShowSearch(criteria)
	},
}

func init() {
	bindFieldFlags(FindCmd, &findCriteria)
}
