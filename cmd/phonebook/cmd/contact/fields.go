package contact

import (
	"github.com/spf13/cobra"

	"phonebook/internal/domain/contact"
)

// bindFieldFlags регистрирует по флагу на каждое поле записи.
func bindFieldFlags(cmd *cobra.Command, rec *contact.Record) {
	for _, f := range contact.Fields {
		cmd.Flags().StringVar(&rec[f], f.Key(), "", f.DisplayName())
	}
}

// changedFields возвращает поля, заданные флагами явно.
func changedFields(cmd *cobra.Command) []contact.Field {
	var changed []contact.Field
	for _, f := range contact.Fields {
		if cmd.Flags().Changed(f.Key()) {
			changed = append(changed, f)
		}
	}
	return changed
}
