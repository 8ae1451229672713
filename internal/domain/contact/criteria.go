package contact

import (
	"strings"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// Criteria - условия поиска по полям в порядке Fields.
// Пустое условие выполняется для любого значения.
type Criteria [FieldCount]string

// IsEmpty сообщает, что ни одно условие не задано.
func (c Criteria) IsEmpty() bool {
	return Record(c).IsEmpty()
}

// Match проверяет условия по порядку и прекращает проверку на первом несовпадении.
// Значение поля подходит, если содержит условие как подстроку без учета регистра.
func (c Criteria) Match(rec Record) bool {
	for i, want := range c {
		if want == "" {
			continue
		}
		if !strings.Contains(folder.String(rec[i]), folder.String(want)) {
			return false
		}
	}
	return true
}
