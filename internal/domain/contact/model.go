package contact

import (
	"strings"
)

const (
	// Delimiter разделяет поля записи в строке каталога.
	Delimiter = ";"
	// FieldCount - число полей в каждой записи.
	FieldCount = 6
)

// Field - позиция поля в записи.
type Field int

const (
	FieldLastName Field = iota
	FieldFirstName
	FieldPatronymic
	FieldOrganization
	FieldWorkPhone
	FieldCellPhone
)

// Fields перечисляет поля в порядке хранения.
// Этот же порядок задает колонки при сериализации и позиции критериев поиска.
var Fields = [FieldCount]Field{
	FieldLastName,
	FieldFirstName,
	FieldPatronymic,
	FieldOrganization,
	FieldWorkPhone,
	FieldCellPhone,
}

// DisplayName возвращает человекочитаемое название поля.
func (f Field) DisplayName() string {
	switch f {
	case FieldLastName:
		return "Last name"
	case FieldFirstName:
		return "First name"
	case FieldPatronymic:
		return "Patronymic"
	case FieldOrganization:
		return "Organization name"
	case FieldWorkPhone:
		return "Work phone"
	case FieldCellPhone:
		return "Personal phone (cell)"
	default:
		return "Unknown field"
	}
}

// Key возвращает имя поля для флагов командной строки.
func (f Field) Key() string {
	switch f {
	case FieldLastName:
		return "last-name"
	case FieldFirstName:
		return "first-name"
	case FieldPatronymic:
		return "patronymic"
	case FieldOrganization:
		return "organization"
	case FieldWorkPhone:
		return "work-phone"
	case FieldCellPhone:
		return "cell-phone"
	default:
		return ""
	}
}

// String возвращает строковое представление поля.
func (f Field) String() string {
	return f.DisplayName()
}

// Record - одна запись справочника, по значению на каждое поле из Fields.
// Ни одно поле не обязано быть заполненным.
type Record [FieldCount]string

// Get возвращает значение поля.
func (r Record) Get(f Field) string {
	return r[f]
}

// String сериализует запись в строку каталога без завершающего перевода строки.
// Разделитель внутри значения не экранируется.
func (r Record) String() string {
	return strings.Join(r[:], Delimiter)
}

// IsEmpty сообщает, что все поля пустые.
func (r Record) IsEmpty() bool {
	for _, v := range r {
		if v != "" {
			return false
		}
	}
	return true
}

// Parse разбирает строку каталога.
// Недостающие поля в конце строки считаются пустыми, лишние отбрасываются.
func Parse(line string) Record {
	var rec Record
	parts := strings.Split(line, Delimiter)
	copy(rec[:], parts)
	return rec
}

// Header возвращает заголовок таблицы вывода: "ID - Last name - ...".
func Header() string {
	names := make([]string, 0, FieldCount+1)
	names = append(names, "ID")
	for _, f := range Fields {
		names = append(names, f.DisplayName())
	}
	return strings.Join(names, " - ")
}
