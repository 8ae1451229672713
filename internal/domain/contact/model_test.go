package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_String(t *testing.T) {
	rec := Record{"Doe", "John", "", "Acme", "555-1111", "555-2222"}
	assert.Equal(t, "Doe;John;;Acme;555-1111;555-2222", rec.String())
	assert.Equal(t, ";;;;;", Record{}.String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Record
	}{
		{
			name: "full line",
			line: "Doe;John;;Acme;555-1111;555-2222",
			want: Record{"Doe", "John", "", "Acme", "555-1111", "555-2222"},
		},
		{
			name: "missing trailing fields",
			line: "Doe;John",
			want: Record{"Doe", "John", "", "", "", ""},
		},
		{
			name: "empty line",
			line: "",
			want: Record{},
		},
		{
			name: "delimiter inside a field shifts columns",
			line: "Doe;John;;Acme; Ltd;555-1111;555-2222",
			want: Record{"Doe", "John", "", "Acme", " Ltd", "555-1111"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.line))
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	rec := Record{"Иванов", "Иван", "Иванович", "ООО Ромашка", "+7 495 000-00-00", ""}
	assert.Equal(t, rec, Parse(rec.String()))
}

func TestHeader(t *testing.T) {
	assert.Equal(t,
		"ID - Last name - First name - Patronymic - Organization name - Work phone - Personal phone (cell)",
		Header())
}

func TestField_Key(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range Fields {
		key := f.Key()
		assert.NotEmpty(t, key)
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
	assert.Equal(t, "Unknown field", Field(42).DisplayName())
}

func TestEntry(t *testing.T) {
	e := Entry{ID: 3, Line: "Doe;John;;Acme;555-1111;555-2222"}
	assert.Equal(t, "3 - Doe;John;;Acme;555-1111;555-2222", e.String())
	assert.Equal(t, "Acme", e.Record().Get(FieldOrganization))

	p := Page{Start: 11, Size: 10}
	assert.Equal(t, 20, p.End())
}
