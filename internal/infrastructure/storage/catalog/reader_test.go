package catalog

import (
	"bufio"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonebook/internal/domain/contact"
)

// countingScanner считает прочитанные строки.
type countingScanner struct {
	*bufio.Scanner
	scans int
}

func (c *countingScanner) Scan() bool {
	c.scans++
	return c.Scanner.Scan()
}

func ids(entries []contact.Entry) []int {
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestStore_FindByID(t *testing.T) {
	store, _ := newTestStore(t, numberedLines(12))

	tests := []struct {
		name    string
		id      string
		want    string
		wantErr error
	}{
		{name: "first", id: "1", want: "Last1;First1;;Org1;001;"},
		{name: "two digits", id: "12", want: "Last12;First12;;Org12;012;"},
		{name: "out of range", id: "13", wantErr: contact.ErrNotFound},
		{name: "zero", id: "0", wantErr: contact.ErrNotFound},
		{name: "leading zero is not normalized", id: "01", wantErr: contact.ErrNotFound},
		{name: "not a number", id: "abc", wantErr: contact.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := store.FindByID(tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, entry.Line)
			assert.Equal(t, tt.id, strconv.Itoa(entry.ID))
		})
	}
}

func TestFindByID_StopsAtMatch(t *testing.T) {
	sc := &countingScanner{Scanner: newScanner(strings.NewReader(numberedLines(100)))}

	entry, err := findByID(sc, "3")
	require.NoError(t, err)
	assert.Equal(t, 3, entry.ID)
	assert.Equal(t, 3, sc.scans)
}

func TestFindByID_StopsAtBlankLine(t *testing.T) {
	sc := &countingScanner{Scanner: newScanner(strings.NewReader("a;;;;;\n\nb;;;;;\n"))}

	_, err := findByID(sc, "3")
	assert.ErrorIs(t, err, contact.ErrNotFound)
	assert.Equal(t, 2, sc.scans)
}

func TestStore_Search(t *testing.T) {
	content := strings.Join([]string{
		"Doe;John;;Acme;555-1111;555-2222",
		"Roe;Jane;;Globex;777-5555;",
		"Smith;Ann;;Initech;123;555",
		"Brown;Bob;;ACME;(555) 000;",
		"Short;Line",
		"Acme;Acme;Acme;Acme;Acme;Acme",
	}, "\n") + "\n"
	store, _ := newTestStore(t, content)

	tests := []struct {
		name     string
		criteria contact.Criteria
		want     []int
	}{
		{
			name:     "work phone only",
			criteria: contact.Criteria{"", "", "", "", "555", ""},
			want:     []int{1, 2, 4},
		},
		{
			name:     "empty criteria returns everything",
			criteria: contact.Criteria{},
			want:     []int{1, 2, 3, 4, 5, 6},
		},
		{
			name:     "case insensitive organization",
			criteria: contact.Criteria{"", "", "", "acme", "", ""},
			want:     []int{1, 4, 6},
		},
		{
			name:     "all positions required",
			criteria: contact.Criteria{"o", "", "", "acme", "555", ""},
			want:     []int{1, 4},
		},
		{
			name:     "short line fails on missing field",
			criteria: contact.Criteria{"short", "line", "", "", "", "x"},
			want:     []int{},
		},
		{
			name:     "short line passes when missing fields are unconstrained",
			criteria: contact.Criteria{"short", "", "", "", "", ""},
			want:     []int{5},
		},
		{
			name:     "no match",
			criteria: contact.Criteria{"", "", "", "", "", "nobody"},
			want:     []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := store.Search(tt.criteria)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(results))
		})
	}
}

func TestSearch_KeepsRawLine(t *testing.T) {
	results, err := search(newScanner(strings.NewReader("  Doe;John;;Acme;1;2  \r\n")), contact.Criteria{"doe"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, contact.Entry{ID: 1, Line: "Doe;John;;Acme;1;2"}, results[0])
}
