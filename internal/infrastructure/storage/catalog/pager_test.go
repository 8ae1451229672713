package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonebook/internal/domain/contact"
)

func TestPager_Determinism(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 20, 25, 99, 100} {
		t.Run(fmt.Sprintf("%d lines", n), func(t *testing.T) {
			store, _ := newTestStore(t, numberedLines(n))
			require.NoError(t, store.EnsureCreated())

			pager, err := store.OpenPages(10)
			require.NoError(t, err)
			defer pager.Close()

			var pages []contact.Page
			for {
				page, err := pager.Next()
				require.NoError(t, err)
				pages = append(pages, page)
				if page.Last {
					break
				}
				require.Less(t, len(pages), 100, "pager never reported the last page")
			}

			wantPages := (n + 9) / 10
			if wantPages == 0 {
				wantPages = 1
			}
			assert.Len(t, pages, wantPages)

			wantID := 1
			for i, page := range pages {
				assert.Equal(t, i*10+1, page.Start)
				assert.Equal(t, i == len(pages)-1, page.Last)
				if !page.Last {
					assert.Len(t, page.Entries, 10)
				}
				for _, e := range page.Entries {
					assert.Equal(t, wantID, e.ID)
					assert.Equal(t, fmt.Sprintf("Last%d;First%d;;Org%d;%03d;", wantID, wantID, wantID, wantID), e.Line)
					wantID++
				}
			}
			assert.Equal(t, n+1, wantID)
		})
	}
}

func TestPager_BlankLineEndsPaging(t *testing.T) {
	store, _ := newTestStore(t, "a;;;;;\nb;;;;;\n\nc;;;;;\n")

	pager, err := store.OpenPages(10)
	require.NoError(t, err)
	defer pager.Close()

	page, err := pager.Next()
	require.NoError(t, err)
	assert.True(t, page.Last)
	assert.Equal(t, []contact.Entry{{ID: 1, Line: "a;;;;;"}, {ID: 2, Line: "b;;;;;"}}, page.Entries)

	page, err = pager.Next()
	require.NoError(t, err)
	assert.True(t, page.Last)
	assert.Empty(t, page.Entries)
}

func TestPager_DefaultSize(t *testing.T) {
	store, _ := newTestStore(t, numberedLines(15))

	pager, err := store.OpenPages(0)
	require.NoError(t, err)
	defer pager.Close()

	page, err := pager.Next()
	require.NoError(t, err)
	assert.Len(t, page.Entries, DefaultPageSize)
	assert.Equal(t, 10, page.End())
	assert.False(t, page.Last)
}

func TestPager_CloseTwice(t *testing.T) {
	store, _ := newTestStore(t, numberedLines(1))

	pager, err := store.OpenPages(10)
	require.NoError(t, err)
	require.NoError(t, pager.Close())
	assert.NoError(t, pager.Close())
}

func TestStore_ReadPage(t *testing.T) {
	store, _ := newTestStore(t, numberedLines(25))

	tests := []struct {
		name      string
		start     int
		size      int
		wantStart int
		wantIDs   []int
		wantLast  bool
	}{
		{name: "first page", start: 1, size: 10, wantStart: 1, wantIDs: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{name: "tail", start: 21, size: 10, wantStart: 21, wantIDs: []int{21, 22, 23, 24, 25}, wantLast: true},
		{name: "unaligned start", start: 24, size: 2, wantStart: 24, wantIDs: []int{24, 25}, wantLast: true},
		{name: "past the end", start: 40, size: 10, wantStart: 40, wantIDs: []int{}, wantLast: true},
		{name: "non positive start", start: 0, size: 3, wantStart: 1, wantIDs: []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := store.ReadPage(tt.start, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, page.Start)
			assert.Equal(t, tt.wantIDs, ids(page.Entries))
			assert.Equal(t, tt.wantLast, page.Last)
		})
	}
}
