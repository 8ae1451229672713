package contact

import (
	"fmt"
)

// Entry - строка каталога вместе с ее идентификатором.
// ID - позиция строки в файле (с 1) на момент чтения, в файле он не хранится
// и меняется после правок, меняющих число строк.
type Entry struct {
	ID   int    `json:"id"`
	Line string `json:"line"`
}

// Record разбирает строку в запись.
func (e Entry) Record() Record {
	return Parse(e.Line)
}

// String форматирует запись для вывода в консоль.
func (e Entry) String() string {
	return fmt.Sprintf("%d - %s", e.ID, e.Line)
}

// Page - порция записей постраничного чтения.
type Page struct {
	// Start - идентификатор первой позиции страницы.
	Start int
	// Size - запрошенный размер страницы.
	Size    int
	Entries []Entry
	// Last выставляется, когда страница закончилась пустой строкой или концом файла.
	Last bool
}

// End возвращает идентификатор последней позиции страницы.
func (p Page) End() int {
	return p.Start + p.Size - 1
}
