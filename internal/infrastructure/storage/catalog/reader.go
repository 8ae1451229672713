package catalog

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"phonebook/internal/domain/contact"
)

// maxLineSize ограничивает длину одной строки каталога.
const maxLineSize = 1 << 20

// lineScanner - построчный источник, *bufio.Scanner ему удовлетворяет.
type lineScanner interface {
	Scan() bool
	Text() string
	Err() error
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}

// walk передает в fn строки с их номерами, начиная с 1.
// Пустая строка или конец файла завершают обход, как и false из fn.
func walk(sc lineScanner, fn func(e contact.Entry) bool) error {
	for id := 1; sc.Scan(); id++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			break
		}
		if !fn(contact.Entry{ID: id, Line: line}) {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("ошибка чтения каталога: %w", err)
	}
	return nil
}

// FindByID ищет запись по идентификатору и прекращает чтение на первом совпадении.
// id сравнивается со строковым видом номера строки, поэтому "01" не найдет первую запись.
func (s *Store) FindByID(id string) (contact.Entry, error) {
	f, err := s.open()
	if err != nil {
		return contact.Entry{}, err
	}
	defer f.Close()

	entry, err := findByID(newScanner(f), id)
	if err != nil {
		return contact.Entry{}, err
	}

	s.log.Debug("record found", "op", "find", "id", entry.ID)
	return entry, nil
}

func findByID(sc lineScanner, id string) (contact.Entry, error) {
	var (
		found contact.Entry
		ok    bool
	)
	err := walk(sc, func(e contact.Entry) bool {
		if strconv.Itoa(e.ID) == id {
			found, ok = e, true
			return false
		}
		return true
	})
	if err != nil {
		return contact.Entry{}, err
	}
	if !ok {
		return contact.Entry{}, contact.ErrNotFound
	}
	return found, nil
}

// Search возвращает записи, подходящие под все условия, в порядке возрастания идентификатора.
func (s *Store) Search(criteria contact.Criteria) ([]contact.Entry, error) {
	f, err := s.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	results, err := search(newScanner(f), criteria)
	if err != nil {
		return nil, err
	}

	s.log.Debug("search done", "op", "search", "found", len(results))
	return results, nil
}

func search(sc lineScanner, criteria contact.Criteria) ([]contact.Entry, error) {
	var results []contact.Entry
	err := walk(sc, func(e contact.Entry) bool {
		if criteria.Match(e.Record()) {
			results = append(results, e)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
