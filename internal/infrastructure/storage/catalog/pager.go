package catalog

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/exp/slog"

	"phonebook/internal/domain/contact"
)

// Pager читает каталог страницами через один открытый файл.
// Каждый вызов Next продолжает с того места, где остановился предыдущий.
type Pager struct {
	file    afero.File
	sc      lineScanner
	size    int
	start   int
	nextID  int
	pending string
	done    bool
	log     *slog.Logger
}

// OpenPages открывает сеанс постраничного чтения.
// Файл остается открытым до Close.
func (s *Store) OpenPages(pageSize int) (*Pager, error) {
	f, err := s.open()
	if err != nil {
		return nil, err
	}
	s.log.Debug("paging started", "op", "read", "page_size", pageSize)
	return newPager(f, pageSize, s.log), nil
}

// ReadPage возвращает одну страницу, начиная со строки pageStartLine (с 1).
func (s *Store) ReadPage(pageStartLine, pageSize int) (contact.Page, error) {
	f, err := s.open()
	if err != nil {
		return contact.Page{}, err
	}
	p := newPager(f, pageSize, s.log)
	defer p.Close()

	if pageStartLine < 1 {
		pageStartLine = 1
	}
	if err := p.skip(pageStartLine - 1); err != nil {
		return contact.Page{}, err
	}
	return p.Next()
}

func newPager(f afero.File, size int, log *slog.Logger) *Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Pager{
		file:   f,
		sc:     newScanner(f),
		size:   size,
		start:  1,
		nextID: 1,
		log:    log,
	}
}

// Next возвращает очередную страницу.
// Страница последняя, если после нее в файле нет непустых строк.
// После последней страницы Next возвращает пустые последние страницы.
func (p *Pager) Next() (contact.Page, error) {
	page := contact.Page{Start: p.start, Size: p.size}
	p.start += p.size

	for !p.done && len(page.Entries) < p.size {
		line, ok := p.readLine()
		if !ok {
			p.done = true
			break
		}
		page.Entries = append(page.Entries, contact.Entry{ID: p.nextID, Line: line})
		p.nextID++
	}
	if !p.done {
		p.done = !p.peek()
	}
	page.Last = p.done

	if err := p.sc.Err(); err != nil {
		return page, fmt.Errorf("ошибка чтения каталога: %w", err)
	}
	return page, nil
}

// Close освобождает файл.
func (p *Pager) Close() error {
	if p.file == nil {
		return nil
	}
	err := p.file.Close()
	p.file = nil
	p.log.Debug("paging finished", "op", "read")
	return err
}

// skip пропускает n строк, не отдавая их.
func (p *Pager) skip(n int) error {
	for i := 0; i < n && !p.done; i++ {
		if _, ok := p.readLine(); !ok {
			p.done = true
			break
		}
		p.nextID++
	}
	p.start = n + 1
	if err := p.sc.Err(); err != nil {
		return fmt.Errorf("ошибка чтения каталога: %w", err)
	}
	return nil
}

// readLine отдает следующую непустую строку. false означает пустую строку или конец файла.
func (p *Pager) readLine() (string, bool) {
	if p.pending != "" {
		line := p.pending
		p.pending = ""
		return line, true
	}
	if !p.sc.Scan() {
		return "", false
	}
	line := strings.TrimSpace(p.sc.Text())
	return line, line != ""
}

func (p *Pager) peek() bool {
	line, ok := p.readLine()
	if ok {
		p.pending = line
	}
	return ok
}
