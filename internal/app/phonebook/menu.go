package phonebook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"phonebook/internal/domain/contact"
)

const (
	separator       = "=========="
	msgEmptyCatalog = "File is empty. Write data into file before reading."
)

// Run запускает главное меню и крутит его до выбора 0 или конца ввода.
// Ошибка ввода-вывода каталога прерывает цикл и возвращается вызывающему.
func (a *App) Run(ctx context.Context) error {
	if err := a.store.EnsureCreated(); err != nil {
		return err
	}
	a.log.Debug("menu started", "catalog", a.store.Path())

	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprintln(a.out, separator)
		choice, err := a.ask(menuText())
		if errors.Is(err, io.EOF) {
			a.goodbye()
			return nil
		}
		if err != nil {
			return fmt.Errorf("ошибка чтения ввода: %w", err)
		}
		fmt.Fprintln(a.out, separator)

		cmd, err := ParseCommand(choice)
		if err != nil {
			a.colors.warn.Fprintln(a.out, "Choose one of the listed options.")
			continue
		}
		if cmd == CommandExit {
			a.goodbye()
			return nil
		}

		if err := a.Execute(cmd); err != nil {
			if errors.Is(err, io.EOF) {
				a.goodbye()
				return nil
			}
			return err
		}
	}
}

// Execute выполняет один пункт меню.
func (a *App) Execute(cmd Command) error {
	a.log.Debug("command selected", "command", cmd.String())

	switch cmd {
	case CommandRead:
		return a.ReadRecords()
	case CommandAdd:
		return a.AddRecord()
	case CommandEdit:
		return a.EditRecord()
	case CommandFind:
		return a.FindRecord()
	case CommandExit:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownCommand, int(cmd))
	}
}

// ReadRecords листает каталог по страницам, пока пользователь не введет 0
// или не будет показана последняя страница.
func (a *App) ReadRecords() error {
	pager, err := a.store.OpenPages(a.config.PageSize)
	if errors.Is(err, contact.ErrCatalogNotFound) {
		a.colors.info.Fprintln(a.out, msgEmptyCatalog)
		return nil
	}
	if err != nil {
		return err
	}
	defer pager.Close()

	for {
		choice, err := a.ask("\nEnter any key to continue. \nEnter 0 to exit.\n")
		if err != nil {
			return err
		}
		if strings.TrimSpace(choice) == "0" {
			return nil
		}

		page, err := pager.Next()
		if err != nil {
			return err
		}
		a.PrintPage(page)
		if page.Last {
			return nil
		}
	}
}

// AddRecord запрашивает поля и дописывает запись в каталог.
func (a *App) AddRecord() error {
	rec, err := a.fillFields()
	if err != nil {
		return err
	}
	if err := a.store.Append(rec); err != nil {
		return err
	}
	a.colors.success.Fprintln(a.out, "Record added.")
	return nil
}

// EditRecord запрашивает номер записи и новые значения полей.
// Номер, не являющийся числом, не доходит до хранилища.
func (a *App) EditRecord() error {
	id, err := a.ask("Write an ID of record:\n")
	if err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if err := contact.ValidateID(id); err != nil {
		a.colors.warn.Fprintln(a.out, "\nWrite a number!")
		return nil
	}
	return a.EditByID(id)
}

// EditByID запрашивает новые значения полей и заменяет ими запись с номером id.
func (a *App) EditByID(id string) error {
	rec, err := a.fillFields()
	if err != nil {
		return err
	}
	if err := a.store.Edit(id, rec); err != nil {
		return err
	}
	a.colors.success.Fprintln(a.out, "Catalog saved.")
	return nil
}

// FindRecord ищет по номеру, а при пустом номере - по полям.
func (a *App) FindRecord() error {
	ok, err := a.store.Exists()
	if err != nil {
		return err
	}
	if !ok {
		a.colors.info.Fprintln(a.out, msgEmptyCatalog)
		return nil
	}

	id, err := a.ask("ID (Leave empty to search with fields):\n")
	if err != nil {
		return err
	}
	if id = strings.TrimSpace(id); id != "" {
		return a.ShowByID(id)
	}

	fmt.Fprintln(a.out, "Fill in the fields to search records. \nLeave the field empty so as not to use it.")
	fmt.Fprintln(a.out)
	rec, err := a.fillFields()
	if err != nil {
		return err
	}
	criteria := contact.Criteria(rec)
	if criteria.IsEmpty() {
		a.colors.warn.Fprintln(a.out, "Fill at least one field!")
		return nil
	}
	return a.ShowSearch(criteria)
}

// ShowByID выводит запись с номером id или сообщение, что ее нет.
func (a *App) ShowByID(id string) error {
	entry, err := a.store.FindByID(id)
	switch {
	case errors.Is(err, contact.ErrNotFound):
		a.colors.info.Fprintf(a.out, "No record with ID %s.\n", id)
		return nil
	case errors.Is(err, contact.ErrCatalogNotFound):
		a.colors.info.Fprintln(a.out, msgEmptyCatalog)
		return nil
	case err != nil:
		return err
	}
	a.PrintEntries([]contact.Entry{entry})
	return nil
}

// ShowSearch выводит число найденных записей и сами записи.
func (a *App) ShowSearch(criteria contact.Criteria) error {
	entries, err := a.store.Search(criteria)
	if errors.Is(err, contact.ErrCatalogNotFound) {
		a.colors.info.Fprintln(a.out, msgEmptyCatalog)
		return nil
	}
	if err != nil {
		return err
	}
	a.colors.success.Fprintf(a.out, "\nFound %d records\n", len(entries))
	a.PrintEntries(entries)
	return nil
}

// PrintPage выводит страницу с заголовком диапазона.
func (a *App) PrintPage(page contact.Page) {
	a.colors.header.Fprintf(a.out, "Records %d..%d\n", page.Start, page.End())
	a.PrintEntries(page.Entries)
}

// PrintEntries выводит заголовок колонок и строки "id - запись".
func (a *App) PrintEntries(entries []contact.Entry) {
	a.colors.header.Fprintln(a.out, contact.Header())
	fmt.Fprintln(a.out)
	for _, e := range entries {
		fmt.Fprintln(a.out, e.String())
	}
}

func (a *App) goodbye() {
	fmt.Fprintln(a.out, "Goodbye!")
}
