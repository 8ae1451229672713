package phonebook

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"phonebook/internal/domain/contact"
)

// ask печатает приглашение и читает строку ввода без перевода строки.
// io.EOF возвращается, только если ввод закончился до первого символа.
func (a *App) ask(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)

	line, err := a.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// fillFields запрашивает значения всех полей по порядку.
func (a *App) fillFields() (contact.Record, error) {
	var rec contact.Record
	for _, f := range contact.Fields {
		v, err := a.ask(f.DisplayName() + ": ")
		if err != nil {
			return contact.Record{}, err
		}
		rec[f] = v
	}
	return rec, nil
}
