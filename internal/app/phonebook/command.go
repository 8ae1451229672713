package phonebook

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCommand = errors.New("unknown command")

// Command - пункт главного меню.
type Command int

const (
	CommandExit Command = iota
	CommandRead
	CommandAdd
	CommandEdit
	CommandFind
)

// Commands перечисляет пункты меню в порядке вывода.
var Commands = []Command{CommandRead, CommandAdd, CommandEdit, CommandFind, CommandExit}

// ParseCommand разбирает ввод пользователя в пункт меню.
func ParseCommand(input string) (Command, error) {
	switch strings.TrimSpace(input) {
	case "0":
		return CommandExit, nil
	case "1":
		return CommandRead, nil
	case "2":
		return CommandAdd, nil
	case "3":
		return CommandEdit, nil
	case "4":
		return CommandFind, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, input)
	}
}

// Key возвращает символ, которым пункт выбирается в меню.
func (c Command) Key() string {
	return fmt.Sprint(int(c))
}

// String возвращает название пункта меню.
func (c Command) String() string {
	switch c {
	case CommandExit:
		return "exit"
	case CommandRead:
		return "Read records"
	case CommandAdd:
		return "Add new record"
	case CommandEdit:
		return "Edit record"
	case CommandFind:
		return "Find record"
	default:
		return "unknown"
	}
}

// menuText собирает строку выбора: "1 - Read records.  2 - ...  0 - exit."
func menuText() string {
	items := make([]string, 0, len(Commands))
	for _, c := range Commands {
		items = append(items, fmt.Sprintf("%s - %s.", c.Key(), c))
	}
	return "Choose an option: \n" + strings.Join(items, "  ") + "\n"
}
