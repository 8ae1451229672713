package contact

import (
	"fmt"
)

// ValidateID проверяет, что идентификатор состоит только из десятичных цифр.
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty", ErrInvalidID)
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: %q is not a number", ErrInvalidID, id)
		}
	}
	return nil
}
