package contact

import (
	"errors"
	"fmt"
	"strings"
)

type Message struct {
	Name    string
	Email   string
	Subject string
	Message string
}

var ErrMissingFields = errors.New("missing fields")

// Validate reports every empty field. Content is not otherwise checked:
// no format or length rules apply.
func (m Message) Validate() error {
	var missing []string
	if m.Name == "" {
		missing = append(missing, "name")
	}
	if m.Email == "" {
		missing = append(missing, "email")
	}
	if m.Subject == "" {
		missing = append(missing, "subject")
	}
	if m.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	return nil
}
