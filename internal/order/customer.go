package order

import (
	"fmt"
	"strings"
)

// Customer is the contact block of the order form.
type Customer struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	SpecialRequests string `json:"specialRequests"`
}

// Validate requires a name and an email address.
func (c Customer) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(c.Email) == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w (missing %s)", ErrMissingContact, strings.Join(missing, ", "))
	}
	return nil
}
