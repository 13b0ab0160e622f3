package dbmodel

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

const PhonePrefix = "+3247"

var (
	phonePattern = regexp.MustCompile(`^\+3247\d{6}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// DBModelLead is one synthetic sales contact, bound positionally into the leads table.
type DBModelLead struct {
	FullName string `db:"full_name"`
	Email    string `db:"email"`
	Phone    string `db:"phone"`
}

// Args returns the statement parameters in column order.
func (l DBModelLead) Args() []interface{} {
	return []interface{}{l.FullName, l.Email, l.Phone}
}

// Validate reports the first format violation of a lead.
func (l DBModelLead) Validate() error {
	parts := strings.Split(l.FullName, " ")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return errors.Errorf("full_name %q shall be <first> <last>", l.FullName)
	}
	if !emailPattern.MatchString(l.Email) {
		return errors.Errorf("email %q is not a valid address", l.Email)
	}
	if !phonePattern.MatchString(l.Phone) {
		return errors.Errorf("phone %q shall be %s followed by 6 digits", l.Phone, PhonePrefix)
	}
	return nil
}
