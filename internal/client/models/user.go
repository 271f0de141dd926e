// Package models defines the client-side records kept in the local store
// and the views built from them.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/nvxprofile/internal/common"
)

// DateLayout is the on-disk format of User.DOB.
const DateLayout = "2006-01-02"

// User is the record stored under the users key, one per user identifier.
// JSON names match the records written by the web client.
type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	DOB      string `json:"dob,omitempty"`

	// Password-derived fields. Never rendered or exported.
	Salt     []byte `json:"salt,omitempty"`
	Verifier []byte `json:"verifier,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks the fields the store relies on.
func (u User) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return fmt.Errorf("%w: id is required", common.ErrInvalidUser)
	}
	if !strings.Contains(u.Email, "@") {
		return fmt.Errorf("%w: email %q is not valid", common.ErrInvalidUser, u.Email)
	}
	if u.DOB != "" {
		if _, err := u.BirthDate(); err != nil {
			return fmt.Errorf("%w: dob %q is not a YYYY-MM-DD date", common.ErrInvalidUser, u.DOB)
		}
	}
	return nil
}

// BirthDate parses DOB.
func (u User) BirthDate() (time.Time, error) {
	return time.Parse(DateLayout, u.DOB)
}

// Public returns a copy without the password-derived fields.
func (u User) Public() User {
	u.Salt = nil
	u.Verifier = nil
	return u
}
