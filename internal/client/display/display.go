// Package display computes the derived fields shown on the account screen.
package display

import (
	"time"

	"github.com/dmitrijs2005/nvxprofile/internal/client/models"
)

const (
	maskPrefix = "••••••"
	fullMask   = "••••••••••"
)

// Age returns the number of completed birthdays between birth and now.
func Age(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// AgeFromDOB parses a YYYY-MM-DD date of birth. ok is false when dob is
// empty or unparsable, in which case the caller shows a placeholder.
func AgeFromDOB(dob string, now time.Time) (age int, ok bool) {
	if dob == "" {
		return 0, false
	}
	birth, err := time.Parse(models.DateLayout, dob)
	if err != nil {
		return 0, false
	}
	return Age(birth, now), true
}

// MaskPhone keeps the last four characters of phone. Values shorter than
// four characters are masked entirely.
func MaskPhone(phone string) string {
	r := []rune(phone)
	if len(r) < 4 {
		return fullMask
	}
	return maskPrefix + string(r[len(r)-4:])
}
