package nationalrail

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var crsPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// ParseCRS normalises a Computer Reservation System (CRS) station code to
// upper case and returns an error if it is not three letters.
func ParseCRS(code string) (CRSType, error) {
	normalised := strings.ToUpper(strings.TrimSpace(code))

	if !crsPattern.MatchString(normalised) {
		return "", errors.Errorf("CRS code `%s` is not valid", code)
	}

	return CRSType(normalised), nil
}
