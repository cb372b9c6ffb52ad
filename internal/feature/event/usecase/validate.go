package usecase

import (
	"regexp"
	"strings"
)

// timePattern matches 24h zero-padded times: "00"–"23", colon, "00"–"59".
var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5][0-9])$`)

// dataImagePrefix is the required prefix for data-URI encoded images.
const dataImagePrefix = "data:image/"

// isValidTime reports whether s is a valid zero-padded HH:mm time.
func isValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// isValidDayOfWeek reports whether day is in 1=Monday..7=Sunday.
func isValidDayOfWeek(day int) bool {
	return day >= 1 && day <= 7
}

// isValidImage reports whether s is a data-URI encoded image.
func isValidImage(s string) bool {
	return strings.HasPrefix(s, dataImagePrefix)
}

// normalizeOptional maps nil and empty strings to nil, so optional fields are
// stored as NULL rather than empty text.
func normalizeOptional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
