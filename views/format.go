package views

import (
	"strconv"
	"strings"
	"time"

	"tarapurtransport/models"
)

// FormatDate renders dates the way the printed documents show them: dd/mm/yyyy.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

// FormatDatePtr is FormatDate for optional dates.
func FormatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatDate(*t)
}

// AddressLines builds the multi-line postal address printed on documents:
// street address, then city - pin, then state and country. Empty parts are
// skipped so the list never contains blank entries.
func AddressLines(address, city, pinCode, state, country string) []string {
	var lines []string

	if a := strings.TrimSpace(address); a != "" {
		lines = append(lines, a)
	}

	cityLine := strings.TrimSpace(city)
	if p := strings.TrimSpace(pinCode); p != "" {
		if cityLine != "" {
			cityLine += " - " + p
		} else {
			cityLine = p
		}
	}
	if cityLine != "" {
		lines = append(lines, cityLine)
	}

	var regionParts []string
	if s := strings.TrimSpace(state); s != "" {
		regionParts = append(regionParts, s)
	}
	if c := strings.TrimSpace(country); c != "" {
		regionParts = append(regionParts, c)
	}
	if len(regionParts) > 0 {
		lines = append(lines, strings.Join(regionParts, ", "))
	}

	return lines
}

// FormatMeasurement renders "10 MT", "5000 Per MT" and the like. Zero values
// with no unit render empty so optional measurements vanish from the page.
func FormatMeasurement(m models.Measurement) string {
	if m.Value == 0 && m.Unit == "" {
		return ""
	}
	v := strconv.FormatFloat(m.Value, 'f', -1, 64)
	if m.Unit == "" {
		return v
	}
	return v + " " + m.Unit
}
