package markdown

import "github.com/mx-space/folio/internal/models"

// FormatDate renders a content date as "January 2, 2006". Unparseable dates
// are returned as written.
func FormatDate(d models.Date) string {
	t, err := d.Time()
	if err != nil {
		return d.String()
	}
	return t.Format("January 2, 2006")
}

// FormatDateShort renders a content date as "Jan 2, 2006".
func FormatDateShort(d models.Date) string {
	t, err := d.Time()
	if err != nil {
		return d.String()
	}
	return t.Format("Jan 2, 2006")
}
