package presenter

import "time"

// DateFormatter renders a timestamp for display
type DateFormatter func(time.Time) string

const (
	cardDateLayout    = "2 Jan"
	previewDateLayout = "January 2, 2006 · 3:04 PM"
)

// CardDate formats dates on note cards and table rows ("17 Sep")
func CardDate(t time.Time) string {
	return t.Format(cardDateLayout)
}

// PreviewDate formats the header date of the note preview
// ("September 17, 2024 · 12:00 AM")
func PreviewDate(t time.Time) string {
	return t.Format(previewDateLayout)
}

// InLocation wraps f so that dates are shown in loc
func InLocation(f DateFormatter, loc *time.Location) DateFormatter {
	if loc == nil {
		return f
	}
	return func(t time.Time) string {
		return f(t.In(loc))
	}
}
