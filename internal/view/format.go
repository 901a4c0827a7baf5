package view

import (
	"fmt"

	"github.com/wisdomwellbeing/resourcectl/internal/resource"
)

// Branding shared by the terminal browser and the HTML page.
const (
	Title   = "Wisdom Wellbeing"
	Tagline = "Your Resource Centre for Better Living"
	Footer  = "Wisdom Wellbeing Resource Centre"

	SearchPlaceholder = "Search by title or tags..."
	LoadingMessage    = "Loading resources..."
)

// DateLabel renders the upload date as "10 July 2025". Unparseable dates are
// returned as stored.
func DateLabel(r resource.Resource) string {
	t, err := resource.ParseDate(r.DateUploaded)
	if err != nil {
		return r.DateUploaded
	}
	return t.Format("2 January 2006")
}

// DurationShort renders a duration for cards and rows ("25 min").
func DurationShort(minutes int) string {
	return fmt.Sprintf("%d min", minutes)
}

// DurationLong renders a duration for the detail view ("25 minutes").
func DurationLong(minutes int) string {
	if minutes == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", minutes)
}
