package model

// CalendarEvent is a dated entry on the shared calendar.
// Date is "2006-01-02" and Time is zero-padded "15:04"; an empty Time means
// "00:00". Multiple events may share a date and time.
type CalendarEvent struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Place       string `json:"place"`
	Category    string `json:"category"`
}
