package gomi

// GuideRecord represents one sorting-guide category page from the city site.
//
// CalendarName is the category title mapped onto the vocabulary the calendar
// uses for its item labels. The two vocabularies are scraped independently,
// so the association is a substring match against Entry.ItemLabel rather
// than an exact key.
type GuideRecord struct {
	CategoryName string `json:"category_name"`
	CalendarName string `json:"calendar_name"`
	Details      string `json:"details"`
	URL          string `json:"url"`
}
