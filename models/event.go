package models

// EventCategory enumerates the kinds of bookable events.
type EventCategory string

const (
	CategoryMovie   EventCategory = "movie"
	CategoryConcert EventCategory = "concert"
	CategorySports  EventCategory = "sports"
	CategoryTheater EventCategory = "theater"
	CategoryComedy  EventCategory = "comedy"
)

// Event is a bookable show/venue/session.
type Event struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Category    EventCategory      `json:"category"`
	Venue       string             `json:"venue"`
	City        string             `json:"city"`
	State       string             `json:"state"`
	Dates       []string           `json:"dates"` // ISO dates (YYYY-MM-DD)
	Times       []string           `json:"times"`
	Prices      map[string]float64 `json:"prices"` // tier name -> unit price
	Description string             `json:"description,omitempty"`
}

// HasDate reports whether d is one of the event's valid calendar dates.
func (e *Event) HasDate(d string) bool {
	for _, v := range e.Dates {
		if v == d {
			return true
		}
	}
	return false
}

// HasTime reports whether t is one of the event's valid time slots.
func (e *Event) HasTime(t string) bool {
	for _, v := range e.Times {
		if v == t {
			return true
		}
	}
	return false
}
