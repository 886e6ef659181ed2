// Package catalog serves the static event/venue tables the booking flow
// draws from. The catalog is a fixed demo fixture: loaded once, never
// mutated, no backing store.
package catalog

import (
	"fmt"

	"ticketbharat/models"
)

// Provider exposes read-only lookups over the event catalog.
type Provider interface {
	States() []string
	CitiesByState(state string) []string
	// EventsByStateAndCity filters by state always, by city only when
	// city is non-empty. Events come back in declaration order.
	EventsByStateAndCity(state, city string) []models.Event
	EventByID(id string) (models.Event, bool)
}

// StaticProvider serves the in-memory fixture tables.
type StaticProvider struct {
	stateOrder []string
	cities     map[string][]string
	events     []models.Event
	byID       map[string]models.Event
}

// NewStaticProvider builds the default catalog from the fixture data.
func NewStaticProvider() *StaticProvider {
	p := &StaticProvider{
		stateOrder: stateOrder,
		cities:     stateCities,
		events:     events,
		byID:       make(map[string]models.Event, len(events)),
	}
	for _, e := range events {
		p.byID[e.ID] = e
	}
	return p
}

func (p *StaticProvider) States() []string {
	out := make([]string, len(p.stateOrder))
	copy(out, p.stateOrder)
	return out
}

func (p *StaticProvider) CitiesByState(state string) []string {
	cities, ok := p.cities[state]
	if !ok {
		return []string{}
	}
	out := make([]string, len(cities))
	copy(out, cities)
	return out
}

func (p *StaticProvider) EventsByStateAndCity(state, city string) []models.Event {
	matched := []models.Event{}
	for _, e := range p.events {
		if e.State != state {
			continue
		}
		if city != "" && e.City != city {
			continue
		}
		matched = append(matched, e)
	}
	return matched
}

func (p *StaticProvider) EventByID(id string) (models.Event, bool) {
	e, ok := p.byID[id]
	return e, ok
}

// Validate checks referential integrity of the fixture: every event's
// city must be listed under its state, and every bookable event needs at
// least one price tier, date and time slot.
func (p *StaticProvider) Validate() error {
	for _, e := range p.events {
		cities, ok := p.cities[e.State]
		if !ok {
			return fmt.Errorf("event %s: unknown state %q", e.ID, e.State)
		}
		found := false
		for _, c := range cities {
			if c == e.City {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("event %s: city %q not listed under state %q", e.ID, e.City, e.State)
		}
		if len(e.Prices) == 0 {
			return fmt.Errorf("event %s: no price tiers", e.ID)
		}
		if len(e.Dates) == 0 || len(e.Times) == 0 {
			return fmt.Errorf("event %s: missing dates or times", e.ID)
		}
	}
	return nil
}
