package flow

import "ticketbharat/models"

// ClampQuantities copies the requested tier counts, clamping each at
// zero. Tiers not priced by the event are dropped.
func ClampQuantities(event models.Event, requested map[string]int) map[string]int {
	out := make(map[string]int, len(requested))
	for tier, qty := range requested {
		if _, priced := event.Prices[tier]; !priced {
			continue
		}
		if qty < 0 {
			qty = 0
		}
		out[tier] = qty
	}
	return out
}

// ComputeTotal returns the order total as a pure function of the event's
// price map and the tier quantities. Callers recompute rather than
// patching the running total, so the stored amount can never drift.
func ComputeTotal(event models.Event, quantities map[string]int) float64 {
	total := 0.0
	for tier, qty := range quantities {
		total += float64(qty) * event.Prices[tier]
	}
	return total
}
