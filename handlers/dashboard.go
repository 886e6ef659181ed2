package handlers

import (
	"net/http"

	"ticketbharat/catalog"
	"ticketbharat/models"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the data behind the landing dashboard
// widgets. Sales figures are a demo fixture; only the show listing is
// derived from the live catalog.
type DashboardHandler struct {
	Catalog catalog.Provider
}

func NewDashboardHandler(cat catalog.Provider) *DashboardHandler {
	return &DashboardHandler{Catalog: cat}
}

type popularShow struct {
	Event       models.Event `json:"event"`
	TicketsSold int          `json:"ticketsSold"`
}

// Demo sales counts keyed by event id.
var demoSales = map[string]int{
	"movie-1":   15420,
	"concert-2": 9870,
	"sports-1":  8650,
	"movie-2":   7210,
	"theater-1": 4380,
	"comedy-1":  3950,
}

func (h *DashboardHandler) PopularShows(c *gin.Context) {
	shows := []popularShow{}
	for _, state := range h.Catalog.States() {
		for _, e := range h.Catalog.EventsByStateAndCity(state, "") {
			if sold, ok := demoSales[e.ID]; ok {
				shows = append(shows, popularShow{Event: e, TicketsSold: sold})
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{"shows": shows})
}

type salesPoint struct {
	Month   string `json:"month"`
	Tickets int    `json:"tickets"`
}

func (h *DashboardHandler) TicketsSold(c *gin.Context) {
	series := []salesPoint{
		{Month: "Apr", Tickets: 18200},
		{Month: "May", Tickets: 22100},
		{Month: "Jun", Tickets: 19800},
		{Month: "Jul", Tickets: 26400},
		{Month: "Aug", Tickets: 31050},
		{Month: "Sep", Tickets: 12400},
	}
	c.JSON(http.StatusOK, gin.H{"series": series})
}
