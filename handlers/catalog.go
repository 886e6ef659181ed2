package handlers

import (
	"net/http"

	"ticketbharat/catalog"
	"ticketbharat/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves read-only catalog browse endpoints.
type CatalogHandler struct {
	Catalog catalog.Provider
}

func NewCatalogHandler(cat catalog.Provider) *CatalogHandler {
	return &CatalogHandler{Catalog: cat}
}

func (h *CatalogHandler) ListStates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"states": h.Catalog.States()})
}

func (h *CatalogHandler) ListCities(c *gin.Context) {
	state := c.Param("state")
	c.JSON(http.StatusOK, gin.H{
		"state":  state,
		"cities": h.Catalog.CitiesByState(state),
	})
}

func (h *CatalogHandler) ListEvents(c *gin.Context) {
	state := c.Query("state")
	city := c.Query("city")
	if state == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "state query parameter is required")
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": h.Catalog.EventsByStateAndCity(state, city)})
}

func (h *CatalogHandler) GetEvent(c *gin.Context) {
	event, ok := h.Catalog.EventByID(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "event not found", "")
		return
	}
	c.JSON(http.StatusOK, event)
}
