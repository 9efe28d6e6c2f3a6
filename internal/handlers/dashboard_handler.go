package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/revertpixels/CardReminder/internal/services"
)

type DashboardHandler struct {
	Cards *services.CardService
}

func NewDashboardHandler(cards *services.CardService) *DashboardHandler {
	return &DashboardHandler{Cards: cards}
}

// Get returns the urgency summary plus the classified card list for
// the logged-in user, evaluated at today's day-of-month.
func (h *DashboardHandler) Get(c *gin.Context) {
	ownerID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, cards, err := h.Cards.Dashboard(ownerID, time.Now().Day())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": summary, "cards": cards})
}
