package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/revertpixels/CardReminder/internal/models"
	"github.com/revertpixels/CardReminder/internal/pdf"
	"github.com/revertpixels/CardReminder/internal/services"
)

type CardHandler struct {
	Service   *services.CardService
	Statement *pdf.StatementGenerator
}

func NewCardHandler(service *services.CardService, statement *pdf.StatementGenerator) *CardHandler {
	return &CardHandler{Service: service, Statement: statement}
}

type cardRequest struct {
	HolderName       string `json:"holder_name" binding:"required"`
	Nickname         string `json:"nickname"`
	BankName         string `json:"bank_name" binding:"required"`
	IsOtherBank      bool   `json:"is_other_bank"`
	Network          string `json:"network" binding:"required"`
	LastFour         string `json:"last_four" binding:"required,len=4,numeric"`
	BillingDay       int    `json:"billing_day" binding:"required,min=1,max=31"`
	DueDay           int    `json:"due_day" binding:"required,min=1,max=31"`
	CreditLimit      int64  `json:"credit_limit"`
	Color            string `json:"color"`
	NotifyOnBilling  bool   `json:"notify_on_billing"`
	NotifyBeforeDue  bool   `json:"notify_before_due"`
	NotifyDaysBefore *int   `json:"notify_days_before"`
}

func (r *cardRequest) toModel(ownerID int) *models.Card {
	color := r.Color
	if color == "" {
		color = "#0d6efd"
	}
	return &models.Card{
		OwnerID:          ownerID,
		HolderName:       r.HolderName,
		Nickname:         r.Nickname,
		BankName:         r.BankName,
		IsOtherBank:      r.IsOtherBank,
		Network:          r.Network,
		LastFour:         r.LastFour,
		BillingDay:       r.BillingDay,
		DueDay:           r.DueDay,
		CreditLimit:      r.CreditLimit,
		Color:            color,
		NotifyOnBilling:  r.NotifyOnBilling,
		NotifyBeforeDue:  r.NotifyBeforeDue,
		NotifyDaysBefore: r.NotifyDaysBefore,
	}
}

func (h *CardHandler) Create(c *gin.Context) {
	ownerID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req cardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	card := req.toModel(ownerID)
	id, err := h.Service.Create(card)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	card.ID = int(id)
	c.JSON(http.StatusCreated, card)
}

func (h *CardHandler) Update(c *gin.Context) {
	ownerID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req cardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	card := req.toModel(ownerID)
	card.ID = id

	if err := h.Service.Update(card); err != nil {
		writeCardError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *CardHandler) GetByID(c *gin.Context) {
	ownerID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	card, err := h.Service.GetByID(id, ownerID)
	if err != nil {
		writeCardError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *CardHandler) List(c *gin.Context) {
	ownerID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	cards, err := h.Service.ListByOwner(ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *CardHandler) Delete(c *gin.Context) {
	ownerID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Service.Delete(id, ownerID); err != nil {
		writeCardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Card deleted successfully."})
}

func (h *CardHandler) MarkPaid(c *gin.Context) {
	h.setPaid(c, true)
}

func (h *CardHandler) MarkUnpaid(c *gin.Context) {
	h.setPaid(c, false)
}

func (h *CardHandler) setPaid(c *gin.Context, paid bool) {
	ownerID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Service.SetPaid(id, ownerID, paid); err != nil {
		writeCardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *CardHandler) Banks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"banks": models.BankList, "networks": models.CardNetworks})
}

// Export renders the owner's cards to a PDF statement.
func (h *CardHandler) Export(c *gin.Context) {
	ownerID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	cards, err := h.Service.ListByOwner(ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	buf, err := h.Statement.Generate(cards, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate statement"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=cards_%s.pdf", time.Now().Format("2006-01-02")))
	c.Data(http.StatusOK, "application/pdf", buf)
}

func writeCardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
	case errors.Is(err, services.ErrInvalidCycleDay):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
