package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revertpixels/CardReminder/internal/services"
)

// ResetHandler exposes the three-step password reset flow. Each step
// is gated on the previous one's state, enforced by the service.
type ResetHandler struct {
	Service services.PasswordResetService
}

func NewResetHandler(service services.PasswordResetService) *ResetHandler {
	return &ResetHandler{Service: service}
}

func (h *ResetHandler) RequestReset(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.RequestReset(req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// same response whether or not the account exists
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent to your email."})
}

func (h *ResetHandler) VerifyOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
		Code  string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.VerifyCode(req.Email, req.Code); err != nil {
		if errors.Is(err, services.ErrInvalidOrExpiredCode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid/Expired OTP"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "verification failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP verified"})
}

func (h *ResetHandler) ResetPassword(c *gin.Context) {
	var req struct {
		Email           string `json:"email" binding:"required,email"`
		Password        string `json:"password" binding:"required"`
		ConfirmPassword string `json:"confirm_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}

	if err := h.Service.ResetPassword(req.Email, req.Password); err != nil {
		if errors.Is(err, services.ErrChallengeNotVerified) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "OTP not verified"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset! Login."})
}
