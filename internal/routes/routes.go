package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/revertpixels/CardReminder/internal/handlers"
	"github.com/revertpixels/CardReminder/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	resetHandler *handlers.ResetHandler,
	cardHandler *handlers.CardHandler,
	dashboardHandler *handlers.DashboardHandler,
) *gin.Engine {

	// ---- public
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/banks", cardHandler.Banks)

	// password reset: request -> verify -> reset, each step gated on
	// the previous one's state
	r.POST("/forgot-password", resetHandler.RequestReset)
	r.POST("/verify-otp", resetHandler.VerifyOTP)
	r.POST("/reset-password", resetHandler.ResetPassword)

	// ---- protected
	r.Use(middleware.AuthMiddleware())

	r.GET("/me", authHandler.Me)
	r.POST("/me/telegram", authHandler.LinkTelegram)
	r.DELETE("/me/telegram", authHandler.UnlinkTelegram)

	r.GET("/dashboard", dashboardHandler.Get)

	cards := r.Group("/cards")
	{
		cards.POST("/", cardHandler.Create)
		cards.GET("/", cardHandler.List)
		cards.GET("/export", cardHandler.Export)
		cards.GET("/:id", cardHandler.GetByID)
		cards.PUT("/:id", cardHandler.Update)
		cards.DELETE("/:id", cardHandler.Delete)
		cards.POST("/:id/mark-paid", cardHandler.MarkPaid)
		cards.POST("/:id/mark-unpaid", cardHandler.MarkUnpaid)
	}

	return r
}
