package api

import (
	"net/http"

	businessDelivery "leadscout-backend/internal/business/delivery"
	businessUsecase "leadscout-backend/internal/business/usecase"
	leadDelivery "leadscout-backend/internal/lead/delivery"
	leadUsecase "leadscout-backend/internal/lead/usecase"
	"leadscout-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, leadUc leadUsecase.LeadUsecase, businessUc businessUsecase.BusinessUsecase, cfg *config.Config) {
	leadHandler := leadDelivery.NewLeadHandler(leadUc)
	businessHandler := businessDelivery.NewBusinessHandler(businessUc)

	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Gmail connection routes
		gmail := api.Group("/gmail")
		{
			gmail.POST("/connect", leadHandler.ConnectGmail)
			gmail.GET("/status", leadHandler.GmailStatus)
		}

		// Lead routes
		leads := api.Group("/leads")
		{
			leads.POST("/fetch", leadHandler.FetchLeads)
			leads.GET("", leadHandler.ListLeads)
			leads.GET("/search", leadHandler.SearchLeads)
			leads.PATCH("/:id/status", leadHandler.UpdateLeadStatus)
		}

		// Business routes
		businesses := api.Group("/businesses")
		{
			businesses.GET("", businessHandler.ListBusinesses)
			businesses.POST("", businessHandler.CreateBusiness)
			businesses.PUT("/:id/keywords", businessHandler.UpdateKeywords)
		}
	}
}
