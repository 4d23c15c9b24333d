package api

import (
	businessUsecasePkg "leadscout-backend/internal/business/usecase"
	leadUsecasePkg "leadscout-backend/internal/lead/usecase"
	"leadscout-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	leadUsecase     leadUsecasePkg.LeadUsecase
	businessUsecase businessUsecasePkg.BusinessUsecase
	config          *config.Config
}

func NewHandler(leadUc leadUsecasePkg.LeadUsecase, businessUc businessUsecasePkg.BusinessUsecase, cfg *config.Config) *Handler {
	return &Handler{
		leadUsecase:     leadUc,
		businessUsecase: businessUc,
		config:          cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.leadUsecase, h.businessUsecase, h.config)

	return r.Run(addr)
}
