package delivery

import (
	"net/http"

	businessdto "leadscout-backend/internal/business/dto"
	"leadscout-backend/internal/business/usecase"

	"github.com/gin-gonic/gin"
)

type BusinessHandler struct {
	businessUsecase usecase.BusinessUsecase
}

func NewBusinessHandler(businessUsecase usecase.BusinessUsecase) *BusinessHandler {
	return &BusinessHandler{
		businessUsecase: businessUsecase,
	}
}

func (h *BusinessHandler) ListBusinesses(c *gin.Context) {
	businesses, keywords, err := h.businessUsecase.ListBusinesses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := businessdto.BusinessesResponse{
		Businesses: make([]businessdto.BusinessResponse, 0, len(businesses)),
	}
	for _, business := range businesses {
		resp.Businesses = append(resp.Businesses, businessdto.BusinessResponse{
			Business: business,
			Keywords: keywords[business.ID],
		})
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BusinessHandler) CreateBusiness(c *gin.Context) {
	var req businessdto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	business, err := h.businessUsecase.CreateBusiness(req.Name, req.Keywords)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, businessdto.BusinessResponse{
		Business: business,
		Keywords: req.Keywords,
	})
}

func (h *BusinessHandler) UpdateKeywords(c *gin.Context) {
	id := c.Param("id")

	var req businessdto.UpdateKeywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.businessUsecase.ReplaceKeywords(id, req.Keywords); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"business_id": id, "keywords": req.Keywords})
}
