package delivery

import (
	"net/http"
	"strconv"

	leaddomain "leadscout-backend/internal/lead/domain"
	leaddto "leadscout-backend/internal/lead/dto"
	"leadscout-backend/internal/lead/usecase"

	"github.com/gin-gonic/gin"
)

type LeadHandler struct {
	leadUsecase usecase.LeadUsecase
}

func NewLeadHandler(leadUsecase usecase.LeadUsecase) *LeadHandler {
	return &LeadHandler{
		leadUsecase: leadUsecase,
	}
}

// FetchLeads triggers one fetch-and-process run and returns its summary.
func (h *LeadHandler) FetchLeads(c *gin.Context) {
	summary, err := h.leadUsecase.FetchAndProcess(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *LeadHandler) ListLeads(c *gin.Context) {
	limit := 50
	offset := 0

	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if parsed, err := strconv.Atoi(offsetStr); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	leads, total, err := h.leadUsecase.ListLeads(
		c.Query("business_id"),
		leaddomain.ContentStatus(c.Query("status")),
		limit, offset,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, leaddto.LeadsResponse{
		Leads:  leads,
		Limit:  limit,
		Offset: offset,
		Total:  total,
	})
}

func (h *LeadHandler) UpdateLeadStatus(c *gin.Context) {
	id := c.Param("id")

	var req leaddto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.leadUsecase.UpdateLeadStatus(id, leaddomain.ContentStatus(req.Status)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

func (h *LeadHandler) SearchLeads(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	leads, err := h.leadUsecase.SearchLeads(query, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leads": leads, "total": len(leads)})
}

func (h *LeadHandler) ConnectGmail(c *gin.Context) {
	var req leaddto.ConnectGmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conn := &leaddomain.GmailConnection{
		Email:        req.Email,
		AccessToken:  req.AccessToken,
		RefreshToken: req.RefreshToken,
		TokenType:    req.TokenType,
		ExpiryDate:   req.ExpiryDate,
	}

	if err := h.leadUsecase.ConnectGmail(c.Request.Context(), conn); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"connected": true})
}

func (h *LeadHandler) GmailStatus(c *gin.Context) {
	conn, err := h.leadUsecase.GmailStatus()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := leaddto.GmailStatusResponse{Connected: conn != nil}
	if conn != nil {
		resp.Email = conn.Email
	}
	c.JSON(http.StatusOK, resp)
}
