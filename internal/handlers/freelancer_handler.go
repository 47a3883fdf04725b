package handlers

import (
	"net/http"

	"ldexchange_backend/internal/search"
	"ldexchange_backend/internal/services"
	"ldexchange_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// FreelancerHandler serves the freelancer directory.
type FreelancerHandler struct {
	*BaseHandler
	listingService services.ListingService
}

func NewFreelancerHandler(base *BaseHandler, listingService services.ListingService) *FreelancerHandler {
	return &FreelancerHandler{
		BaseHandler:    base,
		listingService: listingService,
	}
}

func (h *FreelancerHandler) RegisterRoutes(api *gin.RouterGroup) {
	freelancers := api.Group("/freelancers")
	{
		freelancers.GET("", h.ListFreelancers)
		freelancers.GET("/:id", h.GetFreelancer)
		freelancers.POST("", h.CreateFreelancer)
		freelancers.PUT("/:id", h.UpdateFreelancer)
	}
}

func (h *FreelancerHandler) ListFreelancers(c *gin.Context) {
	var filters search.ProfileFilters
	if !h.BindQuery(c, &filters) {
		return
	}

	profiles, err := h.listingService.ListFreelancers(c.Request.Context(), c.Query("q"), filters)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{Total: len(profiles), Data: profiles})
}

func (h *FreelancerHandler) GetFreelancer(c *gin.Context) {
	profile, err := h.listingService.GetFreelancer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *FreelancerHandler) CreateFreelancer(c *gin.Context) {
	var req dto.UpsertProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.listingService.CreateFreelancer(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

func (h *FreelancerHandler) UpdateFreelancer(c *gin.Context) {
	var req dto.UpsertProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.listingService.UpdateFreelancer(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
