package handlers

import (
	"net/http"

	"ldexchange_backend/internal/search"
	"ldexchange_backend/internal/services"
	"ldexchange_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// JobHandler serves the job listing pages' data.
type JobHandler struct {
	*BaseHandler
	listingService services.ListingService
}

func NewJobHandler(base *BaseHandler, listingService services.ListingService) *JobHandler {
	return &JobHandler{
		BaseHandler:    base,
		listingService: listingService,
	}
}

func (h *JobHandler) RegisterRoutes(api *gin.RouterGroup) {
	jobs := api.Group("/jobs")
	{
		jobs.GET("", h.ListJobs)
		jobs.GET("/:id", h.GetJob)
	}
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	var filters search.JobFilters
	if !h.BindQuery(c, &filters) {
		return
	}

	jobs, err := h.listingService.ListJobs(c.Request.Context(), c.Query("q"), filters)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{Total: len(jobs), Data: jobs})
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.listingService.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}
