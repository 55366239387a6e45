package handlers

import (
	"net/http"

	"sentosa_backend/internal/services"
	"sentosa_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/jobs", h.List)
		api.GET("/jobs/:id", h.GetDetail)
	}
}

func (h *JobHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	jobs, err := h.jobService.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) GetDetail(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	db := h.GetDB(c)

	detail, err := h.jobService.GetDetail(c.Request.Context(), db, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
