package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelier-works/portfolio-api/internal/services"
)

type WorkHandler struct {
	svc services.WorkService
}

func NewWorkHandler(svc services.WorkService) *WorkHandler {
	return &WorkHandler{svc: svc}
}

func (h *WorkHandler) Create(c *gin.Context) {
	var req services.WorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, true, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	work, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	created(c, "Work created successfully", work)
}

func (h *WorkHandler) Get(c *gin.Context) {
	work, err := h.svc.GetByID(c.Request.Context(), c.Param("workId"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, "Work retrieved successfully", work)
}

func (h *WorkHandler) GetBySlug(c *gin.Context) {
	work, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, "Work retrieved successfully", work)
}

func (h *WorkHandler) List(c *gin.Context) {
	page, limit := pageQuery(c)
	rows, pagination, err := h.svc.List(c.Request.Context(), page, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, "Works retrieved successfully", gin.H{
		"works":      rows,
		"pagination": pagination,
	})
}

func (h *WorkHandler) Update(c *gin.Context) {
	var req services.WorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, true, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	work, err := h.svc.Update(c.Request.Context(), c.Param("workId"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, "Work updated successfully", work)
}

func (h *WorkHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("workId")); err != nil {
		writeError(c, err)
		return
	}
	ok(c, "Work deleted successfully", nil)
}
