package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelier-works/portfolio-api/internal/services"
)

type WorkDetailHandler struct {
	svc services.WorkDetailService
}

func NewWorkDetailHandler(svc services.WorkDetailService) *WorkDetailHandler {
	return &WorkDetailHandler{svc: svc}
}

func (h *WorkDetailHandler) Create(c *gin.Context) {
	var req services.WorkDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, true, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	detail, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	created(c, "Work detail created successfully", detail)
}

func (h *WorkDetailHandler) Get(c *gin.Context) {
	detail, err := h.svc.Get(c.Request.Context(), c.Param("workDetailId"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, "Work detail retrieved successfully", detail)
}

func (h *WorkDetailHandler) List(c *gin.Context) {
	if workID := c.Query("workId"); workID != "" {
		rows, err := h.svc.ListByWork(c.Request.Context(), workID)
		if err != nil {
			writeError(c, err)
			return
		}
		ok(c, "Work details retrieved successfully", gin.H{"workDetails": rows})
		return
	}

	page, limit := pageQuery(c)
	rows, pagination, err := h.svc.List(c.Request.Context(), page, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, "Work details retrieved successfully", gin.H{
		"workDetails": rows,
		"pagination":  pagination,
	})
}

func (h *WorkDetailHandler) Update(c *gin.Context) {
	var req services.WorkDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, true, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	detail, err := h.svc.Update(c.Request.Context(), c.Param("workDetailId"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, "Work detail updated successfully", detail)
}

func (h *WorkDetailHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("workDetailId")); err != nil {
		writeError(c, err)
		return
	}
	ok(c, "Work detail deleted successfully", nil)
}
