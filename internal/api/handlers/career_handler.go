package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelier-works/portfolio-api/internal/services"
)

type CareerHandler struct {
	svc services.CareerService
}

func NewCareerHandler(svc services.CareerService) *CareerHandler {
	return &CareerHandler{svc: svc}
}

func (h *CareerHandler) Create(c *gin.Context) {
	var req services.CareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, true, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	projection, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	created(c, "Career form submitted successfully", projection)
}

func (h *CareerHandler) Get(c *gin.Context) {
	career, err := h.svc.Get(c.Request.Context(), c.Param("careerId"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, "Career form retrieved successfully", career)
}

func (h *CareerHandler) Update(c *gin.Context) {
	var req services.CareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, true, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	career, err := h.svc.Update(c.Request.Context(), c.Param("careerId"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, "Career form updated successfully", career)
}

func (h *CareerHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("careerId")); err != nil {
		writeError(c, err)
		return
	}
	ok(c, "Career form deleted successfully", nil)
}

func (h *CareerHandler) List(c *gin.Context) {
	page, limit := pageQuery(c)
	rows, pagination, err := h.svc.List(c.Request.Context(), page, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, "Career forms retrieved successfully", gin.H{
		"careers":    rows,
		"pagination": pagination,
	})
}
