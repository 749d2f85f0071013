package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelier-works/portfolio-api/internal/services"
)

type ContactHandler struct {
	svc services.ContactService
}

func NewContactHandler(svc services.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req services.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, true, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if _, err := h.svc.Create(c.Request.Context(), req); err != nil {
		writeError(c, err)
		return
	}
	created(c, "Contact form submitted successfully", nil)
}

func (h *ContactHandler) Get(c *gin.Context) {
	contact, err := h.svc.Get(c.Request.Context(), c.Param("contactId"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, "Contact form retrieved successfully", contact)
}

func (h *ContactHandler) List(c *gin.Context) {
	page, limit := pageQuery(c)
	rows, pagination, err := h.svc.List(c.Request.Context(), page, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, "Contact forms retrieved successfully", gin.H{
		"contacts":   rows,
		"pagination": pagination,
	})
}
