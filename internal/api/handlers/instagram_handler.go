package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelier-works/portfolio-api/internal/services"
)

type InstagramHandler struct {
	svc services.InstagramService
}

func NewInstagramHandler(svc services.InstagramService) *InstagramHandler {
	return &InstagramHandler{svc: svc}
}

func (h *InstagramHandler) Create(c *gin.Context) {
	var req services.InstagramPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, true, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	post, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	created(c, "Instagram post created successfully", post)
}

func (h *InstagramHandler) Get(c *gin.Context) {
	post, err := h.svc.Get(c.Request.Context(), c.Param("postId"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, "Instagram post retrieved successfully", post)
}

func (h *InstagramHandler) List(c *gin.Context) {
	page, limit := pageQuery(c)
	rows, pagination, err := h.svc.List(c.Request.Context(), page, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, "Instagram posts retrieved successfully", gin.H{
		"posts":      rows,
		"pagination": pagination,
	})
}

func (h *InstagramHandler) Update(c *gin.Context) {
	var req services.InstagramPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, true, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	post, err := h.svc.Update(c.Request.Context(), c.Param("postId"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, "Instagram post updated successfully", post)
}

func (h *InstagramHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("postId")); err != nil {
		writeError(c, err)
		return
	}
	ok(c, "Instagram post deleted successfully", nil)
}
