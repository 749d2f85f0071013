package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelier-works/portfolio-api/internal/services"
)

type MediaHandler struct {
	svc services.MediaService
}

func NewMediaHandler(svc services.MediaService) *MediaHandler {
	return &MediaHandler{svc: svc}
}

func (h *MediaHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("files")
	if err != nil {
		respond(c, true, http.StatusBadRequest, "No file uploaded", nil)
		return
	}

	f, err := fh.Open()
	if err != nil {
		respond(c, true, http.StatusInternalServerError, "Error uploading media", nil)
		return
	}
	defer f.Close()

	media, err := h.svc.Upload(c.Request.Context(), services.UploadInput{
		FileName: fh.Filename,
		Mimetype: fh.Header.Get("Content-Type"),
		Size:     fh.Size,
		Body:     f,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	created(c, "Media uploaded successfully", media)
}

func (h *MediaHandler) Get(c *gin.Context) {
	media, err := h.svc.Get(c.Request.Context(), c.Param("mediaId"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, "Media retrieved successfully", media)
}

func (h *MediaHandler) List(c *gin.Context) {
	page, limit := pageQuery(c)
	rows, pagination, err := h.svc.List(c.Request.Context(), page, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, "Media retrieved successfully", gin.H{
		"media":      rows,
		"pagination": pagination,
	})
}

func (h *MediaHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("mediaId")); err != nil {
		writeError(c, err)
		return
	}
	ok(c, "Media deleted successfully", nil)
}

func (h *MediaHandler) BulkDelete(c *gin.Context) {
	var req struct {
		MediaIDs []string `json:"mediaIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.MediaIDs) == 0 {
		respond(c, true, http.StatusBadRequest, "mediaIds must be a non-empty array", nil)
		return
	}

	res := h.svc.BulkDelete(c.Request.Context(), req.MediaIDs)
	ok(c, "Bulk delete completed", res)
}
