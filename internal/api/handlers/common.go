package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atelier-works/portfolio-api/internal/utils"
)

// Envelope is the uniform response shape of every endpoint.
type Envelope struct {
	Error   bool   `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(c *gin.Context, isErr bool, status int, message string, data any) {
	c.JSON(status, Envelope{Error: isErr, Status: status, Message: message, Data: data})
}

func ok(c *gin.Context, message string, data any) {
	respond(c, false, http.StatusOK, message, data)
}

func created(c *gin.Context, message string, data any) {
	respond(c, false, http.StatusCreated, message, data)
}

// writeError renders an AppError into the envelope. Internal details stay in
// logs; the client only ever sees the safe message.
func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	respond(c, true, status, utils.Message(err, http.StatusText(status)), nil)
}

func pageQuery(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}
