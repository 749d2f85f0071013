package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelier-works/portfolio-api/internal/auth"
)

// TokenHandler mints capability tokens. It is only mounted when token minting
// is enabled in configuration; production deployments mint tokens out of band.
type TokenHandler struct {
	issuer *auth.Issuer
}

func NewTokenHandler(issuer *auth.Issuer) *TokenHandler {
	return &TokenHandler{issuer: issuer}
}

func (h *TokenHandler) Mint(c *gin.Context) {
	infinite := c.Query("infinite") == "true"

	issue := h.issuer.Issue
	if infinite {
		issue = h.issuer.IssueInfinite
	}

	readToken, err := issue(auth.TokenRead)
	if err != nil {
		respond(c, true, http.StatusInternalServerError, "Error generating tokens", nil)
		return
	}
	writeToken, err := issue(auth.TokenWrite)
	if err != nil {
		respond(c, true, http.StatusInternalServerError, "Error generating tokens", nil)
		return
	}

	ok(c, "Tokens generated successfully", gin.H{
		"readToken":  readToken,
		"writeToken": writeToken,
	})
}
