package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/beanflow-api/internal/httperr"
	"github.com/BruksfildServices01/beanflow-api/internal/middleware"
)

// GuestTokenIssuer mints embedded dashboard tokens; see superset.Client.
type GuestTokenIssuer interface {
	GuestToken(ctx context.Context, dashboardID string) (string, error)
}

type SupersetHandler struct {
	issuer GuestTokenIssuer
	log    zerolog.Logger
}

func NewSupersetHandler(issuer GuestTokenIssuer, log zerolog.Logger) *SupersetHandler {
	return &SupersetHandler{issuer: issuer, log: log}
}

// GuestToken never leaks upstream detail to the caller; the full failure is
// only logged.
func (h *SupersetHandler) GuestToken(c *gin.Context) {
	dashboardID := strings.TrimSpace(c.Param("dashboardId"))
	if dashboardID == "" {
		httperr.BadRequest(c, "Parâmetro 'dashboardId' inválido.")
		return
	}

	token, err := h.issuer.GuestToken(c.Request.Context(), dashboardID)
	if err != nil {
		h.log.Error().
			Err(err).
			Str("dashboard_id", dashboardID).
			Str("request_id", middleware.GetRequestID(c)).
			Msg("superset guest token failed")
		httperr.Write(c, http.StatusInternalServerError, "Erro ao gerar token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
