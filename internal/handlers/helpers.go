package handlers

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/beanflow-api/internal/audit"
	"github.com/BruksfildServices01/beanflow-api/internal/httperr"
	"github.com/BruksfildServices01/beanflow-api/internal/middleware"
	"github.com/BruksfildServices01/beanflow-api/internal/models"
)

const (
	msgInvalidID   = "ID inválido"
	msgInvalidBody = "Corpo da requisição inválido"
)

// AuditDispatcher queues mutation events; see audit.Dispatcher.
type AuditDispatcher interface {
	Dispatch(ev audit.Event)
}

// ======================================================
// PARAMS
// ======================================================

// parseID reads the :id path parameter, writing 400 when it is not an
// unsigned integer. Zero is left to the repository, which answers 404.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, msgInvalidID)
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// BINDING
// ======================================================

// bindCreate decodes a create payload. Missing required fields and an empty
// body both answer with requiredMsg.
func bindCreate(c *gin.Context, req any, requiredMsg string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) || errors.Is(err, io.EOF) {
			httperr.BadRequest(c, requiredMsg)
			return false
		}
		httperr.BadRequest(c, msgInvalidBody)
		return false
	}
	return true
}

// bindPatch decodes a partial update. An empty body is an empty patch.
func bindPatch(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		httperr.BadRequest(c, msgInvalidBody)
		return false
	}
	return true
}

// isBlank reports whether an optional text field carries no content.
func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// amount accepts a JSON number or a numeric string such as "150.00".
type amount float64

func (a *amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid amount %s", b)
	}
	*a = amount(v)
	return nil
}

// float64Ptr converts an optional amount; nil stays nil.
func (a *amount) float64Ptr() *float64 {
	if a == nil {
		return nil
	}
	v := float64(*a)
	return &v
}

// optionalDate parses a date field where blank means absent.
func optionalDate(s *string) (*models.Date, error) {
	if isBlank(s) {
		return nil, nil
	}
	d, err := models.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ======================================================
// AUDIT
// ======================================================

func recordAudit(c *gin.Context, d AuditDispatcher, action, entity string, id uint) {
	if d == nil {
		return
	}
	d.Dispatch(audit.Event{
		Action:    action,
		Entity:    entity,
		EntityID:  id,
		RequestID: middleware.GetRequestID(c),
	})
}
