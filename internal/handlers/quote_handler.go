package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/beanflow-api/internal/domain/quote"
	"github.com/BruksfildServices01/beanflow-api/internal/httperr"
	"github.com/BruksfildServices01/beanflow-api/internal/httpresp"
	"github.com/BruksfildServices01/beanflow-api/internal/models"
)

const (
	msgQuoteNotFound       = "Cotação não encontrada"
	msgQuoteNotFoundPlain  = "Cotacao nao encontrada"
	msgQuoteClientRequired = "O campo cliente_id é obrigatório"
	msgQuoteInvalidDate    = "Data de criação inválida"
)

type QuoteHandler struct {
	repo  domain.Repository
	audit AuditDispatcher
}

func NewQuoteHandler(repo domain.Repository, audit AuditDispatcher) *QuoteHandler {
	return &QuoteHandler{repo: repo, audit: audit}
}

// ======================================================
// REQUESTS
// ======================================================

// Quote status is maintained by the database; a "status" key in the body
// is not bound.
type CreateQuoteRequest struct {
	Stage      *string `json:"etapa"`
	Notes      *string `json:"observacoes"`
	ClientID   uint    `json:"cliente_id" binding:"required"`
	TotalValue *amount `json:"valor_total"`
	CreatedAt  *string `json:"data_criacao"`
}

type UpdateQuoteRequest struct {
	Stage      *string `json:"etapa"`
	Notes      *string `json:"observacoes"`
	TotalValue *amount `json:"valor_total"`
}

// ======================================================
// LIST
// ======================================================
func (h *QuoteHandler) List(c *gin.Context) {
	quotes, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	httpresp.List(c, quotes)
}

// ======================================================
// GET
// ======================================================
func (h *QuoteHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	quote, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, msgQuoteNotFound)
			return
		}
		httperr.Internal(c, err)
		return
	}

	httpresp.OK(c, quote)
}

// ======================================================
// CREATE
// ======================================================
func (h *QuoteHandler) Create(c *gin.Context) {
	var req CreateQuoteRequest
	if !bindCreate(c, &req, msgQuoteClientRequired) {
		return
	}

	// A blank creation date falls back to the column default.
	createdAt, err := optionalDate(req.CreatedAt)
	if err != nil {
		httperr.BadRequest(c, msgQuoteInvalidDate)
		return
	}

	quote := models.Quote{
		Stage:      domain.CreateStage(req.Stage),
		Notes:      req.Notes,
		ClientID:   req.ClientID,
		TotalValue: req.TotalValue.float64Ptr(),
		CreatedAt:  createdAt,
	}

	if err := h.repo.Create(c.Request.Context(), &quote); err != nil {
		httperr.Internal(c, err)
		return
	}

	recordAudit(c, h.audit, "quote_created", "cotacao", quote.ID)
	httpresp.Created(c, "Cotacao criada com sucesso!", "cotacao", quote)
}

// ======================================================
// UPDATE
// ======================================================
func (h *QuoteHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateQuoteRequest
	if !bindPatch(c, &req) {
		return
	}

	quote, err := h.repo.Update(c.Request.Context(), id, domain.Patch{
		Stage:      domain.UpdateStage(req.Stage),
		Notes:      req.Notes,
		TotalValue: req.TotalValue.float64Ptr(),
	})
	if err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, msgQuoteNotFoundPlain)
			return
		}
		httperr.Internal(c, err)
		return
	}

	recordAudit(c, h.audit, "quote_updated", "cotacao", quote.ID)
	httpresp.Mutation(c, http.StatusOK, "Cotacao atualizada com sucesso!", "cotacao", quote)
}

// ======================================================
// DELETE
// ======================================================
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	quote, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, msgQuoteNotFoundPlain)
			return
		}
		httperr.Internal(c, err)
		return
	}

	recordAudit(c, h.audit, "quote_deleted", "cotacao", quote.ID)
	httpresp.Mutation(c, http.StatusOK, "Cotacao deletada com sucesso!", "cotacao", quote)
}
