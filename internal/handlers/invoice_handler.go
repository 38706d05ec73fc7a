package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/beanflow-api/internal/domain/invoice"
	"github.com/BruksfildServices01/beanflow-api/internal/httperr"
	"github.com/BruksfildServices01/beanflow-api/internal/httpresp"
	"github.com/BruksfildServices01/beanflow-api/internal/models"
	usecase "github.com/BruksfildServices01/beanflow-api/internal/usecase/invoice"
)

const (
	msgInvoiceNotFound    = "Boleto não encontrado"
	msgInvoiceRequired    = "Vencimento, valor e cliente_id são obrigatórios"
	msgInvoiceInvalidDate = "Data inválida"
)

type InvoiceHandler struct {
	repo  domain.Repository
	list  *usecase.ListInvoices
	get   *usecase.GetInvoice
	today usecase.Clock
	audit AuditDispatcher
}

func NewInvoiceHandler(
	repo domain.Repository,
	today usecase.Clock,
	audit AuditDispatcher,
) *InvoiceHandler {
	return &InvoiceHandler{
		repo:  repo,
		list:  usecase.NewListInvoices(repo, today),
		get:   usecase.NewGetInvoice(repo, today),
		today: today,
		audit: audit,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateInvoiceRequest struct {
	CreatedAt   *string `json:"data_criacao"`
	DueDate     string  `json:"vencimento" binding:"required"`
	Amount      amount  `json:"valor" binding:"required"`
	Paid        *bool   `json:"pago"`
	PaymentDate *string `json:"data_pagamento"`
	ClientID    uint    `json:"cliente_id" binding:"required"`
	QuoteID     *uint   `json:"cotacao_id"`
}

type UpdateInvoiceRequest struct {
	DueDate     *string `json:"vencimento"`
	Amount      *amount `json:"valor"`
	Paid        *bool   `json:"pago"`
	PaymentDate *string `json:"data_pagamento"`
}

// ======================================================
// LIST
// ======================================================
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	httpresp.List(c, invoices)
}

// ======================================================
// GET
// ======================================================
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	invoice, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, msgInvoiceNotFound)
			return
		}
		httperr.Internal(c, err)
		return
	}

	httpresp.OK(c, invoice)
}

// ======================================================
// CREATE
// ======================================================
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req CreateInvoiceRequest
	if !bindCreate(c, &req, msgInvoiceRequired) {
		return
	}

	due, err := models.ParseDate(req.DueDate)
	if err != nil {
		httperr.BadRequest(c, msgInvoiceInvalidDate)
		return
	}

	createdAt, err := optionalDate(req.CreatedAt)
	if err != nil {
		httperr.BadRequest(c, msgInvoiceInvalidDate)
		return
	}
	if createdAt == nil {
		today := h.today()
		createdAt = &today
	}

	paymentDate, err := optionalDate(req.PaymentDate)
	if err != nil {
		httperr.BadRequest(c, msgInvoiceInvalidDate)
		return
	}

	invoice := models.Invoice{
		CreatedAt:   createdAt,
		DueDate:     due,
		Amount:      float64(req.Amount),
		Paid:        req.Paid != nil && *req.Paid,
		PaymentDate: paymentDate,
		ClientID:    req.ClientID,
		QuoteID:     req.QuoteID,
	}

	if err := h.repo.Create(c.Request.Context(), &invoice); err != nil {
		httperr.Internal(c, err)
		return
	}

	recordAudit(c, h.audit, "invoice_created", "boleto", invoice.ID)
	httpresp.Created(c, "Boleto criado com sucesso!", "boleto", invoice)
}

// ======================================================
// UPDATE
// ======================================================
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateInvoiceRequest
	if !bindPatch(c, &req) {
		return
	}

	due, err := optionalDate(req.DueDate)
	if err != nil {
		httperr.BadRequest(c, msgInvoiceInvalidDate)
		return
	}

	paymentDate, err := optionalDate(req.PaymentDate)
	if err != nil {
		httperr.BadRequest(c, msgInvoiceInvalidDate)
		return
	}

	invoice, err := h.repo.Update(c.Request.Context(), id, domain.Patch{
		DueDate:     due,
		Amount:      req.Amount.float64Ptr(),
		Paid:        req.Paid,
		PaymentDate: paymentDate,
	})
	if err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, msgInvoiceNotFound)
			return
		}
		httperr.Internal(c, err)
		return
	}

	recordAudit(c, h.audit, "invoice_updated", "boleto", invoice.ID)
	httpresp.Mutation(c, http.StatusOK, "Boleto atualizado com sucesso!", "boleto", invoice)
}

// ======================================================
// DELETE
// ======================================================
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	invoice, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, msgInvoiceNotFound)
			return
		}
		httperr.Internal(c, err)
		return
	}

	recordAudit(c, h.audit, "invoice_deleted", "boleto", invoice.ID)
	httpresp.Mutation(c, http.StatusOK, "Boleto deletado com sucesso!", "boleto", invoice)
}
