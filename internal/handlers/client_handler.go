package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/beanflow-api/internal/domain/client"
	"github.com/BruksfildServices01/beanflow-api/internal/httperr"
	"github.com/BruksfildServices01/beanflow-api/internal/httpresp"
	"github.com/BruksfildServices01/beanflow-api/internal/models"
)

const (
	msgClientNotFound = "Cliente não encontrado"
	msgClientRequired = "Nome e CNPJ são obrigatórios"
	msgClientConflict = "CNPJ já cadastrado"
)

type ClientHandler struct {
	repo  domain.Repository
	audit AuditDispatcher
}

func NewClientHandler(repo domain.Repository, audit AuditDispatcher) *ClientHandler {
	return &ClientHandler{repo: repo, audit: audit}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateClientRequest struct {
	Name      string  `json:"nome" binding:"required"`
	LegalName *string `json:"razao_social"`
	TaxID     string  `json:"cnpj" binding:"required"`
	Phone     *string `json:"telefone"`
	Email     *string `json:"email"`
}

type UpdateClientRequest struct {
	Name      *string `json:"nome"`
	LegalName *string `json:"razao_social"`
	TaxID     *string `json:"cnpj"`
	Phone     *string `json:"telefone"`
	Email     *string `json:"email"`
}

// ======================================================
// LIST
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	httpresp.List(c, clients)
}

// ======================================================
// GET
// ======================================================
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	client, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, msgClientNotFound)
			return
		}
		httperr.Internal(c, err)
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// CREATE
// ======================================================
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if !bindCreate(c, &req, msgClientRequired) {
		return
	}

	client := models.Client{
		Name:      req.Name,
		LegalName: req.LegalName,
		TaxID:     req.TaxID,
		Phone:     req.Phone,
		Email:     req.Email,
	}

	if err := h.repo.Create(c.Request.Context(), &client); err != nil {
		if httperr.IsConflict(err) {
			httperr.Conflict(c, msgClientConflict)
			return
		}
		httperr.Internal(c, err)
		return
	}

	recordAudit(c, h.audit, "client_created", "cliente", client.ID)
	httpresp.Created(c, "Cliente criado com sucesso!", "cliente", client)
}

// ======================================================
// UPDATE
// ======================================================
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateClientRequest
	if !bindPatch(c, &req) {
		return
	}

	client, err := h.repo.Update(c.Request.Context(), id, domain.Patch{
		Name:      req.Name,
		LegalName: req.LegalName,
		TaxID:     req.TaxID,
		Phone:     req.Phone,
		Email:     req.Email,
	})
	if err != nil {
		switch {
		case httperr.IsNotFound(err):
			httperr.NotFound(c, msgClientNotFound)
		case httperr.IsConflict(err):
			httperr.Conflict(c, msgClientConflict)
		default:
			httperr.Internal(c, err)
		}
		return
	}

	recordAudit(c, h.audit, "client_updated", "cliente", client.ID)
	httpresp.Mutation(c, http.StatusOK, "Cliente atualizado com sucesso!", "cliente", client)
}

// ======================================================
// DELETE
// ======================================================
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	client, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, msgClientNotFound)
			return
		}
		httperr.Internal(c, err)
		return
	}

	recordAudit(c, h.audit, "client_deleted", "cliente", client.ID)
	httpresp.Mutation(c, http.StatusOK, "Cliente deletado com sucesso!", "cliente", client)
}
