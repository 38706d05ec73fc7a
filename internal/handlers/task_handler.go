package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/beanflow-api/internal/domain/task"
	"github.com/BruksfildServices01/beanflow-api/internal/httperr"
	"github.com/BruksfildServices01/beanflow-api/internal/httpresp"
	"github.com/BruksfildServices01/beanflow-api/internal/models"
)

const (
	msgTaskNotFound = "Tarefa não encontrada"
	msgTaskRequired = "Título e descrição são obrigatórios"
)

type TaskHandler struct {
	repo  domain.Repository
	audit AuditDispatcher
}

func NewTaskHandler(repo domain.Repository, audit AuditDispatcher) *TaskHandler {
	return &TaskHandler{repo: repo, audit: audit}
}

type CreateTaskRequest struct {
	Title       string `json:"titulo" binding:"required"`
	Description string `json:"descricao" binding:"required"`
}

func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	httpresp.List(c, tasks)
}

func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	task, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, msgTaskNotFound)
			return
		}
		httperr.Internal(c, err)
		return
	}

	httpresp.OK(c, task)
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if !bindCreate(c, &req, msgTaskRequired) {
		return
	}

	task := models.Task{Title: req.Title, Description: req.Description}
	if err := h.repo.Create(c.Request.Context(), &task); err != nil {
		httperr.Internal(c, err)
		return
	}

	recordAudit(c, h.audit, "task_created", "tarefa", task.ID)
	httpresp.Created(c, "Tarefa criada com sucesso!", "tarefa", task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	task, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, msgTaskNotFound)
			return
		}
		httperr.Internal(c, err)
		return
	}

	recordAudit(c, h.audit, "task_deleted", "tarefa", task.ID)
	httpresp.Mutation(c, http.StatusOK, "Tarefa deletada com sucesso!", "tarefa", task)
}
