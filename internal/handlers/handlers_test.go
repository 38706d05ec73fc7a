package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/BruksfildServices01/beanflow-api/internal/audit"
	"github.com/BruksfildServices01/beanflow-api/internal/infra/repository"
	"github.com/BruksfildServices01/beanflow-api/internal/middleware"
	"github.com/BruksfildServices01/beanflow-api/internal/models"
	"github.com/BruksfildServices01/beanflow-api/internal/testutil"
)

type recordingAudit struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recordingAudit) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordingAudit) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Action)
	}
	return out
}

var fixedToday = models.NewDate(2025, time.March, 10)

func newTestRouter(t *testing.T) (*gin.Engine, *recordingAudit) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	rec := &recordingAudit{}
	today := func() models.Date { return fixedToday }

	clients := NewClientHandler(repository.NewClientGormRepository(db), rec)
	quotes := NewQuoteHandler(repository.NewQuoteGormRepository(db), rec)
	invoices := NewInvoiceHandler(repository.NewInvoiceGormRepository(db), today, rec)
	tasks := NewTaskHandler(repository.NewTaskGormRepository(db), rec)

	r := gin.New()
	r.Use(middleware.RequestID())

	r.GET("/clientes", clients.List)
	r.GET("/clientes/:id", clients.Get)
	r.POST("/clientes", clients.Create)
	r.PUT("/clientes/:id", clients.Update)
	r.DELETE("/clientes/:id", clients.Delete)

	r.GET("/cotacoes", quotes.List)
	r.GET("/cotacoes/:id", quotes.Get)
	r.POST("/cotacoes", quotes.Create)
	r.PUT("/cotacoes/:id", quotes.Update)
	r.DELETE("/cotacoes/:id", quotes.Delete)

	r.GET("/boletos", invoices.List)
	r.GET("/boletos/:id", invoices.Get)
	r.POST("/boletos", invoices.Create)
	r.PUT("/boletos/:id", invoices.Update)
	r.DELETE("/boletos/:id", invoices.Delete)

	r.GET("/tarefas", tasks.List)
	r.GET("/tarefas/:id", tasks.Get)
	r.POST("/tarefas", tasks.Create)
	r.DELETE("/tarefas/:id", tasks.Delete)

	return r, rec
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorOf(w *httptest.ResponseRecorder) string {
	return gjson.Get(w.Body.String(), "error").String()
}

// ======================================================
// CLIENTES
// ======================================================

func TestClientCreateAndGet(t *testing.T) {
	r, rec := newTestRouter(t)

	w := do(r, http.MethodPost, "/clientes", `{"nome":"Acme","cnpj":"123"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := w.Body.String()
	assert.Equal(t, "Cliente criado com sucesso!", gjson.Get(body, "message").String())
	assert.Equal(t, "Acme", gjson.Get(body, "cliente.nome").String())
	assert.Equal(t, gjson.Null, gjson.Get(body, "cliente.email").Type)

	id := gjson.Get(body, "cliente.id").String()
	require.NotEmpty(t, id)

	w = do(r, http.MethodGet, "/clientes/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Acme", gjson.Get(w.Body.String(), "nome").String())
	assert.Equal(t, "123", gjson.Get(w.Body.String(), "cnpj").String())

	w = do(r, http.MethodGet, "/clientes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), gjson.Get(w.Body.String(), "#").Int())

	assert.Equal(t, []string{"client_created"}, rec.actions())
}

func TestClientCreateValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing cnpj", `{"nome":"Acme"}`, msgClientRequired},
		{"empty nome", `{"nome":"","cnpj":"1"}`, msgClientRequired},
		{"empty body", "", msgClientRequired},
		{"malformed json", `{"nome":`, msgInvalidBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/clientes", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.want, errorOf(w))
		})
	}

	w := do(r, http.MethodGet, "/clientes", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestClientDuplicateTaxID(t *testing.T) {
	r, _ := newTestRouter(t)

	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/clientes", `{"nome":"A","cnpj":"1"}`).Code)

	w := do(r, http.MethodPost, "/clientes", `{"nome":"B","cnpj":"1"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, msgClientConflict, errorOf(w))
}

func TestClientUpdateKeepsOmittedFields(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodPost, "/clientes", `{"nome":"Acme","cnpj":"1","email":"a@acme.test"}`)
	id := gjson.Get(w.Body.String(), "cliente.id").String()

	w = do(r, http.MethodPut, "/clientes/"+id, `{"telefone":"11 5555-0000"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := w.Body.String()
	assert.Equal(t, "Cliente atualizado com sucesso!", gjson.Get(body, "message").String())
	assert.Equal(t, "Acme", gjson.Get(body, "cliente.nome").String())
	assert.Equal(t, "a@acme.test", gjson.Get(body, "cliente.email").String())
	assert.Equal(t, "11 5555-0000", gjson.Get(body, "cliente.telefone").String())
}

func TestClientNotFoundAndBadID(t *testing.T) {
	r, rec := newTestRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		w := do(r, method, "/clientes/999", "")
		assert.Equal(t, http.StatusNotFound, w.Code, method)
		assert.Equal(t, msgClientNotFound, errorOf(w), method)
	}

	w := do(r, http.MethodPut, "/clientes/999", `{"nome":"X"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/clientes/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgInvalidID, errorOf(w))

	assert.Empty(t, rec.actions())
}

func TestClientDeleteReturnsPriorRow(t *testing.T) {
	r, rec := newTestRouter(t)

	w := do(r, http.MethodPost, "/clientes", `{"nome":"Acme","cnpj":"1"}`)
	id := gjson.Get(w.Body.String(), "cliente.id").String()

	w = do(r, http.MethodDelete, "/clientes/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Cliente deletado com sucesso!", gjson.Get(w.Body.String(), "message").String())
	assert.Equal(t, "Acme", gjson.Get(w.Body.String(), "cliente.nome").String())

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/clientes/"+id, "").Code)
	assert.Equal(t, []string{"client_created", "client_deleted"}, rec.actions())
}

// ======================================================
// COTACOES
// ======================================================

func TestQuoteCreateNormalizesStage(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodPost, "/cotacoes", `{"etapa":"Negociação","cliente_id":1,"status":"APROVADO"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := w.Body.String()
	assert.Equal(t, "Cotacao criada com sucesso!", gjson.Get(body, "message").String())
	assert.Equal(t, "Negociacao", gjson.Get(body, "cotacao.etapa").String())
	assert.Equal(t, gjson.Null, gjson.Get(body, "cotacao.status").Type)
	assert.NotEmpty(t, gjson.Get(body, "cotacao.data_criacao").String())
}

func TestQuoteCreateDefaults(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodPost, "/cotacoes", `{"cliente_id":3,"data_criacao":"  "}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Realizar orcamento", gjson.Get(w.Body.String(), "cotacao.etapa").String())

	w = do(r, http.MethodPost, "/cotacoes", `{"etapa":"Fechado"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgQuoteClientRequired, errorOf(w))
}

func TestQuoteUpdate(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodPost, "/cotacoes", `{"etapa":"Proposta","cliente_id":1,"valor_total":150.5}`)
	id := gjson.Get(w.Body.String(), "cotacao.id").String()

	w = do(r, http.MethodPut, "/cotacoes/"+id, `{"etapa":"","observacoes":"ligar amanhã"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := w.Body.String()
	assert.Equal(t, "Cotacao atualizada com sucesso!", gjson.Get(body, "message").String())
	assert.Equal(t, "Proposta", gjson.Get(body, "cotacao.etapa").String())
	assert.Equal(t, "ligar amanhã", gjson.Get(body, "cotacao.observacoes").String())
	assert.Equal(t, 150.5, gjson.Get(body, "cotacao.valor_total").Float())

	w = do(r, http.MethodPut, "/cotacoes/"+id, `{"etapa":"Negociação"}`)
	assert.Equal(t, "Negociacao", gjson.Get(w.Body.String(), "cotacao.etapa").String())
}

func TestQuoteNotFoundMessages(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/cotacoes/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Cotação não encontrada", errorOf(w))

	w = do(r, http.MethodPut, "/cotacoes/42", `{"etapa":"X"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Cotacao nao encontrada", errorOf(w))

	w = do(r, http.MethodDelete, "/cotacoes/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Cotacao nao encontrada", errorOf(w))
}

// ======================================================
// BOLETOS
// ======================================================

func TestInvoiceCreateDefaultsAndStatus(t *testing.T) {
	r, rec := newTestRouter(t)

	w := do(r, http.MethodPost, "/boletos", `{"vencimento":"2025-03-10","valor":100,"cliente_id":1}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := w.Body.String()
	assert.Equal(t, "Boleto criado com sucesso!", gjson.Get(body, "message").String())
	assert.False(t, gjson.Get(body, "boleto.pago").Bool())
	assert.Equal(t, "2025-03-10", gjson.Get(body, "boleto.data_criacao").String())
	id := gjson.Get(body, "boleto.id").String()

	require.Equal(t, http.StatusCreated,
		do(r, http.MethodPost, "/boletos", `{"vencimento":"2025-03-01","valor":50,"cliente_id":1}`).Code)

	w = do(r, http.MethodGet, "/boletos", "")
	require.Equal(t, http.StatusOK, w.Code)

	list := w.Body.String()
	require.Equal(t, int64(2), gjson.Get(list, "#").Int())
	assert.Equal(t, "2025-03-01", gjson.Get(list, "0.vencimento").String())
	assert.Equal(t, "VENCIDO 🟥", gjson.Get(list, "0.status").String())
	assert.Equal(t, "VENCE HOJE 🟥", gjson.Get(list, "1.status").String())
	assert.Equal(t, int64(0), gjson.Get(list, "1.dias_para_vencimento").Int())

	w = do(r, http.MethodGet, "/boletos/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "VENCE HOJE 🟥", gjson.Get(w.Body.String(), "status").String())

	assert.Equal(t, []string{"invoice_created", "invoice_created"}, rec.actions())
}

func TestInvoiceCreateValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing valor", `{"vencimento":"2025-03-10","cliente_id":1}`, msgInvoiceRequired},
		{"zero valor", `{"vencimento":"2025-03-10","valor":0,"cliente_id":1}`, msgInvoiceRequired},
		{"missing cliente", `{"vencimento":"2025-03-10","valor":10}`, msgInvoiceRequired},
		{"bad date", `{"vencimento":"10/03/2025","valor":10,"cliente_id":1}`, msgInvoiceInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/boletos", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.want, errorOf(w))
		})
	}
}

func TestInvoicePartialUpdate(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodPost, "/boletos", `{"vencimento":"2025-04-01","valor":100,"cliente_id":7}`)
	id := gjson.Get(w.Body.String(), "boleto.id").String()

	w = do(r, http.MethodPut, "/boletos/"+id, `{"valor":250}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := w.Body.String()
	assert.Equal(t, "Boleto atualizado com sucesso!", gjson.Get(body, "message").String())
	assert.Equal(t, float64(250), gjson.Get(body, "boleto.valor").Float())
	assert.Equal(t, "2025-04-01", gjson.Get(body, "boleto.vencimento").String())
	assert.Equal(t, int64(7), gjson.Get(body, "boleto.cliente_id").Int())
	assert.False(t, gjson.Get(body, "boleto.pago").Bool())

	w = do(r, http.MethodPut, "/boletos/"+id, `{"pago":true,"data_pagamento":"2025-03-09"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/boletos/"+id, "")
	assert.Equal(t, "PAGO 🟩", gjson.Get(w.Body.String(), "status").String())
	assert.Equal(t, "2025-03-09", gjson.Get(w.Body.String(), "data_pagamento").String())

	w = do(r, http.MethodDelete, "/boletos/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, msgInvoiceNotFound, errorOf(w))
}

// ======================================================
// TAREFAS
// ======================================================

func TestTaskRequiresBothFields(t *testing.T) {
	r, rec := newTestRouter(t)

	w := do(r, http.MethodPost, "/tarefas", `{"titulo":"Ligar"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgTaskRequired, errorOf(w))

	w = do(r, http.MethodGet, "/tarefas", "")
	assert.JSONEq(t, `[]`, w.Body.String())
	assert.Empty(t, rec.actions())
}

func TestTaskLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)

	do(r, http.MethodPost, "/tarefas", `{"titulo":"Primeira","descricao":"a"}`)
	w := do(r, http.MethodPost, "/tarefas", `{"titulo":"Segunda","descricao":"b"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Tarefa criada com sucesso!", gjson.Get(w.Body.String(), "message").String())
	id := gjson.Get(w.Body.String(), "tarefa.id").String()

	w = do(r, http.MethodGet, "/tarefas", "")
	assert.Equal(t, "Segunda", gjson.Get(w.Body.String(), "0.titulo").String())

	w = do(r, http.MethodDelete, "/tarefas/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Tarefa deletada com sucesso!", gjson.Get(w.Body.String(), "message").String())
	assert.Equal(t, "b", gjson.Get(w.Body.String(), "tarefa.descricao").String())

	w = do(r, http.MethodGet, "/tarefas/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, msgTaskNotFound, errorOf(w))
}

func TestAuditCarriesRequestID(t *testing.T) {
	r, rec := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/tarefas", strings.NewReader(`{"titulo":"t","descricao":"d"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderRequestID, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.events, 1)
	assert.Equal(t, "req-42", rec.events[0].RequestID)
	assert.Equal(t, "tarefa", rec.events[0].Entity)
	assert.NotZero(t, rec.events[0].EntityID)
}

func TestZeroIDReachesRepository(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodDelete, "/clientes/0", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, msgClientNotFound, errorOf(w))

	w = do(r, http.MethodGet, "/tarefas/0", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/boletos/-1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgInvalidID, errorOf(w))
}

func TestAmountsAcceptNumericStrings(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodPost, "/boletos", `{"vencimento":"2025-04-01","valor":"150.00","cliente_id":1}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 150.0, gjson.Get(w.Body.String(), "boleto.valor").Float())
	id := gjson.Get(w.Body.String(), "boleto.id").String()

	w = do(r, http.MethodPut, "/boletos/"+id, `{"valor":" 200.5 "}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 200.5, gjson.Get(w.Body.String(), "boleto.valor").Float())

	w = do(r, http.MethodPost, "/cotacoes", `{"cliente_id":1,"valor_total":"99.90"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 99.9, gjson.Get(w.Body.String(), "cotacao.valor_total").Float())

	w = do(r, http.MethodPost, "/boletos", `{"vencimento":"2025-04-01","valor":"0","cliente_id":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgInvoiceRequired, errorOf(w))

	w = do(r, http.MethodPost, "/boletos", `{"vencimento":"2025-04-01","valor":"abc","cliente_id":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgInvalidBody, errorOf(w))
}
