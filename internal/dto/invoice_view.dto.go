package dto

import (
	"github.com/BruksfildServices01/beanflow-api/internal/domain/invoice"
	"github.com/BruksfildServices01/beanflow-api/internal/models"
)

// InvoiceView is an invoice row plus its read-time aging fields.
type InvoiceView struct {
	models.Invoice
	Status       invoice.Status `json:"status"`
	DaysUntilDue int            `json:"dias_para_vencimento"`
}
