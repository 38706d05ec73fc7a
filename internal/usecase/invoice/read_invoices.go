package invoice

import (
	"context"

	domain "github.com/BruksfildServices01/beanflow-api/internal/domain/invoice"
	"github.com/BruksfildServices01/beanflow-api/internal/dto"
	"github.com/BruksfildServices01/beanflow-api/internal/models"
	"github.com/BruksfildServices01/beanflow-api/internal/timezone"
)

// Clock returns "today" as a calendar date in the server's configured zone.
type Clock func() models.Date

func toView(inv models.Invoice, today models.Date) dto.InvoiceView {
	return dto.InvoiceView{
		Invoice:      inv,
		Status:       domain.Classify(inv.Paid, inv.DueDate, today),
		DaysUntilDue: domain.DaysUntilDue(inv.DueDate, today),
	}
}

// ======================================================
// LIST
// ======================================================

type ListInvoices struct {
	repo  domain.Repository
	today Clock
}

func NewListInvoices(repo domain.Repository, today Clock) *ListInvoices {
	return &ListInvoices{repo: repo, today: today}
}

// Execute classifies every row against the same reference day.
func (uc *ListInvoices) Execute(ctx context.Context) ([]dto.InvoiceView, error) {
	invoices, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	today := uc.today()

	out := make([]dto.InvoiceView, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toView(inv, today))
	}
	return out, nil
}

// ======================================================
// GET
// ======================================================

type GetInvoice struct {
	repo  domain.Repository
	today Clock
}

func NewGetInvoice(repo domain.Repository, today Clock) *GetInvoice {
	return &GetInvoice{repo: repo, today: today}
}

func (uc *GetInvoice) Execute(ctx context.Context, id uint) (*dto.InvoiceView, error) {
	inv, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	view := toView(*inv, uc.today())
	return &view, nil
}

// ZoneClock builds a Clock reading the current day in tz.
func ZoneClock(tz string) Clock {
	return func() models.Date {
		return models.DateOf(timezone.StartOfDay(timezone.NowIn(tz)))
	}
}
