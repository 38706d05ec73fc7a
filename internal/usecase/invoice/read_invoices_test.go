package invoice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/beanflow-api/internal/domain/invoice"
	"github.com/BruksfildServices01/beanflow-api/internal/httperr"
	"github.com/BruksfildServices01/beanflow-api/internal/models"
)

type fakeRepo struct {
	domain.Repository
	rows []models.Invoice
	err  error
}

func (f *fakeRepo) List(context.Context) ([]models.Invoice, error) {
	return f.rows, f.err
}

func (f *fakeRepo) Get(_ context.Context, id uint) (*models.Invoice, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.rows {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeNotFound)
}

func fixedClock(d models.Date) Clock {
	return func() models.Date { return d }
}

func TestListInvoicesClassifiesAgainstOneDay(t *testing.T) {
	today := models.NewDate(2025, time.May, 20)
	repo := &fakeRepo{rows: []models.Invoice{
		{ID: 1, DueDate: today.AddDays(-2)},
		{ID: 2, DueDate: today},
		{ID: 3, DueDate: today.AddDays(-30), Paid: true},
		{ID: 4, DueDate: today.AddDays(20)},
	}}

	calls := 0
	clock := func() models.Date { calls++; return today }

	views, err := NewListInvoices(repo, clock).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 4)

	assert.Equal(t, 1, calls)
	assert.Equal(t, domain.StatusOverdue, views[0].Status)
	assert.Equal(t, -2, views[0].DaysUntilDue)
	assert.Equal(t, domain.StatusDueToday, views[1].Status)
	assert.Equal(t, domain.StatusPaid, views[2].Status)
	assert.Equal(t, -30, views[2].DaysUntilDue)
	assert.Equal(t, domain.StatusDueIn15OrMore, views[3].Status)
}

func TestListInvoicesEmpty(t *testing.T) {
	views, err := NewListInvoices(&fakeRepo{}, fixedClock(models.NewDate(2025, 1, 1))).Execute(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestGetInvoice(t *testing.T) {
	today := models.NewDate(2025, time.May, 20)
	repo := &fakeRepo{rows: []models.Invoice{{ID: 9, DueDate: today.AddDays(3)}}}
	uc := NewGetInvoice(repo, fixedClock(today))

	view, err := uc.Execute(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDueIn3Days, view.Status)
	assert.Equal(t, 3, view.DaysUntilDue)

	_, err = uc.Execute(context.Background(), 10)
	assert.True(t, httperr.IsNotFound(err))
}

func TestReadInvoicesPropagatesRepositoryErrors(t *testing.T) {
	boom := errors.New("connection refused")
	repo := &fakeRepo{err: boom}

	_, err := NewListInvoices(repo, fixedClock(models.NewDate(2025, 1, 1))).Execute(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = NewGetInvoice(repo, fixedClock(models.NewDate(2025, 1, 1))).Execute(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}

func TestZoneClockReadsCalendarDayInZone(t *testing.T) {
	before := models.DateOf(time.Now().UTC())
	got := ZoneClock("UTC")()
	after := models.DateOf(time.Now().UTC())

	assert.True(t, got.Equal(before.Time) || got.Equal(after.Time), "got %s", got)
	assert.Equal(t, time.UTC, got.Location())
}
