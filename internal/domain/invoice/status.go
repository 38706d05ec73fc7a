package invoice

import "github.com/BruksfildServices01/beanflow-api/internal/models"

// ===============================
// Invoice aging status
// ===============================

type Status string

const (
	StatusPaid          Status = "PAGO 🟩"
	StatusOverdue       Status = "VENCIDO 🟥"
	StatusDueToday      Status = "VENCE HOJE 🟥"
	StatusDueIn3Days    Status = "VENCE EM ATÉ 3 DIAS 🟧"
	StatusDueIn7Days    Status = "VENCE EM ATÉ 7 DIAS 🟨"
	StatusDueIn14Days   Status = "VENCE EM ATÉ 14 DIAS 🟩"
	StatusDueIn15OrMore Status = "VENCE EM 15+ DIAS ⬜"
)

// Classify derives the aging status of an invoice relative to today.
// Paid wins over every date rule; the date rules are checked in order.
func Classify(paid bool, due, today models.Date) Status {
	days := DaysUntilDue(due, today)

	switch {
	case paid:
		return StatusPaid
	case days < 0:
		return StatusOverdue
	case days == 0:
		return StatusDueToday
	case days <= 3:
		return StatusDueIn3Days
	case days <= 7:
		return StatusDueIn7Days
	case days <= 14:
		return StatusDueIn14Days
	default:
		return StatusDueIn15OrMore
	}
}

// DaysUntilDue is due - today in calendar days; negative when overdue.
func DaysUntilDue(due, today models.Date) int {
	return due.DaysSince(today)
}
