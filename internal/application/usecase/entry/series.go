// Package entry contains entry-related use cases.
package entry

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletbook/backend/internal/domain/entity"
)

// recurrenceOccurrences is the fixed length of every generated recurring
// series, open-ended kinds included. The cap bounds storage growth from an
// unterminated series; an indefinite series can be extended with a new
// create once exhausted.
const recurrenceOccurrences = 36

// expandRecurring expands a template entry into a recurring series. Every
// occurrence copies the template, shares one freshly generated recurrence
// group ID and starts unpaid, whatever the triggering request said.
func expandRecurring(template *entity.Entry, recurrence entity.Recurrence) []*entity.Entry {
	groupID := uuid.New()
	entries := make([]*entity.Entry, 0, recurrenceOccurrences)

	due := template.DueDate
	for i := 0; i < recurrenceOccurrences; i++ {
		occurrence := cloneTemplate(template)
		occurrence.DueDate = due
		occurrence.Group = entity.NewRecurringGroup(groupID, recurrence)
		entries = append(entries, occurrence)

		due = nextDueDate(due, recurrence)
	}

	return entries
}

// expandInstallments expands a template entry into an installment series of
// exactly count occurrences, one calendar month apart. The total amount is
// split across the occurrences and each description gets a positional
// "(i/N)" suffix. Every occurrence shares one freshly generated installment
// group ID and starts unpaid.
func expandInstallments(template *entity.Entry, total decimal.Decimal, count int) []*entity.Entry {
	groupID := uuid.New()
	amounts := splitInstallmentAmount(total, count)
	entries := make([]*entity.Entry, 0, count)

	due := template.DueDate
	for i := 1; i <= count; i++ {
		occurrence := cloneTemplate(template)
		occurrence.Description = fmt.Sprintf("%s (%d/%d)", template.Description, i, count)
		occurrence.Amount = amounts[i-1]
		occurrence.DueDate = due
		occurrence.Group = entity.NewInstallmentGroup(groupID, i, count)
		entries = append(entries, occurrence)

		due = due.AddDate(0, 1, 0)
	}

	return entries
}

// nextDueDate advances a due date by one recurrence step using the standard
// library's date rollover arithmetic (no end-of-month clamping).
func nextDueDate(due time.Time, recurrence entity.Recurrence) time.Time {
	switch recurrence {
	case entity.RecurrenceWeekly:
		return due.AddDate(0, 0, 7)
	case entity.RecurrenceYearly:
		return due.AddDate(1, 0, 0)
	default:
		// Monthly and open-ended both step one calendar month.
		return due.AddDate(0, 1, 0)
	}
}

// splitInstallmentAmount divides total into count parts rounded down to
// cents. The last part absorbs the rounding remainder so the parts always
// sum to the requested total; rounding down keeps that remainder
// non-negative, so the last part is never smaller than the others.
func splitInstallmentAmount(total decimal.Decimal, count int) []decimal.Decimal {
	per := total.Div(decimal.NewFromInt(int64(count))).RoundDown(2)

	parts := make([]decimal.Decimal, count)
	for i := range parts {
		parts[i] = per
	}
	parts[count-1] = total.Sub(per.Mul(decimal.NewFromInt(int64(count - 1))))

	return parts
}

// cloneTemplate copies the template into a fresh series member. Series
// members never start paid.
func cloneTemplate(template *entity.Entry) *entity.Entry {
	occurrence := *template
	occurrence.ID = uuid.New()
	occurrence.IsPaid = false
	occurrence.PaymentDate = nil
	occurrence.Group = entity.NoGroup()
	return &occurrence
}
