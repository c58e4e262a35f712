// Package budget compares actual spend against the linear pace implied
// by a budget period.
package budget

import (
	"fmt"
	"strings"
	"time"

	"github.com/chapeltools/rota-admin/pkg/db"
)

const dateLayout = "2006-01-02"

// Pace is the result of comparing spend in a category against its budget
// as of a given date.
type Pace struct {
	Category      string
	BudgetCents   int64
	SpentCents    int64
	ExpectedCents int64
	VarianceCents int64 // positive means ahead of (over) pace
}

// ComparePace sums transactions in the budget's category that fall inside
// the budget period on or before asOf, and compares the total against the
// budget amount prorated linearly across the period. Before the period
// starts the expected spend is zero; after it ends it is the full amount.
func ComparePace(b db.Budget, txs []db.Transaction, asOf string) (*Pace, error) {
	periodStart, err := time.Parse(dateLayout, b.PeriodStart)
	if err != nil {
		return nil, fmt.Errorf("invalid period start %q: %w", b.PeriodStart, err)
	}
	periodEnd, err := time.Parse(dateLayout, b.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid period end %q: %w", b.PeriodEnd, err)
	}
	if periodEnd.Before(periodStart) {
		return nil, fmt.Errorf("period end %s before period start %s", b.PeriodEnd, b.PeriodStart)
	}
	asOfDate, err := time.Parse(dateLayout, asOf)
	if err != nil {
		return nil, fmt.Errorf("invalid as-of date %q: %w", asOf, err)
	}

	pace := &Pace{
		Category:    b.Category,
		BudgetCents: b.AmountCents,
	}

	for _, tx := range txs {
		if !strings.EqualFold(tx.Category, b.Category) {
			continue
		}
		txDate, err := time.Parse(dateLayout, tx.TxDate)
		if err != nil {
			return nil, fmt.Errorf("transaction %s has invalid date %q: %w", tx.ID, tx.TxDate, err)
		}
		if txDate.Before(periodStart) || txDate.After(periodEnd) || txDate.After(asOfDate) {
			continue
		}
		pace.SpentCents += tx.AmountCents
	}

	// Days are counted inclusively, so a one-day period elapses fully on
	// its own start date.
	totalDays := int64(periodEnd.Sub(periodStart).Hours()/24) + 1
	switch {
	case asOfDate.Before(periodStart):
		pace.ExpectedCents = 0
	case !asOfDate.Before(periodEnd):
		pace.ExpectedCents = b.AmountCents
	default:
		elapsedDays := int64(asOfDate.Sub(periodStart).Hours()/24) + 1
		pace.ExpectedCents = b.AmountCents * elapsedDays / totalDays
	}

	pace.VarianceCents = pace.SpentCents - pace.ExpectedCents
	return pace, nil
}
