package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chapeltools/rota-admin/pkg/db"
)

func janBudget(amount int64) db.Budget {
	return db.Budget{
		ID:          "b-1",
		Category:    "maintenance",
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-01-31",
		AmountCents: amount,
	}
}

func TestComparePace_MidPeriod(t *testing.T) {
	txs := []db.Transaction{
		{ID: "t-1", Category: "maintenance", TxDate: "2025-01-03", AmountCents: 10_00},
		{ID: "t-2", Category: "maintenance", TxDate: "2025-01-10", AmountCents: 25_00},
		{ID: "t-3", Category: "supplies", TxDate: "2025-01-10", AmountCents: 99_00},
		{ID: "t-4", Category: "maintenance", TxDate: "2025-01-25", AmountCents: 40_00}, // after asOf
	}

	pace, err := ComparePace(janBudget(310_00), txs, "2025-01-10")

	require.NoError(t, err)
	assert.Equal(t, int64(35_00), pace.SpentCents)
	// 10 of 31 days elapsed: 31000 * 10 / 31 = 10000
	assert.Equal(t, int64(100_00), pace.ExpectedCents)
	assert.Equal(t, int64(-65_00), pace.VarianceCents)
}

func TestComparePace_BeforePeriodExpectsZero(t *testing.T) {
	pace, err := ComparePace(janBudget(310_00), nil, "2024-12-15")

	require.NoError(t, err)
	assert.Equal(t, int64(0), pace.ExpectedCents)
	assert.Equal(t, int64(0), pace.SpentCents)
}

func TestComparePace_AfterPeriodExpectsFullAmount(t *testing.T) {
	pace, err := ComparePace(janBudget(310_00), nil, "2025-03-01")

	require.NoError(t, err)
	assert.Equal(t, int64(310_00), pace.ExpectedCents)
	assert.Equal(t, int64(-310_00), pace.VarianceCents)
}

func TestComparePace_CategoryMatchIsCaseInsensitive(t *testing.T) {
	txs := []db.Transaction{
		{ID: "t-1", Category: "Maintenance", TxDate: "2025-01-03", AmountCents: 10_00},
	}

	pace, err := ComparePace(janBudget(310_00), txs, "2025-01-31")

	require.NoError(t, err)
	assert.Equal(t, int64(10_00), pace.SpentCents)
}

func TestComparePace_RejectsBadDates(t *testing.T) {
	_, err := ComparePace(janBudget(100), nil, "eventually")
	assert.Error(t, err)

	bad := janBudget(100)
	bad.PeriodEnd = "2024-12-01"
	_, err = ComparePace(bad, nil, "2025-01-10")
	assert.Error(t, err)
}
