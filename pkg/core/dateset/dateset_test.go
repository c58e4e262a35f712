package dateset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFromExplicit_SortsAndDeduplicates(t *testing.T) {
	dates, err := FromExplicit([]string{"2025-03-05", "2025-03-02", "2025-03-05"})

	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-02", "2025-03-05"}, dates)
}

func TestFromExplicit_EmptySelectionIsValid(t *testing.T) {
	dates, err := FromExplicit(nil)

	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestFromExplicit_RejectsMalformedDates(t *testing.T) {
	_, err := FromExplicit([]string{"2025-03-02", "not-a-date"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-date")
}

func TestFromWeekdayRule_WednesdaysInJanuary(t *testing.T) {
	dates, err := FromWeekdayRule("2025-01-01", "2025-01-31", 3)

	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-01", "2025-01-08", "2025-01-15", "2025-01-22", "2025-01-29"}, dates)
}

func TestFromWeekdayRule_EndpointsAreInclusive(t *testing.T) {
	// 2025-01-05 and 2025-01-12 are both Sundays
	dates, err := FromWeekdayRule("2025-01-05", "2025-01-12", 0)

	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-05", "2025-01-12"}, dates)
}

func TestFromWeekdayRule_ReversedRangeYieldsEmpty(t *testing.T) {
	dates, err := FromWeekdayRule("2025-02-01", "2025-01-01", 3)

	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestFromWeekdayRule_RejectsBadInputs(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		weekday int
	}{
		{"weekday too large", "2025-01-01", "2025-01-31", 7},
		{"weekday negative", "2025-01-01", "2025-01-31", -1},
		{"bad start", "January 1st", "2025-01-31", 3},
		{"bad end", "2025-01-01", "soon", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromWeekdayRule(tt.start, tt.end, tt.weekday)
			assert.Error(t, err)
		})
	}
}

func TestApplyBlackouts_RemovesMatchedDates(t *testing.T) {
	dates := []string{"2025-01-01", "2025-01-08", "2025-01-15"}
	rules := []string{"FREQ=MONTHLY;BYMONTHDAY=8"}

	kept := ApplyBlackouts(dates, rules, zap.NewNop())

	assert.Equal(t, []string{"2025-01-01", "2025-01-15"}, kept)
}

func TestApplyBlackouts_BadRuleIsSkipped(t *testing.T) {
	dates := []string{"2025-01-01", "2025-01-08"}

	kept := ApplyBlackouts(dates, []string{"FREQ=NOPE"}, zap.NewNop())

	assert.Equal(t, dates, kept)
}

func TestApplyBlackouts_NoRulesIsPassthrough(t *testing.T) {
	dates := []string{"2025-01-01"}

	assert.Equal(t, dates, ApplyBlackouts(dates, nil, zap.NewNop()))
	assert.Empty(t, ApplyBlackouts(nil, []string{"FREQ=DAILY"}, zap.NewNop()))
}
