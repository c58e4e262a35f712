// Package dateset builds the ordered, duplicate-free date lists that feed
// the rotation engine. Dates are ISO strings (2006-01-02) throughout.
package dateset

import (
	"fmt"
	"sort"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// weekdays maps the 0=Sunday..6=Saturday convention onto rrule weekdays
var weekdays = [7]rrule.Weekday{
	rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA,
}

// FromExplicit takes the dates the user toggled on, in any order, and
// returns them deduplicated and sorted ascending. An empty selection is
// valid and yields an empty list. Malformed dates are an error.
func FromExplicit(toggled []string) ([]string, error) {
	seen := make(map[string]bool, len(toggled))
	dates := make([]string, 0, len(toggled))
	for _, d := range toggled {
		if _, err := time.Parse(dateLayout, d); err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", d, err)
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates, nil
}

// FromWeekdayRule returns every date in [start, end] inclusive whose
// weekday matches (0=Sunday..6=Saturday), in ascending order. A range
// with end before start yields an empty list, not an error. No upper
// bound on range length is enforced here.
func FromWeekdayRule(start, end string, weekday int) ([]string, error) {
	if weekday < 0 || weekday > 6 {
		return nil, fmt.Errorf("weekday must be 0-6, got %d", weekday)
	}

	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", end, err)
	}

	if endDate.Before(startDate) {
		return []string{}, nil
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   startDate,
		Until:     endDate,
		Byweekday: []rrule.Weekday{weekdays[weekday]},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build recurrence rule: %w", err)
	}

	occurrences := rule.All()
	dates := make([]string, 0, len(occurrences))
	for _, occ := range occurrences {
		dates = append(dates, occ.Format(dateLayout))
	}
	return dates, nil
}

// ApplyBlackouts removes dates matched by any of the configured rrule
// blackout rules. A rule that fails to parse or evaluate is logged and
// skipped so one bad rule never blocks schedule generation.
func ApplyBlackouts(dates []string, rules []string, logger *zap.Logger) []string {
	if len(dates) == 0 || len(rules) == 0 {
		return dates
	}

	first, errFirst := time.Parse(dateLayout, dates[0])
	last, errLast := time.Parse(dateLayout, dates[len(dates)-1])
	if errFirst != nil || errLast != nil {
		return dates
	}

	// Buffer the search window so rules anchored near the range edges
	// still match the endpoint dates.
	searchStart := first.AddDate(0, 0, -7)
	searchEnd := last.AddDate(0, 0, 7)

	blocked := make(map[string]bool)
	for _, raw := range rules {
		rule, err := rrule.StrToRRule(raw)
		if err != nil {
			logger.Warn("Skipping unparseable blackout rule", zap.String("rule", raw), zap.Error(err))
			continue
		}
		rule.DTStart(searchStart)
		for _, occ := range rule.Between(searchStart, searchEnd, true) {
			blocked[occ.Format(dateLayout)] = true
		}
	}

	if len(blocked) == 0 {
		return dates
	}

	kept := make([]string, 0, len(dates))
	for _, d := range dates {
		if blocked[d] {
			logger.Debug("Blackout rule removed date", zap.String("date", d))
			continue
		}
		kept = append(kept, d)
	}
	return kept
}
