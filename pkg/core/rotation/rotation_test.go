package rotation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_RoundRobinOrder(t *testing.T) {
	dateSet := []string{"2025-01-05", "2025-01-12", "2025-01-19"}
	roster := []string{"A", "B"}
	names := map[string]string{"A": "Alice", "B": "Bob"}

	assignments := Compute(dateSet, roster, names)

	require.Len(t, assignments, 3)
	assert.Equal(t, Assignment{Date: "2025-01-05", MemberID: "A", MemberName: "Alice"}, assignments[0])
	assert.Equal(t, Assignment{Date: "2025-01-12", MemberID: "B", MemberName: "Bob"}, assignments[1])
	assert.Equal(t, Assignment{Date: "2025-01-19", MemberID: "A", MemberName: "Alice"}, assignments[2])
}

func TestCompute_OutputMatchesDateSetLengthAndOrder(t *testing.T) {
	dateSet := make([]string, 10)
	for i := range dateSet {
		dateSet[i] = fmt.Sprintf("2025-03-%02d", i+1)
	}
	roster := []string{"m1", "m2", "m3"}

	assignments := Compute(dateSet, roster, map[string]string{})

	require.Len(t, assignments, len(dateSet))
	for i, a := range assignments {
		assert.Equal(t, dateSet[i], a.Date)
		assert.Equal(t, roster[i%len(roster)], a.MemberID)
	}
}

func TestCompute_EvenSplitWhenDivisible(t *testing.T) {
	// 6 dates over 3 members: everyone appears exactly twice
	dateSet := []string{"2025-02-01", "2025-02-02", "2025-02-03", "2025-02-04", "2025-02-05", "2025-02-06"}
	roster := []string{"x", "y", "z"}

	counts := map[string]int{}
	for _, a := range Compute(dateSet, roster, nil) {
		counts[a.MemberID]++
	}

	for _, id := range roster {
		assert.Equal(t, 2, counts[id], "member %s", id)
	}
}

func TestCompute_EarlierMembersGetExtraAssignment(t *testing.T) {
	// 5 dates over 3 members: the first two roster members appear twice,
	// the last appears once
	dateSet := []string{"2025-02-01", "2025-02-02", "2025-02-03", "2025-02-04", "2025-02-05"}
	roster := []string{"x", "y", "z"}

	counts := map[string]int{}
	for _, a := range Compute(dateSet, roster, nil) {
		counts[a.MemberID]++
	}

	assert.Equal(t, 2, counts["x"])
	assert.Equal(t, 2, counts["y"])
	assert.Equal(t, 1, counts["z"])
}

func TestCompute_EmptyInputsYieldEmptyResult(t *testing.T) {
	assert.Empty(t, Compute(nil, []string{"A"}, nil))
	assert.Empty(t, Compute([]string{}, []string{"A"}, nil))
	assert.Empty(t, Compute([]string{"2025-01-05"}, nil, nil))
	assert.Empty(t, Compute([]string{"2025-01-05"}, []string{}, nil))
}

func TestCompute_MissingNameDegradesToPlaceholder(t *testing.T) {
	dateSet := []string{"2025-01-05", "2025-01-12"}
	roster := []string{"known", "ghost"}
	names := map[string]string{"known": "Kim"}

	assignments := Compute(dateSet, roster, names)

	require.Len(t, assignments, 2)
	assert.Equal(t, "Kim", assignments[0].MemberName)
	assert.Equal(t, PlaceholderName, assignments[1].MemberName)
	assert.Equal(t, "ghost", assignments[1].MemberID)
}

func TestCompute_IsPure(t *testing.T) {
	dateSet := []string{"2025-01-05", "2025-01-12", "2025-01-19", "2025-01-26"}
	roster := []string{"A", "B", "C"}
	names := map[string]string{"A": "Alice", "B": "Bob", "C": "Carol"}

	first := Compute(dateSet, roster, names)
	second := Compute(dateSet, roster, names)

	assert.Equal(t, first, second)
	// Inputs are untouched
	assert.Equal(t, []string{"2025-01-05", "2025-01-12", "2025-01-19", "2025-01-26"}, dateSet)
	assert.Equal(t, []string{"A", "B", "C"}, roster)
}
