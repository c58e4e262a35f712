// Package rotation implements the round-robin assignment engine that maps
// an ordered date sequence and an ordered member roster onto (date, member)
// pairs. Compute is a pure function: no I/O, no hidden state, no randomness.
package rotation

// PlaceholderName is substituted when a roster member id has no entry in
// the name lookup. A single unresolvable id must not block the preview.
const PlaceholderName = "(unknown member)"

// Assignment is one row of a generated preview. It exists only in memory
// until the batch is committed.
type Assignment struct {
	Date       string
	MemberID   string
	MemberName string
}

// Compute maps each date in dateSet onto a roster member by round-robin:
// the date at index i is assigned roster[i mod len(roster)]. The output has
// the same length and order as dateSet. Roster order is significant; the
// caller passes member ids in the order the user selected them.
//
// An empty dateSet or empty roster yields an empty result, not an error:
// "nothing to preview" is a valid state.
func Compute(dateSet []string, roster []string, names map[string]string) []Assignment {
	if len(dateSet) == 0 || len(roster) == 0 {
		return []Assignment{}
	}

	assignments := make([]Assignment, len(dateSet))
	for i, date := range dateSet {
		memberID := roster[i%len(roster)]
		name, ok := names[memberID]
		if !ok {
			name = PlaceholderName
		}
		assignments[i] = Assignment{
			Date:       date,
			MemberID:   memberID,
			MemberName: name,
		}
	}

	return assignments
}
