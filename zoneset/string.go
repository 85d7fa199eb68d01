package zoneset

import "strings"

// String renders s in the diagnostic form
// "[ (zone1),\n (zone2),\n ... ]" delegating each zone's text to
// zone.Zone.String. This is for diagnostics only, not round-trip.
func (s ZoneSet[T]) String() string {
	var b strings.Builder
	b.WriteString("[ ")
	for i, z := range s {
		if i > 0 {
			b.WriteString(",\n ")
		}
		b.WriteString("(")
		b.WriteString(z.String())
		b.WriteString(")")
	}
	b.WriteString(" ]")

	return b.String()
}
