// Package comuni provides the municipality registry backing the Codice
// Fiscale birth-place field: a read-only mapping from Belfiore cadastral
// codes to municipality (or foreign country) names and provinces.
//
// The registry is built once and never mutated, so lookups are safe for
// unsynchronized concurrent use. Absence is an explicit "not found" result,
// never an error: a Codice Fiscale may legitimately carry a code that
// predates the compiled-in table.
package comuni

// Entry is one registry record.
//
// Invariants:
//   - Code is unique within a registry: one uppercase letter + three digits
//   - Province is "EE" exactly when Code starts with Z (foreign country)
type Entry struct {
	Code     string
	Name     string
	Province string
}

// Info carries the lookup payload for a cadastral code.
type Info struct {
	Name     string
	Province string
}

// Registry answers birth-place questions for the codecs. Implementations
// must be pure lookups with no side effects.
type Registry interface {
	// LookupByCode resolves a normalized (uppercased, trimmed) 4-character
	// cadastral code to its municipality info.
	LookupByCode(code string) (Info, bool)

	// LookupByName resolves a full municipality/country name
	// (case-insensitive exact match) to its cadastral code.
	LookupByName(name string) (string, bool)

	// Search returns entries whose name contains substring
	// (case-insensitive), in the registry's fixed definition order.
	// An empty substring matches everything.
	Search(substring string) []Entry

	// IsForeign reports whether the code designates a foreign country,
	// i.e. starts with Z. Pure shape check, independent of presence.
	IsForeign(code string) bool
}
