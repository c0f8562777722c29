package comuni

import "strings"

// InMemory implements Registry over a fixed slice of entries. The slice
// order is the iteration order Search reports, so the compiled-in table
// keeps its definition order. Indexes are built once in the constructor;
// nothing is written afterwards.
type InMemory struct {
	entries []Entry
	byCode  map[string]Info
	byName  map[string]string
}

// NewInMemory builds a registry from the compiled-in municipality table.
func NewInMemory() *InMemory {
	return NewInMemoryWithEntries(defaultEntries)
}

// NewInMemoryWithEntries builds a registry from a caller-supplied table,
// e.g. one extended with municipalities missing from the default set.
// Entries keep the given order for Search.
func NewInMemoryWithEntries(entries []Entry) *InMemory {
	r := &InMemory{
		entries: entries,
		byCode:  make(map[string]Info, len(entries)),
		byName:  make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		r.byCode[e.Code] = Info{Name: e.Name, Province: e.Province}
		r.byName[strings.ToUpper(e.Name)] = e.Code
	}
	return r
}

// LookupByCode resolves a cadastral code after normalizing it.
func (r *InMemory) LookupByCode(code string) (Info, bool) {
	info, ok := r.byCode[normalize(code)]
	return info, ok
}

// LookupByName resolves a full name, case-insensitively.
func (r *InMemory) LookupByName(name string) (string, bool) {
	code, ok := r.byName[normalize(name)]
	return code, ok
}

// Search scans the table in definition order for names containing substring.
func (r *InMemory) Search(substring string) []Entry {
	needle := strings.ToUpper(substring)
	var results []Entry
	for _, e := range r.entries {
		if strings.Contains(strings.ToUpper(e.Name), needle) {
			results = append(results, e)
		}
	}
	return results
}

// IsForeign reports whether code starts with Z, case-insensitively.
func (r *InMemory) IsForeign(code string) bool {
	return strings.HasPrefix(normalize(code), "Z")
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
