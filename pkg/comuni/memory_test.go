package comuni

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemory_LookupByCode(t *testing.T) {
	r := NewInMemory()

	tests := []struct {
		name         string
		code         string
		wantName     string
		wantProvince string
		wantFound    bool
	}{
		{name: "rome", code: "H501", wantName: "ROMA", wantProvince: "RM", wantFound: true},
		{name: "milan", code: "F205", wantName: "MILANO", wantProvince: "MI", wantFound: true},
		{name: "foreign country", code: "Z109", wantName: "FRANCIA", wantProvince: "EE", wantFound: true},
		{name: "normalizes case and whitespace", code: " h501 ", wantName: "ROMA", wantProvince: "RM", wantFound: true},
		{name: "unknown code", code: "X999", wantFound: false},
		{name: "empty code", code: "", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := r.LookupByCode(tt.code)
			assert.Equal(t, tt.wantFound, ok)
			if tt.wantFound {
				assert.Equal(t, tt.wantName, info.Name)
				assert.Equal(t, tt.wantProvince, info.Province)
			}
		})
	}
}

func TestInMemory_LookupByName(t *testing.T) {
	r := NewInMemory()

	t.Run("exact match", func(t *testing.T) {
		code, ok := r.LookupByName("ROMA")
		require.True(t, ok)
		assert.Equal(t, "H501", code)
	})

	t.Run("case insensitive", func(t *testing.T) {
		code, ok := r.LookupByName("roma")
		require.True(t, ok)
		assert.Equal(t, "H501", code)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, ok := r.LookupByName("UNKNOWN_CITY")
		assert.False(t, ok)
	})

	t.Run("partial name is not an exact match", func(t *testing.T) {
		_, ok := r.LookupByName("ROM")
		assert.False(t, ok)
	})
}

func TestInMemory_Search(t *testing.T) {
	r := NewInMemory()

	t.Run("finds by substring", func(t *testing.T) {
		results := r.Search("MILAN")
		require.NotEmpty(t, results)
		names := make([]string, 0, len(results))
		for _, e := range results {
			names = append(names, e.Name)
		}
		assert.Contains(t, names, "MILANO")
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, r.Search("MILAN"), r.Search("milan"))
	})

	t.Run("no results", func(t *testing.T) {
		assert.Empty(t, r.Search("XYZNOTEXIST"))
	})

	t.Run("empty substring matches everything", func(t *testing.T) {
		assert.Len(t, r.Search(""), len(defaultEntries))
	})

	t.Run("results keep definition order", func(t *testing.T) {
		results := r.Search("")
		assert.Equal(t, defaultEntries, results)

		// A narrower query must preserve relative order too: REGGIO
		// CALABRIA precedes REGGIO EMILIA precedes VIAREGGIO in the
		// table, and the match is substring-anywhere, not prefix.
		reggio := r.Search("REGGIO")
		require.Len(t, reggio, 3)
		assert.Equal(t, "H223", reggio[0].Code)
		assert.Equal(t, "H224", reggio[1].Code)
		assert.Equal(t, "L698", reggio[2].Code)
	})
}

func TestInMemory_IsForeign(t *testing.T) {
	r := NewInMemory()

	assert.True(t, r.IsForeign("Z109"))
	assert.True(t, r.IsForeign("z109"))
	assert.True(t, r.IsForeign("Z999")) // shape check, presence not required
	assert.False(t, r.IsForeign("H501"))
	assert.False(t, r.IsForeign(""))
}

func TestInMemory_WithEntries(t *testing.T) {
	custom := []Entry{
		{Code: "Q999", Name: "TESTVILLE", Province: "TV"},
		{Code: "H501", Name: "ROMA", Province: "RM"},
	}
	r := NewInMemoryWithEntries(custom)

	info, ok := r.LookupByCode("Q999")
	require.True(t, ok)
	assert.Equal(t, "TESTVILLE", info.Name)

	code, ok := r.LookupByName("testville")
	require.True(t, ok)
	assert.Equal(t, "Q999", code)

	assert.Equal(t, custom, r.Search(""))
}

// TestDefaultEntries_Invariants checks the compiled-in table: unique codes,
// Belfiore shape, and the foreign-country province marker.
func TestDefaultEntries_Invariants(t *testing.T) {
	seen := make(map[string]struct{}, len(defaultEntries))
	for _, e := range defaultEntries {
		_, dup := seen[e.Code]
		assert.False(t, dup, "duplicate code %s", e.Code)
		seen[e.Code] = struct{}{}

		require.Len(t, e.Code, 4)
		assert.Len(t, e.Province, 2)
		assert.Equal(t, strings.HasPrefix(e.Code, "Z"), e.Province == "EE", "code %s", e.Code)
	}
}
