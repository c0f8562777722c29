package codicefiscale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockcomuni "fiscale/mocks/comuni"
	"fiscale/pkg/comuni"
)

// These tests pin the validator's consumer contract with the registry:
// lookups happen on the canonical (omocodia-decoded) code, and registry
// absence never invalidates an otherwise correct Codice Fiscale.
func TestValidator_RegistryContract(t *testing.T) {
	fixedNow := func() time.Time {
		return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	}

	t.Run("canonical code is looked up for omocodia input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mockcomuni.NewMockRegistry(ctrl)

		// Input carries substitutions in the place-code tail; the registry
		// must see H501, not H50M.
		registry.EXPECT().IsForeign("H501").Return(false)
		registry.EXPECT().LookupByCode("H501").Return(comuni.Info{Name: "ROMA", Province: "RM"}, true)

		v := NewValidator(registry)
		v.now = fixedNow

		result := v.Validate("RSSMRA85M0MH50MQ")
		require.True(t, result.IsValid, "error: %s", result.ErrorCode)
		assert.Equal(t, "ROMA", result.BirthPlaceName)
	})

	t.Run("registry miss leaves enrichment empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mockcomuni.NewMockRegistry(ctrl)

		registry.EXPECT().IsForeign("H501").Return(false)
		registry.EXPECT().LookupByCode("H501").Return(comuni.Info{}, false)

		v := NewValidator(registry)
		v.now = fixedNow

		result := v.Validate("RSSMRA85M01H501Q")
		require.True(t, result.IsValid)
		assert.Empty(t, result.BirthPlaceName)
		assert.Empty(t, result.BirthPlaceProvince)
	})

	t.Run("format failure never touches the registry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mockcomuni.NewMockRegistry(ctrl)
		// No EXPECT calls: any registry use fails the test.

		v := NewValidator(registry)
		v.now = fixedNow

		result := v.Validate("not-a-codice-fiscale")
		assert.False(t, result.IsValid)
	})
}
