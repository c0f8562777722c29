package codicefiscale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"fiscale/pkg/comuni"
	"fiscale/pkg/domain"
	dErrors "fiscale/pkg/domain-errors"
)

// ValidatorSuite pins the clock so century and age decisions are
// deterministic regardless of when the tests run.
type ValidatorSuite struct {
	suite.Suite
	validator *Validator
}

func (s *ValidatorSuite) SetupTest() {
	s.validator = NewValidator(comuni.NewInMemory())
	s.validator.now = func() time.Time {
		return time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)
	}
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorSuite))
}

func (s *ValidatorSuite) TestValidMale() {
	// Mario Rossi, born Aug 1, 1985 in Rome.
	result := s.validator.Validate("RSSMRA85M01H501Q")

	s.True(result.IsValid)
	s.Empty(result.ErrorCode)
	s.Equal("RSSMRA85M01H501Q", result.FormattedValue)
	s.Require().NotNil(result.Birthdate)
	s.Equal(time.Date(1985, time.August, 1, 0, 0, 0, 0, time.UTC), *result.Birthdate)
	s.Equal(domain.GenderMale, result.Gender)
	s.Equal("H501", result.BirthPlaceCode)
	s.Equal("ROMA", result.BirthPlaceName)
	s.Equal("RM", result.BirthPlaceProvince)
	s.False(result.IsForeignBorn)
	s.Require().NotNil(result.Age)
	s.Equal(39, *result.Age)
}

func (s *ValidatorSuite) TestValidFemale() {
	// Female days carry the +40 offset: 41 means day 1.
	result := s.validator.Validate("RSSMRA85M41H501U")

	s.True(result.IsValid)
	s.Equal(domain.GenderFemale, result.Gender)
	s.Require().NotNil(result.Birthdate)
	s.Equal(1, result.Birthdate.Day())
}

func (s *ValidatorSuite) TestNormalization() {
	s.Run("lowercase input", func() {
		result := s.validator.Validate("rssmra85m01h501q")
		s.True(result.IsValid)
		s.Equal("RSSMRA85M01H501Q", result.FormattedValue)
	})

	s.Run("inner spaces removed", func() {
		result := s.validator.Validate("RSS MRA 85M01 H501Q")
		s.True(result.IsValid)
		s.Equal("RSSMRA85M01H501Q", result.FormattedValue)
	})
}

func (s *ValidatorSuite) TestFormatErrors() {
	tests := []struct {
		name  string
		value string
	}{
		{name: "empty", value: ""},
		{name: "too short", value: "RSSMRA85M01H501"},
		{name: "too long", value: "RSSMRA85M01H501QQ"},
		{name: "digits where letters expected", value: "123456789012345A"},
		{name: "invalid month letter", value: "RSSMRA85F01H501Q"},
		{name: "omocodia letter outside the ten", value: "RSSMRA8ZM01H501Q"},
		{name: "wrong check digit", value: "RSSMRA85M01H501A"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			result := s.validator.Validate(tt.value)
			s.False(result.IsValid)
			s.Equal(dErrors.CodeCFInvalidFormat, result.ErrorCode)
			s.Nil(result.Birthdate)
		})
	}
}

func (s *ValidatorSuite) TestOmocodiaVariants() {
	canonical := s.validator.Validate("RSSMRA85M01H501Q")
	s.Require().True(canonical.IsValid)

	// Any substitution subset decodes to the same person and keeps the
	// same check character, since the checksum runs over canonical digits.
	variants := []string{
		"RSSMRA85M0MH50MQ", // two positions substituted
		"RSSMRA8RM01H501Q", // year only
		"RSSMRAURMLMHRLMQ", // all seven numeric positions
	}

	for _, variant := range variants {
		s.Run(variant, func() {
			result := s.validator.Validate(variant)
			s.Require().True(result.IsValid, "error: %s", result.ErrorCode)
			s.Equal(*canonical.Birthdate, *result.Birthdate)
			s.Equal(canonical.Gender, result.Gender)
			s.Equal(canonical.BirthPlaceCode, result.BirthPlaceCode)
		})
	}
}

func (s *ValidatorSuite) TestCenturyPivot() {
	s.Run("two digit year above pivot is prior century", func() {
		result := s.validator.Validate("RSSMRA90M01H501N")
		s.Require().True(result.IsValid)
		s.Equal(1990, result.Birthdate.Year())
	})

	s.Run("two digit year below pivot is current century", func() {
		result := s.validator.Validate("RSSMRA10M01H501S")
		s.Require().True(result.IsValid)
		s.Equal(2010, result.Birthdate.Year())
	})

	s.Run("future date in current century falls back", func() {
		// December 31 of year 99 would be 2099; decodes as 1999.
		result := s.validator.Validate("RSSMRA99T31Z404S")
		s.Require().True(result.IsValid)
		s.Equal(1999, result.Birthdate.Year())
	})
}

func (s *ValidatorSuite) TestUndecodableBirthdate() {
	s.Run("february 30 is impossible in both centuries", func() {
		// Check digit is correct; only the date is impossible.
		result := s.validator.Validate("RSSMRA85B30H501C")
		s.False(result.IsValid)
		s.Equal(dErrors.CodeCFCannotDecodeBirthdate, result.ErrorCode)
		s.Nil(result.Birthdate)
		// Format-level enrichment still happened.
		s.Equal("H501", result.BirthPlaceCode)
	})

	s.Run("february 29 resolves to the leap century", func() {
		// 1900 was not a leap year, 2000 was.
		result := s.validator.Validate("RSSMRA00B29H501Y")
		s.Require().True(result.IsValid)
		s.Equal(time.Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC), *result.Birthdate)
	})

	s.Run("male day above 31", func() {
		result := s.validator.Validate("RSSMRA85M35H501G")
		s.False(result.IsValid)
		s.Equal(dErrors.CodeCFCannotDecodeBirthdate, result.ErrorCode)
	})
}

func (s *ValidatorSuite) TestBirthPlace() {
	s.Run("foreign country", func() {
		result := s.validator.Validate("RSSMRA85M01Z109Q")
		s.Require().True(result.IsValid)
		s.Equal("Z109", result.BirthPlaceCode)
		s.Equal("FRANCIA", result.BirthPlaceName)
		s.Equal("EE", result.BirthPlaceProvince)
		s.True(result.IsForeignBorn)
	})

	s.Run("unknown code stays valid without enrichment", func() {
		result := s.validator.Validate("RSSMRA85M01X999S")
		s.Require().True(result.IsValid)
		s.Equal("X999", result.BirthPlaceCode)
		s.Empty(result.BirthPlaceName)
		s.Empty(result.BirthPlaceProvince)
		s.False(result.IsForeignBorn)
	})
}

func (s *ValidatorSuite) TestAdultCheck() {
	s.Run("adult passes", func() {
		result := s.validator.ValidateAdult("RSSMRA85M01H501Q", MinimumAgeYears)
		s.True(result.IsValid)
		s.Require().NotNil(result.Age)
		s.GreaterOrEqual(*result.Age, MinimumAgeYears)
	})

	s.Run("minor fails but keeps enrichment", func() {
		// Born Aug 1, 2020: four years old at the pinned clock.
		result := s.validator.ValidateAdult("RSSMRA20M01H501X", MinimumAgeYears)
		s.False(result.IsValid)
		s.Equal(dErrors.CodeCFUnderage, result.ErrorCode)
		s.Require().NotNil(result.Birthdate)
		s.Equal(2020, result.Birthdate.Year())
		s.Require().NotNil(result.Age)
		s.Equal(4, *result.Age)
		s.Equal("ROMA", result.BirthPlaceName)
	})

	s.Run("custom minimum age", func() {
		result := s.validator.ValidateAdult("RSSMRA85M01H501Q", 50)
		s.False(result.IsValid)
		s.Equal(dErrors.CodeCFUnderage, result.ErrorCode)
	})

	s.Run("eighteenth birthday today is adult", func() {
		// Born June 15, 2007; the pinned clock is June 15, 2025.
		result := s.validator.ValidateAdult("RSSMRA07H15H501N", MinimumAgeYears)
		s.True(result.IsValid, "error: %s", result.ErrorCode)
		s.Require().NotNil(result.Age)
		s.Equal(18, *result.Age)
	})

	s.Run("one day short of eighteen is underage", func() {
		// Born June 16, 2007: turns 18 the day after the pinned clock.
		result := s.validator.ValidateAdult("RSSMRA07H16H501P", MinimumAgeYears)
		s.False(result.IsValid)
		s.Equal(dErrors.CodeCFUnderage, result.ErrorCode)
		s.Require().NotNil(result.Age)
		s.Equal(17, *result.Age)
	})
}
