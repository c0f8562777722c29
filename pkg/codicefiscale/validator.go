package codicefiscale

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"fiscale/pkg/comuni"
	"fiscale/pkg/domain"
	dErrors "fiscale/pkg/domain-errors"
)

// MinimumAgeYears is the default threshold for the adult check.
const MinimumAgeYears = 18

// cfPattern is the structural shape of a 16-character code: six name
// letters, year and day slots that admit digits or omocodia letters, one of
// the twelve month letters, the place-code letter, its three digit-or-
// omocodia characters, and the check letter. Month validity is enforced
// here, so later stages never see an unknown month.
var cfPattern = regexp.MustCompile(`^[A-Z]{6}[0-9LMNPQRSTUV]{2}[ABCDEHLMPRST][0-9LMNPQRSTUV]{2}[A-Z][0-9LMNPQRSTUV]{3}[A-Z]$`)

// Validator decodes and verifies Codici Fiscali. The registry is injected
// so the codec stays decoupled from the concrete birth-place data source;
// the clock is injected for deterministic age and century decisions.
type Validator struct {
	registry comuni.Registry
	now      func() time.Time
}

// NewValidator builds a Validator over the given registry.
func NewValidator(registry comuni.Registry) *Validator {
	return &Validator{registry: registry, now: time.Now}
}

// Validate checks a Codice Fiscale: format, check digit, decodable
// birthdate. Omocodia variants are accepted and decoded transparently.
func (v *Validator) Validate(value string) ValidationResult {
	return v.validate(value, false, MinimumAgeYears)
}

// ValidateAdult is Validate plus a minimum-age business rule: reaching
// minimumAge exactly today counts as adult.
func (v *Validator) ValidateAdult(value string, minimumAge int) ValidationResult {
	return v.validate(value, true, minimumAge)
}

func (v *Validator) validate(value string, checkAdult bool, minimumAge int) ValidationResult {
	clean := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(value), " ", ""))
	result := ValidationResult{FormattedValue: clean}

	f, err := v.decode(clean)
	if err != nil {
		result.ErrorCode = dErrors.CodeOf(err)
		return result
	}

	// Birth place enrichment is best-effort: an absent code leaves the
	// name/province empty without invalidating the code.
	result.BirthPlaceCode = f.place
	result.IsForeignBorn = v.registry.IsForeign(f.place)
	if info, ok := v.registry.LookupByCode(f.place); ok {
		result.BirthPlaceName = info.Name
		result.BirthPlaceProvince = info.Province
	}

	if f.dayRaw > 40 {
		result.Gender = domain.GenderFemale
	} else {
		result.Gender = domain.GenderMale
	}

	birthdate, err := v.decodeBirthdate(f)
	if err != nil {
		result.ErrorCode = dErrors.CodeOf(err)
		return result
	}
	result.Birthdate = &birthdate

	age := v.ageAt(birthdate)
	result.Age = &age

	if checkAdult && age < minimumAge {
		result.ErrorCode = dErrors.CodeCFUnderage
		return result
	}

	result.IsValid = true
	return result
}

// decode splits a normalized code into fields after restoring the
// canonical digits and verifying the check character.
func (v *Validator) decode(clean string) (fields, error) {
	if !cfPattern.MatchString(clean) {
		return fields{}, dErrors.New(dErrors.CodeCFInvalidFormat, "value does not match the codice fiscale shape")
	}

	year, _, err := decodeNumericField(clean[6:8])
	if err != nil {
		return fields{}, err
	}
	day, _, err := decodeNumericField(clean[9:11])
	if err != nil {
		return fields{}, err
	}
	placeTail, _, err := decodeNumericField(clean[12:15])
	if err != nil {
		return fields{}, err
	}

	// The check character is computed over the canonical-digit form, so
	// every omocodia variant of a valid code verifies against the same
	// 16th character.
	body := clean[0:6] + year + string(clean[8]) + day + string(clean[11]) + placeTail
	if checkChar(body) != clean[15] {
		return fields{}, dErrors.New(dErrors.CodeCFInvalidFormat, "check character mismatch")
	}

	year2, _ := strconv.Atoi(year)
	dayRaw, _ := strconv.Atoi(day)

	return fields{
		surname: clean[0:3],
		name:    clean[3:6],
		year2:   year2,
		month:   monthOfLetter[clean[8]],
		dayRaw:  dayRaw,
		place:   string(clean[11]) + placeTail,
	}, nil
}

// decodeBirthdate resolves the two-digit year against a deterministic
// pivot: the current century is assumed unless that would place the
// birthdate in the future, in which case the prior century is used. A
// day/month impossible in the preferred year (Feb 29 outside a leap year)
// falls back to the other century before giving up.
func (v *Validator) decodeBirthdate(f fields) (time.Time, error) {
	day := f.dayRaw
	if day > 40 {
		day -= 40
	}
	if day < 1 || day > 31 {
		return time.Time{}, dErrors.Newf(dErrors.CodeCFCannotDecodeBirthdate, "day %d out of range", day)
	}

	today := v.now()
	century := today.Year() / 100 * 100
	for _, year := range []int{century + f.year2, century + f.year2 - 100} {
		t, ok := makeDate(year, f.month, day)
		if !ok || t.After(today) {
			continue
		}
		return t, nil
	}
	return time.Time{}, dErrors.Newf(dErrors.CodeCFCannotDecodeBirthdate, "no valid date for day %d month %d", day, f.month)
}

// makeDate builds a UTC midnight date, rejecting combinations time.Date
// would normalize away (Feb 30 becoming Mar 1).
func makeDate(year, month, day int) (time.Time, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// ageAt counts whole years elapsed from birthdate to today, accounting for
// a month/day not yet reached this year.
func (v *Validator) ageAt(birthdate time.Time) int {
	today := v.now()
	age := today.Year() - birthdate.Year()
	if today.Month() < birthdate.Month() ||
		(today.Month() == birthdate.Month() && today.Day() < birthdate.Day()) {
		age--
	}
	return age
}
