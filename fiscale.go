// Package fiscale validates and generates Italian fiscal identifiers: the
// 16-character personal Codice Fiscale and the 11-digit Partita IVA.
//
// The package-level functions operate over a shared registry of the most
// common Italian municipalities and foreign-country codes. For a custom
// table, construct the engines in pkg/codicefiscale and pkg/partitaiva
// directly over a comuni.Registry of your own.
package fiscale

import (
	"time"

	"fiscale/pkg/codicefiscale"
	"fiscale/pkg/comuni"
	"fiscale/pkg/partitaiva"
)

// Shared immutable engines, built once. Safe for concurrent use: nothing
// here is written after package init.
var (
	defaultRegistry = comuni.NewInMemory()
	cfValidator     = codicefiscale.NewValidator(defaultRegistry)
	cfGenerator     = codicefiscale.NewGenerator()
	pivaValidator   = partitaiva.NewValidator()
)

// CFOption configures ValidateCodiceFiscale.
type CFOption func(*cfOptions)

type cfOptions struct {
	checkAdult bool
	minimumAge int
}

// WithAdultCheck makes validation fail with tax_id_cf_underage when the
// decoded age is below minimumAge. Reaching minimumAge exactly on the
// current date counts as adult.
func WithAdultCheck(minimumAge int) CFOption {
	return func(o *cfOptions) {
		o.checkAdult = true
		o.minimumAge = minimumAge
	}
}

// ValidateCodiceFiscale validates a Codice Fiscale, accepting omocodia
// variants, and enriches the result with birthdate, age, gender, and birth
// place when they can be decoded.
func ValidateCodiceFiscale(value string, opts ...CFOption) codicefiscale.ValidationResult {
	o := cfOptions{minimumAge: codicefiscale.MinimumAgeYears}
	for _, opt := range opts {
		opt(&o)
	}
	if o.checkAdult {
		return cfValidator.ValidateAdult(value, o.minimumAge)
	}
	return cfValidator.Validate(value)
}

// GenerateCodiceFiscale encodes identity attributes into the canonical
// (non-omocodia) Codice Fiscale. Gender must be "M" or "F"; the birth-place
// code is validated by shape only.
func GenerateCodiceFiscale(surname, name string, birthdate time.Time, gender, birthPlaceCode string) codicefiscale.GenerationResult {
	return cfGenerator.Generate(surname, name, birthdate, gender, birthPlaceCode)
}

// ValidatePartitaIva validates a Partita IVA, tolerating separators and an
// optional leading IT prefix.
func ValidatePartitaIva(value string) partitaiva.Result {
	return pivaValidator.Validate(value)
}

// MunicipalityInfo resolves a cadastral code to municipality name and
// province. The second return is false when the code is not in the table.
func MunicipalityInfo(code string) (comuni.Info, bool) {
	return defaultRegistry.LookupByCode(code)
}

// CadastralCode resolves a full municipality or country name
// (case-insensitive) to its cadastral code.
func CadastralCode(name string) (string, bool) {
	return defaultRegistry.LookupByName(name)
}

// SearchMunicipality returns the entries whose name contains query,
// case-insensitively, in the registry's definition order.
func SearchMunicipality(query string) []comuni.Entry {
	return defaultRegistry.Search(query)
}

// IsForeignCountry reports whether a cadastral code designates a foreign
// country (Z-codes).
func IsForeignCountry(code string) bool {
	return defaultRegistry.IsForeign(code)
}
