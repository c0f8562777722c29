package codicefiscale

import (
	"fmt"
	"time"

	"fiscale/pkg/domain"
	dErrors "fiscale/pkg/domain-errors"
)

// Generator encodes identity attributes into the canonical Codice Fiscale.
// Generation never emits omocodia substitutes; collisions are resolved by
// the tax authority, not derivable from the attributes alone.
type Generator struct{}

// NewGenerator builds a Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate encodes surname, given name, birthdate, gender, and birth-place
// cadastral code into a 16-character Codice Fiscale. The place code is
// validated by shape only: existence in the municipality registry is not
// required, so codes predating the compiled-in table keep working.
func (g *Generator) Generate(surname, name string, birthdate time.Time, gender, birthPlaceCode string) GenerationResult {
	cleanSurname := normalizeName(surname)
	if cleanSurname == "" {
		return generationFailure(dErrors.CodeGenInvalidSurname)
	}
	cleanName := normalizeName(name)
	if cleanName == "" {
		return generationFailure(dErrors.CodeGenInvalidName)
	}
	parsedGender, err := domain.ParseGender(gender)
	if err != nil {
		return generationFailure(dErrors.CodeOf(err))
	}
	place, err := domain.ParseCadastralCode(birthPlaceCode)
	if err != nil {
		return generationFailure(dErrors.CodeOf(err))
	}

	day := birthdate.Day()
	if parsedGender.IsFemale() {
		day += 40
	}

	body := fmt.Sprintf("%s%s%02d%c%02d%s",
		surnameCode(cleanSurname),
		nameCode(cleanName),
		birthdate.Year()%100,
		letterOfMonth[int(birthdate.Month())],
		day,
		place,
	)

	return GenerationResult{
		IsValid:       true,
		CodiceFiscale: body + string(checkChar(body)),
	}
}

func generationFailure(code dErrors.Code) GenerationResult {
	return GenerationResult{ErrorCode: code}
}
