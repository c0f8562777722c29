// Command fiscale validates and generates Italian fiscal identifiers from
// the command line. Exit codes: 0 valid/success, 1 invalid/error, 2 usage.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"fiscale"
	"fiscale/internal/platform/logger"
	"fiscale/pkg/codicefiscale"
)

const version = "1.1.0"

const usageText = `fiscale %s - Italian tax identifier toolkit

Usage:
  fiscale validate-cf <value> [--check-adult] [--minimum-age N]
  fiscale validate-piva <value>
  fiscale generate-cf --surname S --name N --birthdate YYYY-MM-DD --gender M|F
                      (--birth-place-code CODE | --birth-place NAME)
  fiscale search-municipality <query> [--limit N]
  fiscale --version
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := logger.New()

	if len(args) == 0 {
		fmt.Printf(usageText, version)
		return 0
	}

	switch args[0] {
	case "--version", "-version":
		fmt.Printf("fiscale %s\n", version)
		return 0
	case "validate-cf":
		return validateCF(log, args[1:])
	case "validate-piva":
		return validatePIva(log, args[1:])
	case "generate-cf":
		return generateCF(log, args[1:])
	case "search-municipality":
		return searchMunicipality(log, args[1:])
	default:
		log.Printf("unknown command: %s", args[0])
		fmt.Printf(usageText, version)
		return 2
	}
}

func validateCF(log *log.Logger, args []string) int {
	fs := flag.NewFlagSet("validate-cf", flag.ContinueOnError)
	checkAdult := fs.Bool("check-adult", false, "Verify the person is at least minimum-age years old")
	minimumAge := fs.Int("minimum-age", codicefiscale.MinimumAgeYears, "Minimum age required")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		log.Printf("validate-cf expects exactly one value")
		return 2
	}

	var opts []fiscale.CFOption
	if *checkAdult {
		opts = append(opts, fiscale.WithAdultCheck(*minimumAge))
	}
	result := fiscale.ValidateCodiceFiscale(fs.Arg(0), opts...)

	if !result.IsValid {
		fmt.Printf("invalid codice fiscale: %s\n", result.FormattedValue)
		fmt.Printf("  error: %s\n", result.ErrorCode)
		if result.Birthdate != nil {
			fmt.Printf("  birthdate: %s\n", result.Birthdate.Format("2006-01-02"))
		}
		if result.Age != nil {
			fmt.Printf("  age: %d\n", *result.Age)
		}
		return 1
	}

	fmt.Printf("valid codice fiscale: %s\n", result.FormattedValue)
	fmt.Printf("  birthdate: %s\n", result.Birthdate.Format("2006-01-02"))
	fmt.Printf("  age: %d\n", *result.Age)
	fmt.Printf("  gender: %s\n", result.Gender)
	if result.BirthPlaceName != "" {
		if result.IsForeignBorn {
			fmt.Printf("  birth place: %s (foreign country)\n", result.BirthPlaceName)
		} else {
			fmt.Printf("  birth place: %s (%s)\n", result.BirthPlaceName, result.BirthPlaceProvince)
		}
	} else {
		fmt.Printf("  birth place code: %s\n", result.BirthPlaceCode)
	}
	return 0
}

func validatePIva(log *log.Logger, args []string) int {
	fs := flag.NewFlagSet("validate-piva", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		log.Printf("validate-piva expects exactly one value")
		return 2
	}

	result := fiscale.ValidatePartitaIva(fs.Arg(0))
	if !result.IsValid {
		fmt.Printf("invalid partita iva: %s\n", result.FormattedValue)
		fmt.Printf("  error: %s\n", result.ErrorCode)
		return 1
	}

	fmt.Printf("valid partita iva: %s\n", result.FormattedValue)
	fmt.Printf("  province code: %s\n", result.ProvinceCode)
	if result.IsTemporary {
		fmt.Printf("  warning: temporary VAT number\n")
	}
	return 0
}

func generateCF(log *log.Logger, args []string) int {
	fs := flag.NewFlagSet("generate-cf", flag.ContinueOnError)
	surname := fs.String("surname", "", "Person's surname")
	name := fs.String("name", "", "Person's first name")
	birthdateArg := fs.String("birthdate", "", "Date of birth (YYYY-MM-DD)")
	gender := fs.String("gender", "", "Gender (M or F)")
	placeCode := fs.String("birth-place-code", "", "4-character cadastral code (e.g. H501 for Rome)")
	placeName := fs.String("birth-place", "", "Municipality name (alternative to --birth-place-code)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	birthdate, err := time.Parse("2006-01-02", *birthdateArg)
	if err != nil {
		log.Printf("invalid birthdate %q: use YYYY-MM-DD (e.g. 1985-08-01)", *birthdateArg)
		return 1
	}

	code := *placeCode
	if code == "" && *placeName != "" {
		resolved, ok := fiscale.CadastralCode(*placeName)
		if !ok {
			matches := fiscale.SearchMunicipality(*placeName)
			if len(matches) == 0 {
				log.Printf("municipality not found: %s", *placeName)
				return 1
			}
			log.Printf("no exact match for %q; candidates:", *placeName)
			for i, m := range matches {
				if i == 10 {
					break
				}
				log.Printf("  %s: %s (%s)", m.Code, m.Name, m.Province)
			}
			log.Printf("use --birth-place-code with the exact code")
			return 1
		}
		code = resolved
	}
	if code == "" {
		log.Printf("birth place is required: use --birth-place-code or --birth-place")
		return 1
	}

	result := fiscale.GenerateCodiceFiscale(*surname, *name, birthdate, *gender, code)
	if !result.IsValid {
		fmt.Printf("cannot generate codice fiscale\n")
		fmt.Printf("  error: %s\n", result.ErrorCode)
		return 1
	}

	fmt.Printf("codice fiscale: %s\n", result.CodiceFiscale)
	return 0
}

func searchMunicipality(log *log.Logger, args []string) int {
	fs := flag.NewFlagSet("search-municipality", flag.ContinueOnError)
	limit := fs.Int("limit", 20, "Maximum number of results")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		log.Printf("search-municipality expects exactly one query")
		return 2
	}

	results := fiscale.SearchMunicipality(fs.Arg(0))
	if len(results) == 0 {
		fmt.Printf("no municipalities found for %q\n", fs.Arg(0))
		return 1
	}

	fmt.Printf("found %d municipalities:\n", len(results))
	for i, e := range results {
		if i == *limit {
			fmt.Printf("  ... and %d more\n", len(results)-*limit)
			break
		}
		if e.Province == "EE" {
			fmt.Printf("  %s: %s (foreign)\n", e.Code, e.Name)
		} else {
			fmt.Printf("  %s: %s (%s)\n", e.Code, e.Name, e.Province)
		}
	}
	return 0
}
