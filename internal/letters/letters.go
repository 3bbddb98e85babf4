// Package letters loads the Hebrew letter table and the example-word
// corpus from disk and validates their shape before anything else in the
// engine touches them.
package letters

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/otiyot/gematria/internal/domain"
)

// Column names every letters.csv must carry, in canonical order.
var requiredColumns = []string{
	"letter",
	"name",
	"position",
	"standard_value",
	"final_form",
	"final_value",
}

// Example is one corpus entry: a Hebrew word with its stated value under
// a named system, for display alongside drills.
type Example struct {
	Hebrew          string        `json:"hebrew" validate:"required"`
	Value           int           `json:"value" validate:"gt=0"`
	Transliteration string        `json:"transliteration" validate:"required"`
	Meaning         string        `json:"meaning" validate:"required"`
	Attribution     string        `json:"attribution"`
	System          domain.System `json:"system" validate:"required"`
}

// LoadLetters reads and validates a letters.csv file.
func LoadLetters(path string) ([]domain.LetterDefinition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening letter table: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ParseLetters(f)
}

// ParseLetters decodes the letter table from CSV and enforces the
// table-level invariants: exactly 22 rows, contiguous positions 1..22,
// exactly 5 final forms, every row individually valid.
func ParseLetters(r io.Reader) ([]domain.LetterDefinition, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading letter table header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, domain.NewValidationError("letter table", col, "missing column")
		}
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading letter table rows: %w", err)
	}
	if len(records) != domain.LetterCount {
		return nil, domain.NewValidationError("letter table", "",
			fmt.Sprintf("expected %d letters, got %d", domain.LetterCount, len(records)))
	}

	defs := make([]domain.LetterDefinition, 0, len(records))
	finals := 0
	for rowNum, record := range records {
		def, err := parseRow(record, index)
		if err != nil {
			return nil, fmt.Errorf("letter table row %d: %w", rowNum+1, err)
		}
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("letter table row %d: %w", rowNum+1, err)
		}
		if def.HasFinal() {
			finals++
		}
		defs = append(defs, def)
	}

	if finals != domain.FinalFormCount {
		return nil, domain.NewValidationError("letter table", "final_form",
			fmt.Sprintf("expected %d final forms, got %d", domain.FinalFormCount, finals))
	}

	sort.Slice(defs, func(i, j int) bool { return defs[i].Position < defs[j].Position })
	for i, def := range defs {
		if def.Position != i+1 {
			return nil, domain.NewValidationError("letter table", "position",
				fmt.Sprintf("positions must cover 1..%d exactly, duplicate or gap at %d",
					domain.LetterCount, def.Position))
		}
	}
	return defs, nil
}

func parseRow(record []string, index map[string]int) (domain.LetterDefinition, error) {
	field := func(col string) string {
		i := index[col]
		if i >= len(record) {
			return ""
		}
		return record[i]
	}

	position, err := strconv.Atoi(field("position"))
	if err != nil {
		return domain.LetterDefinition{}, domain.NewValidationError("letter", "position", "not a number")
	}
	standard, err := strconv.Atoi(field("standard_value"))
	if err != nil {
		return domain.LetterDefinition{}, domain.NewValidationError("letter", "standard_value", "not a number")
	}

	def := domain.LetterDefinition{
		Glyph:         field("letter"),
		Name:          field("name"),
		Position:      position,
		StandardValue: standard,
		FinalGlyph:    field("final_form"),
	}
	if raw := field("final_value"); raw != "" {
		finalValue, err := strconv.Atoi(raw)
		if err != nil {
			return domain.LetterDefinition{}, domain.NewValidationError("letter", "final_value", "not a number")
		}
		def.FinalValue = finalValue
	}
	return def, nil
}

// LoadExamples reads and validates an examples.json corpus file.
func LoadExamples(path string) ([]Example, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening example corpus: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ParseExamples(f)
}

// ParseExamples decodes the corpus and checks every entry carries the
// required keys and names a known system.
func ParseExamples(r io.Reader) ([]Example, error) {
	var examples []Example
	if err := json.NewDecoder(r).Decode(&examples); err != nil {
		return nil, fmt.Errorf("decoding example corpus: %w", err)
	}

	validate := validator.New()
	for i, ex := range examples {
		if err := validate.Struct(ex); err != nil {
			return nil, fmt.Errorf("example %d (%s): %w",
				i, ex.Hebrew, domain.NewValidationError("example", "", err.Error()))
		}
		if !ex.System.IsValid() {
			return nil, fmt.Errorf("example %d (%s): %w", i, ex.Hebrew, domain.ErrInvalidSystem)
		}
	}
	return examples, nil
}

// ForSystem filters the corpus down to one system's entries.
func ForSystem(examples []Example, system domain.System) []Example {
	var out []Example
	for _, ex := range examples {
		if ex.System == system {
			out = append(out, ex)
		}
	}
	return out
}
