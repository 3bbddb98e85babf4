package domain

// CardType distinguishes the four kinds of drill prompts.
type CardType string

// Possible card types. Valuation tiers produce letter/value pairs in both
// directions; cipher tiers produce forward cards, plus reverse cards for
// the one non-symmetric cipher.
const (
	CardTypeLetterToValue CardType = "letter-to-value"
	CardTypeValueToLetter CardType = "value-to-letter"
	CardTypeCipherForward CardType = "cipher-forward"
	CardTypeCipherReverse CardType = "cipher-reverse"
)

// IsValid reports whether t is one of the four card types.
func (t CardType) IsValid() bool {
	switch t {
	case CardTypeLetterToValue, CardTypeValueToLetter,
		CardTypeCipherForward, CardTypeCipherReverse:
		return true
	default:
		return false
	}
}

// Card-specific validation errors.
var (
	ErrCardIDEmpty     = NewValidationError("card spec", "id", "cannot be empty")
	ErrCardTypeInvalid = NewValidationError("card spec", "type", "unknown card type")
	ErrCardPromptEmpty = NewValidationError("card spec", "prompt", "cannot be empty")
	ErrCardAnswerEmpty = NewValidationError("card spec", "answer", "cannot be empty")
)

// CardSpec describes one drill item: what to show and what counts as the
// right answer. Specs are regenerated deterministically from the letter
// table; only the ID is referenced by persisted state.
type CardSpec struct {
	ID     string   `json:"id"`
	Type   CardType `json:"type"`
	Prompt string   `json:"prompt"`
	Answer string   `json:"answer"`
}

// Validate checks that the spec is fully populated.
func (s CardSpec) Validate() error {
	if s.ID == "" {
		return ErrCardIDEmpty
	}
	if !s.Type.IsValid() {
		return ErrCardTypeInvalid
	}
	if s.Prompt == "" {
		return ErrCardPromptEmpty
	}
	if s.Answer == "" {
		return ErrCardAnswerEmpty
	}
	return nil
}

// LevelDefinition is one tier of a system's curriculum: its ordered card
// specs, or an empty non-static tier whose content comes from an external
// procedural generator.
type LevelDefinition struct {
	System System     `json:"system"`
	Tier   int        `json:"tier"`
	Label  string     `json:"label"` // Hebrew numeral label for the tier
	Static bool       `json:"static"`
	Specs  []CardSpec `json:"specs"`
}
