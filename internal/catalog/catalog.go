// Package catalog builds the tiered drill curriculum for each gematria
// system from the letter table. Card specs are generated deterministically:
// the same table always yields byte-identical IDs, so persisted card state
// survives regeneration.
package catalog

import (
	"fmt"
	"strconv"

	"github.com/otiyot/gematria/internal/domain"
	"github.com/otiyot/gematria/internal/domain/gematria"
)

// tierLabels are the Hebrew numerals that label tiers 1 through 8.
var tierLabels = []string{"א", "ב", "ג", "ד", "ה", "ו", "ז", "ח"}

// ErrTierRange is returned when a tier index is outside 1..TierCount.
var ErrTierRange = fmt.Errorf("%w: tier out of range", domain.ErrValidation)

// TierLabel returns the Hebrew numeral label for a 1-based tier index.
func TierLabel(tier int) string {
	if tier < 1 || tier > len(tierLabels) {
		return ""
	}
	return tierLabels[tier-1]
}

// IsStatic reports whether a tier's content is generated from the letter
// table. Tiers 5-8 of the 8-tier systems are procedural: their cards come
// from an external generator and the catalog leaves them empty.
func IsStatic(system domain.System, tier int) bool {
	if system.TierCount() == 8 {
		return tier <= 4
	}
	return true
}

// item is one drillable character: a base letter or a final form.
type item struct {
	glyph  string
	slug   string
	letter domain.LetterDefinition
}

func baseItem(letter domain.LetterDefinition) item {
	return item{glyph: letter.Glyph, slug: letter.Slug(), letter: letter}
}

func finalItem(letter domain.LetterDefinition) item {
	return item{glyph: letter.FinalGlyph, slug: letter.FinalSlug(), letter: letter}
}

// Build generates the level definition for one tier of one system.
func Build(letters []domain.LetterDefinition, system domain.System, tier int) (domain.LevelDefinition, error) {
	if !system.IsValid() {
		return domain.LevelDefinition{}, domain.ErrInvalidSystem
	}
	if tier < 1 || tier > system.TierCount() {
		return domain.LevelDefinition{}, ErrTierRange
	}

	level := domain.LevelDefinition{
		System: system,
		Tier:   tier,
		Label:  TierLabel(tier),
		Static: IsStatic(system, tier),
	}
	if !level.Static {
		return level, nil
	}

	items, includeReverse := tierItems(letters, system, tier)

	var specs []domain.CardSpec
	var err error
	if system.IsCipher() {
		specs, err = cipherCards(letters, items, system, includeReverse)
	} else {
		specs, err = valuationCards(letters, items, system)
	}
	if err != nil {
		return domain.LevelDefinition{}, err
	}

	level.Specs = specs
	return level, nil
}

// BuildAll generates every level of a system in tier order.
func BuildAll(letters []domain.LetterDefinition, system domain.System) ([]domain.LevelDefinition, error) {
	levels := make([]domain.LevelDefinition, 0, system.TierCount())
	for tier := 1; tier <= system.TierCount(); tier++ {
		level, err := Build(letters, system, tier)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}

// tierItems selects the characters covered by a static tier. The reported
// flag is whether tier 3 of a cipher system adds reverse cards.
func tierItems(letters []domain.LetterDefinition, system domain.System, tier int) ([]item, bool) {
	finals := func() []item {
		var out []item
		for _, letter := range letters {
			if letter.HasFinal() {
				out = append(out, finalItem(letter))
			}
		}
		return out
	}
	bases := func(from, to int) []item {
		var out []item
		for _, letter := range letters {
			if letter.Position >= from && letter.Position <= to {
				out = append(out, baseItem(letter))
			}
		}
		return out
	}

	switch system.TierCount() {
	case 8:
		switch tier {
		case 1:
			return bases(1, 9), false
		case 2:
			return bases(10, 18), false
		case 3:
			return bases(19, 22), false
		default: // tier 4, the finals
			return finals(), false
		}
	case 4:
		switch tier {
		case 1:
			return bases(1, 9), false
		case 2:
			return bases(10, 18), false
		case 3:
			return append(bases(19, 22), finals()...), false
		default: // tier 4 is cumulative
			return append(bases(1, 22), finals()...), false
		}
	default: // 3-tier cipher systems
		switch tier {
		case 1:
			return bases(1, 11), false
		case 2:
			return bases(12, 22), false
		default:
			return bases(1, 22), system == domain.SystemAvgad
		}
	}
}

// valuationCards yields the letter→value and value→letter pair for each item.
func valuationCards(
	letters []domain.LetterDefinition,
	items []item,
	system domain.System,
) ([]domain.CardSpec, error) {
	specs := make([]domain.CardSpec, 0, 2*len(items))
	for _, it := range items {
		value, err := gematria.Value(letters, it.glyph, system)
		if err != nil {
			return nil, err
		}
		answer := strconv.Itoa(value)
		specs = append(specs,
			domain.CardSpec{
				ID:     it.slug + "-to-val",
				Type:   domain.CardTypeLetterToValue,
				Prompt: it.glyph,
				Answer: answer,
			},
			domain.CardSpec{
				ID:     "val-to-" + it.slug,
				Type:   domain.CardTypeValueToLetter,
				Prompt: answer,
				Answer: it.glyph,
			},
		)
	}
	return specs, nil
}

// cipherCards yields one forward card per item, plus a reverse card when
// the cipher is not its own inverse.
func cipherCards(
	letters []domain.LetterDefinition,
	items []item,
	system domain.System,
	includeReverse bool,
) ([]domain.CardSpec, error) {
	specs := make([]domain.CardSpec, 0, len(items))
	for _, it := range items {
		answer, err := gematria.Substitute(letters, it.glyph, system, gematria.Forward)
		if err != nil {
			return nil, err
		}
		specs = append(specs, domain.CardSpec{
			ID:     "cipher-" + it.slug,
			Type:   domain.CardTypeCipherForward,
			Prompt: it.glyph,
			Answer: answer,
		})
		if includeReverse {
			reverse, err := gematria.Substitute(letters, it.glyph, system, gematria.Reverse)
			if err != nil {
				return nil, err
			}
			specs = append(specs, domain.CardSpec{
				ID:     "cipher-rev-" + it.slug,
				Type:   domain.CardTypeCipherReverse,
				Prompt: it.glyph,
				Answer: reverse,
			})
		}
	}
	return specs, nil
}
