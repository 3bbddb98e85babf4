package domain

// System identifies one of the seven gematria systems the engine drills.
type System string

// The four valuation systems and three substitution ciphers.
const (
	SystemHechrachi System = "hechrachi"
	SystemGadol     System = "gadol"
	SystemKatan     System = "katan"
	SystemSiduri    System = "siduri"
	SystemAtbash    System = "atbash"
	SystemAlbam     System = "albam"
	SystemAvgad     System = "avgad"
)

// Systems lists every known system in canonical order.
func Systems() []System {
	return []System{
		SystemHechrachi,
		SystemGadol,
		SystemKatan,
		SystemSiduri,
		SystemAtbash,
		SystemAlbam,
		SystemAvgad,
	}
}

// IsValid reports whether s is one of the seven known systems.
func (s System) IsValid() bool {
	switch s {
	case SystemHechrachi, SystemGadol, SystemKatan, SystemSiduri,
		SystemAtbash, SystemAlbam, SystemAvgad:
		return true
	default:
		return false
	}
}

// IsCipher reports whether s is a substitution cipher rather than a
// valuation system.
func (s System) IsCipher() bool {
	switch s {
	case SystemAtbash, SystemAlbam, SystemAvgad:
		return true
	default:
		return false
	}
}

// ParseSystem converts a raw string into a System, returning
// ErrInvalidSystem for anything unknown.
func ParseSystem(raw string) (System, error) {
	s := System(raw)
	if !s.IsValid() {
		return "", ErrInvalidSystem
	}
	return s, nil
}
