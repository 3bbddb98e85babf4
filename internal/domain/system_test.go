package domain

import "testing"

func TestParseSystem(t *testing.T) {
	t.Parallel()

	for _, s := range Systems() {
		parsed, err := ParseSystem(string(s))
		if err != nil {
			t.Errorf("ParseSystem(%q) returned error: %v", s, err)
		}
		if parsed != s {
			t.Errorf("ParseSystem(%q) = %q", s, parsed)
		}
	}

	if _, err := ParseSystem("notarikon"); err != ErrInvalidSystem {
		t.Errorf("Expected ErrInvalidSystem for unknown system, got %v", err)
	}
	if _, err := ParseSystem(""); err != ErrInvalidSystem {
		t.Errorf("Expected ErrInvalidSystem for empty system, got %v", err)
	}
}

func TestSystemTierCount(t *testing.T) {
	t.Parallel()

	expected := map[System]int{
		SystemHechrachi: 8,
		SystemGadol:     8,
		SystemKatan:     4,
		SystemSiduri:    4,
		SystemAtbash:    3,
		SystemAlbam:     3,
		SystemAvgad:     3,
	}

	for system, count := range expected {
		if got := system.TierCount(); got != count {
			t.Errorf("%s.TierCount() = %d, want %d", system, got, count)
		}
	}

	if got := System("unknown").TierCount(); got != 0 {
		t.Errorf("unknown system TierCount() = %d, want 0", got)
	}
}

func TestSystemIsCipher(t *testing.T) {
	t.Parallel()

	ciphers := map[System]bool{
		SystemHechrachi: false,
		SystemGadol:     false,
		SystemKatan:     false,
		SystemSiduri:    false,
		SystemAtbash:    true,
		SystemAlbam:     true,
		SystemAvgad:     true,
	}

	for system, want := range ciphers {
		if got := system.IsCipher(); got != want {
			t.Errorf("%s.IsCipher() = %v, want %v", system, got, want)
		}
	}
}
