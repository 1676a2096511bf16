package domain

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSanitizeRoomIDStripsDisallowed(t *testing.T) {
	got, err := SanitizeRoomID("  my room!/#1  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "myroom1" {
		t.Fatalf("expected %q, got %q", "myroom1", got)
	}
}

func TestSanitizeRoomIDTruncates(t *testing.T) {
	raw := strings.Repeat(" a/b!c ", 5)
	got, err := SanitizeRoomID(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) > MaxRoomIDLen {
		t.Fatalf("sanitized id longer than %d: %q", MaxRoomIDLen, got)
	}
	if strings.ContainsAny(string(got), " /!") {
		t.Fatalf("disallowed characters survived: %q", got)
	}
}

func TestSanitizeRoomIDRejectsEmptyResult(t *testing.T) {
	for _, raw := range []string{"", "   ", "!!!///###", "  ?? "} {
		if _, err := SanitizeRoomID(raw); !errors.Is(err, ErrInvalidRoomID) {
			t.Fatalf("expected ErrInvalidRoomID for %q, got %v", raw, err)
		}
	}
}

func TestSanitizeRoomIDKeepsUnderscoreAndDash(t *testing.T) {
	got, err := SanitizeRoomID("camp_fire-7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "camp_fire-7" {
		t.Fatalf("expected %q, got %q", "camp_fire-7", got)
	}
}

func TestNormalizeName(t *testing.T) {
	if got := NormalizeName("   "); got != DefaultUserName {
		t.Fatalf("expected default name for blank input, got %q", got)
	}
	long := strings.Repeat("x", 100)
	if got := NormalizeName(long); len(got) != MaxUserNameLen {
		t.Fatalf("expected name truncated to %d, got %d", MaxUserNameLen, len(got))
	}
	if got := NormalizeName(" Naru "); got != "Naru" {
		t.Fatalf("expected trimmed name, got %q", got)
	}
}

func TestNormalizeNameMultibyteTruncation(t *testing.T) {
	long := strings.Repeat("é", 60)
	got := NormalizeName(long)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != MaxUserNameLen {
		t.Fatalf("expected %d runes, got %d", MaxUserNameLen, n)
	}
}
