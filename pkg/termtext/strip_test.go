package termtext

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "plain text", "plain text"},
		{"sgr", "\x1b[31mred text\x1b[0m", "red text"},
		{"sgr multi param", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"sgr bare reset", "a\x1b[mb", "ab"},
		{"osc8 st", "\x1b]8;;https://example.com\x1b\\link\x1b]8;;\x1b\\", "link"},
		{"osc8 bel", "\x1b]8;;https://example.com\x07link\x1b]8;;\x07", "link"},
		{"osc8 params", "\x1b]8;id=1;https://example.com\x1b\\link\x1b]8;;\x1b\\", "link"},
		{"only escapes", "\x1b[1m\x1b[0m\x1b]8;;\x1b\\", ""},
		{"cursor move kept", "a\x1b[2Kb", "a\x1b[2Kb"},
		{"osc title kept", "\x1b]0;title\x07x", "\x1b]0;title\x07x"},
		{"nested sgr", "\x1b[\x1b[0m31mx", "x"},
		{"cjk", "\x1b[31m红色\x1b[0m", "红色"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripANSI_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"hello",
		"\x1b[31mred\x1b[0m",
		"\x1b[\x1b[0m31mx",
		"\x1b]8;;u\x1b\\\x1b]8;;\x1b\\t",
		"a\x1b[2Kb\x1b[1mc",
		"\x1b",
		"\x1b[",
	}
	for _, input := range inputs {
		once := StripANSI(input)
		if twice := StripANSI(once); twice != once {
			t.Errorf("StripANSI not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestStripANSI_MatchesAnsiStripForSGR(t *testing.T) {
	inputs := []string{
		"\x1b[31mred\x1b[0m plain",
		"\x1b[1;4;38;5;141mstyled\x1b[m",
		"中\x1b[32m文\x1b[0m",
	}
	for _, input := range inputs {
		if got, want := StripANSI(input), ansi.Strip(input); got != want {
			t.Errorf("StripANSI(%q) = %q, ansi.Strip = %q", input, got, want)
		}
	}
}

func TestEscapeSpans(t *testing.T) {
	s := "a\x1b[1mb\x1b]8;;u\x1b\\c"
	spans := EscapeSpans(s)
	if len(spans) != 2 {
		t.Fatalf("Expected 2 spans, got %d", len(spans))
	}
	if got := s[spans[0][0]:spans[0][1]]; got != "\x1b[1m" {
		t.Errorf("Unexpected first span %q", got)
	}
	if got := s[spans[1][0]:spans[1][1]]; got != "\x1b]8;;u\x1b\\" {
		t.Errorf("Unexpected second span %q", got)
	}
	if EscapeSpans("plain") != nil {
		t.Error("Expected no spans for plain text")
	}
}

func TestEscapeSpans_Nested(t *testing.T) {
	s := "\x1b[\x1b[0m31mred"
	spans := EscapeSpans(s)
	if len(spans) != 1 || spans[0][0] != 0 || spans[0][1] != len(s)-3 {
		t.Fatalf("Expected one span covering the rebuilt sequence, got %v", spans)
	}
}

func TestEscapeSpans_CoverStrippedBytes(t *testing.T) {
	inputs := []string{
		"plain",
		"\x1b[31mred\x1b[0m plain",
		"\x1b[1m\x1b[31madjacent",
		"\x1b[\x1b[0m31mnested\x1b[\x1b[\x1b[0mmm",
		"\x1b]8;;https://example.com\x07link\x1b]8;;\x07",
		"\x1b[2Jclear stays",
		"中\x1b[\x1b[32m1m文",
	}
	for _, input := range inputs {
		var kept strings.Builder
		last := 0
		for _, span := range EscapeSpans(input) {
			kept.WriteString(input[last:span[0]])
			last = span[1]
		}
		kept.WriteString(input[last:])
		if got, want := kept.String(), StripANSI(input); got != want {
			t.Errorf("input %q: text outside spans = %q, StripANSI = %q", input, got, want)
		}
	}
}
