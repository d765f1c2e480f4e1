package styles

import (
	"strings"
	"testing"

	"github.com/bluestero/ythandle/internal/auditlog"

	"github.com/charmbracelet/x/ansi"
)

func TestOutcomeIndicator(t *testing.T) {
	for _, outcome := range auditlog.Outcomes {
		got := ansi.Strip(OutcomeIndicator(outcome))
		if want := "● " + outcome; got != want {
			t.Errorf("OutcomeIndicator(%q) = %q, want %q", outcome, got, want)
		}
	}
}

func TestOutcomeStyle_DistinguishesOutcomes(t *testing.T) {
	matched := OutcomeStyle(auditlog.OutcomeMatched).GetForeground()
	noMatch := OutcomeStyle(auditlog.OutcomeNoMatch).GetForeground()
	failed := OutcomeStyle(auditlog.OutcomeError).GetForeground()
	unknown := OutcomeStyle("other").GetForeground()

	if matched == noMatch || noMatch == failed || matched == failed {
		t.Errorf("expected distinct colors, got matched=%v no_match=%v error=%v", matched, noMatch, failed)
	}
	if unknown != Gray {
		t.Errorf("unknown outcome color = %v, want %v", unknown, Gray)
	}
}

func TestFormatKeyBinding(t *testing.T) {
	got := ansi.Strip(FormatKeyBinding("esc", "cancel"))
	if !strings.Contains(got, "esc cancel") {
		t.Errorf("FormatKeyBinding = %q", got)
	}
}
