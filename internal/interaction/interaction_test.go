// Where: internal/interaction/interaction_test.go
// What: Tests for the confirmation prompt.
// Why: The gate must default to deny on every non-affirmative input.
package interaction

import (
	"bytes"
	"strings"
	"testing"
)

func TestPromptYesNoAffirmative(t *testing.T) {
	for _, input := range []string{"y\n", "Y\n", "yes\n", "YES\n", " y \n"} {
		var out bytes.Buffer
		ok, err := PromptYesNoWithIO(strings.NewReader(input), &out, "Continue?")
		if err != nil {
			t.Fatalf("input %q: unexpected error %v", input, err)
		}
		if !ok {
			t.Fatalf("input %q: expected yes", input)
		}
	}
}

func TestPromptYesNoDeniesEverythingElse(t *testing.T) {
	for _, input := range []string{"n\n", "no\n", "\n", "maybe\n", "yep\n", ""} {
		var out bytes.Buffer
		ok, err := PromptYesNoWithIO(strings.NewReader(input), &out, "Continue?")
		if err != nil {
			t.Fatalf("input %q: unexpected error %v", input, err)
		}
		if ok {
			t.Fatalf("input %q: expected no", input)
		}
	}
}

func TestPromptYesNoWritesPrompt(t *testing.T) {
	var out bytes.Buffer
	if _, err := PromptYesNoWithIO(strings.NewReader("n\n"), &out, "Drop everything?"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := out.String(); got != "Drop everything? [y/N]: " {
		t.Fatalf("prompt = %q", got)
	}
}
