package snake

import (
	"errors"
	"testing"

	"github.com/manifoldco/promptui"
)

func TestValidate(t *testing.T) {
	if err := validate("  "); err == nil {
		t.Fatalf("expected blank input to be invalid")
	}
	if err := validate("Shirt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLabel(t *testing.T) {
	if got := label(nil); got != "Add an item" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := label([]string{"Shirt", "Sock"}); got != "Add another (Shirt, Sock)" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestAbort(t *testing.T) {
	if !errors.Is(abort(promptui.ErrInterrupt), ErrAborted) {
		t.Fatalf("interrupt should map to ErrAborted")
	}
	other := errors.New("boom")
	if !errors.Is(abort(other), other) {
		t.Fatalf("other errors pass through")
	}
}
