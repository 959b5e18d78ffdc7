package hledgerprices

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	err := E(KindFormat, "bad line", nil)
	if KindOf(err) != KindFormat {
		t.Errorf("KindOf() = %v, want format", KindOf(err))
	}

	wrapped := fmt.Errorf("while reading: %w", err)
	if KindOf(wrapped) != KindFormat {
		t.Errorf("KindOf(wrapped) = %v, want format", KindOf(wrapped))
	}

	if KindOf(errors.New("plain")) != KindInternal {
		t.Errorf("KindOf(plain error) = %v, want internal", KindOf(errors.New("plain")))
	}
}

func TestErrorMessage(t *testing.T) {
	cause := errors.New("permission denied")
	err := E(KindFile, `cannot open journal file "prices.journal"`, cause)
	if got := err.Error(); got != `cannot open journal file "prices.journal": permission denied` {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() does not see the cause through Unwrap")
	}

	bare := E(KindConfig, "no API key", nil)
	if bare.Error() != "no API key" {
		t.Errorf("Error() = %q, want %q", bare.Error(), "no API key")
	}
}
