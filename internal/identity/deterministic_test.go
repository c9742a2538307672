package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDIsDeterministic(t *testing.T) {
	first := ContentUUID("/books/dune")
	second := ContentUUID(" /books/dune ")
	if first == uuid.Nil {
		t.Fatalf("expected non-nil uuid")
	}
	if first != second {
		t.Fatalf("expected same uuid for trimmed keys, got %s and %s", first, second)
	}
	if first == ContentUUID("/books/arrakis") {
		t.Fatalf("expected different paths to yield different uuids")
	}
}

func TestUUIDEmptyKey(t *testing.T) {
	if got := UUID("   "); got != uuid.Nil {
		t.Fatalf("expected nil uuid for blank key, got %s", got)
	}
}

func TestSubmissionUUIDNormalisesEmail(t *testing.T) {
	a := SubmissionUUID("Reader@Example.com", 42)
	b := SubmissionUUID("reader@example.com", 42)
	if a != b {
		t.Fatalf("expected email case to be ignored")
	}
	if a == SubmissionUUID("reader@example.com", 43) {
		t.Fatalf("expected timestamp to be part of the key")
	}
}
