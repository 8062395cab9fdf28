package assessment

import (
	"testing"
	"time"
)

func TestTimestampLayoutKeepsLexicalOrder(t *testing.T) {
	// One fraction is a prefix of the other; a trimming layout would make
	// the older value sort after the newer one.
	older := time.Date(2026, 8, 30, 10, 0, 0, 100000000, time.UTC)
	newer := time.Date(2026, 8, 30, 10, 0, 0, 120000000, time.UTC)

	a := older.Format(timestampLayout)
	b := newer.Format(timestampLayout)

	if len(a) != len(b) {
		t.Fatalf("timestamps are not fixed width: %q vs %q", a, b)
	}
	if a >= b {
		t.Fatalf("lexical order diverges from chronological: %q >= %q", a, b)
	}

	parsed, err := time.Parse(time.RFC3339Nano, a)
	if err != nil {
		t.Fatalf("formatted timestamp is not RFC 3339: %v", err)
	}
	if !parsed.Equal(older) {
		t.Fatalf("round trip = %v, want %v", parsed, older)
	}
}
