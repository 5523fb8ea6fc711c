package utils

import (
	"testing"
	"time"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	tok, err := NewSessionToken("secret", "alice", 30)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	if tok.Token == "" {
		t.Fatal("empty token")
	}
	if until := time.Until(tok.Exp); until < 29*time.Minute || until > 31*time.Minute {
		t.Errorf("expiry %v not ~30m out", tok.Exp)
	}
	sub, err := ParseSessionToken("secret", tok.Token)
	if err != nil {
		t.Fatalf("ParseSessionToken: %v", err)
	}
	if sub != "alice" {
		t.Errorf("subject = %q, want alice", sub)
	}
}

func TestParseSessionTokenRejectsWrongSecret(t *testing.T) {
	tok, err := NewSessionToken("secret", "alice", 30)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	if _, err := ParseSessionToken("other", tok.Token); err != ErrSessionToken {
		t.Errorf("err = %v, want ErrSessionToken", err)
	}
	if _, err := ParseSessionToken("secret", "not-a-jwt"); err != ErrSessionToken {
		t.Errorf("garbage token err = %v, want ErrSessionToken", err)
	}
}

func TestHashSessionRawStable(t *testing.T) {
	a, b := HashSessionRaw("tok"), HashSessionRaw("tok")
	if a != b {
		t.Error("hash not deterministic")
	}
	if len(a) != 64 {
		t.Errorf("hash length %d, want 64 hex chars", len(a))
	}
	if HashSessionRaw("tok2") == a {
		t.Error("different tokens hash equal")
	}
}
