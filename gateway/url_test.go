package gateway

import "testing"

func TestResolveURL_JoinsBaseAndPath(t *testing.T) {
	got, err := ResolveURL("https://api.test", "/users")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://api.test/users" {
		t.Errorf("expected https://api.test/users, got %s", got)
	}
}

func TestResolveURL_AbsolutePathWins(t *testing.T) {
	got, err := ResolveURL("https://other.test", "https://api.test/users")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://api.test/users" {
		t.Errorf("expected https://api.test/users, got %s", got)
	}

	got, err = ResolveURL("", "https://api.test/users")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://api.test/users" {
		t.Errorf("expected https://api.test/users, got %s", got)
	}
}

func TestResolveURL_NeitherAbsolute(t *testing.T) {
	_, err := ResolveURL("", "/users")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsConfiguration(err) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestResolveURL_NoSlashNormalization(t *testing.T) {
	// Concatenation is verbatim; a doubled slash is the caller's to own.
	got, err := ResolveURL("https://api.test/", "/users")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://api.test//users" {
		t.Errorf("expected verbatim concatenation, got %s", got)
	}
}
