package torcontactinfo_test

import (
	"testing"

	torcontactinfo "github.com/erans/go-torcontactinfo"
)

func TestTokenize_SplitsOnFirstColonOnly(t *testing.T) {
	toks := torcontactinfo.Tokenize("url:https://www.example.com")
	if len(toks) != 1 {
		t.Fatalf("expected 1 token, got %d", len(toks))
	}
	if toks[0].Name != "url" || toks[0].Raw != "https://www.example.com" {
		t.Fatalf("unexpected token: %+v", toks[0])
	}
}

func TestTokenize_DropsColonlessWords(t *testing.T) {
	toks := torcontactinfo.Tokenize("Mr. Example email:me[]example.com url:example.com")
	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %+v", len(toks), toks)
	}
	if toks[0].Name != "email" || toks[1].Name != "url" {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
}

func TestTokenize_ConsecutiveSpaces(t *testing.T) {
	toks := torcontactinfo.Tokenize("a:1   b:2")
	if len(toks) != 2 {
		t.Fatalf("expected the empty intermediate words to be dropped, got %d tokens", len(toks))
	}
}

func TestTokenize_EmptyValue(t *testing.T) {
	toks := torcontactinfo.Tokenize("proof:")
	if len(toks) != 1 {
		t.Fatalf("expected 1 token, got %d", len(toks))
	}
	if toks[0].Name != "proof" || toks[0].Raw != "" {
		t.Fatalf("expected empty Raw, got %+v", toks[0])
	}
}

func TestTokenize_EmptyName(t *testing.T) {
	toks := torcontactinfo.Tokenize(":orphan")
	if len(toks) != 1 || toks[0].Name != "" || toks[0].Raw != "orphan" {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
}

func TestTokenize_EmptyLine(t *testing.T) {
	if toks := torcontactinfo.Tokenize(""); len(toks) != 0 {
		t.Fatalf("expected no tokens, got %+v", toks)
	}
}
