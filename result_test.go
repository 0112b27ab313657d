package torcontactinfo_test

import (
	"testing"

	json "github.com/goccy/go-json"
)

func TestResult_MarshalJSON(t *testing.T) {
	res := mustParse(t, "ciissversion:2 url:example.com pgp:short")
	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"ciissversion":"2","url":"example.com","pgp":null}`
	if string(b) != want {
		t.Fatalf("json = %s, want %s", b, want)
	}
}

func TestResult_MarshalJSON_Escaping(t *testing.T) {
	res := mustParse(t, `ciissversion:2 mastodon:@a"b@example.social`)
	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var round map[string]*string
	if err := json.Unmarshal(b, &round); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, b)
	}
	if got := round["mastodon"]; got == nil || *got != `@a"b@example.social` {
		t.Fatalf("mastodon round-tripped to %v", got)
	}
}

func TestResult_DictString(t *testing.T) {
	res := mustParse(t, "ciissversion:2 url:example.com pgp:short")
	want := `{'ciissversion': '2', 'url': 'example.com', 'pgp': None}`
	if got := res.DictString(); got != want {
		t.Fatalf("dict = %s, want %s", got, want)
	}
}

func TestResult_EmptyMappings(t *testing.T) {
	res := mustParse(t, "ciissversion:2")
	if res.Len() != 1 {
		t.Fatalf("expected only the version field, got %v", res.Names())
	}
	if _, ok := res.Get("email"); ok {
		t.Fatalf("absent field must not be recorded")
	}
}
