package torcontactinfo_test

import (
	"testing"

	torcontactinfo "github.com/erans/go-torcontactinfo"
)

var specV2Fields = []string{
	"email", "url", "proof", "ciissversion", "pgp", "abuse", "keybase",
	"twitter", "mastodon", "matrix", "xmpp", "otr3", "hoster", "cost",
	"uplinkbw", "trafficacct", "memory", "cpu", "virtualization",
	"donationurl", "btc", "zec", "xmr", "offlinemasterkey",
	"signingkeylifetime", "sandbox", "os", "tls", "aesni", "autoupdate",
	"confmgmt", "dnslocation", "dnsqname", "dnssec", "dnslocalrootzone",
}

func TestDefaultRegistry_CoversSpecV2(t *testing.T) {
	reg := torcontactinfo.Default()
	for _, name := range specV2Fields {
		if _, ok := reg.Lookup(name); !ok {
			t.Errorf("missing field %q", name)
		}
	}
	if got, want := reg.Len(), len(specV2Fields); got != want {
		t.Fatalf("registry has %d fields, want %d", got, want)
	}
}

func TestDefaultRegistry_RuleShapes(t *testing.T) {
	reg := torcontactinfo.Default()

	url, _ := reg.Lookup("url")
	if url.Kind != torcontactinfo.KindBounded || url.MinLength != 4 || url.MaxLength != 399 {
		t.Fatalf("unexpected url rule: %+v", url)
	}
	proof, _ := reg.Lookup("proof")
	if proof.MinLength != 7 || proof.MaxLength != 7 {
		t.Fatalf("unexpected proof rule: %+v", proof)
	}
	for _, name := range []string{"email", "abuse", "xmpp"} {
		rule, _ := reg.Lookup(name)
		if rule.Kind != torcontactinfo.KindEmailLike {
			t.Errorf("field %q: kind = %v, want KindEmailLike", name, rule.Kind)
		}
	}
	mastodon, _ := reg.Lookup("mastodon")
	if mastodon.ValidChars != torcontactinfo.WildcardChars {
		t.Fatalf("mastodon should accept any characters, got %q", mastodon.ValidChars)
	}
}

func TestDefaultRegistry_UnknownName(t *testing.T) {
	if _, ok := torcontactinfo.Default().Lookup("nosuchfield"); ok {
		t.Fatalf("unknown name must not resolve")
	}
}

func TestBounded_InvertedBounds(t *testing.T) {
	if _, err := torcontactinfo.Bounded(5, 4, torcontactinfo.WildcardChars); err == nil {
		t.Fatalf("expected error for min > max")
	}
}

func TestBounded_BadPattern(t *testing.T) {
	if _, err := torcontactinfo.Bounded(0, 1, "[unclosed"); err == nil {
		t.Fatalf("expected error for invalid character class")
	}
}
