// Package torcontactinfo parses the ContactInfo string published by Tor relay
// operators according to the ContactInfo Information Sharing Specification
// (CIISS) v2.
//
// It provides:
//
//   - Schema-driven field validation via an immutable Registry of FieldRule entries
//   - A stable error model via Issues (field name, code, message)
//   - An insertion-ordered Result that distinguishes declared-but-invalid fields
//     from fields that were never present
//   - Optional YAML rule-table overrides ahead of future spec revisions
//
// Design policy:
//   - Keep only public APIs in the root package; the directory-service client
//     lives under onionoo/, and the CLI under cmd/torcontact.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	res, err := torcontactinfo.Parse("Mr. Example ciissversion:2 email:me[]example.com")
//	v, _ := res.Get("email") // v.Text == "me@example.com"
package torcontactinfo
