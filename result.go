package torcontactinfo

import (
	"bytes"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// Value holds one parsed field value. Valid is false when the field appeared
// in the input but its value failed validation ("declared but invalid"); the
// field key itself stays in the Result either way.
type Value struct {
	Text  string
	Valid bool
}

// Result is the mapping produced by a parse. Iteration order is the order in
// which fields were first encountered; later occurrences of a field are
// discarded, never merged or re-evaluated.
type Result struct {
	names  []string
	values map[string]Value
}

func newResult() *Result {
	return &Result{values: make(map[string]Value)}
}

// set records the first occurrence of a field. Callers must check Has first.
func (r *Result) set(name string, v Value) {
	r.names = append(r.names, name)
	r.values[name] = v
}

// Len returns the number of fields recorded.
func (r *Result) Len() int { return len(r.names) }

// Has reports whether the field was recorded, valid or not.
func (r *Result) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Get returns the recorded value for a field and whether it was recorded.
func (r *Result) Get(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Text returns the normalized text of a field, with ok reporting that the
// field was recorded with a valid value.
func (r *Result) Text(name string) (string, bool) {
	v, ok := r.values[name]
	if !ok || !v.Valid {
		return "", false
	}
	return v.Text, true
}

// Names returns the field names in first-encounter order.
func (r *Result) Names() []string {
	return append([]string(nil), r.names...)
}

// MarshalJSON renders the result as a JSON object in first-encounter order,
// with null for declared-but-invalid fields.
func (r *Result) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		v := r.values[name]
		if !v.Valid {
			b.WriteString("null")
			continue
		}
		val, err := json.Marshal(v.Text)
		if err != nil {
			return nil, err
		}
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// DictString renders the result in the Python-dict style the reference tool
// prints for human inspection, e.g. {'email': 'me@example.com', 'pgp': None}.
func (r *Result) DictString() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "'%s': ", name)
		v := r.values[name]
		if !v.Valid {
			b.WriteString("None")
			continue
		}
		b.WriteByte('\'')
		b.WriteString(strings.ReplaceAll(v.Text, "'", `\'`))
		b.WriteByte('\'')
	}
	b.WriteByte('}')
	return b.String()
}

// String implements fmt.Stringer via DictString.
func (r *Result) String() string { return r.DictString() }
