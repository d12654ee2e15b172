package nws

import "github.com/tidwall/gjson"

// Response is the outcome of a Fetch: either a parsed JSON object or the
// error that prevented one. Callers must check OK before reading.
type Response struct {
	doc gjson.Result
	err error
}

// OK reports whether the request produced a JSON object.
func (r Response) OK() bool {
	return r.err == nil && r.doc.IsObject()
}

// Err returns the failure, or nil on success.
func (r Response) Err() error {
	return r.err
}

// Empty reports whether the document is an object with no keys. A failed
// response is also empty.
func (r Response) Empty() bool {
	if !r.OK() {
		return true
	}

	empty := true
	r.doc.ForEach(func(_, _ gjson.Result) bool {
		empty = false
		return false
	})

	return empty
}

// Get returns the value at a dotted gjson path.
func (r Response) Get(path string) gjson.Result {
	return r.doc.Get(path)
}

// Has reports whether path resolves to a value, null included.
func (r Response) Has(path string) bool {
	return r.doc.Get(path).Exists()
}
