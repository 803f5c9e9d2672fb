package client

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Query is an ordered set of query parameters. Keys keep the position of
// their first Add; absent values are never serialized.
type Query struct {
	params []param
}

type param struct {
	key   string
	value string
}

// NewQuery creates an empty query
func NewQuery() *Query {
	return &Query{}
}

// Ptr returns a pointer to v, for filling optional filter fields
func Ptr[T any](v T) *T {
	return &v
}

// Add sets key to value. nil values, including typed nil pointers, are skipped.
func (q *Query) Add(key string, value any) *Query {
	s, ok := formatValue(value)
	if !ok {
		return q
	}
	for i := range q.params {
		if q.params[i].key == key {
			q.params[i].value = s
			return q
		}
	}
	q.params = append(q.params, param{key: key, value: s})
	return q
}

// Get returns the serialized value of key
func (q *Query) Get(key string) (string, bool) {
	if q == nil {
		return "", false
	}
	for _, p := range q.params {
		if p.key == key {
			return p.value, true
		}
	}
	return "", false
}

// Len returns the number of parameters
func (q *Query) Len() int {
	if q == nil {
		return 0
	}
	return len(q.params)
}

// Clone returns an independent copy; cloning nil yields an empty query
func (q *Query) Clone() *Query {
	cp := &Query{}
	if q != nil {
		cp.params = append(cp.params, q.params...)
	}
	return cp
}

// Encode serializes the query as key=value pairs joined by &
func (q *Query) Encode() string {
	if q == nil {
		return ""
	}
	parts := make([]string, 0, len(q.params))
	for _, p := range q.params {
		parts = append(parts, url.QueryEscape(p.key)+"="+url.QueryEscape(p.value))
	}
	return strings.Join(parts, "&")
}

// withQuery appends q to path, leaving path untouched when q is empty
func withQuery(path string, q *Query) string {
	if q.Len() == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func formatValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		return formatValue(rv.Elem().Interface())
	}
	if s, ok := value.(fmt.Stringer); ok {
		return s.String(), true
	}
	return fmt.Sprint(value), true
}
