package http

import "strings"

// Headers is a case-insensitive header table. Names are lowercased on
// every access; setting an existing name overwrites its value. There are
// no multi-value semantics.
type Headers map[string]string

func (headers Headers) Get(name string) string {
	return headers[strings.ToLower(name)]
}

func (headers Headers) Has(name string) bool {
	_, found := headers[strings.ToLower(name)]
	return found
}

func (headers Headers) Set(name, value string) {
	headers[strings.ToLower(name)] = value
}

func (headers Headers) Del(name string) {
	delete(headers, strings.ToLower(name))
}
