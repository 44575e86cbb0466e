package core

import "strings"

// Header names exchanged with the API.
const (
	HeaderAPIKey = "X-MBX-APIKEY"
)

// Request describes one HTTP call whose URL, query included, is already final.
type Request struct {
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
}

// NewRequest creates a request for an absolute URL.
func NewRequest(method, url string) *Request {
	return &Request{
		Method:  method,
		URL:     url,
		Headers: make(map[string]string),
	}
}

// SetHeader sets a request header and returns the request for chaining.
func (r *Request) SetHeader(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
	return r
}

// Path returns the URL without its query string.
func (r *Request) Path() string {
	return StripQuery(r.URL)
}

// StripQuery drops everything from the first '?' so signed URLs can be logged.
func StripQuery(url string) string {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		return url[:i]
	}
	return url
}
