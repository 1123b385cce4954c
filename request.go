package crud

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Request is the transport-agnostic shape every raw request converges on.
// Body is set only for methods that semantically carry one; for everything
// else it is absent, not merely unread. Header is a clone, so handlers may
// mutate it freely.
type Request struct {
	Method string
	URL    string
	Body   []byte
	Header http.Header
}

// RawRequest is implemented once per transport. Each implementation builds
// the normalized form itself; nothing here inspects concrete types.
type RawRequest interface {
	Normalize() (*Request, error)
}

func hasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// StdRequest adapts a standard *http.Request.
type StdRequest struct {
	R *http.Request
}

func (r StdRequest) Normalize() (*Request, error) {

	out := &Request{
		Method: r.R.Method,
		URL:    r.R.URL.RequestURI(),
		Header: r.R.Header.Clone(),
	}

	if hasBody(r.R.Method) && r.R.Body != nil {
		b, err := io.ReadAll(r.R.Body)
		if err != nil {
			return nil, err
		}
		// Leave the stream readable for downstream binding.
		r.R.Body = io.NopCloser(bytes.NewReader(b))
		out.Body = b
	}

	return out, nil
}

// GinRequest adapts a *gin.Context.
type GinRequest struct {
	C *gin.Context
}

func (r GinRequest) Normalize() (*Request, error) {

	req := r.C.Request

	out := &Request{
		Method: req.Method,
		URL:    req.URL.RequestURI(),
		Header: req.Header.Clone(),
	}

	if hasBody(req.Method) && req.Body != nil {
		b, err := r.C.GetRawData()
		if err != nil {
			return nil, err
		}
		// Leave the stream readable for gin's own binding.
		req.Body = io.NopCloser(bytes.NewReader(b))
		out.Body = b
	}

	return out, nil
}
