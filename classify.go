package crud

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// InvalidResourceError reports a request whose path does not contain the
// configured resource name. It means a handler was bound to a path it can
// never serve, so it should surface at setup time, not be caught per
// request.
type InvalidResourceError struct {
	Resource string
	Path     string
}

func (e *InvalidResourceError) Error() string {
	return fmt.Sprintf("crud: resource %q does not appear in path %q", e.Resource, e.Path)
}

// Classify maps an HTTP method and URL onto a CRUD intent for the named
// resource. The query string is stripped before matching. Two patterns are
// tried against the path: the collection pattern, where the resource is the
// final segment, and the entity pattern, where the resource is followed by
// exactly one more segment, the URL-decoded id.
//
// GET tries the entity pattern first. If it fails, the request is a
// collection read without re-checking the collection pattern: the
// path-contains-resource precondition already guarantees the match.
//
// A request that matches neither pattern for its method yields IntentNone,
// which is a normal value, not an error.
func Classify(method string, rawURL string, resource string) (Match, error) {

	path := rawURL
	if i := strings.IndexByte(path, '?'); i != -1 {
		path = path[:i]
	}

	segs := splitPath(path)
	if !containsSegment(segs, resource) {
		return Match{}, &InvalidResourceError{Resource: resource, Path: path}
	}

	last := len(segs) - 1
	collection := segs[last] == resource
	entity := last >= 1 && segs[last-1] == resource

	id := ""
	if entity {
		id = decodeSegment(segs[last])
	}

	switch method {

	case http.MethodGet:
		if entity {
			return Match{Intent: ReadOne, ResourceID: id}, nil
		}
		return Match{Intent: ReadAll}, nil

	case http.MethodPost:
		if collection {
			return Match{Intent: Create}, nil
		}

	case http.MethodPut, http.MethodPatch:
		if entity {
			return Match{Intent: Update, ResourceID: id}, nil
		}

	case http.MethodDelete:
		if entity {
			return Match{Intent: Delete, ResourceID: id}, nil
		}
	}

	return Match{}, nil
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func containsSegment(segs []string, s string) bool {
	for _, seg := range segs {
		if seg == s {
			return true
		}
	}
	return false
}

// decodeSegment unescapes an id segment. An undecodable segment is used
// raw; rejecting an opaque identifier is the store's call, not the
// classifier's.
func decodeSegment(s string) string {
	d, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return d
}
