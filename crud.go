package crud

// crud serves arbitrary REST resources through one generic handler. Requests
// are classified into CRUD intents, filtered through an exposure policy, and
// run through a middleware pipeline that ends at a store.

import "net/http"

type H map[string]any

var (
	BR  = http.StatusBadRequest
	ISR = http.StatusInternalServerError
)

// Response is the terminal output of a pipeline run: the HTTP status code
// and JSON body that the transport should send.
type Response struct {
	Code int // HTTP status code
	Obj  any // JSON response data
}
