package crud

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RequestID tags the response with a fresh request id.
func RequestID() Handler[*Exchange] {
	return func(x *Exchange, next Next) error {
		x.C.Writer.Header().Set("X-Request-Id", uuid.NewString())
		return next()
	}
}

// AccessLog writes one line per request to lgr, after the rest of the
// pipeline has finished.
func AccessLog(lgr Logger) Handler[*Exchange] {
	return func(x *Exchange, next Next) error {
		t := time.Now()
		err := next()
		if lgr != nil {
			lgr.LogMessage(x.Req.Method + " " + x.Req.URL + " [" + x.Match.Intent.String() + "] " + time.Since(t).String())
		}
		return err
	}
}

// BindBody decodes the normalized body into a fresh value from factory and
// leaves it on the exchange for the dispatch handler. factory must return a
// pointer. Decode failure sends 400 and ends the run early. Intents without
// a body pass through.
func BindBody(factory func() any) Handler[*Exchange] {
	return func(x *Exchange, next Next) error {

		if x.Match.Intent != Create && x.Match.Intent != Update {
			return next()
		}

		doc := factory()
		if err := json.Unmarshal(x.Req.Body, doc); err != nil {
			x.Out = &Response{Code: BR, Obj: H{"error": "invalid request: " + err.Error()}}
			return nil
		}

		x.Body = doc
		return next()
	}
}
