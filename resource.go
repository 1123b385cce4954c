package crud

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Exchange is the shared pipeline context for one request handled by a
// Resource. Handlers may read and write every field; it lives for exactly
// one run and is never shared across runs.
type Exchange struct {
	C        *gin.Context
	Resource *Resource
	Req      *Request
	Match    Match
	Query    *ListQuery
	Body     any       // decoded request body, set by BindBody
	Out      *Response // the response to send; the dispatch handler fills it
}

// body returns the decoded request body, preferring whatever an earlier
// BindBody handler already produced.
func (x *Exchange) body() (any, error) {

	if x.Body != nil {
		return x.Body, nil
	}

	if len(x.Req.Body) == 0 {
		return nil, errors.New("empty body")
	}

	var doc H
	if err := json.Unmarshal(x.Req.Body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Resource configures one generic CRUD endpoint.
type Resource struct {
	Name    string
	Only    []Intent // non-nil replaces the posture baseline, even when empty
	Exclude []Intent // always removed last
	Posture Posture
	PerPage int64 // default page size when a paginated read has no limit
	Store   Store
	Pipe    []Handler[*Exchange] // run before the dispatch handler
	Logger  Logger
}

// Handler returns the gin handler that serves every route of the resource.
// The accessible-intent set is computed here, once, not per request.
func (r *Resource) Handler() gin.HandlerFunc {

	accessible := AccessibleRoutes(r.Only, r.Exclude, r.Posture)

	return func(c *gin.Context) {

		req, err := GinRequest{C: c}.Normalize()
		if err != nil {
			c.JSON(BR, H{"error": err.Error()})
			return
		}

		m, err := Classify(req.Method, req.URL, r.Name)
		if err != nil {
			// Misconfigured mount; never a client problem.
			if r.Logger != nil {
				r.Logger.LogMessage(err.Error())
			}
			c.JSON(ISR, H{"error": "misconfigured resource"})
			return
		}

		if m.Intent == IntentNone {
			c.JSON(http.StatusNotFound, H{"error": "not found"})
			return
		}
		if !accessible.Has(m.Intent) {
			c.JSON(http.StatusMethodNotAllowed, H{"error": "method not allowed"})
			return
		}

		x := &Exchange{
			C:        c,
			Resource: r,
			Req:      req,
			Match:    m,
			Query:    parseListQuery(c),
		}

		handlers := append(append([]Handler[*Exchange]{}, r.Pipe...), dispatch)

		if err := Run(x, handlers, r.Logger); err != nil {
			var pageErr *InvalidPageError
			switch {
			case errors.Is(err, ErrNotFound):
				c.JSON(http.StatusNotFound, H{"error": "not found"})
			case errors.As(err, &pageErr):
				c.JSON(BR, H{"error": err.Error()})
			default:
				c.JSON(ISR, H{"error": err.Error()})
			}
			return
		}

		if x.Out != nil {
			if x.Out.Obj == nil {
				c.Status(x.Out.Code)
				return
			}
			c.JSON(x.Out.Code, x.Out.Obj)
		}
	}
}

// dispatch is the terminal pipeline handler: it executes the classified
// intent against the resource's store and fills in the response.
func dispatch(x *Exchange, next Next) error {

	r := x.Resource
	ctx := x.C.Request.Context()

	switch x.Match.Intent {

	case ReadAll:
		p, err := ResolvePagination(x.Query, r.PerPage)
		if err != nil {
			return err
		}
		if p != nil {
			p.Apply(x.Query)
		}
		docs, err := r.Store.FindAll(ctx, x.Query)
		if err != nil {
			return err
		}
		x.Out = &Response{Code: http.StatusOK, Obj: docs}

	case ReadOne:
		doc, err := r.Store.FindOne(ctx, FormatResourceID(x.Match.ResourceID))
		if err != nil {
			return err
		}
		x.Out = &Response{Code: http.StatusOK, Obj: doc}

	case Create:
		doc, err := x.body()
		if err != nil {
			x.Out = &Response{Code: BR, Obj: H{"error": "invalid request: " + err.Error()}}
			return nil
		}
		id, err := r.Store.Insert(ctx, doc)
		if err != nil {
			return err
		}
		x.Out = &Response{Code: http.StatusCreated, Obj: H{"id": id}}

	case Update:
		doc, err := x.body()
		if err != nil {
			x.Out = &Response{Code: BR, Obj: H{"error": "invalid request: " + err.Error()}}
			return nil
		}
		if err = r.Store.Update(ctx, FormatResourceID(x.Match.ResourceID), doc); err != nil {
			return err
		}
		x.Out = &Response{Code: http.StatusOK, Obj: H{"updated": true}}

	case Delete:
		if err := r.Store.Delete(ctx, FormatResourceID(x.Match.ResourceID)); err != nil {
			return err
		}
		x.Out = &Response{Code: http.StatusNoContent}
	}

	return next()
}

// parseListQuery is transport glue: the core only ever sees the parsed
// values. Unparsable numbers are treated as not sent.
func parseListQuery(c *gin.Context) *ListQuery {

	q := &ListQuery{}

	if v, ok := c.GetQuery("page"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			q.Page = &n
		}
	}
	if v, ok := c.GetQuery("limit"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			q.Limit = &n
		}
	}

	return q
}

// Registry maps resource names to their configurations. The table is built
// once at setup, so serving a request never constructs patterns.
type Registry struct {
	resources map[string]*Resource
}

func NewRegistry() *Registry {
	return &Registry{resources: map[string]*Resource{}}
}

func (reg *Registry) Add(r *Resource) error {

	if r == nil || r.Name == "" {
		return errors.New("crud: resource name is required")
	}
	if _, ok := reg.resources[r.Name]; ok {
		return fmt.Errorf("crud: duplicate resource %q", r.Name)
	}

	reg.resources[r.Name] = r
	return nil
}

func (reg *Registry) Lookup(name string) (*Resource, bool) {
	r, ok := reg.resources[name]
	return r, ok
}

// Mount registers the collection and entity routes for every resource under
// prefix, e.g. reg.Mount(engine, "/api").
func (reg *Registry) Mount(engine *gin.Engine, prefix string) {
	for _, r := range reg.resources {
		AddResource(engine, prefix, r)
	}
}

// AddResource registers one resource's routes on the engine.
func AddResource(engine *gin.Engine, prefix string, r *Resource) {
	h := r.Handler()
	engine.Any(prefix+"/"+r.Name, h)
	engine.Any(prefix+"/"+r.Name+"/:id", h)
}
