package crud

import "strconv"

// Intent is the CRUD operation a request maps to. The zero value means no
// intent matched; callers must check for it before dispatching.
type Intent int

const (
	IntentNone Intent = iota
	ReadAll
	ReadOne
	Create
	Update
	Delete
)

// AllIntents lists every real intent.
var AllIntents = []Intent{ReadAll, ReadOne, Create, Update, Delete}

func (i Intent) String() string {
	switch i {
	case ReadAll:
		return "READ_ALL"
	case ReadOne:
		return "READ_ONE"
	case Create:
		return "CREATE"
	case Update:
		return "UPDATE"
	case Delete:
		return "DELETE"
	}
	return "NONE"
}

// NeedsID reports whether the intent addresses a single entity.
func (i Intent) NeedsID() bool {
	return i == ReadOne || i == Update || i == Delete
}

// Match is the result of classifying one request. ResourceID is set exactly
// when Intent.NeedsID() is true.
type Match struct {
	Intent     Intent
	ResourceID string
}

// FormatResourceID coerces an identifier for the store. Identifiers that
// round-trip through base-10 integer parsing come back as int64; anything
// else, including zero-padded or signed-with-plus forms, stays a string.
func FormatResourceID(id string) any {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil && strconv.FormatInt(n, 10) == id {
		return n
	}
	return id
}
