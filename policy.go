package crud

// Posture is the exposure baseline for a resource before the allow and deny
// lists are applied.
type Posture string

const (
	PostureAll  Posture = "all"
	PostureNone Posture = "none"
)

// IntentSet is the set of intents a resource actually exposes.
type IntentSet map[Intent]bool

func (s IntentSet) Has(i Intent) bool { return s[i] }

// AccessibleRoutes computes the intents a resource exposes. The baseline is
// every intent for PostureAll and nothing otherwise. A non-nil only list
// replaces the baseline entirely, even when empty. The exclude list is
// removed last, whatever the baseline was.
//
// The result is typically computed once per resource configuration, not per
// request.
func AccessibleRoutes(only []Intent, exclude []Intent, posture Posture) IntentSet {

	s := IntentSet{}
	if posture == PostureAll {
		for _, i := range AllIntents {
			s[i] = true
		}
	}

	if only != nil {
		s = IntentSet{}
		for _, i := range only {
			s[i] = true
		}
	}

	for _, i := range exclude {
		delete(s, i)
	}

	return s
}
