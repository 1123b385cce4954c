package crud

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccessibleRoutesPosture(t *testing.T) {

	s := AccessibleRoutes(nil, nil, PostureAll)
	require.Len(t, s, len(AllIntents))
	for _, i := range AllIntents {
		require.True(t, s.Has(i), i.String())
	}

	s = AccessibleRoutes(nil, nil, PostureNone)
	require.Empty(t, s)
}

func TestAccessibleRoutesOnlyReplacesBaseline(t *testing.T) {

	s := AccessibleRoutes([]Intent{Create, ReadAll}, nil, PostureNone)
	require.Len(t, s, 2)
	require.True(t, s.Has(Create))
	require.True(t, s.Has(ReadAll))

	// A non-nil empty only list still discards the baseline.
	s = AccessibleRoutes([]Intent{}, nil, PostureAll)
	require.Empty(t, s)
}

func TestAccessibleRoutesExcludeWinsLast(t *testing.T) {

	s := AccessibleRoutes([]Intent{ReadAll}, []Intent{ReadAll}, PostureAll)
	require.Empty(t, s)

	s = AccessibleRoutes(nil, []Intent{Delete}, PostureAll)
	require.Len(t, s, len(AllIntents)-1)
	require.False(t, s.Has(Delete))
}
