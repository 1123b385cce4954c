package crud

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type runLog struct {
	events []string
}

func logStep(name string) Handler[*runLog] {
	return func(ctx *runLog, next Next) error {
		ctx.events = append(ctx.events, name+":pre")
		if err := next(); err != nil {
			return err
		}
		ctx.events = append(ctx.events, name+":post")
		return nil
	}
}

func TestRunOnionOrder(t *testing.T) {

	ctx := &runLog{}
	err := Run(ctx, []Handler[*runLog]{logStep("a"), logStep("b"), logStep("c")}, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"a:pre", "b:pre", "c:pre", "c:post", "b:post", "a:post"}, ctx.events)
}

func TestRunShortCircuit(t *testing.T) {

	ctx := &runLog{}
	stop := func(c *runLog, next Next) error {
		c.events = append(c.events, "stop")
		return nil // never calls next
	}

	err := Run(ctx, []Handler[*runLog]{logStep("a"), stop, logStep("c")}, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"a:pre", "stop", "a:post"}, ctx.events)
}

func TestRunDoubleNext(t *testing.T) {

	downstream := 0
	double := func(c *runLog, next Next) error {
		if err := next(); err != nil {
			return err
		}
		return next()
	}
	counter := func(c *runLog, next Next) error {
		downstream++
		return next()
	}

	err := Run(&runLog{}, []Handler[*runLog]{double, counter}, nil)
	require.Error(t, err)

	var dn *DoubleNextError
	require.ErrorAs(t, err, &dn)
	require.Equal(t, 0, dn.Position)

	// The chain after the offender ran exactly once.
	require.Equal(t, 1, downstream)
}

func TestRunFiltersNilHandlers(t *testing.T) {

	ctx := &runLog{}
	err := Run(ctx, []Handler[*runLog]{nil, logStep("a"), nil, logStep("b"), nil}, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"a:pre", "b:pre", "b:post", "a:post"}, ctx.events)
}

func TestRunPropagatesErrors(t *testing.T) {

	boom := errors.New("boom")
	fail := func(c *runLog, next Next) error {
		return boom
	}

	err := Run(&runLog{}, []Handler[*runLog]{logStep("a"), fail, logStep("c")}, nil)
	require.ErrorIs(t, err, boom)
}

func TestRunEmpty(t *testing.T) {

	require.NoError(t, Run(&runLog{}, nil, nil))

	// The last handler calling next runs past the end successfully.
	tail := func(c *runLog, next Next) error {
		return next()
	}
	require.NoError(t, Run(&runLog{}, []Handler[*runLog]{tail}, nil))
}

func TestRunIndependentRuns(t *testing.T) {

	// Two runs over the same handler slice keep separate cursors.
	h := []Handler[*runLog]{logStep("a"), logStep("b")}

	type result struct {
		ctx *runLog
		err error
	}

	results := make(chan result, 2)
	for i := 0; i < 2; i++ {
		go func() {
			ctx := &runLog{}
			results <- result{ctx: ctx, err: Run(ctx, h, nil)}
		}()
	}

	for i := 0; i < 2; i++ {
		r := <-results
		require.NoError(t, r.err)
		require.Equal(t, []string{"a:pre", "b:pre", "b:post", "a:post"}, r.ctx.events)
	}
}
