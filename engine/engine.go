package engine

import (
	"fmt"

	"github.com/nttcslab/cs-reliability/core"
	"github.com/nttcslab/cs-reliability/frontier"
	"github.com/nttcslab/cs-reliability/state"
)

// Compute runs the full pipeline — input validation, frontier analysis,
// the Transition Builder, the two-pass DP engine, and the Result
// Emitter — and returns, for every edge level i in [1, m), the
// connect-to-source probability of every vertex in Fᵢ, sources included.
func Compute(n int, edges []core.Edge, pi []float64, sources []int, opts ...Option) (*Result, error) {
	net, err := core.NewNetwork(n, edges, pi, sources)
	if err != nil {
		return nil, err
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	an := frontier.Analyze(net.N(), net.Edges(), net.Sources())
	if cfg.StrictSourceCheck && len(an.UntouchedSources) > 0 {
		return nil, fmt.Errorf("engine: sources %v: %w", an.UntouchedSources, ErrSourceUntouched)
	}

	st := state.NewStore(net.M(), cfg.HashSeed)
	if err := build(st, net, an, cfg); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	forwardPass(st, net.Pi())
	backwardPass(st, net.Pi())

	return &Result{
		Levels:     emit(st, an),
		StateCount: st.Len(),
	}, nil
}
