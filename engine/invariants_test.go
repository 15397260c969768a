package engine

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nttcslab/cs-reliability/builder"
	"github.com/nttcslab/cs-reliability/core"
	"github.com/nttcslab/cs-reliability/frontier"
	"github.com/nttcslab/cs-reliability/state"
)

// randomSmallNetwork draws a small Erdős–Rényi network from rng, skipping
// (via the caller's retry loop) any draw that leaves vertex 1 untouched.
func randomSmallNetwork(t *testing.T, rng *rand.Rand) (*core.Network, *frontier.Analysis, bool) {
	t.Helper()
	n := 2 + rng.Intn(6) // 2..7 vertices
	spec, err := builder.RandomSparse(n, 0.5, builder.WithRand(rng))
	require.NoError(t, err)
	if len(spec.Edges) == 0 {
		return nil, nil, false
	}
	net, err := spec.Network([]int{1})
	require.NoError(t, err)

	an := frontier.Analyze(net.N(), net.Edges(), net.Sources())
	if len(an.UntouchedSources) > 0 {
		return nil, nil, false
	}
	return net, an, true
}

// TestInvariant1And2_CanonicalAndAsteriskBounds draws random small networks,
// runs them through the Transition Builder, and checks every interned
// state at every level: Comp is canonically labelled, and the asterisk
// mask's population count and highest set bit both stay within CNum.
func TestInvariant1And2_CanonicalAndAsteriskBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	trials := 0
	for trials < 40 {
		net, an, ok := randomSmallNetwork(t, rng)
		if !ok {
			continue
		}
		trials++

		st := state.NewStore(net.M(), state.DefaultHashSeed())
		require.NoError(t, build(st, net, an, DefaultOptions()))

		for lvl := 0; lvl <= net.M(); lvl++ {
			for _, entry := range st.Level(lvl) {
				s := entry.State
				require.Truef(t, s.IsCanonical(), "level %d state %+v not canonical", lvl, s)

				cnum := s.CNum()
				require.LessOrEqualf(t, bits.OnesCount64(s.Ast), cnum, "level %d state %+v: popcount(ast) > cnum", lvl, s)
				require.Lessf(t, bits.Len64(s.Ast), cnum+1, "level %d state %+v: a set ast bit is >= cnum", lvl, s)
			}
		}
	}
}

// TestInvariant3_ProbabilityConservedPerLevel replays the forward pass's
// accumulation rule level by level, tracking how much mass is absorbed by
// the terminal at each source level, and checks that the live mass at
// every level plus everything absorbed so far always sums to 1.
func TestInvariant3_ProbabilityConservedPerLevel(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	trials := 0
	for trials < 40 {
		net, an, ok := randomSmallNetwork(t, rng)
		if !ok {
			continue
		}
		trials++

		st := state.NewStore(net.M(), state.DefaultHashSeed())
		require.NoError(t, build(st, net, an, DefaultOptions()))

		pi := net.Pi()
		terminalGainByLevel := make([]float64, net.M())
		for id := 1; id < st.Len(); id++ {
			nd := st.Node(state.NodeID(id))
			p := nd.P
			piv := pi[nd.Level]

			loGain := (1 - piv) * p
			hiGain := piv * p
			st.Node(nd.Lo).P += loGain
			st.Node(nd.Hi).P += hiGain

			if nd.Lo == state.TerminalFalse {
				terminalGainByLevel[nd.Level] += loGain
			}
			if nd.Hi == state.TerminalFalse {
				terminalGainByLevel[nd.Level] += hiGain
			}
		}

		cum := 0.0
		for lvl := 0; lvl < net.M(); lvl++ {
			cum += terminalGainByLevel[lvl]
			total := cum
			for _, entry := range st.Level(lvl + 1) {
				total += st.Node(entry.ID).P
			}
			require.InDeltaf(t, 1.0, total, 1e-9, "level %d: live+absorbed mass != 1", lvl+1)
		}
	}
}

// TestInvariant4_ComponentProbabilityInUnitRange draws random small
// networks, runs both DP passes, and checks every Q entry of every
// interned node — including the terminal — stays within [0,1].
func TestInvariant4_ComponentProbabilityInUnitRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	trials := 0
	for trials < 40 {
		net, an, ok := randomSmallNetwork(t, rng)
		if !ok {
			continue
		}
		trials++

		st := state.NewStore(net.M(), state.DefaultHashSeed())
		require.NoError(t, build(st, net, an, DefaultOptions()))
		forwardPass(st, net.Pi())
		backwardPass(st, net.Pi())

		for id := 0; id < st.Len(); id++ {
			nd := st.Node(state.NodeID(id))
			for c, q := range nd.Q {
				require.GreaterOrEqualf(t, q, 0.0, "id %d component %d: q < 0", id, c)
				require.LessOrEqualf(t, q, 1.0, "id %d component %d: q > 1", id, c)
			}
		}
	}
}
