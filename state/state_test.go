package state_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nttcslab/cs-reliability/state"
)

func TestState_CNum(t *testing.T) {
	require.Equal(t, 0, state.State{}.CNum())
	require.Equal(t, 1, state.State{Comp: []int8{0, 0, 0}}.CNum())
	require.Equal(t, 3, state.State{Comp: []int8{0, 1, 2, 0}}.CNum())
}

func TestState_IsCanonical(t *testing.T) {
	require.True(t, state.State{Comp: []int8{0, 1, 1, 2}}.IsCanonical())
	require.True(t, state.State{}.IsCanonical())
	require.False(t, state.State{Comp: []int8{1, 0}}.IsCanonical()) // 1 appears before 0
	require.False(t, state.State{Comp: []int8{0, 2}}.IsCanonical()) // skips label 1
	require.False(t, state.State{Comp: []int8{-1}}.IsCanonical())
}

func TestState_Hash_Deterministic(t *testing.T) {
	s := state.State{Comp: []int8{0, 1, 0}, Ast: 0b10}
	a := s.Hash(state.DefaultHashSeed())
	b := s.Hash(state.DefaultHashSeed())
	require.Equal(t, a, b)

	other := state.State{Comp: []int8{0, 1, 0}, Ast: 0b01}
	require.NotEqual(t, a, other.Hash(state.DefaultHashSeed()))
}

func TestState_Hash_SeedChangesFingerprint(t *testing.T) {
	s := state.State{Comp: []int8{0}, Ast: 1}
	require.NotEqual(t, s.Hash(1), s.Hash(2))
}

func TestStore_NewStore_ReservedIds(t *testing.T) {
	st := state.NewStore(3, state.DefaultHashSeed())
	require.Equal(t, 2, st.Len())

	term := st.Node(state.TerminalFalse)
	require.Equal(t, []float64{0, 1}, term.Q)

	root := st.Node(state.Root)
	require.Equal(t, float64(1), root.P)
	require.Equal(t, 0, int(root.CNum))
}

func TestStore_Intern_DedupesWithinLevel(t *testing.T) {
	st := state.NewStore(3, state.DefaultHashSeed())

	s := state.State{Comp: []int8{0, 1}, Ast: 1}
	id1, err := st.Intern(1, s)
	require.NoError(t, err)
	id2, err := st.Intern(1, s)
	require.NoError(t, err)
	require.Equal(t, id1, id2)
	require.Equal(t, 3, st.Len()) // only one new node allocated
}

func TestStore_Intern_SameStateDifferentLevelsDistinctIds(t *testing.T) {
	st := state.NewStore(3, state.DefaultHashSeed())

	s := state.State{Comp: []int8{0}, Ast: 0}
	id1, err := st.Intern(1, s)
	require.NoError(t, err)
	id2, err := st.Intern(2, s)
	require.NoError(t, err)
	require.NotEqual(t, id1, id2)
}

func TestStore_Intern_FrontierOverflow(t *testing.T) {
	st := state.NewStore(1, state.DefaultHashSeed())
	comp := make([]int8, 65)
	for i := range comp {
		comp[i] = int8(i)
	}
	_, err := st.Intern(1, state.State{Comp: comp})
	require.ErrorIs(t, err, state.ErrFrontierOverflow)
}

func TestStore_Level_RoundTrips(t *testing.T) {
	st := state.NewStore(2, state.DefaultHashSeed())
	a := state.State{Comp: []int8{0, 1}, Ast: 0b10}
	b := state.State{Comp: []int8{0, 0}, Ast: 0}

	idA, err := st.Intern(1, a)
	require.NoError(t, err)
	idB, err := st.Intern(1, b)
	require.NoError(t, err)

	entries := st.Level(1)
	require.Len(t, entries, 2)

	seen := map[state.NodeID]state.State{}
	for _, e := range entries {
		seen[e.ID] = e.State
	}
	require.Equal(t, a, seen[idA])
	require.Equal(t, b, seen[idB])
}

func TestStore_Node_MutationPersists(t *testing.T) {
	st := state.NewStore(2, state.DefaultHashSeed())
	id, err := st.Intern(1, state.State{Comp: []int8{0}})
	require.NoError(t, err)

	st.Node(id).P = 0.5
	require.Equal(t, 0.5, st.Node(id).P)
}
