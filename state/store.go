package state

// Store is the level-indexed collection of State -> NodeID maps, plus the
// flat, append-only arena of Nodes. Ids 0 and 1 are reserved for
// TerminalFalse and Root; Intern never returns either.
type Store struct {
	arena    []Node
	levels   []map[string]NodeID // levels[i] covers states interned at level i
	hashSeed uint64
}

// NewStore allocates a Store for an engine with m edges: levels 0..m
// inclusive, with the two reserved terminal/root nodes already in place.
// hashSeed seeds Node.Fingerprint (see State.Hash); pass
// state.DefaultHashSeed() for reference-compatible fingerprints.
func NewStore(m int, hashSeed uint64) *Store {
	st := &Store{
		arena:    make([]Node, 2, 64),
		levels:   make([]map[string]NodeID, m+1),
		hashSeed: hashSeed,
	}
	for i := range st.levels {
		st.levels[i] = make(map[string]NodeID)
	}

	// id 0: terminal "false" / dead-or-delivered sink.
	st.arena[0] = Node{ID: TerminalFalse, Level: m, CNum: 2, Q: []float64{0, 1}}

	// id 1: root, the empty frontier at level 0.
	root := State{}
	st.arena[1] = Node{ID: Root, Level: 0, CNum: 0, P: 1, Fingerprint: root.Hash(hashSeed)}
	st.levels[0][root.key()] = Root

	return st
}

// Len returns the number of allocated nodes, including the two reserved
// ids.
func (st *Store) Len() int { return len(st.arena) }

// Node returns a pointer into the arena for direct mutation by the
// Transition Builder (setting Lo/Hi/VLo/VHi) and the DP passes (setting
// P/Q). The pointer is valid until the next Intern call, which may grow
// the backing slice.
func (st *Store) Node(id NodeID) *Node { return &st.arena[id] }

// Intern returns the existing id for s at level i if present, or
// allocates, stores, and returns a fresh one. Returns ErrFrontierOverflow
// if s would need more than 64 connectivity classes.
func (st *Store) Intern(level int, s State) (NodeID, error) {
	key := s.key()
	if id, ok := st.levels[level][key]; ok {
		return id, nil
	}
	cnum := s.CNum()
	if cnum > 64 {
		return 0, ErrFrontierOverflow
	}
	id := NodeID(len(st.arena))
	st.arena = append(st.arena, Node{
		ID:          id,
		Level:       level,
		CNum:        int8(cnum),
		Q:           make([]float64, cnum),
		Fingerprint: s.Hash(st.hashSeed),
	})
	st.levels[level][key] = id

	return id, nil
}

// Level returns a snapshot of the (state, id) pairs interned at level i,
// in unspecified order — within a level, iteration order does not
// affect the DP result. The returned states are reconstructed from the
// internal key encoding and are safe for the caller to retain.
func (st *Store) Level(i int) []LevelEntry {
	entries := make([]LevelEntry, 0, len(st.levels[i]))
	for key, id := range st.levels[i] {
		entries = append(entries, LevelEntry{State: decodeKey(key), ID: id})
	}
	return entries
}

// LevelEntry pairs a canonical State with its interned NodeID.
type LevelEntry struct {
	State State
	ID    NodeID
}

// decodeKey reverses State.key(): the first 8 bytes are Ast
// little-endian, the rest are Comp.
func decodeKey(key string) State {
	var ast uint64
	for i := 0; i < 8; i++ {
		ast |= uint64(key[i]) << (8 * i)
	}
	comp := make([]int8, len(key)-8)
	for i := range comp {
		comp[i] = int8(key[8+i])
	}
	return State{Comp: comp, Ast: ast}
}
