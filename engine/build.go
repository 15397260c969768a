package engine

import (
	"math/bits"

	"github.com/nttcslab/cs-reliability/core"
	"github.com/nttcslab/cs-reliability/frontier"
	"github.com/nttcslab/cs-reliability/state"
)

// build runs the Transition Builder level by level in ascending edge
// order, interning every reachable successor state into store and
// filling in Lo/Hi/VLo/VHi on every node it visits.
//
// Each edge level builds a "med state" from its predecessor, introduces
// a source asterisk where a new frontier vertex is itself a source,
// projects the 0-branch (edge absent) with prune detection and an
// acceptance fast path, contracts eᵢ's two endpoints into one component,
// then projects the 1-branch (edge present) through the same routine.
func build(store *state.Store, net *core.Network, an *frontier.Analysis, cfg Options) error {
	edges := net.Edges()

	for i := 0; i < an.M; i++ {
		step := an.Steps[i]
		edge := edges[i]
		kk := len(step.Prev)
		ll := len(step.Next)
		tt := len(step.Med)

		entries := store.Level(i)
		for _, ent := range entries {
			now := ent.State
			nowID := ent.ID
			nowCNum := now.CNum()

			node := store.Node(nowID)
			node.VLo = make([]int8, nowCNum)
			node.VHi = make([]int8, nowCNum)

			// Step A: lift now's components into the intermediate frontier,
			// assigning a fresh label to every vertex newly entering at
			// this edge.
			cc := int8(nowCNum)
			medComp := make([]int8, tt)
			for t := 0; t < tt; t++ {
				if p := step.MedToPrev[t]; p >= 0 {
					medComp[t] = now.Comp[p]
				} else {
					medComp[t] = cc
					cc++
				}
			}
			if cc > 64 {
				return state.ErrFrontierOverflow
			}
			medAst := now.Ast

			// Step B: any source first touched by this edge asterisks its
			// (possibly singleton) intermediate component.
			for _, v := range step.Sources {
				pos := step.UPos
				if v != edge.U {
					pos = step.VPos
				}
				medAst |= 1 << uint(medComp[pos])
			}

			// Step C: the 0-branch (eᵢ absent) projects medComp/medAst
			// straight onto Next.
			projLo := project(medComp, medAst, cc, step.NextToMed, ll)
			if projLo.Pruned {
				node.Lo = state.TerminalFalse
				fillAcceptance(node.VLo, now, step.PrevToMed, medComp, medAst, kk, i >= an.SrcFinal)
			} else {
				loID, err := store.Intern(i+1, state.State{Comp: projLo.Comp, Ast: projLo.Ast})
				if err != nil {
					return err
				}
				node = store.Node(nowID)
				node.Lo = loID
				for k := 0; k < kk; k++ {
					medPos := step.PrevToMed[k]
					node.VLo[now.Comp[k]] = projLo.Renum[medComp[medPos]]
				}
			}

			// Step D: contract eᵢ's endpoints in place, then project the
			// same way for the 1-branch.
			catTo := medComp[step.UPos]
			catFrom := medComp[step.VPos]
			for idx, c := range medComp {
				if c == catFrom {
					medComp[idx] = catTo
				}
			}
			if medAst&(1<<uint(catFrom)) != 0 {
				medAst &^= 1 << uint(catFrom)
				medAst |= 1 << uint(catTo)
			}

			projHi := project(medComp, medAst, cc, step.NextToMed, ll)
			if projHi.Pruned {
				node = store.Node(nowID)
				node.Hi = state.TerminalFalse
				fillAcceptance(node.VHi, now, step.PrevToMed, medComp, medAst, kk, i >= an.SrcFinal)
			} else {
				hiID, err := store.Intern(i+1, state.State{Comp: projHi.Comp, Ast: projHi.Ast})
				if err != nil {
					return err
				}
				node = store.Node(nowID)
				node.Hi = hiID
				for k := 0; k < kk; k++ {
					medPos := step.PrevToMed[k]
					node.VHi[now.Comp[k]] = projHi.Renum[medComp[medPos]]
				}
			}
		}

		if cfg.Progress != nil {
			cfg.Progress(i, len(entries))
		}
	}

	return nil
}

// fillAcceptance fills a pruned branch's value array: every surviving
// component of now is routed into TerminalFalse's two-cell Q, either
// cell 1 ("accepted": this component is exactly the asterisked set and
// every source has already appeared) or cell 0 ("dead").
func fillAcceptance(v []int8, now state.State, prevToMed []int, medComp []int8, medAst uint64, kk int, pastSrcFinal bool) {
	for k := 0; k < kk; k++ {
		medPos := prevToMed[k]
		val := int8(0)
		if pastSrcFinal && medAst == 1<<uint(medComp[medPos]) {
			val = 1
		}
		v[now.Comp[k]] = val
	}
}

// projection is the result of projecting a labelled component array
// and its asterisk mask from the intermediate frontier onto a smaller
// successor frontier.
type projection struct {
	Comp   []int8
	Ast    uint64
	Renum  []int8 // length cc; renum[c] is c's label in Comp, or -1 if c did not survive
	Pruned bool   // true iff some asterisked component failed to survive
}

// project implements the shared core of Transition Builder Steps C and
// D: renumber every surviving component in first-occurrence order and
// detect whether any currently-asterisked component was dropped (which
// makes the branch dead, since that component's source connectivity can
// never be decided again).
func project(medComp []int8, medAst uint64, cc int8, crossToMed []int, outLen int) projection {
	renum := make([]int8, cc)
	for i := range renum {
		renum[i] = -1
	}

	comp := make([]int8, outLen)
	next := int8(0)
	for l := 0; l < outLen; l++ {
		c := medComp[crossToMed[l]]
		if renum[c] < 0 {
			renum[c] = next
			next++
		}
		comp[l] = renum[c]
	}

	var ast uint64
	remaining := medAst
	for remaining != 0 {
		p := bits.TrailingZeros64(remaining)
		remaining &^= 1 << uint(p)
		c := renum[p]
		if c < 0 {
			return projection{Pruned: true}
		}
		ast |= 1 << uint(c)
	}

	return projection{Comp: comp, Ast: ast, Renum: renum}
}
