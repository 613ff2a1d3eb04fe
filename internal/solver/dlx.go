package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/ports"
)

// DLXSolver implements Algorithm X / Dancing Links for Sudoku.
// Exact-cover mapping: 324 constraint columns, 729 candidate rows (r,c,v).
// Columns: 0..80   -> cell (r,c) is filled
//          81..161 -> row r contains digit v
//          162..242-> col c contains digit v
//          243..323-> box b contains digit v, b = (r/3)*3 + c/3
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

const (
	dlxCols   = 4 * 81  // 324
	dlxRows   = 81 * 9  // 729
	colCell   = 0
	colRowNum = 81
	colColNum = 162
	colBoxNum = 243
)

type dlxNode struct {
	left, right, up, down *dlxNode
	head                  *dlxHeader
	candidate             int // 0..728 identifies the (r,c,v) row
}

type dlxHeader struct {
	dlxNode
	size    int
	covered bool
}

type dlxMatrix struct {
	headers   [dlxCols]*dlxHeader
	rowHead   [dlxRows]*dlxNode
	picked    [81]*dlxNode
	pickedLen int
	nodes     int
	uncovered int // count of still-active constraint columns
}

func candidateIndex(r, c int, v uint8) int {
	return (r*9+c)*9 + int(v) - 1
}

func decodeCandidate(idx int) (r, c int, v uint8) {
	cell := idx / 9
	return cell / 9, cell % 9, uint8(idx%9) + 1
}

func candidateColumns(r, c int, v uint8) [4]int {
	d := int(v) - 1
	return [4]int{
		colCell + r*9 + c,
		colRowNum + r*9 + d,
		colColNum + c*9 + d,
		colBoxNum + boxIndex(r, c)*9 + d,
	}
}

func newMatrix() *dlxMatrix {
	m := &dlxMatrix{uncovered: dlxCols}
	for i := range m.headers {
		h := &dlxHeader{}
		h.up = &h.dlxNode
		h.down = &h.dlxNode
		m.headers[i] = h
	}
	for idx := 0; idx < dlxRows; idx++ {
		r, c, v := decodeCandidate(idx)
		var first, prev *dlxNode
		for _, col := range candidateColumns(r, c, v) {
			h := m.headers[col]
			n := &dlxNode{head: h, candidate: idx}
			// append at the bottom of the column
			n.down = &h.dlxNode
			n.up = h.up
			h.up.down = n
			h.up = n
			h.size++
			// ring of the 4 nodes belonging to this candidate
			if first == nil {
				first = n
				n.left, n.right = n, n
			} else {
				n.left = prev
				n.right = prev.right
				prev.right.left = n
				prev.right = n
			}
			prev = n
		}
		m.rowHead[idx] = first
	}
	return m
}

func (m *dlxMatrix) cover(h *dlxHeader) {
	if !h.covered {
		h.covered = true
		m.uncovered--
	}
	for i := h.down; i != &h.dlxNode; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.head.size--
		}
	}
}

func (m *dlxMatrix) uncover(h *dlxHeader) {
	for i := h.up; i != &h.dlxNode; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.head.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if h.covered {
		h.covered = false
		m.uncovered++
	}
}

// chooseHeader picks the uncovered column of minimal size.
func (m *dlxMatrix) chooseHeader() *dlxHeader {
	var best *dlxHeader
	for _, h := range m.headers {
		if h.covered {
			continue
		}
		if best == nil || h.size < best.size {
			best = h
			if best.size == 0 {
				break
			}
		}
	}
	return best
}

// search counts exact covers up to limit; returns true to unwind early.
func (m *dlxMatrix) search(ctx context.Context, depth, limit int, found *int) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}
	if m.uncovered == 0 {
		m.pickedLen = depth
		(*found)++
		return *found >= limit
	}
	h := m.chooseHeader()
	if h == nil || h.size == 0 {
		return false
	}
	m.cover(h)
	for row := h.down; row != &h.dlxNode; row = row.down {
		m.nodes++
		m.picked[depth] = row
		for j := row.right; j != row; j = j.right {
			if !j.head.covered {
				m.cover(j.head)
			}
		}
		stop := m.search(ctx, depth+1, limit, found)
		for j := row.left; j != row; j = j.left {
			m.uncover(j.head)
		}
		if stop {
			m.uncover(h)
			return true
		}
	}
	m.uncover(h)
	return false
}

var errBadGiven = errors.New("given digit out of range")

// applyGivens selects the candidate row of every filled cell and covers its
// columns, as if chosen at the top of the search. Givens that conflict with
// each other are reported so the caller can fail before searching a
// corrupted matrix.
func (m *dlxMatrix) applyGivens(g *domain.Grid) (bool, error) {
	var seen masks
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g[r][c]
			if v == 0 {
				continue
			}
			if v > 9 {
				return false, errBadGiven
			}
			if !seen.candidates(r, c).Has(v) {
				return false, nil // duplicate within a unit
			}
			seen.place(g, r, c, v) // value already there; only masks change
			head := m.rowHead[candidateIndex(r, c, v)]
			for j := head; ; j = j.right {
				m.cover(j.head)
				if j.right == head {
					break
				}
			}
		}
	}
	return true, nil
}

func (s *DLXSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	m := newMatrix()
	ok, err := m.applyGivens(&grid)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	found := 0
	if ok {
		m.search(ctx, 0, 1, &found)
	}
	st := ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}
	if ctx.Err() != nil {
		return nil, st, ctx.Err()
	}
	if found < 1 {
		return nil, st, ErrUnsolvable
	}
	out := &domain.Board{Values: grid, Fixed: b.Fixed}
	for i := 0; i < m.pickedLen; i++ {
		r, c, v := decodeCandidate(m.picked[i].candidate)
		out.Values[r][c] = v
	}
	return out, st, nil
}

func (s *DLXSolver) CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, ports.Stats, error) {
	start := time.Now()
	if limit <= 0 {
		return 0, ports.Stats{}, nil
	}
	grid := b.Values
	m := newMatrix()
	ok, err := m.applyGivens(&grid)
	if err != nil {
		return 0, ports.Stats{}, err
	}
	found := 0
	if ok {
		m.search(ctx, 0, limit, &found)
	}
	st := ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}
	return found, st, ctx.Err()
}
