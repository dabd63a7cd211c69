package token

import (
	"sort"
	"strconv"
)

// PosDoc records the newline offsets of a document so byte offsets
// can be mapped back to line/column pairs lazily.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	return &PosDoc{d: d}
}

func (p *PosDoc) nl(i int) {
	if len(p.n) > 0 && p.n[len(p.n)-1] == i {
		return
	}
	p.n = append(p.n, i)
}

// LineCol maps a byte offset to 0-based line and column.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{I: i, D: p}
}

// Pos is a byte offset into a document.
type Pos struct {
	I int
	D *PosDoc
}

// String renders the position as 1-based "line:col".
func (p *Pos) String() string {
	if p == nil {
		return "?"
	}
	line, col := 0, p.I
	if p.D != nil {
		line, col = p.D.LineCol(p.I)
	}
	return strconv.Itoa(line+1) + ":" + strconv.Itoa(col+1)
}
