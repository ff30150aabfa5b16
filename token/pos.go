package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc indexes newline offsets of one document so that a byte offset
// can be mapped back to a line/column pair lazily.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	res := &PosDoc{d: d}
	for i, c := range d {
		if c == '\n' {
			res.n = append(res.n, i)
		}
	}
	return res
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

func (p *PosDoc) end() *Pos {
	return &Pos{I: len(p.d), D: p}
}

// Pos is a position in a scanned document.
type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := "?"
	if p.D != nil && len(p.D.d) > 0 {
		sample = string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
		sample = strconv.Quote(sample)
		sample = sample[1 : len(sample)-1]
	}
	line, col := 0, 0
	if p.D != nil {
		line, col = p.LineCol()
	}
	return fmt.Sprintf("`...%s...` line=%d, col=%d", sample, line, col)
}
