package spcio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/graphlab-go/spc2h/graph"
	"github.com/graphlab-go/spc2h/label"
	"github.com/graphlab-go/spc2h/order"
	"github.com/graphlab-go/spc2h/plindex"
)

// WriteIndex serializes idx in the binary layout of spec §6: vertex count,
// adjacency lists, a one-byte shape flag, the label lists in the shape the
// flag names, and an order-array trailer. The shape is chosen automatically:
// split (dL and cL both on disk) if idx has not been merged yet, merged
// (cL only) otherwise.
func WriteIndex(w io.Writer, idx *plindex.Index) error {
	bw := bufio.NewWriter(w)
	g := idx.G
	n := g.N()

	if err := writeU32(bw, uint32(n)); err != nil {
		return err
	}
	for v := 0; v < n; v++ {
		nbrs := g.Neighbors(v)
		if err := writeU32(bw, uint32(len(nbrs))); err != nil {
			return err
		}
		for _, u := range nbrs {
			if err := writeU32(bw, uint32(u)); err != nil {
				return err
			}
		}
	}

	shape := shapeMerged
	if !idx.Merged() {
		shape = shapeSplit
	}
	if err := bw.WriteByte(shape); err != nil {
		return err
	}

	for v := 0; v < n; v++ {
		dL, cL := idx.Parts(v)
		if shape == shapeSplit {
			if err := writeLabelList(bw, dL); err != nil {
				return err
			}
		}
		if err := writeLabelList(bw, cL); err != nil {
			return err
		}
	}

	for _, v := range idx.Ord.Order {
		if err := writeU32(bw, uint32(v)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadIndex deserializes an index previously written by WriteIndex. The
// shape byte in the file tells it whether to expect split or merged label
// lists; a merged-shape file yields an already-Merged Index.
func ReadIndex(r io.Reader) (*plindex.Index, error) {
	br := bufio.NewReader(r)

	n32, err := readU32(br)
	if err != nil {
		return nil, fmt.Errorf("%w: reading vertex count: %v", ErrMalformed, err)
	}
	n := int(n32)

	g, err := graph.New(n)
	if err != nil {
		return nil, err
	}
	for v := 0; v < n; v++ {
		deg, err := readU32(br)
		if err != nil {
			return nil, fmt.Errorf("%w: reading degree of %d: %v", ErrMalformed, v, err)
		}
		for i := uint32(0); i < deg; i++ {
			u, err := readU32(br)
			if err != nil {
				return nil, fmt.Errorf("%w: reading neighbor of %d: %v", ErrMalformed, v, err)
			}
			// the file stores each directed half-edge once per endpoint;
			// AddEdge is idempotent-safe to call twice for the same pair
			// only if we guard it, since it errors on a duplicate.
			if int(u) > v && !g.HasEdge(v, int(u)) {
				if err := g.AddEdge(v, int(u)); err != nil {
					return nil, fmt.Errorf("%w: edge (%d,%d): %v", ErrMalformed, v, u, err)
				}
			}
		}
	}

	shape, err := br.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: reading shape flag: %v", ErrMalformed, err)
	}
	if shape != shapeMerged && shape != shapeSplit {
		return nil, ErrBadShape
	}

	var dLs []label.List
	if shape == shapeSplit {
		dLs = make([]label.List, n)
	}
	cLs := make([]label.List, n)
	for v := 0; v < n; v++ {
		if shape == shapeSplit {
			dl, err := readLabelList(br)
			if err != nil {
				return nil, fmt.Errorf("%w: reading dL(%d): %v", ErrMalformed, v, err)
			}
			dLs[v] = dl
		}
		cl, err := readLabelList(br)
		if err != nil {
			return nil, fmt.Errorf("%w: reading cL(%d): %v", ErrMalformed, v, err)
		}
		cLs[v] = cl
	}

	ord := make([]int32, n)
	for i := 0; i < n; i++ {
		v, err := readU32(br)
		if err != nil {
			return nil, fmt.Errorf("%w: reading order[%d]: %v", ErrMalformed, i, err)
		}
		ord[i] = int32(v)
	}

	return plindex.FromParts(g, order.FromOrder(ord), dLs, cLs), nil
}

func writeU32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func readU32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func writeLabelList(w io.Writer, l label.List) error {
	if err := writeU32(w, uint32(len(l))); err != nil {
		return err
	}
	for _, e := range l {
		if err := writeU32(w, e.Hub); err != nil {
			return err
		}
		if err := writeU32(w, e.Dist); err != nil {
			return err
		}
		if err := writeU32(w, e.Cnt); err != nil {
			return err
		}
	}
	return nil
}

func readLabelList(r io.Reader) (label.List, error) {
	count, err := readU32(r)
	if err != nil {
		return nil, err
	}
	l := make(label.List, count)
	for i := uint32(0); i < count; i++ {
		hub, err := readU32(r)
		if err != nil {
			return nil, err
		}
		dist, err := readU32(r)
		if err != nil {
			return nil, err
		}
		cnt, err := readU32(r)
		if err != nil {
			return nil, err
		}
		l[i] = label.Entry{Hub: hub, Dist: dist, Cnt: cnt}
	}
	return l, nil
}
