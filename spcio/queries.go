package spcio

import (
	"bufio"
	"fmt"
	"io"
	"time"
)

// QueryRequest is one (s, t) pair read from a query batch file.
type QueryRequest struct {
	S, T int
}

// LoadQueries reads the query batch format (spec §6): a count line "q"
// followed by q "s t" lines.
func LoadQueries(r io.Reader) ([]QueryRequest, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return nil, fmt.Errorf("%w: missing query count line", ErrMalformed)
	}
	var q int
	if _, err := fmt.Sscanf(sc.Text(), "%d", &q); err != nil {
		return nil, fmt.Errorf("%w: query count %q: %v", ErrMalformed, sc.Text(), err)
	}

	out := make([]QueryRequest, 0, q)
	for i := 0; i < q; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: expected %d queries, got %d", ErrMalformed, q, i)
		}
		var s, t int
		if _, err := fmt.Sscanf(sc.Text(), "%d %d", &s, &t); err != nil {
			return nil, fmt.Errorf("%w: query line %q: %v", ErrMalformed, sc.Text(), err)
		}
		out = append(out, QueryRequest{S: s, T: t})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return out, nil
}

// WriteAnswer emits one query answer line: s, t, distance, count, and the
// wall-clock time the query took, in microseconds.
func WriteAnswer(w io.Writer, s, t int, d uint32, c uint64, elapsed time.Duration) error {
	_, err := fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\n", s, t, d, c, elapsed.Microseconds())
	return err
}
