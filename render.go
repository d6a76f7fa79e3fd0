package intset

import (
	"io"
	"strconv"
	"strings"
)

// separator between rendered members; the empty set renders as
// nothing at all, not an empty line.
const separator = "  "

// WriteTo renders the members, in stored order, to w. Members are
// separated by two spaces with no trailing separator; an empty set
// writes nothing. It returns the number of bytes written and any
// error from w.
func (s *IntSet) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for i := 0; i < s.used; i++ {
		text := strconv.Itoa(s.data[i])
		if i > 0 {
			text = separator + text
		}
		n, err := io.WriteString(w, text)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// String returns the same rendering as WriteTo.
func (s *IntSet) String() string {
	var b strings.Builder
	s.WriteTo(&b)
	return b.String()
}

var _ io.WriterTo = (*IntSet)(nil)
