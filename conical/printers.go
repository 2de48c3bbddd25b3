package conical

import (
	"fmt"
	"io"
	"strings"
)

// debug utilities

// Dump writes one line per active level, top level first, listing that
// level's payloads in order. The format is for humans and may change.
func (l *List[E]) Dump(w io.Writer) error {
	if l.deinitialized {
		_, err := fmt.Fprintln(w, "<deinitialized>")
		return err
	}
	for level := l.head.Count() - 1; level >= 0; level-- {
		var parts []string
		for v := range l.Values(level) {
			parts = append(parts, fmt.Sprint(v))
		}
		if _, err := fmt.Fprintf(w, "L%d: %s\n", level, strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}

func (l *List[E]) String() string {
	var b strings.Builder
	_ = l.Dump(&b)
	return b.String()
}
