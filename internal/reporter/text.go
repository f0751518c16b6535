package reporter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"topwords/internal/domain"
)

// Text writes one "<dimension>\t<words>" line per dimension.
type Text struct {
	out io.Writer
}

// NewText creates a text reporter writing to out.
func NewText(out io.Writer) *Text {
	return &Text{out: out}
}

// Report implements domain.Reporter.
func (r *Text) Report(ranking domain.Ranking) error {
	w := bufio.NewWriter(r.out)
	for d, words := range ranking {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", d, FormatList(words)); err != nil {
			return errors.Wrap(err, "write report")
		}
	}
	return errors.Wrap(w.Flush(), "flush report")
}

// FormatList renders words as a bracketed, comma separated list of quoted
// strings, e.g. ['cat', 'dog'].
func FormatList(words []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, w := range words {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quote(w))
	}
	b.WriteByte(']')
	return b.String()
}

// quote uses single quotes unless the word holds a single quote and no
// double quote.
func quote(s string) string {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}
	var b strings.Builder
	b.WriteByte(q)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' || c == q:
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\t':
			b.WriteString(`\t`)
		case c < 0x20 || c == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(q)
	return b.String()
}
