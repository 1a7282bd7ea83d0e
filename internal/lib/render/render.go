package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/quintans/faults"
)

var ErrInvalidStyle = errors.New("invalid style")

type Style struct {
	val string
	sep string
	end string
}

func (s Style) String() string {
	return s.val
}

var (
	Arrow  = Style{val: "arrow", sep: "-->", end: "NULL"}
	Dash   = Style{val: "dash", sep: "-", end: ""}
	Python = Style{val: "python", sep: "->", end: "None"}
)

var Styles = []Style{
	Arrow,
	Dash,
	Python,
}

func ParseStyle(s string) (Style, error) {
	for _, st := range Styles {
		if st.val == s {
			return st, nil
		}
	}

	return Style{}, faults.Errorf("%w: %s", ErrInvalidStyle, s)
}

// Format joins values with the style separator, closing with the style terminator.
func Format(style Style, values []int) string {
	var sb strings.Builder
	for _, v := range values {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteString(style.sep)
	}
	sb.WriteString(style.end)
	return sb.String()
}

// Describe summarises a sequence, e.g. "queue: 1,000 elements, 3rd is 7".
func Describe(name string, values []int, highlight int) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString(": ")
	sb.WriteString(humanize.Comma(int64(len(values))))
	if len(values) == 1 {
		sb.WriteString(" element")
	} else {
		sb.WriteString(" elements")
	}
	if highlight >= 0 && highlight < len(values) {
		fmt.Fprintf(&sb, ", %s is %d", humanize.Ordinal(highlight+1), values[highlight])
	}
	return sb.String()
}

// Printer writes rendered sequences, one per line.
type Printer struct {
	w     io.Writer
	style Style
}

func NewPrinter(w io.Writer, style Style) *Printer {
	return &Printer{
		w:     w,
		style: style,
	}
}

func (p *Printer) Print(values []int) error {
	_, err := fmt.Fprintln(p.w, Format(p.style, values))
	if err != nil {
		return faults.Errorf("printing sequence: %w", err)
	}
	return nil
}

func (p *Printer) Printf(format string, args ...any) error {
	_, err := fmt.Fprintf(p.w, format+"\n", args...)
	if err != nil {
		return faults.Errorf("printing line: %w", err)
	}
	return nil
}
