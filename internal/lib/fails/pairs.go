package fails

import (
	"fmt"
	"strings"
)

const badKey = "!BADKEY"

type pair struct {
	key   string
	value any
}

// toPairs keeps the argument order, unlike a map, so messages are stable.
func toPairs(args []any) []pair {
	pairs := make([]pair, 0, len(args)/2)
	for len(args) > 0 {
		var p pair
		p, args = nextPair(args)
		pairs = append(pairs, p)
	}
	return pairs
}

func nextPair(args []any) (pair, []any) {
	switch x := args[0].(type) {
	case string:
		if len(args) == 1 {
			return pair{key: badKey, value: x}, nil
		}
		return pair{key: x, value: args[1]}, args[2:]

	default:
		return pair{key: badKey, value: x}, args[1:]
	}
}

func pairsToStr(pairs []pair) string {
	buf := &strings.Builder{}
	buf.WriteString("(")
	for i, p := range pairs {
		if i > 0 {
			buf.WriteString("; ")
		}
		fmt.Fprintf(buf, "%s=%v", p.key, p.value)
	}
	buf.WriteString(")")

	return buf.String()
}
