package fails

import (
	"errors"
	"strings"
)

type Valuer interface {
	error
	Values() map[string]any
	WithValues(args ...any) Valuer
}

func New(msg string, args ...any) Valuer {
	return &ValuesError{
		msg:   msg,
		pairs: toPairs(args),
	}
}

// NewWithErr wraps err, usually a sentinel, so that errors.Is keeps matching it.
func NewWithErr(err error, msg string, args ...any) Valuer {
	return &ValuesError{
		err:   err,
		msg:   msg,
		pairs: toPairs(args),
	}
}

type ValuesError struct {
	err   error
	msg   string
	pairs []pair
}

func (e *ValuesError) Error() string {
	var str strings.Builder
	str.WriteString(e.msg)
	if len(e.pairs) > 0 {
		str.WriteString(" ")
		str.WriteString(pairsToStr(e.pairs))
	}

	if e.err != nil {
		str.WriteString(": ")
		str.WriteString(e.err.Error())
	}

	return str.String()
}

func (e *ValuesError) Unwrap() error {
	return e.err
}

// Values returns the values associated with the error and its cause.
// Values set on the outer error win over the ones of the cause.
func (e *ValuesError) Values() map[string]any {
	m := map[string]any{}
	var valuer Valuer
	if errors.As(e.err, &valuer) {
		for k, v := range valuer.Values() {
			m[k] = v
		}
	}
	for _, p := range e.pairs {
		m[p.key] = p.value
	}
	return m
}

func (e *ValuesError) WithValues(args ...any) Valuer {
	for _, p := range toPairs(args) {
		e.set(p)
	}

	return e
}

func (e *ValuesError) set(p pair) {
	for i := range e.pairs {
		if e.pairs[i].key == p.key {
			e.pairs[i].value = p.value
			return
		}
	}
	e.pairs = append(e.pairs, p)
}

// Value looks up a single value by key on err or any error it wraps.
func Value(err error, key string) (any, bool) {
	var valuer Valuer
	if !errors.As(err, &valuer) {
		return nil, false
	}
	v, ok := valuer.Values()[key]
	return v, ok
}
