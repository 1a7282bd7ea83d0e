package fails_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/quintans/faults"
	"github.com/quintans/lineards/internal/lib/fails"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuesOuterWinsOverWrappedCause(t *testing.T) {
	cause := fails.NewWithErr(errors.New("empty"), "dequeue", "length", 0, "capacity", 8)
	err := fails.NewWithErr(faults.Errorf("draining: %w", cause), "demo", "step", "queue")
	err = err.WithValues("length", 3)

	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "%v", err)
	assert.Equal(t, "demo (step=queue; length=3): draining: dequeue (length=0; capacity=8): empty", buf.String())

	assert.Equal(t, map[string]any{"step": "queue", "length": 3, "capacity": 8}, err.Values())
	assert.Equal(t, map[string]any{"length": 0, "capacity": 8}, cause.Values())
}

func TestValuerKeepsArgumentOrder(t *testing.T) {
	err := fails.New("removing", "index", 7, "length", 3, "all", true)
	assert.Equal(t, "removing (index=7; length=3; all=true)", err.Error())
}

func TestValuerBadKey(t *testing.T) {
	err := fails.New("odd", 42, "dangling")
	assert.Equal(t, "odd (!BADKEY=42; !BADKEY=dangling)", err.Error())
}

func TestWithValuesOverrides(t *testing.T) {
	sentinel := errors.New("empty")
	err := fails.NewWithErr(sentinel, "pop", "length", 0)
	err = err.WithValues("length", 1, "op", "peek")

	assert.Equal(t, "pop (length=1; op=peek): empty", err.Error())
	assert.ErrorIs(t, err, sentinel)
}

func TestValue(t *testing.T) {
	err := fmt.Errorf("outer: %w", fails.New("inner", "capacity", 100))

	v, ok := fails.Value(err, "capacity")
	require.True(t, ok)
	assert.Equal(t, 100, v)

	_, ok = fails.Value(err, "missing")
	assert.False(t, ok)

	_, ok = fails.Value(errors.New("plain"), "capacity")
	assert.False(t, ok)
}
