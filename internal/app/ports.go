package app

const (
	Version = "0.1"
	Name    = "lineards"
)

// Printer is the sequence printing collaborator the demo reports through.
type Printer interface {
	Print(values []int) error
	Printf(format string, args ...any) error
}

// Sequencer is any container able to snapshot its contents in order.
type Sequencer interface {
	Values() []int
	Len() int
	IsEmpty() bool
}

type DemoSettings struct {
	QueueCapacity int
	QueueSeed     int
	StackFrom     int
	StackTo       int
}
