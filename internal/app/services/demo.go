package services

import (
	"context"
	"log/slog"

	"github.com/quintans/faults"
	"github.com/quintans/lineards/internal/app"
	"github.com/quintans/lineards/internal/lib/ds"
)

// Demo replays the sample driver sequences against the containers.
type Demo struct {
	printer  app.Printer
	settings app.DemoSettings
}

func NewDemo(printer app.Printer, settings app.DemoSettings) *Demo {
	return &Demo{
		printer:  printer,
		settings: settings,
	}
}

func (d *Demo) Run(ctx context.Context) error {
	steps := []Step{
		{Name: "linked list", Run: d.LinkedList},
		{Name: "stack", Run: d.Stack},
		{Name: "queue", Run: d.Queue},
	}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return faults.Errorf("running demo before %s: %w", s.Name, err)
		}
		slog.Debug("demo step", "name", s.Name)
		err := s.Run()
		if err != nil {
			return faults.Errorf("running %s demo: %w", s.Name, err)
		}
	}

	return nil
}

func (d *Demo) LinkedList() error {
	p := d.printer
	l := ds.NewLinkedList(1, 2)
	defer l.Clear()

	for _, v := range []int{100, 300} {
		err := p.Printf("Add a new element to ll: %d", v)
		if err != nil {
			return err
		}
		l.Append(v)
	}

	err := show(p, "list", l)
	if err != nil {
		return err
	}

	err = p.Printf("Linked list contains %d: %t", 2, l.Contains(2))
	if err != nil {
		return err
	}
	err = p.Printf("Linked list contains %d: %t", 200, l.Contains(200))
	if err != nil {
		return err
	}

	err = p.Printf("Remove last element")
	if err != nil {
		return err
	}
	if _, err := l.RemoveLast(); err != nil {
		return faults.Errorf("removing last: %w", err)
	}
	err = p.Print(l.Values())
	if err != nil {
		return err
	}

	err = p.Printf("Remove element with index 1")
	if err != nil {
		return err
	}
	if _, err := l.RemoveAt(1); err != nil {
		return faults.Errorf("removing index 1: %w", err)
	}
	return p.Print(l.Values())
}

func (d *Demo) Stack() error {
	p := d.printer
	s := ds.NewStack()
	defer s.Clear()

	for i := d.settings.StackFrom; i < d.settings.StackTo; i++ {
		s.Push(i)
	}
	err := show(p, "stack", s)
	if err != nil {
		return err
	}

	v, err := s.Pop()
	if err != nil {
		return faults.Errorf("popping stack: %w", err)
	}
	slog.Debug("popped", "value", v, "remaining", s.Len())

	return show(p, "stack", s)
}

func (d *Demo) Queue() error {
	p := d.printer
	q, err := ds.NewBoundedQueue(d.settings.QueueCapacity)
	if err != nil {
		return faults.Errorf("creating queue: %w", err)
	}
	defer q.Clear()

	for i := 0; i < d.settings.QueueSeed; i++ {
		if err := q.Enqueue(i); err != nil {
			return faults.Errorf("enqueuing %d: %w", i, err)
		}
	}
	err = show(p, "queue", q)
	if err != nil {
		return err
	}

	v, err := q.Dequeue()
	if err != nil {
		return faults.Errorf("dequeuing: %w", err)
	}
	slog.Debug("dequeued", "value", v, "remaining", q.Len())

	err = show(p, "queue", q)
	if err != nil {
		return err
	}

	last := d.settings.QueueSeed - 1
	err = p.Printf("Queue contains %d: %t", last, q.Contains(last))
	if err != nil {
		return err
	}
	return p.Printf("Queue contains %d: %t", 100, q.Contains(100))
}
