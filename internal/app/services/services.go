package services

import (
	"github.com/quintans/lineards/internal/app"
	"github.com/quintans/lineards/internal/lib/render"
)

type Step struct {
	Name string
	Run  func() error
}

// show prints the contents followed by a summary pointing at the last element.
func show(p app.Printer, name string, s app.Sequencer) error {
	values := s.Values()
	err := p.Print(values)
	if err != nil {
		return err
	}
	return p.Printf("%s", render.Describe(name, values, len(values)-1))
}
