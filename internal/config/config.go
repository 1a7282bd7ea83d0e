package config

import (
	"errors"
	"log/slog"
	"math"
	"os"

	"github.com/quintans/faults"
	"github.com/quintans/lineards/internal/lib/ds"
	"github.com/quintans/lineards/internal/lib/render"
	"github.com/tidwall/gjson"
)

var ErrInvalidSettings = errors.New("invalid settings")

type Range struct {
	From int
	To   int
}

type Settings struct {
	queueCapacity int
	queueSeed     int
	stackSeed     Range
	style         render.Style
	logLevel      slog.Level
}

func NewSettings() *Settings {
	return &Settings{
		queueCapacity: ds.DefaultCapacity,
		queueSeed:     10,
		stackSeed:     Range{From: 100, To: 110},
		style:         render.Arrow,
		logLevel:      slog.LevelInfo,
	}
}

func (s *Settings) QueueCapacity() int {
	return s.queueCapacity
}

func (s *Settings) QueueSeed() int {
	return s.queueSeed
}

func (s *Settings) StackSeed() Range {
	return s.stackSeed
}

func (s *Settings) Style() render.Style {
	return s.style
}

func (s *Settings) LogLevel() slog.Level {
	return s.logLevel
}

// Load reads the settings from a JSON file. An empty path yields the defaults.
func Load(path string) (*Settings, error) {
	if path == "" {
		return NewSettings(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, faults.Errorf("reading settings '%s': %w", path, err)
	}

	s, err := Parse(b)
	if err != nil {
		return nil, faults.Errorf("loading settings '%s': %w", path, err)
	}
	return s, nil
}

// Parse reads a settings document. Missing keys keep their default.
func Parse(data []byte) (*Settings, error) {
	if !gjson.ValidBytes(data) {
		return nil, faults.Errorf("%w: malformed JSON", ErrInvalidSettings)
	}

	s := NewSettings()
	doc := gjson.ParseBytes(data)

	if v, ok, err := intField(doc, "queueCapacity"); err != nil {
		return nil, err
	} else if ok {
		if v < 1 {
			return nil, faults.Errorf("%w: queueCapacity must be positive, got %d", ErrInvalidSettings, v)
		}
		s.queueCapacity = v
	}

	if v, ok, err := intField(doc, "queueSeed"); err != nil {
		return nil, err
	} else if ok {
		if v < 0 {
			return nil, faults.Errorf("%w: queueSeed cannot be negative, got %d", ErrInvalidSettings, v)
		}
		s.queueSeed = v
	}

	if v, ok, err := intField(doc, "stackSeed.from"); err != nil {
		return nil, err
	} else if ok {
		s.stackSeed.From = v
	}
	if v, ok, err := intField(doc, "stackSeed.to"); err != nil {
		return nil, err
	} else if ok {
		s.stackSeed.To = v
	}
	if s.stackSeed.To < s.stackSeed.From {
		return nil, faults.Errorf("%w: stackSeed.to (%d) is before stackSeed.from (%d)", ErrInvalidSettings, s.stackSeed.To, s.stackSeed.From)
	}

	if v, ok, err := stringField(doc, "style"); err != nil {
		return nil, err
	} else if ok {
		style, err := render.ParseStyle(v)
		if err != nil {
			return nil, faults.Errorf("%w: %s", ErrInvalidSettings, err)
		}
		s.style = style
	}

	if v, ok, err := stringField(doc, "logLevel"); err != nil {
		return nil, err
	} else if ok {
		var lvl slog.Level
		err := lvl.UnmarshalText([]byte(v))
		if err != nil {
			return nil, faults.Errorf("%w: %s", ErrInvalidSettings, err)
		}
		s.logLevel = lvl
	}

	return s, nil
}

// intField reads an integral JSON number. Other JSON types and fractions are rejected.
func intField(doc gjson.Result, path string) (int, bool, error) {
	v := doc.Get(path)
	if !v.Exists() {
		return 0, false, nil
	}
	if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) {
		return 0, false, faults.Errorf("%w: %s must be an integer, got %s", ErrInvalidSettings, path, v.Raw)
	}
	return int(v.Int()), true, nil
}

func stringField(doc gjson.Result, path string) (string, bool, error) {
	v := doc.Get(path)
	if !v.Exists() {
		return "", false, nil
	}
	if v.Type != gjson.String {
		return "", false, faults.Errorf("%w: %s must be a string, got %s", ErrInvalidSettings, path, v.Raw)
	}
	return v.String(), true, nil
}
