package safe

import (
	"time"

	"github.com/ib-77/fallible/pkg/expr"
	"go.uber.org/zap"
)

// Options configures the adapters. Each adapter reads the fields it needs.
type Options struct {
	// Base is the integer base for Parse; 0 accepts Go prefixes.
	Base int
	// Layout is the time.Parse layout for Parse[time.Time].
	Layout string
	// Mode selects statement or program parsing for EvalText.
	Mode expr.Mode
	// Filename labels diagnostic positions.
	Filename string
	Logger   *zap.Logger
}

type Option func(*Options)

func WithBase(base int) Option {
	return func(o *Options) { o.Base = base }
}

func WithLayout(layout string) Option {
	return func(o *Options) { o.Layout = layout }
}

func WithMode(mode expr.Mode) Option {
	return func(o *Options) { o.Mode = mode }
}

func WithFilename(name string) Option {
	return func(o *Options) { o.Filename = name }
}

// WithLogger makes the adapters log every failure they absorb at debug
// level.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func newOptions(opts []Option) *Options {
	o := &Options{
		Base:     10,
		Layout:   time.RFC3339,
		Mode:     expr.ModeProgram,
		Filename: "<input>",
		Logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
