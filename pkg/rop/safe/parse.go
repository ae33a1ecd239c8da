package safe

import (
	"encoding"
	"fmt"
	"net/netip"
	"reflect"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/fallible/pkg/rop"
	"go.uber.org/zap"
)

type parseFunc func(text string, o Options) (any, bool)

var (
	registryMu sync.RWMutex
	registry   = map[reflect.Type]parseFunc{}

	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

func init() {
	Register(func(text string, _ Options) (time.Duration, bool) {
		d, err := time.ParseDuration(text)
		return d, err == nil
	})
	Register(func(text string, o Options) (time.Time, bool) {
		t, err := time.Parse(o.Layout, text)
		return t, err == nil
	})
	Register(func(text string, _ Options) (netip.Addr, bool) {
		a, err := netip.ParseAddr(text)
		return a, err == nil
	})
	Register(func(text string, _ Options) (netip.Prefix, bool) {
		p, err := netip.ParsePrefix(text)
		return p, err == nil
	})
	Register(func(text string, _ Options) (uuid.UUID, bool) {
		id, err := uuid.Parse(text)
		return id, err == nil
	})
}

// Register installs fn as the parser for T, replacing any earlier one.
// Registered parsers take precedence over the built-in kinds and
// encoding.TextUnmarshaler.
func Register[T any](fn func(text string, o Options) (T, bool)) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[reflect.TypeFor[T]()] = func(text string, o Options) (any, bool) {
		return fn(text, o)
	}
}

// TryParse parses text into a T. It never fails: unparsable text or an
// unsupported T is reported as false.
func TryParse[T any](text string, opts ...Option) (T, bool) {
	return tryParse[T](text, newOptions(opts))
}

// Parse parses text into a T. Failure is an error result whose ParseError
// names T and holds text as its source.
func Parse[T any](text string, opts ...Option) rop.Result[T, *ParseError] {
	o := newOptions(opts)
	if v, ok := tryParse[T](text, o); ok {
		return rop.Success[T, *ParseError](v)
	}

	t := reflect.TypeFor[T]()
	err := &ParseError{
		Type:    t,
		Source:  []any{text},
		Message: fmt.Sprintf("could not parse %s into type %s", text, t),
		Stack:   callers(),
	}
	o.Logger.Debug("parse failed", zap.Stringer("type", t), zap.String("text", text))
	return rop.Fail[T](err)
}

func tryParse[T any](text string, o *Options) (T, bool) {
	var v T
	t := reflect.TypeFor[T]()

	registryMu.RLock()
	fn, found := registry[t]
	registryMu.RUnlock()
	if found {
		parsed, ok := fn(text, *o)
		if !ok {
			return v, false
		}
		return parsed.(T), true
	}

	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		if err := any(&v).(encoding.TextUnmarshaler).UnmarshalText([]byte(text)); err != nil {
			var zero T
			return zero, false
		}
		return v, true
	}

	if !parseKind(reflect.ValueOf(&v).Elem(), text, o) {
		var zero T
		return zero, false
	}
	return v, true
}

// parseKind parses text into rv by its kind, so named types such as
// `type Port uint16` work without registration.
func parseKind(rv reflect.Value, text string, o *Options) bool {
	switch rv.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return false
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, o.Base, rv.Type().Bits())
		if err != nil {
			return false
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(text, o.Base, rv.Type().Bits())
		if err != nil {
			return false
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(text, rv.Type().Bits())
		if err != nil {
			return false
		}
		rv.SetFloat(f)
	case reflect.String:
		rv.SetString(text)
	default:
		return false
	}
	return true
}
