package option

import (
	"errors"
)

// Errors returned from matching.
var ErrNoSuchMatchPattern = errors.New("no such match pattern")
var ErrCannotMatchUnsetValue = errors.New("cannot match unset value")
var ErrCannotMatchValue = errors.New("cannot match value")

// MaybeOption labels the generic cases of a match.
type MaybeOption int

// Generic match cases.
const (
	None MaybeOption = iota
	Some
	Error
)

func (m MaybeOption) String() string {
	switch m {
	case None:
		return "None"
	case Some:
		return "Some"
	}
	return "Error"
}

// Maybe is a type used for matching of optional types.
// It will match `Some` if a value is set, `None` if it is unset, or `Error`
// if an error occurs.
type Maybe map[MaybeOption]interface{}

// Of is a type used for matching of optional types.
// It will first try to match concrete values, and in case of no match will
// then try a Maybe match.
//
// At most one concrete key of an Of must match a given value, otherwise the
// outcome depends on map iteration order.
type Of map[interface{}]interface{}

// Type is a type for optional values.
type Type interface {
	Match(choices interface{}) (interface{}, error)
	Equals(other interface{}) bool
	IsNone() bool
}

// Match will do a standard matching of o against choices.
// It may be used to create a new type of interface Type.
//
// choices are expected to be either of type Of or Maybe.
// If choices is of unknown kind, nil and ErrNoSuchMatchPattern are returned.
//
func Match(o Type, choices interface{}) (value interface{}, err error) {
	switch c := choices.(type) {
	case Of:
		return c.Match(o)
	case Maybe:
		return c.Match(o)
	}
	return nil, ErrNoSuchMatchPattern
}

// Match matches o against concrete keys first, then against Some.
func (of Of) Match(o Type) (value interface{}, err error) {
	if o.IsNone() {
		if expr, ok := of[None]; ok {
			return valueOrExpr(expr, o)
		}
		return nil, ErrCannotMatchUnsetValue
	}
	matched := false
	err = ErrCannotMatchValue
	for k, expr := range of {
		if _, generic := k.(MaybeOption); generic {
			continue
		}
		if o.Equals(k) {
			matched = true
			value, err = valueOrExpr(expr, o)
			break
		}
	}
	if !matched {
		if expr, ok := of[Some]; ok {
			value, err = valueOrExpr(expr, o)
		}
	}
	if err != nil {
		tracer().Debugf("option match for %v: %v", o, err)
		if expr, ok := of[Error]; ok {
			value, err = valueOrExpr(expr, o)
		}
	}
	return value, err
}

// Match matches o against None or Some.
func (maybe Maybe) Match(o Type) (value interface{}, err error) {
	if o.IsNone() {
		if expr, ok := maybe[None]; ok {
			return valueOrExpr(expr, o)
		}
		return nil, ErrCannotMatchUnsetValue
	}
	err = ErrCannotMatchValue
	if expr, ok := maybe[Some]; ok {
		value, err = valueOrExpr(expr, o)
	}
	if err != nil {
		tracer().Debugf("option match for %v: %v", o, err)
		if expr, ok := maybe[Error]; ok {
			value, err = valueOrExpr(expr, o)
		}
	}
	return value, err
}

func valueOrExpr(op interface{}, value Type) (interface{}, error) {
	switch x := op.(type) {
	case func(interface{}) (interface{}, error):
		return x(value)
	}
	return op, nil
}

// Fail may be used as an option case, causing a Match to fail with an error.
// The error will be returned by Match(…), unless caught with an option.Error
// label.
//
//     _, err := o.Match(option.Of{
//          option.None: …,
//          99:          option.Fail(errors.New("99 is illegal")),
//          option.Some: …,
//     })
//
func Fail(err error) func(interface{}) (interface{}, error) {
	localErr := err
	return func(interface{}) (interface{}, error) {
		return nil, localErr
	}
}

// Safe wraps a Match's return values and drops the error value.
func Safe(x interface{}, err error) interface{} {
	return x
}
