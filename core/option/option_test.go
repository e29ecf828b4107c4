package option_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/quire/core/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// keyword is a minimal option type: empty string is unset.
type keyword string

func (k keyword) Match(choices interface{}) (interface{}, error) {
	return option.Match(k, choices)
}

func (k keyword) Equals(other interface{}) bool {
	if s, ok := other.(string); ok {
		return string(k) == s
	}
	return false
}

func (k keyword) IsNone() bool {
	return k == ""
}

func TestOptionMaybe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.core")
	defer teardown()
	//
	y, err := keyword("auto").Match(option.Maybe{
		option.None: "unset",
		option.Some: stringify,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Value = auto", y)
	//
	y, err = keyword("").Match(option.Maybe{
		option.None: "unset",
		option.Some: stringify,
	})
	assert.NoError(t, err)
	assert.Equal(t, "unset", y)
	//
	y, _ = keyword("x").Match(option.Maybe{
		option.None:  "unset",
		option.Some:  nonsense,
		option.Error: stringify,
	})
	assert.Equal(t, "Value = x", y)
}

func TestOptionOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.core")
	defer teardown()
	//
	y, _ := keyword("auto").Match(option.Of{
		option.None: 7,
		"auto":      99,
		option.Some: 1,
	})
	assert.Equal(t, 99, y)
	y, _ = keyword("10px").Match(option.Of{
		option.None: 7,
		"auto":      99,
		option.Some: 1,
	})
	assert.Equal(t, 1, y)
}

func TestOptionUnsetWithoutCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.core")
	defer teardown()
	//
	_, err := keyword("").Match(option.Of{option.Some: 1})
	assert.Equal(t, option.ErrCannotMatchUnsetValue, err)
	_, err = keyword("a").Match(map[string]int{})
	assert.Equal(t, option.ErrNoSuchMatchPattern, err)
}

func TestOptionFail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.core")
	defer teardown()
	//
	_, err := keyword("inherit").Match(option.Of{
		option.None:  7,
		"inherit":    option.Fail(errors.New("Fail")),
		option.Some:  1,
		option.Error: option.Fail(errors.New("Caught Fail")),
	})
	if assert.Error(t, err) {
		assert.Equal(t, "Caught Fail", err.Error())
	}
	assert.Equal(t, 5, option.Safe(5, errors.New("dropped")))
}

// ---------------------------------------------------------------------------

func nonsense(x interface{}) (interface{}, error) {
	return nil, errors.New("ERROR")
}

func stringify(x interface{}) (interface{}, error) {
	return fmt.Sprintf("Value = %v", x), nil
}
