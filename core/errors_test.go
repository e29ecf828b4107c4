package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.core")
	defer teardown()
	//
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	err := Error(EPARSE, "cannot parse %q", "a{")
	assert.Equal(t, EPARSE, Code(err))
	assert.Equal(t, `cannot parse "a{"`, UserMessage(err))
}

func TestWrappedErrorKeepsChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.core")
	defer teardown()
	//
	base := errors.New("disk on fire")
	err := WrapError(base, EIO, "reading %s", "page.html")
	assert.True(t, errors.Is(err, base))
	assert.Equal(t, EIO, Code(fmt.Errorf("outer: %w", err)))
	assert.Equal(t, "reading page.html", UserMessage(err))
	assert.Contains(t, err.Error(), "disk on fire")
	//
	err = ErrorWithCode(nil, EMISSING)
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, "not found", UserMessage(err))
}
