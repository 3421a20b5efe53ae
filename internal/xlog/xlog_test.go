package xlog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tubex-go/tubex/internal/xlog"
)

func TestGetReturnsScopedLogger(t *testing.T) {
	l := xlog.Get()
	assert.NotNil(t, l)
}
