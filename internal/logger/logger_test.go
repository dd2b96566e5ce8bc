package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	l := NewLogger("test-role")
	require.NotNil(t, l)
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	// Must not panic and must not write anywhere.
	l.Info().Str("key", "value").Msg("discarded")
}

func TestGetChildLogger(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()
	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_NeverNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

func TestFromRequest_NeverNil(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	l := FromRequest(r)
	require.NotNil(t, l)
}
