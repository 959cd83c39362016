package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLDefault(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "")
	assert.Equal(t, 72*time.Hour, TTL())
}

func TestTTLFromEnv(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "24")
	assert.Equal(t, 24*time.Hour, TTL())
}

func TestTTLInvalidFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "soon")
	assert.Equal(t, 72*time.Hour, TTL())

	t.Setenv("SESSION_TTL_HOURS", "-3")
	assert.Equal(t, 72*time.Hour, TTL())
}
