package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGet(t *testing.T) {
	id := FromClaims("u1", "alice", time.Now())
	ctx := Set(context.Background(), id)

	got, ok := Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", got.PrincipalID)
	assert.Equal(t, "alice", got.Login)
}

func TestGetMissing(t *testing.T) {
	_, ok := Get(context.Background())
	assert.False(t, ok)
}

func TestWithRemoteIP(t *testing.T) {
	tests := []struct {
		name     string
		remote   string
		expected string
	}{
		{
			name:     "bare IP",
			remote:   "10.0.0.5",
			expected: "10.0.0.5",
		},
		{
			name:     "host and port",
			remote:   "10.0.0.5:51234",
			expected: "10.0.0.5",
		},
		{
			name:     "forwarded list keeps first hop",
			remote:   "203.0.113.9, 10.0.0.1",
			expected: "203.0.113.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := FromClaims("u1", "alice", time.Now()).WithRemoteIP(tt.remote)
			assert.Equal(t, tt.expected, id.RemoteIP)
		})
	}
}
