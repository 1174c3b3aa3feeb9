package model

import (
	"testing"
	"time"
)

// TestSessionState проверяет переходы состояний облачной сессии.
func TestSessionState(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		session *CloudSession
		want    SessionState
	}{
		{
			name:    "nil-сессия — unauthorized",
			session: nil,
			want:    StateUnauthorized,
		},
		{
			name: "токен действует — authorized",
			session: &CloudSession{
				AccountID:   1,
				AccessToken: "token",
				ExpiresAt:   now.Add(time.Hour),
			},
			want: StateAuthorized,
		},
		{
			name: "срок истёк — expired",
			session: &CloudSession{
				AccountID:   1,
				AccessToken: "token",
				ExpiresAt:   now.Add(-time.Second),
			},
			want: StateExpired,
		},
		{
			name: "ровно в момент истечения — expired",
			session: &CloudSession{
				AccountID:   1,
				AccessToken: "token",
				ExpiresAt:   now,
			},
			want: StateExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.State(now); got != tt.want {
				t.Errorf("State() = %q, ожидалось %q", got, tt.want)
			}
		})
	}
}
