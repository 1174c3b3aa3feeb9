package middleware

import "testing"

// TestNormalizePath проверяет замену идентификаторов в лейблах метрик.
func TestNormalizePath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/api/accounts", "/api/accounts"},
		{"/auth/callback", "/auth/callback"},
		{"/health/live", "/health/live"},
		{"/metrics", "/metrics"},
		{"/api/accounts/12345", "/api/accounts/{id}"},
		{"/api/accounts/12345/files", "/api/accounts/{id}/files"},
		{"/api/accounts/12345/files/file1", "/api/accounts/{id}/files/{fileId}"},
		{"/api/accounts/12345/files/file1/download", "/api/accounts/{id}/files/{fileId}/download"},
		{"/api/accounts/12345/onedrive/auth", "/api/accounts/{id}/onedrive/auth"},
		{"/api/accounts/12345/onedrive/files", "/api/accounts/{id}/onedrive/files"},
		{"/index.html", "/other"},
		{"/api/unknown", "/other"},
		{"/api/accounts/1/unknown/route", "/other"},
	}
	for _, tc := range cases {
		if got := normalizePath(tc.path); got != tc.want {
			t.Errorf("normalizePath(%q) = %q, ожидалось %q", tc.path, got, tc.want)
		}
	}
}
