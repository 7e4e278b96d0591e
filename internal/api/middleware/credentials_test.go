package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractToken(t *testing.T) {
	cases := []struct {
		name    string
		auth    string
		cookies []string
		want    string
	}{
		{name: "bearer header", auth: "Bearer abc123", want: "abc123"},
		{name: "cookie percent-decoded", cookies: []string{"mmp_token=xyz%20789"}, want: "xyz 789"},
		{name: "header wins over cookie", auth: "Bearer fromheader", cookies: []string{"mmp_token=fromcookie"}, want: "fromheader"},
		{name: "empty bearer falls back to cookie", auth: "Bearer ", cookies: []string{"mmp_token=fromcookie"}, want: "fromcookie"},
		{name: "lowercase scheme is not bearer", auth: "bearer abc", want: ""},
		{name: "basic auth ignored", auth: "Basic dXNlcjpwdw==", want: ""},
		{name: "cookie among others", cookies: []string{"theme=dark; mmp_token=tok; lang=en"}, want: "tok"},
		{name: "whitespace around pair", cookies: []string{"a=1;   mmp_token = spaced  "}, want: "spaced"},
		{name: "malformed pairs skipped", cookies: []string{"garbage; mmp_token; =x; mmp_token=good"}, want: "good"},
		{name: "undecodable value skipped", cookies: []string{"mmp_token=%zz; mmp_token=second"}, want: "second"},
		{name: "second cookie header", cookies: []string{"a=1", "mmp_token=later"}, want: "later"},
		{name: "other cookie name", cookies: []string{"session=abc"}, want: ""},
		{name: "nothing", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.auth != "" {
				req.Header.Set("Authorization", tc.auth)
			}
			for _, c := range tc.cookies {
				req.Header.Add("Cookie", c)
			}
			if got := ExtractToken(req, DefaultCookieName); got != tc.want {
				t.Fatalf("ExtractToken() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExtractToken_CustomCookieName(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", "mmp_token=default; portal=custom")
	if got := ExtractToken(req, "portal"); got != "custom" {
		t.Fatalf("expected custom cookie, got %q", got)
	}
}
