package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	perr "knownkey/internal/platform/errors"
)

func TestKeyPort_Parse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		secret string
		header string
		set    bool
		ok     bool
	}{
		{"match", "s3cret", "s3cret", true, true},
		{"mismatch", "s3cret", "s3cre7", true, false},
		{"prefix only", "s3cret", "s3c", true, false},
		{"missing", "s3cret", "", false, false},
		{"empty secret refuses", "", "anything", true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/knownKey", nil)
			if tc.set {
				r.Header.Set("Authorization", tc.header)
			}
			who, err := NewKeyPort("keystore", tc.secret).Parse(r)
			if tc.ok {
				if err != nil || who != "keystore" {
					t.Fatalf("Parse = %q %v", who, err)
				}
				return
			}
			if !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
				t.Fatalf("want unauthorized, got %v", err)
			}
		})
	}
}
