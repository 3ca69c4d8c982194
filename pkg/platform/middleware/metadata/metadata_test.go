package metadata

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"kredi/pkg/requestcontext"
)

const androidUA = "Mozilla/5.0 (Linux; Android 11; TECNO KF6i) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/110.0.5481.154 Mobile Safari/537.36"

func TestClientMetadata(t *testing.T) {
	var ip, ua, device string
	handler := ClientMetadata(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip = requestcontext.ClientIP(r.Context())
		ua = requestcontext.UserAgent(r.Context())
		device = requestcontext.Device(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.9:51422"
	req.Header.Set("User-Agent", androidUA)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "203.0.113.9", ip)
	assert.Equal(t, androidUA, ua)
	assert.Contains(t, device, "Android")
}

func TestClientIPFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		build  func(*http.Request)
		wantIP string
	}{
		{
			name: "x-forwarded-for single",
			build: func(r *http.Request) {
				r.Header.Set("X-Forwarded-For", "198.51.100.7")
			},
			wantIP: "198.51.100.7",
		},
		{
			name: "x-forwarded-for chain takes first",
			build: func(r *http.Request) {
				r.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1, 10.0.0.2")
			},
			wantIP: "198.51.100.7",
		},
		{
			name: "x-real-ip",
			build: func(r *http.Request) {
				r.Header.Set("X-Real-IP", "192.0.2.44")
			},
			wantIP: "192.0.2.44",
		},
		{
			name: "remote addr fallback",
			build: func(r *http.Request) {
				r.RemoteAddr = "127.0.0.1:9999"
			},
			wantIP: "127.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.build(req)
			assert.Equal(t, tt.wantIP, ClientIPFromRequest(req))
		})
	}
}

func TestDescribeDevice(t *testing.T) {
	assert.Equal(t, "", describeDevice(""))
	assert.Equal(t, "unknown", describeDevice("%%%"))
	assert.Contains(t, describeDevice(androidUA), "Android")
}
