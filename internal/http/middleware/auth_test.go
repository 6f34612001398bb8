package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestExtractTokenFromAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		target string
		header string
		want   string
	}{
		{name: "query token wins", target: "/stream?token=qtok", header: "Bearer htok", want: "qtok"},
		{name: "bearer header", target: "/stream", header: "Bearer htok", want: "htok"},
		{name: "case insensitive scheme", target: "/stream", header: "bearer htok", want: "htok"},
		{name: "missing", target: "/stream", want: ""},
		{name: "wrong scheme", target: "/stream", header: "Basic abc", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", tt.target, nil)
			if tt.header != "" {
				c.Request.Header.Set("Authorization", tt.header)
			}
			if got := extractTokenFromAll(c); got != tt.want {
				t.Fatalf("extractTokenFromAll() = %q, want %q", got, tt.want)
			}
		})
	}
}
