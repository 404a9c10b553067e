package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocatorResolve(t *testing.T) {
	l := NewLocator("http://localhost:8080")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"http", "http://cdn.test/a.png", "http://cdn.test/a.png"},
		{"https upper case scheme", "HTTPS://cdn.test/a.png", "HTTPS://cdn.test/a.png"},
		{"protocol relative", "//cdn.test/a.png", "//cdn.test/a.png"},
		{"data uri", "data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
		{"blob", "blob:http://localhost/123", "blob:http://localhost/123"},
		{"root relative", "/uploads/a.png", "http://localhost:8080/uploads/a.png"},
		{"bare filename", "a.png", "http://localhost:8080/a.png"},
		{"surrounding whitespace", "  a.png ", "http://localhost:8080/a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Resolve(tt.in))
		})
	}
}
