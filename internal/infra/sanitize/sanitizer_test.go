package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLSanitizer_Sanitize(t *testing.T) {
	s := NewHTMLSanitizer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text passes", "a lovely coat", "a lovely coat"},
		{"tags stripped", "<b>bold</b> claim", "bold claim"},
		{"script removed", "<script>alert(1)</script>hello", "hello"},
		{"whitespace trimmed", "  padded  ", "padded"},
		{"only markup collapses to empty", "<img src=x onerror=alert(1)>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Sanitize(tt.input))
		})
	}
}
