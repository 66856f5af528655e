package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanValid(t *testing.T) {
	tests := []struct {
		name string
		span Span
		want bool
	}{
		{"same line, start before end", Span{Pos{1, 1}, Pos{1, 5}}, true},
		{"same line, start equals end", Span{Pos{1, 1}, Pos{1, 1}}, true},
		{"start line before end line", Span{Pos{1, 10}, Pos{2, 1}}, true},
		{"start after end on same line", Span{Pos{1, 5}, Pos{1, 1}}, false},
		{"start line after end line", Span{Pos{2, 1}, Pos{1, 1}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.span.Valid())
		})
	}
}

func TestPosString(t *testing.T) {
	assert.Equal(t, "3:7", Pos{Line: 3, Col: 7}.String())
}
