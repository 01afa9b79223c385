package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Nguyễn Nhật Ánh", "nguyen-nhat-anh"},
		{"Đường về nhà", "duong-ve-nha"},
		{"  Multiple   Spaces  ", "multiple-spaces"},
		{"Symbols!@# stripped?", "symbols-stripped"},
		{"already-a-slug", "already-a-slug"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GenerateSlug(tt.input), "input %q", tt.input)
	}
}
