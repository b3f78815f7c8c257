package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt64(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int64
		ok   bool
	}{
		{"int", 7, 7, true},
		{"uint8", uint8(3), 3, true},
		{"float whole", 4.0, 4, true},
		{"float fraction", 4.5, 4, false},
		{"string", " 42 ", 42, true},
		{"bytes", []byte("9"), 9, true},
		{"garbage", "abc", 0, false},
		{"bool", true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToInt64(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "a", ToString("a"))
	assert.Equal(t, "b", ToString([]byte("b")))
	assert.Equal(t, "12", ToString(12))
}

func TestToSlice(t *testing.T) {
	assert.Equal(t, []any{}, ToSlice(nil))
	assert.Equal(t, []any{5}, ToSlice(5))
	assert.Equal(t, []any{"id"}, ToSlice("id"))
	assert.Equal(t, []any{1, 2, 3}, ToSlice([]int{1, 2, 3}))
	assert.Equal(t, []any{"a", "b"}, ToSlice([2]string{"a", "b"}))
	assert.Equal(t, []any{[]byte("x")}, ToSlice([]byte("x")))

	in := []any{1, "2"}
	assert.Equal(t, in, ToSlice(in))
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Equal(t, []string{"id", "email"}, SplitList(" id, ,email,"))
}
