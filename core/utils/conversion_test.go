package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "Chrome", ToString("Chrome"))
	assert.Equal(t, "Safari", ToString([]byte("Safari")))
	assert.Equal(t, "true", ToString(true))
	assert.Equal(t, "42", ToString(int64(42)))
	assert.Equal(t, "1.5", ToString(1.5))
}

func TestToBool(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"Bool", true, true},
		{"One", 1, true},
		{"Zero", int64(0), false},
		{"TrueString", "true", true},
		{"TrueUpper", "TRUE", true},
		{"OneString", "1", true},
		{"FalseString", "false", false},
		{"Bytes", []byte("true"), true},
		{"Other", "yes", false},
		{"Nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToBool(tt.in))
		})
	}
}

func TestParseBool(t *testing.T) {
	v, ok := ParseBool("True")
	assert.True(t, ok)
	assert.True(t, v)

	v, ok = ParseBool("false")
	assert.True(t, ok)
	assert.False(t, v)

	_, ok = ParseBool("1")
	assert.False(t, ok)

	_, ok = ParseBool("")
	assert.False(t, ok)
}

func TestToInt(t *testing.T) {
	assert.Equal(t, 7, ToInt("7"))
	assert.Equal(t, 7, ToInt(" 7 "))
	assert.Equal(t, 3, ToInt(3.9))
	assert.Equal(t, 0, ToInt("x"))
	assert.Equal(t, 0, ToInt(struct{}{}))
}
