package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 500 * time.Millisecond, want: "0s"},
		{d: 42 * time.Second, want: "42s"},
		{d: 5 * time.Minute, want: "5m"},
		{d: 3 * time.Hour, want: "3h"},
		{d: 49 * time.Hour, want: "2d"},
		{d: 400 * 24 * time.Hour, want: "1y"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HumanDuration(tt.d))
	}
}

func TestToAge(t *testing.T) {
	assert.Equal(t, UnknownValue, ToAge(nil))

	var zero time.Time
	assert.Equal(t, UnknownValue, ToAge(&zero))

	past := time.Now().Add(-2 * time.Hour)
	assert.Equal(t, "2h", ToAge(&past))
}

func TestNA(t *testing.T) {
	assert.Equal(t, NAValue, NA(""))
	assert.Equal(t, "vpc-1", NA("vpc-1"))
}

func TestStrPtrToStr(t *testing.T) {
	assert.Empty(t, StrPtrToStr(nil))
	s := "x"
	assert.Equal(t, "x", StrPtrToStr(&s))
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{n: 0, want: "0B"},
		{n: 512, want: "512B"},
		{n: 2048, want: "2.0Ki"},
		{n: 5 * 1024 * 1024, want: "5.0Mi"},
		{n: 3 * 1024 * 1024 * 1024, want: "3.0Gi"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HumanSize(tt.n))
	}
}
