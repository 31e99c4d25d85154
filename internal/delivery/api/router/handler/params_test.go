package handler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{raw: "", want: 0},
		{raw: "5", want: 5},
		{raw: "5abc", want: 5},
		{raw: " 12 ", want: 12},
		{raw: "+3", want: 3},
		{raw: "abc", want: 0},
		{raw: "0", want: 0},
		{raw: "-4", want: 0},
		{raw: "-", want: 0},
		{raw: "2.9", want: 2},
		{raw: "99999999999999999999", want: math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSize(tt.raw))
		})
	}
}
