package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCentsFromFloat(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   Cents
	}{
		{name: "whole amount", amount: 100, want: 10000},
		{name: "two decimals", amount: 313.20, want: 31320},
		{name: "rounds half up", amount: 0.005, want: 1},
		{name: "negative", amount: -12.34, want: -1234},
		{name: "zero", amount: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CentsFromFloat(tt.amount))
		})
	}
}

func TestCentsApplyPercent(t *testing.T) {
	tests := []struct {
		name string
		c    Cents
		pct  float64
		want Cents
	}{
		{name: "ten percent", c: 30000, pct: 10, want: 3000},
		{name: "sixteen percent tax", c: 27000, pct: 16, want: 4320},
		{name: "zero percent", c: 27000, pct: 0, want: 0},
		{name: "hundred percent", c: 27000, pct: 100, want: 27000},
		{name: "fractional percent rounds", c: 10001, pct: 12.5, want: 1250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.ApplyPercent(tt.pct))
		})
	}
}

func TestCentsString(t *testing.T) {
	assert.Equal(t, "313.20", Cents(31320).String())
	assert.Equal(t, "0.05", Cents(5).String())
	assert.Equal(t, "-12.34", Cents(-1234).String())
}
