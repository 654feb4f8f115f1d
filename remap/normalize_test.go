package remap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/framesplice/clip"
)

func TestNormalizeRanges(t *testing.T) {
	tests := []struct {
		name   string
		length int
		ranges []Range
		want   []Span
	}{
		{
			name:   "whole clip",
			length: 1000,
			ranges: []Range{Whole()},
			want:   []Span{{Start: 0, End: 999}},
		},
		{
			name:   "open high bound",
			length: 1000,
			ranges: []Range{From(200)},
			want:   []Span{{Start: 200, End: 999}},
		},
		{
			name:   "open low bound",
			length: 1000,
			ranges: []Range{Until(200)},
			want:   []Span{{Start: 0, End: 200}},
		},
		{
			name:   "negative high bound wraps from end",
			length: 1000,
			ranges: []Range{Between(200, -1)},
			want:   []Span{{Start: 200, End: 998}},
		},
		{
			name:   "negative single frame wraps from end",
			length: 100,
			ranges: []Range{Frame(-1)},
			want:   []Span{{Start: 98, End: 98}},
		},
		{
			name:   "single frame",
			length: 100,
			ranges: []Range{Frame(42)},
			want:   []Span{{Start: 42, End: 42}},
		},
		{
			name:   "last frame sentinel",
			length: 100,
			ranges: []Range{LastFrame()},
			want:   []Span{{Start: 99, End: 99}},
		},
		{
			name:   "explicit pair",
			length: 100,
			ranges: []Range{Between(10, 20)},
			want:   []Span{{Start: 10, End: 20}},
		},
		{
			name:   "order and count preserved",
			length: 50,
			ranges: []Range{Between(30, 40), Frame(5), Whole()},
			want:   []Span{{Start: 30, End: 40}, {Start: 5, End: 5}, {Start: 0, End: 49}},
		},
		{
			name:   "out of bounds passes through unclamped",
			length: 10,
			ranges: []Range{Between(5, 100)},
			want:   []Span{{Start: 5, End: 100}},
		},
		{
			name:   "reversed bounds pass through",
			length: 10,
			ranges: []Range{Between(7, 3)},
			want:   []Span{{Start: 7, End: 3}},
		},
		{
			name:   "empty range list",
			length: 10,
			ranges: []Range{},
			want:   []Span{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeRanges(tt.length, tt.ranges)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeRanges_Idempotent(t *testing.T) {
	length := 500
	ranges := []Range{Whole(), From(200), Between(200, -1), Frame(-1), LastFrame()}

	first, err := NormalizeRanges(length, ranges)
	require.NoError(t, err)

	// Feed the resolved spans back in as explicit pairs.
	again := make([]Range, len(first))
	for i, span := range first {
		again[i] = Between(span.Start, span.End)
	}

	second, err := NormalizeRanges(length, again)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalizeRanges_Errors(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		ranges  []Range
		wantErr error
	}{
		{
			name:    "zero reference length",
			length:  0,
			ranges:  []Range{Whole()},
			wantErr: clip.ErrInvalidInput,
		},
		{
			name:    "negative reference length",
			length:  -3,
			ranges:  []Range{Whole()},
			wantErr: clip.ErrInvalidInput,
		},
		{
			name:    "zero-value range",
			length:  10,
			ranges:  []Range{{}},
			wantErr: clip.ErrBadRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeRanges(tt.length, tt.ranges)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestSpan_Count(t *testing.T) {
	assert.Equal(t, 1, Span{Start: 5, End: 5}.Count())
	assert.Equal(t, 11, Span{Start: 0, End: 10}.Count())
	assert.Equal(t, 0, Span{Start: 7, End: 3}.Count(), "reversed bounds cover nothing")
}

func TestRange_String(t *testing.T) {
	assert.Equal(t, "[5]", Frame(5).String())
	assert.Equal(t, "(1, 2)", Between(1, 2).String())
	assert.Equal(t, "(None, None)", Whole().String())
	assert.Equal(t, "(3, None)", From(3).String())
	assert.Equal(t, "(None, 3)", Until(3).String())
	assert.Equal(t, "(last frame)", LastFrame().String())
	assert.Equal(t, "(invalid)", Range{}.String())
}
