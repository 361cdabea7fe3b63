package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name    string
		streams [][]int
		want    []int
	}{
		{
			name:    "no streams",
			streams: nil,
			want:    nil,
		},
		{
			name:    "all empty",
			streams: [][]int{nil, {}, nil},
			want:    nil,
		},
		{
			name:    "single stream",
			streams: [][]int{{2, 3, 5}},
			want:    []int{2, 3, 5},
		},
		{
			name:    "contiguous chunks",
			streams: [][]int{{2, 3, 5, 7}, {11, 13}, {17, 19, 23}},
			want:    []int{2, 3, 5, 7, 11, 13, 17, 19, 23},
		},
		{
			name:    "interleaved ordered streams",
			streams: [][]int{{1, 4, 9}, {2, 5, 6}, {3, 7, 8}},
			want:    []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
		{
			name:    "empty stream in the middle",
			streams: [][]int{{2, 3}, nil, {5, 7}},
			want:    []int{2, 3, 5, 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.streams))
		})
	}
}

func TestMerge_ManyStreams(t *testing.T) {
	var streams [][]int
	var want []int
	for i := 0; i < 16; i++ {
		stream := []int{i, i + 16, i + 32}
		streams = append(streams, stream)
	}
	for v := 0; v < 48; v++ {
		want = append(want, v)
	}
	assert.Equal(t, want, Merge(streams))
}
