package store

import (
	"errors"
	"reflect"
	"testing"
)

func TestChunkRange(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		chunkSize int
		want      [][2]int
	}{
		{name: "empty", total: 0, chunkSize: 10, want: nil},
		{name: "single chunk", total: 5, chunkSize: 10, want: [][2]int{{0, 5}}},
		{name: "exact chunks", total: 20, chunkSize: 10, want: [][2]int{{0, 10}, {10, 20}}},
		{name: "ragged tail", total: 25, chunkSize: 10, want: [][2]int{{0, 10}, {10, 20}, {20, 25}}},
		{name: "zero chunk size", total: 5, chunkSize: 0, want: [][2]int{{0, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got [][2]int
			err := ChunkRange(tt.total, tt.chunkSize, func(start, end int) error {
				got = append(got, [2]int{start, end})
				return nil
			})
			if err != nil {
				t.Fatalf("ChunkRange failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("chunks = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChunkRange_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := ChunkRange(30, 10, func(start, end int) error {
		calls++
		if start == 10 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}

func TestDedupeStrings(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "nil", in: nil, want: nil},
		{name: "no duplicates", in: []string{"a", "b"}, want: []string{"a", "b"}},
		{name: "duplicates removed", in: []string{"a", "b", "a", "b"}, want: []string{"a", "b"}},
		{name: "empties dropped", in: []string{"", "a", ""}, want: []string{"a"}},
		{name: "order preserved", in: []string{"c", "a", "c", "b"}, want: []string{"c", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DedupeStrings(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("DedupeStrings(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
