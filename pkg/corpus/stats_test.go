package corpus

import (
	"reflect"
	"testing"
)

func TestCalculateStats(t *testing.T) {
	tests := []struct {
		name   string
		parts  []string
		corpus string
		want   Stats
	}{
		{
			name:   "empty corpus",
			parts:  nil,
			corpus: "",
			want:   Stats{},
		},
		{
			name:   "single part",
			parts:  []string{"one two three"},
			corpus: "one two three",
			want:   Stats{TotalParts: 1, Characters: 13, Words: 3, EstimatedTokens: 4},
		},
		{
			name:   "joined parts",
			parts:  []string{"alpha beta", "gamma"},
			corpus: "alpha beta\n\n---\n\ngamma",
			want:   Stats{TotalParts: 2, Characters: 22, Words: 4, EstimatedTokens: 5},
		},
		{
			name:   "rounding up at half",
			parts:  []string{"a b c d e f g h i j"},
			corpus: "a b c d e f g h i j",
			want:   Stats{TotalParts: 1, Characters: 19, Words: 10, EstimatedTokens: 13},
		},
		{
			name:   "multibyte runes counted once",
			parts:  []string{"héllo wörld"},
			corpus: "héllo wörld",
			want:   Stats{TotalParts: 1, Characters: 11, Words: 2, EstimatedTokens: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateStats(tt.parts, tt.corpus); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CalculateStats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
