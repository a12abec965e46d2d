package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "whitespace only", in: "   ", want: nil},
		{name: "single entry", in: "Technology", want: []string{"Technology"}},
		{name: "trims entries", in: " Technology , Finance ", want: []string{"Technology", "Finance"}},
		{name: "drops empty entries", in: "Technology,,Finance,", want: []string{"Technology", "Finance"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.in))
		})
	}
}

func TestJoinListRoundTrip(t *testing.T) {
	items := []string{"Technology", "Finance", "Healthcare"}
	assert.Equal(t, items, SplitList(JoinList(items)))
}
