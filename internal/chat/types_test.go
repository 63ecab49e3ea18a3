package chat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeTurns(n int) []Turn {
	turns := make([]Turn, 0, n)
	for i := 0; i < n; i++ {
		role := RoleUser
		if i%2 == 1 {
			role = RoleAssistant
		}
		turns = append(turns, Turn{Role: role, Content: fmt.Sprintf("turn %d", i)})
	}
	return turns
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name      string
		turns     []Turn
		n         int
		wantLen   int
		wantFirst string
	}{
		{name: "fewer turns than window", turns: makeTurns(4), n: 10, wantLen: 4, wantFirst: "turn 0"},
		{name: "exactly window size", turns: makeTurns(10), n: 10, wantLen: 10, wantFirst: "turn 0"},
		{name: "more turns than window keeps the tail", turns: makeTurns(25), n: 10, wantLen: 10, wantFirst: "turn 15"},
		{name: "zero window", turns: makeTurns(5), n: 0, wantLen: 0},
		{name: "negative window", turns: makeTurns(5), n: -1, wantLen: 0},
		{name: "empty history", turns: nil, n: 10, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Window(tt.turns, tt.n)
			assert.Len(t, got, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, got[0].Content)
				// the newest turn always survives windowing
				assert.Equal(t, tt.turns[len(tt.turns)-1].Content, got[len(got)-1].Content)
			}
		})
	}
}
