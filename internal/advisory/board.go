package advisory

import "sync"

type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending"
	StateReady   State = "ready"
)

type Snapshot struct {
	State State
	Text  string
}

// Board holds the advice shown next to the cart. Every Begin or Reset starts a
// new generation; a result completing an older generation is discarded.
type Board struct {
	mu         sync.Mutex
	generation uint64
	state      State
	text       string
}

func NewBoard() *Board {
	return &Board{state: StateIdle}
}

func (b *Board) Begin() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.generation++
	b.state = StatePending
	b.text = ""
	return b.generation
}

// Complete stores text if generation is still current and reports whether it did.
func (b *Board) Complete(generation uint64, text string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if generation != b.generation {
		return false
	}
	b.state = StateReady
	b.text = text
	return true
}

func (b *Board) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.generation++
	b.state = StateIdle
	b.text = ""
}

func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Snapshot{State: b.state, Text: b.text}
}
