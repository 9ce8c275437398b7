package engine

import (
	"github.com/kamstrup/intmap"

	"github.com/lixenwraith/typefall/components"
)

// Position is a word position in field cells
type Position struct {
	X, Y float64
}

// Field is the play area and the ordered set of active words
// Iteration order is spawn order; the index gives id lookup
type Field struct {
	Width, Height int

	words []*components.Word
	index *intmap.Map[uint64, *components.Word]
}

// NewField creates an empty field of the given size
func NewField(width, height int) *Field {
	return &Field{
		Width:  width,
		Height: height,
		words:  make([]*components.Word, 0, 32),
		index:  intmap.New[uint64, *components.Word](32),
	}
}

// Resize changes the field dimensions; moving positions are recomputed on the next tick
// Live words take the speed of the new size so each keeps its share of the crossing,
// and cross-axis coordinates are pulled back inside the field
func (f *Field) Resize(width, height int) {
	f.Width = width
	f.Height = height
	for _, w := range f.words {
		w.Speed = components.SpeedFor(w.Direction, width, height)
		if w.Direction.Horizontal() {
			w.Y = max(0, min(w.Y, float64(height-1)))
		} else {
			w.X = max(0, min(w.X, float64(width-w.Width())))
		}
	}
}

// Add appends a word to the active set
func (f *Field) Add(w *components.Word) {
	f.words = append(f.words, w)
	f.index.Put(w.ID, w)
}

// Get returns the active word with the given id
func (f *Field) Get(id uint64) (*components.Word, bool) {
	return f.index.Get(id)
}

// Remove deletes a word from the active set, returns false if it was not present
func (f *Field) Remove(id uint64) bool {
	if _, ok := f.index.Get(id); !ok {
		return false
	}
	f.index.Del(id)
	for i, w := range f.words {
		if w.ID == id {
			f.words = append(f.words[:i], f.words[i+1:]...)
			break
		}
	}
	return true
}

// Words returns a copy of the active words in spawn order
// Callers may remove words while iterating the copy
func (f *Field) Words() []*components.Word {
	out := make([]*components.Word, len(f.words))
	copy(out, f.words)
	return out
}

// Len returns the number of active words
func (f *Field) Len() int {
	return len(f.words)
}

// Clear removes every word
func (f *Field) Clear() {
	f.words = f.words[:0]
	f.index.Clear()
}

// Snapshot captures every word position keyed by word id
func (f *Field) Snapshot() *intmap.Map[uint64, Position] {
	snap := intmap.New[uint64, Position](len(f.words))
	for _, w := range f.words {
		snap.Put(w.ID, Position{X: w.X, Y: w.Y})
	}
	return snap
}

// Restore writes positions from a snapshot back onto the words it still holds
func (f *Field) Restore(snap *intmap.Map[uint64, Position]) {
	if snap == nil {
		return
	}
	for _, w := range f.words {
		if p, ok := snap.Get(w.ID); ok {
			w.X, w.Y = p.X, p.Y
		}
	}
}
