package js

import "github.com/pkg/errors"

// ReferenceID identifies a resolved identifier reference.
type ReferenceID uint32

// SymbolID identifies a declared symbol.
type SymbolID uint32

// ScopeID identifies a scope.
type ScopeID uint32

// ErrSlotAlreadySet is returned when writing a resolution slot for the second time.
var ErrSlotAlreadySet = errors.New("resolution slot already set")

// Slot is a write-once resolution result. The parser leaves every slot unset; a later semantic pass fills them in through a SlotWriter.
type Slot[T ~uint32] struct {
	id  T
	set bool
}

// Get returns the resolved id and whether it has been set.
func (s *Slot[T]) Get() (T, bool) {
	return s.id, s.set
}

// IsSet returns true once the slot has been written.
func (s *Slot[T]) IsSet() bool {
	return s.set
}

// ReferenceSlot holds the resolved reference of an identifier reference.
type ReferenceSlot = Slot[ReferenceID]

// SymbolSlot holds the symbol declared by a binding identifier.
type SymbolSlot = Slot[SymbolID]

// ScopeSlot holds the scope created by a node.
type ScopeSlot = Slot[ScopeID]

// SlotWriter is the capability to write resolution slots, held by the semantic pass that owns resolution.
type SlotWriter struct {
	owner  string
	writes int
}

// NewSlotWriter returns a writer for the named resolution pass.
func NewSlotWriter(owner string) *SlotWriter {
	return &SlotWriter{owner: owner}
}

// Owner returns the name of the resolution pass.
func (w *SlotWriter) Owner() string {
	return w.owner
}

// Writes returns the number of slots written.
func (w *SlotWriter) Writes() int {
	return w.writes
}

// SetSlot writes id into s. It fails if s was written before.
func SetSlot[T ~uint32](w *SlotWriter, s *Slot[T], id T) error {
	if s.set {
		return ErrSlotAlreadySet
	}
	s.id = id
	s.set = true
	w.writes++
	return nil
}
