// Package undo records reversible operations in transactions and replays
// them backwards (undo) or forwards (redo).
//
// Objects that support undo queue an Op with the Manager before they apply
// a mutation. The Manager groups all ops queued between Transaction and
// Commit into one undo step.
//
// # Example
//
//	mgr := undo.NewManager()
//	mgr.Transaction("add boxes")
//	shapes.Insert(s, layout.NewBox(0, 0, 10, 10)) // queues an op
//	mgr.Commit()
//
//	mgr.Undo() // the box is gone
//	mgr.Redo() // and back again
package undo

import (
	"github.com/google/uuid"

	"github.com/gogpu/layout"
)

// Op is one reversible mutation of a target object. Implementations
// usually type-assert target to the concrete type that queued them.
type Op interface {
	// Undo reverts the mutation on target.
	Undo(target any)

	// Redo applies the mutation on target again.
	Redo(target any)
}

// entry pairs an op with the object it was queued for.
type entry struct {
	target any
	op     Op
}

// transaction is one undo step.
type transaction struct {
	id          uuid.UUID
	description string
	entries     []entry
}

// Manager collects ops into transactions and maintains the undo and redo
// stacks.
//
// The Manager is not safe for concurrent use.
type Manager struct {
	current   *transaction
	undo      []*transaction
	redo      []*transaction
	replaying bool
	maxDepth  int
}

// NewManager creates a manager with unlimited undo depth.
func NewManager() *Manager {
	return &Manager{}
}

// SetMaxDepth limits the number of undo steps kept. Zero means unlimited.
// Older steps are dropped first.
func (m *Manager) SetMaxDepth(n int) {
	m.maxDepth = n
	m.trim()
}

// Transaction opens a new transaction and returns its id. If a transaction
// is already open, the ops are joined into it and its id is returned.
func (m *Manager) Transaction(description string) uuid.UUID {
	if m.current != nil {
		return m.current.id
	}
	m.current = &transaction{id: uuid.New(), description: description}
	return m.current.id
}

// Commit closes the open transaction and makes it the latest undo step.
// Empty transactions are discarded. Committing clears the redo stack.
func (m *Manager) Commit() {
	t := m.current
	if t == nil {
		return
	}
	m.current = nil
	if len(t.entries) == 0 {
		return
	}
	m.undo = append(m.undo, t)
	m.redo = m.redo[:0]
	m.trim()
	layout.Logger().Debug("undo: commit",
		"transaction", t.id.String(), "description", t.description, "ops", len(t.entries))
}

// Cancel reverts all ops of the open transaction and discards it.
func (m *Manager) Cancel() {
	t := m.current
	if t == nil {
		return
	}
	m.current = nil
	m.replay(t, true)
	layout.Logger().Debug("undo: cancel", "transaction", t.id.String(), "ops", len(t.entries))
}

// Transacting reports whether ops are being recorded right now.
// It is false while the manager replays ops.
func (m *Manager) Transacting() bool {
	return m.current != nil && !m.replaying
}

// Replaying reports whether the manager is inside Undo or Redo.
func (m *Manager) Replaying() bool {
	return m.replaying
}

// Queue appends op for target to the open transaction.
// It panics if no transaction is open: callers must check Transacting.
func (m *Manager) Queue(target any, op Op) {
	if !m.Transacting() {
		panic("undo: Queue called outside a transaction")
	}
	m.current.entries = append(m.current.entries, entry{target: target, op: op})
}

// LastQueued returns the most recent op of the open transaction if it
// was queued for target, and nil otherwise. Callers use it to extend the
// last op instead of queueing a new one.
func (m *Manager) LastQueued(target any) Op {
	if !m.Transacting() || len(m.current.entries) == 0 {
		return nil
	}
	last := m.current.entries[len(m.current.entries)-1]
	if last.target != target {
		return nil
	}
	return last.op
}

// Undo reverts the latest transaction. It commits an open transaction
// first. Returns false if there is nothing to undo.
func (m *Manager) Undo() bool {
	m.Commit()
	if len(m.undo) == 0 {
		return false
	}
	t := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.replay(t, true)
	m.redo = append(m.redo, t)
	layout.Logger().Debug("undo: undo", "transaction", t.id.String(), "description", t.description)
	return true
}

// Redo applies the latest undone transaction again.
// Returns false if there is nothing to redo.
func (m *Manager) Redo() bool {
	m.Commit()
	if len(m.redo) == 0 {
		return false
	}
	t := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.replay(t, false)
	m.undo = append(m.undo, t)
	layout.Logger().Debug("undo: redo", "transaction", t.id.String(), "description", t.description)
	return true
}

// replay runs the ops of t backwards (undo) or forwards (redo).
func (m *Manager) replay(t *transaction, backwards bool) {
	m.replaying = true
	defer func() { m.replaying = false }()

	if backwards {
		for i := len(t.entries) - 1; i >= 0; i-- {
			e := t.entries[i]
			e.op.Undo(e.target)
		}
		return
	}
	for _, e := range t.entries {
		e.op.Redo(e.target)
	}
}

// CanUndo reports whether an undo step is available.
func (m *Manager) CanUndo() bool {
	return len(m.undo) > 0 || (m.current != nil && len(m.current.entries) > 0)
}

// CanRedo reports whether a redo step is available.
func (m *Manager) CanRedo() bool {
	return len(m.redo) > 0
}

// UndoDescription returns the description of the next undo step.
func (m *Manager) UndoDescription() string {
	if len(m.undo) == 0 {
		return ""
	}
	return m.undo[len(m.undo)-1].description
}

// RedoDescription returns the description of the next redo step.
func (m *Manager) RedoDescription() string {
	if len(m.redo) == 0 {
		return ""
	}
	return m.redo[len(m.redo)-1].description
}

// Clear drops all undo and redo steps and any open transaction.
func (m *Manager) Clear() {
	m.current = nil
	m.undo = nil
	m.redo = nil
}

func (m *Manager) trim() {
	if m.maxDepth > 0 && len(m.undo) > m.maxDepth {
		n := len(m.undo) - m.maxDepth
		m.undo = append(m.undo[:0], m.undo[n:]...)
	}
}
