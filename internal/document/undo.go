package document

// Snapshot is one undo/redo history entry: the full document content
// and the cursor it should restore to, with X as a character index.
type Snapshot struct {
	Content string
	Cursor  Loc
}

// UndoMgmt steps a document backward and forward through a linear
// history of snapshots taken at commit boundaries. It also remembers
// which snapshot was last written to disk, which drives the modified
// indicator.
type UndoMgmt struct {
	history []Snapshot
	ptr     int
	onDisk  int
	// LastEvent is the most recently executed event, for callers that
	// group or repeat edits.
	LastEvent Event
}

// NewUndoMgmt starts a history at the given initial state, treating
// it as the on-disk state.
func NewUndoMgmt(initial Snapshot) UndoMgmt {
	return UndoMgmt{
		history: []Snapshot{initial},
		ptr:     0,
		onDisk:  0,
	}
}

// Commit pushes a snapshot as the new current history entry if it
// differs from the entry already there. Committing after an undo
// discards the redo tail.
func (u *UndoMgmt) Commit(s Snapshot) {
	if u.history[u.ptr] == s {
		return
	}
	// Truncating the tail discards the on-disk entry if it sat there
	if u.onDisk > u.ptr {
		u.onDisk = -1
	}
	u.history = append(u.history[:u.ptr+1], s)
	u.ptr = len(u.history) - 1
}

// Undo commits the live state, then steps back one entry. The second
// result is false when there is nothing earlier to restore.
func (u *UndoMgmt) Undo(current Snapshot) (Snapshot, bool) {
	u.Commit(current)
	if u.ptr <= 0 {
		return Snapshot{}, false
	}
	u.ptr--
	return u.history[u.ptr], true
}

// Redo steps forward one entry. A live state that no longer matches
// the current entry means new edits happened since the last undo, so
// the redo tail is stale and gets discarded.
func (u *UndoMgmt) Redo(current Snapshot) (Snapshot, bool) {
	if u.history[u.ptr] != current {
		u.Commit(current)
		return Snapshot{}, false
	}
	if u.ptr+1 >= len(u.history) {
		return Snapshot{}, false
	}
	u.ptr++
	return u.history[u.ptr], true
}

// DiskWrite commits the live state and marks it as what is now on
// disk.
func (u *UndoMgmt) DiskWrite(current Snapshot) {
	u.Commit(current)
	u.onDisk = u.ptr
}

// AtDisk reports whether the live state matches the last state
// written to disk.
func (u *UndoMgmt) AtDisk(current Snapshot) bool {
	return u.onDisk >= 0 && u.history[u.onDisk].Content == current.Content
}

// CanUndo reports whether an earlier history entry exists. Uncommitted
// live changes also count, since Undo commits before stepping.
func (u *UndoMgmt) CanUndo(current Snapshot) bool {
	return u.ptr > 0 || u.history[u.ptr] != current
}

// CanRedo reports whether a later history entry exists.
func (u *UndoMgmt) CanRedo() bool {
	return u.ptr+1 < len(u.history)
}
