package document

import "testing"

func snap(content string) Snapshot {
	return Snapshot{Content: content, Cursor: At(0, 0)}
}

func TestUndoRedoSteps(t *testing.T) {
	u := NewUndoMgmt(snap("v0"))
	if u.CanUndo(snap("v0")) {
		t.Fatal("fresh history should have nothing to undo")
	}
	u.Commit(snap("v1"))
	u.Commit(snap("v2"))
	s, ok := u.Undo(snap("v2"))
	if !ok || s.Content != "v1" {
		t.Fatalf("undo = %q %v, want v1", s.Content, ok)
	}
	s, ok = u.Undo(snap("v1"))
	if !ok || s.Content != "v0" {
		t.Fatalf("undo = %q %v, want v0", s.Content, ok)
	}
	if _, ok := u.Undo(snap("v0")); ok {
		t.Fatal("undo past the start should fail")
	}
	s, ok = u.Redo(snap("v0"))
	if !ok || s.Content != "v1" {
		t.Fatalf("redo = %q %v, want v1", s.Content, ok)
	}
}

func TestCommitDeduplicates(t *testing.T) {
	u := NewUndoMgmt(snap("v0"))
	u.Commit(snap("v0"))
	u.Commit(snap("v0"))
	if u.CanUndo(snap("v0")) {
		t.Fatal("identical commits should not grow history")
	}
}

func TestRedoInvalidatedByNewEdits(t *testing.T) {
	u := NewUndoMgmt(snap("v0"))
	u.Commit(snap("v1"))
	u.Undo(snap("v1"))
	// The live state diverged from the history entry under the pointer
	if _, ok := u.Redo(snap("v0 edited")); ok {
		t.Fatal("redo should fail after new edits")
	}
	if u.CanRedo() {
		t.Fatal("redo tail should be discarded")
	}
}

func TestDiskMarker(t *testing.T) {
	u := NewUndoMgmt(snap("v0"))
	if !u.AtDisk(snap("v0")) {
		t.Fatal("initial state should be at disk")
	}
	u.Commit(snap("v1"))
	if u.AtDisk(snap("v1")) {
		t.Fatal("uncommitted write should not be at disk")
	}
	u.DiskWrite(snap("v1"))
	if !u.AtDisk(snap("v1")) {
		t.Fatal("written state should be at disk")
	}
	u.Undo(snap("v1"))
	if u.AtDisk(snap("v0")) {
		t.Fatal("state before the write should not be at disk")
	}
	// Overwriting the saved entry invalidates the marker
	u.Commit(snap("v2"))
	if u.AtDisk(snap("v2")) {
		t.Fatal("marker should be invalid after history truncation")
	}
}
