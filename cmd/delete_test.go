package cmd

import (
	"testing"
)

func TestDeleteCommand(t *testing.T) {
	ws := setupWorkspace(t)
	ws.WriteStore(threeNotes)

	noteID.Set("2")
	cmd, out := newTestCommand()
	if err := runDelete(cmd, []string{}); err != nil {
		t.Fatalf("delete command failed: %v", err)
	}

	if out.String() != "Note with ID 2 deleted.\n" {
		t.Errorf("unexpected output: %q", out.String())
	}

	notes := readNotes(t, ws.ReadStore())
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].ID != 1 || notes[1].ID != 3 {
		t.Errorf("wrong notes left: %+v", notes)
	}
}

func TestDeleteNotFound(t *testing.T) {
	ws := setupWorkspace(t)
	ws.WriteStore(threeNotes)

	noteID.Set("7")
	cmd, out := newTestCommand()
	if err := runDelete(cmd, []string{}); err != nil {
		t.Fatalf("delete command failed: %v", err)
	}

	if out.String() != "Note with ID 7 not found.\n" {
		t.Errorf("unexpected output: %q", out.String())
	}
	if ws.ReadStore() != threeNotes {
		t.Error("store file changed")
	}
}

func TestDeleteDuplicateIDs(t *testing.T) {
	ws := setupWorkspace(t)
	ws.WriteStore(`[
  {"id": 1, "title": "a", "body": "1", "timestamp": "2024-01-01 09:00:00"},
  {"id": 1, "title": "b", "body": "2", "timestamp": "2024-01-02 09:00:00"},
  {"id": 2, "title": "c", "body": "3", "timestamp": "2024-01-03 09:00:00"}
]`)

	noteID.Set("1")
	cmd, _ := newTestCommand()
	if err := runDelete(cmd, []string{}); err != nil {
		t.Fatalf("delete command failed: %v", err)
	}

	notes := readNotes(t, ws.ReadStore())
	if len(notes) != 1 || notes[0].ID != 2 {
		t.Errorf("expected only note 2 to remain, got %+v", notes)
	}
}

func TestDeleteMissingID(t *testing.T) {
	ws := setupWorkspace(t)

	cmd, out := newTestCommand()
	if err := runDelete(cmd, []string{}); err != nil {
		t.Fatalf("delete command failed: %v", err)
	}

	if out.String() != "To delete a note, provide an ID (--id).\n" {
		t.Errorf("unexpected output: %q", out.String())
	}
	if ws.StoreExists() {
		t.Error("store was created")
	}
}
