package botnotes_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/notekeep/notekeep/internal/app/features/botnotes"
	"github.com/notekeep/notekeep/internal/domain/models"
	"github.com/notekeep/notekeep/internal/testutil"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*botnotes.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return botnotes.NewHandler(db, zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestServeUserNotes(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fixtures.CreateUser(ctx, "123456789012345678", "Ann", "hash")
	other := fixtures.CreateUser(ctx, "223456789012345678", "Bob", "hash")

	base := time.Now().UTC().Truncate(time.Millisecond)
	for i := 0; i < 12; i++ {
		fixtures.CreateNote(ctx, owner, fmt.Sprintf("note %d", i), base.Add(time.Duration(i)*time.Second))
	}
	fixtures.CreateNote(ctx, other, "someone else", base)

	// No limit: capped at the read default, newest first, owner's only.
	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/bot/notes/"+owner.DiscordUserID, nil), "id", owner.DiscordUserID)
	rec := httptest.NewRecorder()
	h.ServeUserNotes(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	var list []models.Note
	testutil.DecodeJSON(t, rec, &list)
	if len(list) != botnotes.DefaultReadLimit {
		t.Fatalf("list length: got %d, want %d", len(list), botnotes.DefaultReadLimit)
	}
	if list[0].Content != "note 11" {
		t.Errorf("first item: got %q, want the newest note", list[0].Content)
	}
	for _, n := range list {
		if n.DiscordUserID != owner.DiscordUserID {
			t.Fatalf("leaked note belonging to %q", n.DiscordUserID)
		}
	}

	// Explicit limit wins.
	req = testutil.WithChiURLParam(httptest.NewRequest("GET", "/bot/notes/"+owner.DiscordUserID+"?limit=3", nil), "id", owner.DiscordUserID)
	rec = httptest.NewRecorder()
	h.ServeUserNotes(rec, req)
	testutil.DecodeJSON(t, rec, &list)
	if len(list) != 3 {
		t.Errorf("limited list: got %d, want 3", len(list))
	}
}

func TestServeUserNotes_UnknownUser(t *testing.T) {
	h, _ := newHandler(t)

	// Unknown ids are not an error for the bot; they just have no notes.
	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/bot/notes/999999999999999999", nil), "id", "999999999999999999")
	rec := httptest.NewRecorder()
	h.ServeUserNotes(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var list []models.Note
	testutil.DecodeJSON(t, rec, &list)
	if len(list) != 0 {
		t.Errorf("list length: got %d, want 0", len(list))
	}
}

func TestServeSearch(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fixtures.CreateUser(ctx, "123456789012345678", "Ann", "hash")
	base := time.Now().UTC().Truncate(time.Millisecond)
	for i := 0; i < 7; i++ {
		fixtures.CreateNote(ctx, owner, fmt.Sprintf("meeting agenda %d", i), base.Add(time.Duration(i)*time.Second))
	}
	fixtures.CreateNote(ctx, owner, "groceries", base)

	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/bot/notes/"+owner.DiscordUserID+"/search?q=MEETING", nil), "id", owner.DiscordUserID)
	rec := httptest.NewRecorder()
	h.ServeSearch(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	var list []models.Note
	testutil.DecodeJSON(t, rec, &list)
	if len(list) != botnotes.DefaultSearchLimit {
		t.Fatalf("list length: got %d, want search default %d", len(list), botnotes.DefaultSearchLimit)
	}
	if list[0].Content != "meeting agenda 6" {
		t.Errorf("first item: got %q, want the newest match", list[0].Content)
	}
}

func TestServeSearch_MissingQuery(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/bot/notes/123456789012345678/search", nil), "id", "123456789012345678")
	rec := httptest.NewRecorder()
	h.ServeSearch(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestHandleDelete(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fixtures.CreateUser(ctx, "123456789012345678", "Ann", "hash")
	note := fixtures.CreateNote(ctx, owner, "done with this", time.Now().UTC().Truncate(time.Millisecond))

	req := testutil.WithChiURLParam(httptest.NewRequest("DELETE", "/bot/notes/"+note.ID, nil), "id", note.ID)
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Message string `json:"message"`
	}
	testutil.DecodeJSON(t, rec, &body)
	if body.Message != "Note deleted successfully" {
		t.Errorf("message: got %q", body.Message)
	}

	// Gone now.
	rec = httptest.NewRecorder()
	h.HandleDelete(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("repeat delete: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}
