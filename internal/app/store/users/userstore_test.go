package userstore_test

import (
	"strings"
	"testing"

	userstore "github.com/notekeep/notekeep/internal/app/store/users"
	"github.com/notekeep/notekeep/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, "123456789012345678", "Ann", "hashed-password")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == "" {
		t.Error("expected ID to be assigned")
	}
	if created.DiscordUserID != "123456789012345678" {
		t.Errorf("DiscordUserID: got %q", created.DiscordUserID)
	}
	if created.PasswordHash != "hashed-password" {
		t.Errorf("PasswordHash: got %q", created.PasswordHash)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	loaded, err := store.GetByDiscordID(ctx, "123456789012345678")
	if err != nil {
		t.Fatalf("GetByDiscordID failed: %v", err)
	}
	if loaded.ID != created.ID {
		t.Errorf("loaded ID: got %q, want %q", loaded.ID, created.ID)
	}
}

func TestStore_Create_Duplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, "123456789012345678", "Ann", "h1"); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := store.Create(ctx, "123456789012345678", "Bob", "h2")
	if err != userstore.ErrDuplicateDiscordID {
		t.Errorf("second Create: got %v, want ErrDuplicateDiscordID", err)
	}
}

func TestStore_GetByDiscordID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetByDiscordID(ctx, "999999999999999999"); err != mongo.ErrNoDocuments {
		t.Errorf("got %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_EnsureForDiscordID_CreatesPlaceholder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := store.EnsureForDiscordID(ctx, "123456789012345678")
	if err != nil {
		t.Fatalf("EnsureForDiscordID failed: %v", err)
	}
	if !strings.HasPrefix(u.Username, "User_") {
		t.Errorf("placeholder username: got %q", u.Username)
	}
	if u.PasswordHash != "" {
		t.Error("placeholder user must not have a password hash")
	}

	// Second call returns the same user, no duplicate created.
	again, err := store.EnsureForDiscordID(ctx, "123456789012345678")
	if err != nil {
		t.Fatalf("second EnsureForDiscordID failed: %v", err)
	}
	if again.ID != u.ID {
		t.Errorf("second call returned a different user: %q vs %q", again.ID, u.ID)
	}

	count, err := db.Collection("users").CountDocuments(ctx, map[string]any{"discord_user_id": "123456789012345678"})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 user, found %d", count)
	}
}

func TestStore_EnsureForDiscordID_ReturnsExisting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	existing := fixtures.CreateUser(ctx, "123456789012345678", "Ann", "hash")

	u, err := store.EnsureForDiscordID(ctx, "123456789012345678")
	if err != nil {
		t.Fatalf("EnsureForDiscordID failed: %v", err)
	}
	if u.ID != existing.ID {
		t.Errorf("got user %q, want existing %q", u.ID, existing.ID)
	}
	if u.Username != "Ann" {
		t.Errorf("existing username must be preserved, got %q", u.Username)
	}
}
