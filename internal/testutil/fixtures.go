package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/notekeep/notekeep/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a test user for the given Discord id.
func (f *Fixtures) CreateUser(ctx context.Context, discordUserID, username, passwordHash string) models.User {
	f.t.Helper()

	user := models.User{
		ID:            uuid.NewString(),
		DiscordUserID: discordUserID,
		Username:      username,
		PasswordHash:  passwordHash,
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateNote inserts a test note owned by the given user. The createdAt
// offset lets ordering tests control created_at explicitly.
func (f *Fixtures) CreateNote(ctx context.Context, owner models.User, content string, createdAt time.Time) models.Note {
	f.t.Helper()

	note := models.Note{
		ID:            uuid.NewString(),
		UserID:        owner.ID,
		DiscordUserID: owner.DiscordUserID,
		Content:       content,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
	if _, err := f.db.Collection("notes").InsertOne(ctx, note); err != nil {
		f.t.Fatalf("failed to create test note: %v", err)
	}
	return note
}

// CreateNoteInServer inserts a test note carrying server metadata.
func (f *Fixtures) CreateNoteInServer(ctx context.Context, owner models.User, content, serverID, serverName string) models.Note {
	f.t.Helper()

	now := time.Now().UTC()
	note := models.Note{
		ID:            uuid.NewString(),
		UserID:        owner.ID,
		DiscordUserID: owner.DiscordUserID,
		Content:       content,
		ServerID:      &serverID,
		ServerName:    &serverName,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := f.db.Collection("notes").InsertOne(ctx, note); err != nil {
		f.t.Fatalf("failed to create test note: %v", err)
	}
	return note
}
