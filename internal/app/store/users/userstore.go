package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/notekeep/notekeep/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateDiscordID is returned when attempting to register a Discord id
// that already has a user.
var ErrDuplicateDiscordID = errors.New("a user with this Discord id already exists")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByDiscordID loads a user by Discord id.
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByDiscordID(ctx context.Context, discordUserID string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"discord_user_id": discordUserID}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user after checking that the Discord id is unused.
//
// The check-then-insert is not atomic: there is no unique index on
// discord_user_id, so two concurrent registrations of the same id can both
// succeed. That window is a documented gap of this service, not something
// the store tries to close.
func (s *Store) Create(ctx context.Context, discordUserID, username, passwordHash string) (models.User, error) {
	err := s.c.FindOne(ctx, bson.M{"discord_user_id": discordUserID}).Err()
	if err == nil {
		return models.User{}, ErrDuplicateDiscordID
	}
	if err != mongo.ErrNoDocuments {
		return models.User{}, err
	}

	u := models.User{
		ID:            uuid.NewString(),
		DiscordUserID: discordUserID,
		Username:      username,
		PasswordHash:  passwordHash,
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// EnsureForDiscordID returns the user for the given Discord id, creating a
// placeholder account if none exists yet. The placeholder gets a synthesized
// username and no password hash, so it cannot log in through the password
// flow; it exists so bot-created notes always have an owner.
func (s *Store) EnsureForDiscordID(ctx context.Context, discordUserID string) (*models.User, error) {
	u, err := s.GetByDiscordID(ctx, discordUserID)
	if err == nil {
		return u, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	created := models.User{
		ID:            uuid.NewString(),
		DiscordUserID: discordUserID,
		Username:      "User_" + discordUserID,
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, created); err != nil {
		return nil, err
	}
	return &created, nil
}
