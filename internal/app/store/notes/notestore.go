package notestore

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/notekeep/notekeep/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("notes")}
}

// NewNote carries the caller-supplied fields for Create.
type NewNote struct {
	UserID        string
	DiscordUserID string
	Content       string
	ServerID      *string
	ServerName    *string
	ChannelID     *string
	ChannelName   *string
}

// Create inserts a note, assigning its id and timestamps. CreatedAt and
// UpdatedAt start equal; UpdatedAt moves only on content updates.
func (s *Store) Create(ctx context.Context, n NewNote) (models.Note, error) {
	now := time.Now().UTC()
	note := models.Note{
		ID:            uuid.NewString(),
		UserID:        n.UserID,
		DiscordUserID: n.DiscordUserID,
		Content:       n.Content,
		ServerID:      n.ServerID,
		ServerName:    n.ServerName,
		ChannelID:     n.ChannelID,
		ChannelName:   n.ChannelName,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := s.c.InsertOne(ctx, note); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

// ListOptions narrows a List query. The zero value lists everything for
// the Discord id up to Limit.
type ListOptions struct {
	Search   string // case-insensitive substring match on content
	ServerID string // exact match
	Limit    int64
}

// List returns the Discord id's notes, newest first.
func (s *Store) List(ctx context.Context, discordUserID string, opts ListOptions) ([]models.Note, error) {
	filter := bson.M{"discord_user_id": discordUserID}
	if opts.Search != "" {
		// QuoteMeta keeps user input from being interpreted as a pattern;
		// the contract is substring match, not regex search.
		filter["content"] = primitive.Regex{Pattern: regexp.QuoteMeta(opts.Search), Options: "i"}
	}
	if opts.ServerID != "" {
		filter["server_id"] = opts.ServerID
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if opts.Limit > 0 {
		findOpts = findOpts.SetLimit(opts.Limit)
	}

	cur, err := s.c.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	notes := []models.Note{}
	if err := cur.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetOwned loads a note by id, scoped to the owning Discord id. A wrong
// owner and a missing note are indistinguishable: both return
// mongo.ErrNoDocuments, so callers cannot probe for other users' note ids.
func (s *Store) GetOwned(ctx context.Context, id, discordUserID string) (*models.Note, error) {
	var n models.Note
	err := s.c.FindOne(ctx, bson.M{"id": id, "discord_user_id": discordUserID}).Decode(&n)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// UpdateContent replaces the note's content and bumps updated_at, under the
// same ownership scoping as GetOwned. All other fields are untouched.
// Returns the updated note, or mongo.ErrNoDocuments if nothing matched.
func (s *Store) UpdateContent(ctx context.Context, id, discordUserID, content string) (*models.Note, error) {
	after := options.After
	var n models.Note
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"id": id, "discord_user_id": discordUserID},
		bson.M{"$set": bson.M{"content": content, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(after),
	).Decode(&n)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// DeleteOwned deletes a note by id, scoped to the owning Discord id.
// Returns the number of documents deleted (0 or 1).
func (s *Store) DeleteOwned(ctx context.Context, id, discordUserID string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"id": id, "discord_user_id": discordUserID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Delete deletes a note by id alone, with no ownership scoping. Only the
// bot surface uses this.
func (s *Store) Delete(ctx context.Context, id string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
