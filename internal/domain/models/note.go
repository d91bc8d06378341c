// internal/domain/models/note.go
package models

import (
	"time"
)

// Note is a free-text note owned by one user.
//
// DiscordUserID is a denormalized copy of the owner's Discord id, written
// once at creation. The bot endpoints query by it directly so they never
// have to resolve a user record first. It is never updated independently
// of UserID.
//
// The server/channel fields are origin metadata supplied by the Discord
// bot. They serialize as null when unset, matching what clients already
// expect.
type Note struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	DiscordUserID string    `bson:"discord_user_id" json:"discord_user_id"`
	Content       string    `bson:"content" json:"content"`
	ServerID      *string   `bson:"server_id,omitempty" json:"server_id"`
	ServerName    *string   `bson:"server_name,omitempty" json:"server_name"`
	ChannelID     *string   `bson:"channel_id,omitempty" json:"channel_id"`
	ChannelName   *string   `bson:"channel_name,omitempty" json:"channel_name"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
