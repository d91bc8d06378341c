// internal/domain/models/user.go
package models

import (
	"time"
)

// User is an account keyed by a Discord snowflake.
//
// NOTE:
//   - ID is an application-generated UUID string stored in the "id" field,
//     not the Mongo ObjectID. The bot and web clients address users and
//     notes by these string ids, so they must survive round trips verbatim.
//   - DiscordUserID is immutable after creation.
//   - A user auto-provisioned by note creation has an empty PasswordHash
//     and cannot log in through the password flow.
type User struct {
	ID            string    `bson:"id" json:"id"`
	DiscordUserID string    `bson:"discord_user_id" json:"discord_user_id"`
	Username      string    `bson:"username" json:"username"`
	PasswordHash  string    `bson:"password_hash" json:"-"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// UserResponse is the wire shape for user records. PasswordHash is never
// serialized, but keeping a separate response type makes that contract
// explicit at the handler level.
type UserResponse struct {
	ID            string    `json:"id"`
	DiscordUserID string    `json:"discord_user_id"`
	Username      string    `json:"username"`
	CreatedAt     time.Time `json:"created_at"`
}

// Response converts a stored user to its wire shape.
func (u User) Response() UserResponse {
	return UserResponse{
		ID:            u.ID,
		DiscordUserID: u.DiscordUserID,
		Username:      u.Username,
		CreatedAt:     u.CreatedAt,
	}
}
