// Package validate holds the input rules for registration and login.
package validate

import (
	"strings"

	"github.com/notekeep/notekeep/internal/app/system/apierr"
)

// Discord snowflakes encode a timestamp; ids below this floor predate the
// epoch Discord uses and cannot be real.
const snowflakeFloor = "100000000000000000"

// DiscordUserID checks the snowflake shape: all decimal digits, 17-19 of
// them, numeric value at or above the floor.
func DiscordUserID(v string) *apierr.FieldError {
	for _, r := range v {
		if r < '0' || r > '9' {
			return &apierr.FieldError{Field: "discord_user_id", Message: "Discord User ID must contain only numbers"}
		}
	}
	if len(v) < 17 || len(v) > 19 {
		return &apierr.FieldError{Field: "discord_user_id", Message: "Discord User ID must be 17-19 digits long"}
	}
	// All-digit strings compare numerically once padded to equal length:
	// shorter than the floor is always smaller, equal length compares
	// lexicographically. The floor is 18 digits, so every 17-digit id
	// fails here, exactly as the numeric comparison would.
	if len(v) < len(snowflakeFloor) || (len(v) == len(snowflakeFloor) && v < snowflakeFloor) {
		return &apierr.FieldError{Field: "discord_user_id", Message: "Invalid Discord User ID - ID too small"}
	}
	return nil
}

// Username checks the 2-32 char rule against the trimmed value. The
// trimmed value is what gets stored.
func Username(v string) *apierr.FieldError {
	trimmed := strings.TrimSpace(v)
	if len(trimmed) < 2 {
		return &apierr.FieldError{Field: "username", Message: "Username must be at least 2 characters long"}
	}
	if len(trimmed) > 32 {
		return &apierr.FieldError{Field: "username", Message: "Username must be no more than 32 characters long"}
	}
	return nil
}

// Password enforces the minimum length.
func Password(v string) *apierr.FieldError {
	if len(v) < 6 {
		return &apierr.FieldError{Field: "password", Message: "Password must be at least 6 characters long"}
	}
	return nil
}

// Registration validates all three registration inputs, collecting every
// failure so the client can report them per field.
func Registration(discordUserID, username, password string) []apierr.FieldError {
	var errs []apierr.FieldError
	if e := DiscordUserID(discordUserID); e != nil {
		errs = append(errs, *e)
	}
	if e := Username(username); e != nil {
		errs = append(errs, *e)
	}
	if e := Password(password); e != nil {
		errs = append(errs, *e)
	}
	return errs
}

// Login validates the login inputs. Only the Discord id has shape rules;
// the password is checked against the stored hash, not re-validated.
func Login(discordUserID string) []apierr.FieldError {
	if e := DiscordUserID(discordUserID); e != nil {
		return []apierr.FieldError{*e}
	}
	return nil
}
