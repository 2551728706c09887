package domain

import (
	"strings"
	"time"
)

// Rating and text-policy bounds for reviews.
const (
	MinRating = 1
	MaxRating = 5

	MinCommentWords = 2
	MaxCommentWords = 10000

	MinDescriptionWords = 2
	MaxDescriptionWords = 5
)

// Review is one user's rating and text feedback for one salon. At most one
// review exists per (salon, user) pair.
//
// UserName and UserAvatar are snapshots of the author's profile taken at
// review-creation time; they are not kept in sync with later profile edits.
type Review struct {
	ID          string    `json:"id"`
	SalonID     string    `json:"salon_id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	UserAvatar  string    `json:"user_avatar"`
	Rating      int       `json:"rating"`
	Description string    `json:"description"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WordCount returns the number of whitespace-delimited tokens in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
