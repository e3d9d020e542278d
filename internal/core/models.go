package core

import (
	"txlens/internal/chain"
)

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// FeedEntry is one row of an address feed. Method is empty when the
// transaction has no method label.
type FeedEntry struct {
	Transaction *chain.Transaction
	Reward      *chain.RewardEntry
	Method      string
}

// FeedPage is a page of an address feed. NextCursor is empty on the last page.
type FeedPage struct {
	Entries    []FeedEntry
	NextCursor string
}
