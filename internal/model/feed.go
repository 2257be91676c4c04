package model

import "time"

// FeedMode selects which template set the feed simulator draws from.
type FeedMode string

const (
	FeedModeMempool FeedMode = "mempool"
	FeedModeBlock   FeedMode = "block"
)

// FeedEvent is one rendered synthetic network event.
type FeedEvent struct {
	Time time.Time `json:"time"`
	Mode FeedMode  `json:"mode"`
	Text string    `json:"text"`
}
