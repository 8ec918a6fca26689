// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package feed

// Vector is a fixed-length numeric vector indexed by vocabulary dimension.
type Vector []float64

// Media is an attachment on a post.
type Media struct {
	// URL is the location of the attachment.
	URL string `json:"url"`

	// Type is the attachment kind, e.g. "image".
	Type string `json:"type"`
}

// Post is a snapshot of a published post as returned by the PostStore.
// Zero values stand in for absent fields: a zero Timestamp means "now" for
// recency purposes and missing counters count as zero.
type Post struct {
	// ID is assigned by the store.
	ID string `json:"id"`

	// Content is the free-text body. May be empty for media-only posts.
	Content string `json:"content"`

	// Media is the optional attachment.
	Media *Media `json:"media,omitempty"`

	// Likes is the number of likes.
	Likes int64 `json:"likes"`

	// Views is the number of views.
	Views int64 `json:"views"`

	// CommentsCount is the number of comments.
	CommentsCount int64 `json:"comments_count"`

	// Timestamp is the creation time in milliseconds since the Unix epoch.
	Timestamp int64 `json:"timestamp"`
}

// HasMedia reports whether the post carries an attachment.
func (p *Post) HasMedia() bool {
	return p.Media != nil && p.Media.URL != ""
}

// ScoredPost is a Post plus the fields derived for one ranking cycle.
// It is rebuilt every cycle and never written back to the store.
type ScoredPost struct {
	Post

	// BaseScore is the engagement and recency score.
	BaseScore float64 `json:"base_score"`

	// Embedding is the bag-of-words vector of the post content.
	// Nil for trending results, which do not need it.
	Embedding Vector `json:"-"`

	// Similarity is the cosine similarity between Embedding and the
	// reader's interest vector.
	Similarity float64 `json:"similarity"`

	// TotalScore blends BaseScore and Similarity.
	TotalScore float64 `json:"total_score"`
}
