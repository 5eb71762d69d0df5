package api

import "time"

// --- Response Envelopes ---

type articleEnvelope struct {
	Article Article `json:"article"`
}

type tagsEnvelope struct {
	Tags []string `json:"tags"`
}

type errorsEnvelope struct {
	Errors map[string][]string `json:"errors"`
}

// --- Article ---

// Profile is the public view of an article author.
type Profile struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}

// Article is a published article as returned by the API.
type Article struct {
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Body           string    `json:"body"`
	TagList        []string  `json:"tagList"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Favorited      bool      `json:"favorited"`
	FavoritesCount int       `json:"favoritesCount"`
	Author         Profile   `json:"author"`
}

// ArticleFields is the writable part of an article sent on create and update.
type ArticleFields struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	TagList     []string `json:"tagList"`
}
