package domain

// Post is a news item; the backend expires it seven days after creation.
type Post struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	AuthorID       int64  `json:"authorId"`
	AuthorUsername string `json:"authorUsername"`
	AuthorRole     string `json:"authorRole"`
	CreatedAt      string `json:"createdAt"`
	ExpiresAt      string `json:"expiresAt"`
}

type Draft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
