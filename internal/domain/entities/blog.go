package entities

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is a content record. Pure CRUD.
type BlogPost struct {
	ID        uuid.UUID  `json:"id"`
	AuthorID  uuid.UUID  `json:"authorId"`
	Title     string     `json:"title"`
	Slug      string     `json:"slug"`
	Content   string     `json:"content"`
	Tags      []string   `json:"tags,omitempty"`
	Published bool       `json:"published"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"-"`
}

// CreateBlogPostInput represents input for creating a blog post.
type CreateBlogPostInput struct {
	Title     string   `json:"title" binding:"required,min=3,max=200"`
	Content   string   `json:"content" binding:"required"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}
