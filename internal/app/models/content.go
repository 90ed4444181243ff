package models

import "time"

// Blog is a published blog post with SEO meta fields and a single image.
// Uploading a new image on update deletes the previous file.
type Blog struct {
	ID              int64     `json:"id" db:"id"`
	MetaTitle       string    `json:"meta_title" db:"meta_title"`
	MetaDescription string    `json:"meta_description" db:"meta_description"`
	MetaKeywords    string    `json:"meta_keywords" db:"meta_keywords"`
	Title           string    `json:"title" db:"title"`
	BlogURL         string    `json:"blog_url" db:"blog_url"`
	AuthorName      string    `json:"author_name" db:"author_name"`
	Category        string    `json:"category" db:"category"`
	BlogDate        string    `json:"blog_date" db:"blog_date"`
	BlogDescription string    `json:"blog_description" db:"blog_description"`
	BlogImage       *FileMeta `json:"blog_img" db:"blog_img"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// Event is a published event announcement. Same image semantics as Blog.
type Event struct {
	ID               int64     `json:"id" db:"id"`
	MetaTitle        string    `json:"meta_title" db:"meta_title"`
	MetaDescription  string    `json:"meta_description" db:"meta_description"`
	MetaKeywords     string    `json:"meta_keywords" db:"meta_keywords"`
	EventTitle       string    `json:"event_title" db:"event_title"`
	EventURL         string    `json:"event_url" db:"event_url"`
	AuthorName       string    `json:"author_name" db:"author_name"`
	Category         string    `json:"category" db:"category"`
	EventDate        string    `json:"event_date" db:"event_date"`
	EventDescription string    `json:"event_description" db:"event_description"`
	EventImage       *FileMeta `json:"event_img" db:"event_img"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}
