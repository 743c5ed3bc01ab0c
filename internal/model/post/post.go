// Package post holds the blog post entity, the request payloads the HTTP
// layer binds into, and the domain errors raised while handling them.
package post

import "time"

// Post is a single blog entry. ID is assigned by the store at creation and
// never changes afterwards.
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Author      string     `json:"author"`
	PublishDate *time.Time `json:"publishDate,omitempty"`
}
