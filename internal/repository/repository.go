// Package repository owns the application's data.
//
// Posts live in process memory only: PostRepository is the single owner of
// the collection, and every read hands out copies so callers never share
// state with the store.
package repository
