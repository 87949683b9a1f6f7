// Package library holds the list helpers shared by the article library and the
// admin views: display names, search filtering, and pagination.
package library

import (
	"regexp"
	"strings"
)

const (
	DefaultPerPage = 10
	untitled       = "Untitled Article"
)

var stampPattern = regexp.MustCompile(`_?\d{8}(_\d{6})?\.(md|txt)$`)

// DisplayName turns a stored filename such as article_deep_sea_20240101.md
// into a human title ("deep sea").
func DisplayName(filename string) string {
	name := strings.TrimPrefix(filename, "article_")
	name = stampPattern.ReplaceAllString(name, "")
	name = strings.TrimSuffix(name, ".md")
	name = strings.TrimSuffix(name, ".txt")
	name = strings.TrimSpace(strings.ReplaceAll(name, "_", " "))
	if name == "" {
		return untitled
	}
	return name
}

// Filter keeps the items where any field contains term, case-insensitively.
// A blank term keeps everything.
func Filter[T any](items []T, term string, fields ...func(T) string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), term) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// TotalPages is at least 1 so an empty list still has a page to show.
func TotalPages(total, perPage int) int {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

// Paginate returns the 1-based page of items. Out-of-range pages are clamped.
func Paginate[T any](items []T, page, perPage int) []T {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	pages := TotalPages(len(items), perPage)
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}
	}
	end := min(start+perPage, len(items))
	return items[start:end]
}

// Page is one page of a filtered list.
type Page[T any] struct {
	Items      []T
	Page       int
	TotalPages int
	Total      int
}

// Query is a search term plus a 1-based page number.
type Query struct {
	Search string
	Page   int
}

// Select filters items by q.Search over fields and returns the requested page.
func Select[T any](items []T, q Query, perPage int, fields ...func(T) string) Page[T] {
	filtered := Filter(items, q.Search, fields...)
	pages := TotalPages(len(filtered), perPage)

	page := q.Page
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	return Page[T]{
		Items:      Paginate(filtered, page, perPage),
		Page:       page,
		TotalPages: pages,
		Total:      len(filtered),
	}
}
