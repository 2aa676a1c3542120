package stats

import (
	"github.com/heartmarshall/bloglist-backend/internal/domain"
)

// AuthorCount is the number of entries credited to one author.
type AuthorCount struct {
	Author string
	Count  int
}

// AuthorLikes is the like total across all entries of one author.
type AuthorLikes struct {
	Author string
	Likes  int
}

// TotalLikes sums likes over entries. An empty slice yields 0.
func TotalLikes(entries []domain.Entry) int {
	total := 0
	for _, e := range entries {
		total += e.Likes
	}
	return total
}

// MostPopular returns the entry with the most likes. Ties go to the entry
// that appears first.
func MostPopular(entries []domain.Entry) (domain.Entry, error) {
	if len(entries) == 0 {
		return domain.Entry{}, domain.ErrEmptyInput
	}

	best := entries[0]
	for _, e := range entries[1:] {
		if e.Likes > best.Likes {
			best = e
		}
	}
	return best, nil
}

// MostProlificAuthor returns the author with the most entries. Authors are
// compared as exact strings; ties go to the author encountered first.
func MostProlificAuthor(entries []domain.Entry) (AuthorCount, error) {
	author, n, err := maxByAuthor(entries, func(domain.Entry) int { return 1 })
	if err != nil {
		return AuthorCount{}, err
	}
	return AuthorCount{Author: author, Count: n}, nil
}

// MostLikedAuthor returns the author whose entries have the most likes in
// total, with the same tie rule as MostProlificAuthor.
func MostLikedAuthor(entries []domain.Entry) (AuthorLikes, error) {
	author, n, err := maxByAuthor(entries, func(e domain.Entry) int { return e.Likes })
	if err != nil {
		return AuthorLikes{}, err
	}
	return AuthorLikes{Author: author, Likes: n}, nil
}

// maxByAuthor groups entries by author, summing weight per entry, and picks
// the largest group. Groups are kept in first-seen order so the earliest
// author wins ties.
func maxByAuthor(entries []domain.Entry, weight func(domain.Entry) int) (string, int, error) {
	if len(entries) == 0 {
		return "", 0, domain.ErrEmptyInput
	}

	totals := make(map[string]int)
	order := make([]string, 0)
	for _, e := range entries {
		if _, seen := totals[e.Author]; !seen {
			order = append(order, e.Author)
		}
		totals[e.Author] += weight(e)
	}

	best := order[0]
	for _, author := range order[1:] {
		if totals[author] > totals[best] {
			best = author
		}
	}
	return best, totals[best], nil
}
