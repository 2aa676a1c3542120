package entry

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/bloglist-backend/internal/domain"
)

// ValidateCandidate turns loosely-typed input into a well-formed entry.
// Title, author and url are required and trimmed; likes defaults to 0 and
// must lie within [0, domain.MaxLikes]. All field errors are returned
// together. ID, owner and timestamps are left for the caller to fill.
func ValidateCandidate(c domain.EntryCandidate) (domain.Entry, error) {
	var errs []domain.FieldError

	title, ok := requiredString(c.Title)
	if !ok {
		errs = append(errs, missing("title"))
	}
	author, ok := requiredString(c.Author)
	if !ok {
		errs = append(errs, missing("author"))
	}
	url, ok := requiredString(c.URL)
	if !ok {
		errs = append(errs, missing("url"))
	}

	likes := 0
	if c.Likes != nil {
		likes = *c.Likes
		if fe, ok := checkLikes(likes); !ok {
			errs = append(errs, fe)
		}
	}

	if len(errs) > 0 {
		return domain.Entry{}, domain.NewValidationErrors(errs)
	}

	return domain.Entry{
		Title:  title,
		Author: author,
		URL:    url,
		Likes:  likes,
	}, nil
}

// checkLikes reports whether likes fits the range every store can hold.
func checkLikes(likes int) (domain.FieldError, bool) {
	switch {
	case likes < 0:
		return domain.FieldError{
			Field: "likes", Code: domain.CodeInvalidValue, Message: "must be a non-negative integer",
		}, false
	case likes > domain.MaxLikes:
		return domain.FieldError{
			Field: "likes", Code: domain.CodeInvalidValue, Message: fmt.Sprintf("must not exceed %d", domain.MaxLikes),
		}, false
	}
	return domain.FieldError{}, true
}

func requiredString(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	v := strings.TrimSpace(*s)
	return v, v != ""
}

func missing(field string) domain.FieldError {
	return domain.FieldError{Field: field, Code: domain.CodeMissingField, Message: field + " is required"}
}
