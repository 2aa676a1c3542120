package entry

import (
	"github.com/heartmarshall/bloglist-backend/internal/domain"
)

// Action is a mutation an identity may attempt on an entry.
type Action int

const (
	ActionCreate Action = iota
	ActionUpdateLikes
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionUpdateLikes:
		return "update_likes"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// AuthorizeMutation decides whether identity may perform action on e.
// identity is nil for anonymous callers; e is ignored for ActionCreate.
//
// Likes updates are open to anyone, including anonymous callers. Creation
// needs an identity and deletion needs the identity that created the entry.
func AuthorizeMutation(action Action, identity *domain.Identity, e *domain.Entry) error {
	switch action {
	case ActionUpdateLikes:
		return nil
	case ActionCreate:
		if identity == nil {
			return domain.ErrUnauthorized
		}
		return nil
	case ActionDelete:
		if identity == nil {
			return domain.ErrUnauthorized
		}
		if e == nil || e.OwnerID != identity.UserID {
			return domain.ErrNotOwner
		}
		return nil
	default:
		return domain.ErrForbidden
	}
}
