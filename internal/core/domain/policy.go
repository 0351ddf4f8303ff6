package domain

// Action is an operation the access policy can decide on.
type Action string

const (
	ActionCreateComplaint     Action = "complaint:create"
	ActionReadComplaint       Action = "complaint:read"
	ActionTransitionComplaint Action = "complaint:transition"
	ActionManageHostels       Action = "hostel:manage"
	ActionManageUsers         Action = "user:manage"
)

// Authorize decides whether actor may perform action on target. It is the
// single source of truth for role-based access; handlers and services must
// not branch on roles themselves.
//
// Rules are evaluated in order, first match wins. Denials return
// ErrForbidden: the policy deliberately does not hide a complaint's
// existence behind a 404.
//
// target is the complaint being acted on; it must be nil for
// non-complaint actions and non-nil for complaint read/transition.
func Authorize(actor *User, action Action, target *Complaint) error {
	if actor == nil {
		return ErrForbidden
	}

	switch action {
	case ActionCreateComplaint:
		if actor.Role == RoleStudent {
			return nil
		}

	case ActionReadComplaint:
		switch actor.Role {
		case RoleAdmin:
			return nil
		case RoleWarden:
			if target != nil && target.Hostel == actor.Hostel {
				return nil
			}
		case RoleStudent:
			if target != nil && target.CreatedBy == actor.ID {
				return nil
			}
		}

	case ActionTransitionComplaint:
		switch actor.Role {
		case RoleAdmin:
			return nil
		case RoleWarden:
			if target != nil && target.Hostel == actor.Hostel {
				return nil
			}
		}

	case ActionManageHostels, ActionManageUsers:
		if actor.Role == RoleAdmin {
			return nil
		}
	}

	return ErrForbidden
}

// ComplaintScope is the listing filter the policy derives for an actor:
// students see their own complaints, wardens their hostel, admins everything.
type ComplaintScope struct {
	CreatedBy string // non-empty = restrict to this creator
	Hostel    string // non-empty = restrict to this hostel
}

// ScopeFor returns the complaint listing scope for actor.
func ScopeFor(actor *User) ComplaintScope {
	switch actor.Role {
	case RoleStudent:
		return ComplaintScope{CreatedBy: actor.ID}
	case RoleWarden:
		return ComplaintScope{Hostel: actor.Hostel}
	default:
		return ComplaintScope{}
	}
}
