package content

// Policy is the role-based authorization matrix for content mutations.
// All methods are pure and side-effect free: no I/O, no caching. They
// must be evaluated fresh on every request because role and ownership
// can change between requests.
type Policy struct{}

// NewPolicy creates the authorization policy.
func NewPolicy() *Policy {
	return &Policy{}
}

// CanModify reports whether actor may touch item at all.
// Admins may modify anything; moderators only content they own.
// Anonymous requests may modify nothing.
func (p *Policy) CanModify(actor *Actor, item *ContentItem) bool {
	if actor == nil {
		return false
	}
	switch actor.Role {
	case RoleAdmin:
		return true
	case RoleModerator:
		return item.AuthorOwnerID == actor.ID
	default:
		return false
	}
}

// DefaultStatus is the status a newly created item lands in when the
// request does not ask for one. Admin content goes live immediately;
// moderator content waits for review.
func (p *Policy) DefaultStatus(actor *Actor) Status {
	if actor == nil {
		return StatusDraft
	}
	switch actor.Role {
	case RoleAdmin:
		return StatusPublished
	case RoleModerator:
		return StatusPending
	default:
		return StatusDraft
	}
}

// CanSetStatus reports whether actor may ask for status directly.
// Moderators can never set published themselves - publication goes
// through review or an admin.
func (p *Policy) CanSetStatus(actor *Actor, status Status) bool {
	if actor == nil {
		return false
	}
	switch actor.Role {
	case RoleAdmin:
		return status.Valid()
	case RoleModerator:
		switch status {
		case StatusDraft, StatusPending, StatusArchived:
			return true
		default:
			return false
		}
	default:
		return false
	}
}
