package content

// moderatorTransitions is the fixed status-only transition table for
// moderators. A current status absent from the table has no legal
// outgoing transitions. Admins are not table-constrained.
var moderatorTransitions = map[Status][]Status{
	StatusDraft:     {StatusPending},
	StatusPending:   {StatusDraft},
	StatusPublished: {StatusArchived},
	StatusArchived:  {StatusDraft, StatusPublished},
}

// TransitionEngine decides whether a status move is legal. It is a
// Mealy machine keyed by (role, contentChanged) as well as state: the
// same current -> requested edge can be legal for a status-only flip
// and illegal when the same request also edits content.
type TransitionEngine struct{}

// NewTransitionEngine creates the transition engine.
func NewTransitionEngine() *TransitionEngine {
	return &TransitionEngine{}
}

// Check validates a requested status move. It returns nil when the
// move is legal and a *TransitionError carrying the attempted edge
// otherwise. Deterministic and total: every input maps to exactly one
// outcome.
//
// Rules, in order:
//  1. Admin transitions are unconstrained.
//  2. For moderators, any substantive edit to published content forces
//     re-review: the only legal requested status is pending. An edit
//     cannot keep content live, and an edit from any other status
//     cannot request published directly.
//  3. Status-only moderator changes consult the fixed table.
//  4. No actor, or an unknown role, is always illegal.
func (e *TransitionEngine) Check(actor *Actor, current, requested Status, contentChanged bool) error {
	if actor == nil {
		return &TransitionError{From: current, To: requested, ContentChanged: contentChanged}
	}

	switch actor.Role {
	case RoleAdmin:
		return nil

	case RoleModerator:
		if contentChanged {
			// Live content that gets edited must land in pending.
			if current == StatusPublished {
				if requested == StatusPending {
					return nil
				}
				return &TransitionError{Role: actor.Role, From: current, To: requested, ContentChanged: contentChanged}
			}
			// Edited content never goes live in the same request, from
			// any state: published is only reachable for untouched
			// content. The archived republish edge is status-only.
			if requested == StatusPublished {
				return &TransitionError{Role: actor.Role, From: current, To: requested, ContentChanged: contentChanged}
			}
		}
		// Keeping the current status is not a transition. Without this
		// a moderator could never save an edit to their own draft.
		if requested == current {
			return nil
		}
		for _, allowed := range moderatorTransitions[current] {
			if requested == allowed {
				return nil
			}
		}
		return &TransitionError{Role: actor.Role, From: current, To: requested, ContentChanged: contentChanged}

	default:
		return &TransitionError{Role: actor.Role, From: current, To: requested, ContentChanged: contentChanged}
	}
}
