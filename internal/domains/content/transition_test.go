package content

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func admin() *Actor {
	return &Actor{ID: uuid.New(), Role: RoleAdmin}
}

func moderator() *Actor {
	return &Actor{ID: uuid.New(), Role: RoleModerator}
}

func TestTransitionEngine_AdminUnconstrained(t *testing.T) {
	engine := NewTransitionEngine()
	statuses := []Status{StatusDraft, StatusPending, StatusPublished, StatusArchived}

	for _, from := range statuses {
		for _, to := range statuses {
			for _, changed := range []bool{false, true} {
				assert.NoError(t, engine.Check(admin(), from, to, changed),
					"admin %s -> %s (changed=%t) must be legal", from, to, changed)
			}
		}
	}
}

func TestTransitionEngine_ModeratorStatusOnlyTable(t *testing.T) {
	engine := NewTransitionEngine()

	tests := []struct {
		name  string
		from  Status
		to    Status
		legal bool
	}{
		{"draft to pending", StatusDraft, StatusPending, true},
		{"draft to published is never direct", StatusDraft, StatusPublished, false},
		{"draft to archived", StatusDraft, StatusArchived, false},
		{"pending back to draft", StatusPending, StatusDraft, true},
		{"pending to published needs an admin", StatusPending, StatusPublished, false},
		{"published to archived", StatusPublished, StatusArchived, true},
		{"published to draft", StatusPublished, StatusDraft, false},
		{"published to pending without edit", StatusPublished, StatusPending, false},
		{"archived back to draft", StatusArchived, StatusDraft, true},
		{"archived republished without edit", StatusArchived, StatusPublished, true},
		{"archived to pending", StatusArchived, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := engine.Check(moderator(), tt.from, tt.to, false)
			if tt.legal {
				assert.NoError(t, err)
			} else {
				var te *TransitionError
				require.ErrorAs(t, err, &te)
				assert.Equal(t, tt.from, te.From)
				assert.Equal(t, tt.to, te.To)
				assert.False(t, te.ContentChanged)
			}
		})
	}
}

func TestTransitionEngine_ModeratorEditForcesReview(t *testing.T) {
	engine := NewTransitionEngine()

	// Any substantive edit to live content must land in pending.
	assert.NoError(t, engine.Check(moderator(), StatusPublished, StatusPending, true))

	// Keeping the content live through an edit is rejected, including
	// the published -> published self-edge.
	for _, to := range []Status{StatusDraft, StatusPublished, StatusArchived} {
		err := engine.Check(moderator(), StatusPublished, to, true)
		var te *TransitionError
		require.ErrorAs(t, err, &te, "published -> %s with edit must be illegal", to)
		assert.True(t, te.ContentChanged)
	}
}

func TestTransitionEngine_ModeratorSameStatusEdit(t *testing.T) {
	engine := NewTransitionEngine()

	// Editing your own draft without moving it is an everyday
	// operation, not a transition.
	assert.NoError(t, engine.Check(moderator(), StatusDraft, StatusDraft, true))
	assert.NoError(t, engine.Check(moderator(), StatusPending, StatusPending, true))
	assert.NoError(t, engine.Check(moderator(), StatusArchived, StatusArchived, true))

	// Status-only no-ops too.
	assert.NoError(t, engine.Check(moderator(), StatusDraft, StatusDraft, false))
	assert.NoError(t, engine.Check(moderator(), StatusPublished, StatusPublished, false))
}

func TestTransitionEngine_ModeratorEditedContentNeverGoesLive(t *testing.T) {
	engine := NewTransitionEngine()

	// The archived republish edge is status-only: attaching a content
	// edit to it would put a never-reviewed body live.
	assert.NoError(t, engine.Check(moderator(), StatusArchived, StatusPublished, false))

	for _, from := range []Status{StatusDraft, StatusPending, StatusArchived} {
		err := engine.Check(moderator(), from, StatusPublished, true)
		var te *TransitionError
		require.ErrorAs(t, err, &te, "%s -> published with edit must be illegal", from)
		assert.True(t, te.ContentChanged)
	}
}

func TestTransitionEngine_DraftNeverStraightToPublished(t *testing.T) {
	engine := NewTransitionEngine()

	for _, changed := range []bool{false, true} {
		err := engine.Check(moderator(), StatusDraft, StatusPublished, changed)
		assert.Error(t, err, "draft -> published (changed=%t) must be illegal", changed)
	}
}

func TestTransitionEngine_NoActor(t *testing.T) {
	engine := NewTransitionEngine()

	err := engine.Check(nil, StatusDraft, StatusPending, false)
	var te *TransitionError
	require.ErrorAs(t, err, &te)
}

func TestTransitionEngine_UnknownRole(t *testing.T) {
	engine := NewTransitionEngine()

	ghost := &Actor{ID: uuid.New(), Role: Role("editor")}
	err := engine.Check(ghost, StatusDraft, StatusPending, false)
	assert.Error(t, err, "unknown roles carry no permissions")
}

// Every input maps to exactly one outcome, no panics, no unhandled
// combinations.
func TestTransitionEngine_Total(t *testing.T) {
	engine := NewTransitionEngine()
	statuses := []Status{StatusDraft, StatusPending, StatusPublished, StatusArchived}
	actors := []*Actor{nil, admin(), moderator(), {ID: uuid.New(), Role: Role("other")}}

	for _, actor := range actors {
		for _, from := range statuses {
			for _, to := range statuses {
				for _, changed := range []bool{false, true} {
					first := engine.Check(actor, from, to, changed)
					second := engine.Check(actor, from, to, changed)
					assert.Equal(t, first == nil, second == nil, "engine must be deterministic")
				}
			}
		}
	}
}
