// Package registry holds the in-memory activity catalog and its rosters.
package registry

import (
	"sync"

	"activities-service/internal/common/errors"
	"activities-service/internal/common/metrics"
	"activities-service/internal/models"
)

// Registry stores activities and their participant rosters. All state is
// process-memory only; it is seeded once at startup and mutated solely
// through Signup and Unregister. A single lock guards the whole map: the
// catalog is small and every operation touches one roster for the time it
// takes to mutate one slice.
//
// MaxParticipants is carried and served but not enforced on signup.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*models.Activity
}

// New creates a Registry populated from the given seed. The seed map is
// deep-copied so later registry mutations never alias caller state.
func New(seed map[string]models.Activity) *Registry {
	r := &Registry{
		activities: make(map[string]*models.Activity, len(seed)),
	}
	r.load(seed)
	return r
}

// List returns a snapshot of the full catalog keyed by activity name.
// Rosters are copied so callers can serialize without holding the lock.
func (r *Registry) List() map[string]models.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]models.Activity, len(r.activities))
	for name, act := range r.activities {
		// make keeps empty rosters non-nil so they serialize as [].
		participants := make([]string, len(act.Participants))
		copy(participants, act.Participants)
		out[name] = models.Activity{
			Description:     act.Description,
			Schedule:        act.Schedule,
			MaxParticipants: act.MaxParticipants,
			Participants:    participants,
		}
	}
	return out
}

// Signup appends email to the activity's roster. Duplicate emails are
// rejected; comparison is exact string equality.
func (r *Registry) Signup(activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, exists := r.activities[activityName]
	if !exists {
		return errors.NewActivityNotFoundError(activityName)
	}

	for _, p := range act.Participants {
		if p == email {
			return errors.NewAlreadySignedUpError(email, activityName)
		}
	}

	act.Participants = append(act.Participants, email)
	metrics.RosterSize.WithLabelValues(activityName).Set(float64(len(act.Participants)))
	return nil
}

// Unregister removes email from the activity's roster, preserving the
// relative order of the remaining entries.
func (r *Registry) Unregister(activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, exists := r.activities[activityName]
	if !exists {
		return errors.NewActivityNotFoundError(activityName)
	}

	for i, p := range act.Participants {
		if p == email {
			act.Participants = append(act.Participants[:i], act.Participants[i+1:]...)
			metrics.RosterSize.WithLabelValues(activityName).Set(float64(len(act.Participants)))
			return nil
		}
	}

	return errors.NewNotSignedUpError(email, activityName)
}

// Reset discards all state and reloads the registry from seed. Test
// harnesses use this between cases; production code never calls it.
func (r *Registry) Reset(seed map[string]models.Activity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities = make(map[string]*models.Activity, len(seed))
	r.load(seed)
}

// load populates the map from a seed. Callers hold the write lock (or own
// the registry exclusively during construction).
func (r *Registry) load(seed map[string]models.Activity) {
	for name, act := range seed {
		r.activities[name] = &models.Activity{
			Description:     act.Description,
			Schedule:        act.Schedule,
			MaxParticipants: act.MaxParticipants,
			Participants:    append([]string(nil), act.Participants...),
		}
		metrics.RosterSize.WithLabelValues(name).Set(float64(len(act.Participants)))
	}
}
