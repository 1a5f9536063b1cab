// internal/registry/registry_test.go
package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activities-service/internal/common/errors"
	"activities-service/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestRegistry() *Registry {
	return New(DefaultSeed())
}

func participantsOf(t *testing.T, r *Registry, activity string) []string {
	t.Helper()
	snapshot := r.List()
	act, ok := snapshot[activity]
	require.True(t, ok, "activity %q missing from snapshot", activity)
	return act.Participants
}

// ==========================
// List Tests
// ==========================

func TestRegistry_List_ReturnsSeededCatalog(t *testing.T) {
	r := createTestRegistry()

	snapshot := r.List()

	assert.Len(t, snapshot, 9)
	assert.Contains(t, snapshot, "Soccer Club")
	assert.Contains(t, snapshot, "Basketball Team")

	soccer := snapshot["Soccer Club"]
	assert.Equal(t, "Team soccer practice and friendly matches", soccer.Description)
	assert.Equal(t, 22, soccer.MaxParticipants)
	assert.Equal(t, []string{"alex@mergington.edu"}, soccer.Participants)
}

func TestRegistry_List_SnapshotIsIsolated(t *testing.T) {
	r := createTestRegistry()

	snapshot := r.List()
	snapshot["Soccer Club"].Participants[0] = "tampered@mergington.edu"

	assert.Equal(t, []string{"alex@mergington.edu"}, participantsOf(t, r, "Soccer Club"))
}

// ==========================
// Signup Tests
// ==========================

func TestRegistry_Signup(t *testing.T) {
	tests := []struct {
		name         string
		activity     string
		email        string
		expectedCode errors.ErrorCode
	}{
		{
			name:     "new participant succeeds",
			activity: "Soccer Club",
			email:    "newstudent@mergington.edu",
		},
		{
			name:         "duplicate email rejected",
			activity:     "Soccer Club",
			email:        "alex@mergington.edu",
			expectedCode: errors.ErrCodeAlreadySignedUp,
		},
		{
			name:         "unknown activity rejected",
			activity:     "Knitting Circle",
			email:        "student@mergington.edu",
			expectedCode: errors.ErrCodeActivityNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := createTestRegistry()

			err := r.Signup(tt.activity, tt.email)

			if tt.expectedCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, errors.CodeOf(err))
				return
			}

			require.NoError(t, err)
			assert.Contains(t, participantsOf(t, r, tt.activity), tt.email)
		})
	}
}

func TestRegistry_Signup_PreservesInsertionOrder(t *testing.T) {
	r := createTestRegistry()

	require.NoError(t, r.Signup("Art Club", "first@mergington.edu"))
	require.NoError(t, r.Signup("Art Club", "second@mergington.edu"))

	participants := participantsOf(t, r, "Art Club")
	assert.Equal(t, []string{"lily@mergington.edu", "first@mergington.edu", "second@mergington.edu"}, participants)
}

func TestRegistry_Signup_CapacityNotEnforced(t *testing.T) {
	// The reference behavior admits signups past max_participants.
	r := createTestRegistry()

	for i := 0; i < 15; i++ {
		email := fmt.Sprintf("student%d@mergington.edu", i)
		require.NoError(t, r.Signup("Chess Club", email))
	}

	participants := participantsOf(t, r, "Chess Club")
	assert.Equal(t, 17, len(participants))
	assert.Greater(t, len(participants), 12)
}

// ==========================
// Unregister Tests
// ==========================

func TestRegistry_Unregister(t *testing.T) {
	tests := []struct {
		name         string
		activity     string
		email        string
		expectedCode errors.ErrorCode
	}{
		{
			name:     "existing participant removed",
			activity: "Soccer Club",
			email:    "alex@mergington.edu",
		},
		{
			name:         "absent email rejected",
			activity:     "Soccer Club",
			email:        "notregistered@mergington.edu",
			expectedCode: errors.ErrCodeNotSignedUp,
		},
		{
			name:         "unknown activity rejected",
			activity:     "Knitting Circle",
			email:        "alex@mergington.edu",
			expectedCode: errors.ErrCodeActivityNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := createTestRegistry()

			err := r.Unregister(tt.activity, tt.email)

			if tt.expectedCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, errors.CodeOf(err))
				return
			}

			require.NoError(t, err)
			assert.NotContains(t, participantsOf(t, r, tt.activity), tt.email)
		})
	}
}

func TestRegistry_Unregister_PreservesRemainingOrder(t *testing.T) {
	r := createTestRegistry()

	require.NoError(t, r.Signup("Chess Club", "third@mergington.edu"))
	require.NoError(t, r.Unregister("Chess Club", "michael@mergington.edu"))

	participants := participantsOf(t, r, "Chess Club")
	assert.Equal(t, []string{"daniel@mergington.edu", "third@mergington.edu"}, participants)
}

func TestRegistry_Unregister_CaseSensitiveComparison(t *testing.T) {
	r := createTestRegistry()

	err := r.Unregister("Soccer Club", "ALEX@mergington.edu")

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotSignedUp, errors.CodeOf(err))
	assert.Contains(t, participantsOf(t, r, "Soccer Club"), "alex@mergington.edu")
}

// ==========================
// Round-trip and Isolation Tests
// ==========================

func TestRegistry_SignupUnregisterRoundTrip(t *testing.T) {
	r := createTestRegistry()
	email := "roundtrip@mergington.edu"

	require.NoError(t, r.Signup("Drama Club", email))
	require.NoError(t, r.Unregister("Drama Club", email))

	// No residual state blocks re-registration.
	require.NoError(t, r.Signup("Drama Club", email))
	assert.Contains(t, participantsOf(t, r, "Drama Club"), email)
}

func TestRegistry_DoubleUnregisterRejected(t *testing.T) {
	r := createTestRegistry()

	require.NoError(t, r.Unregister("Soccer Club", "alex@mergington.edu"))

	err := r.Unregister("Soccer Club", "alex@mergington.edu")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotSignedUp, errors.CodeOf(err))
}

func TestRegistry_ActivitiesAreIndependent(t *testing.T) {
	r := createTestRegistry()
	email := "testuser@mergington.edu"

	require.NoError(t, r.Signup("Soccer Club", email))
	require.NoError(t, r.Signup("Art Club", email))
	require.NoError(t, r.Unregister("Soccer Club", email))

	assert.NotContains(t, participantsOf(t, r, "Soccer Club"), email)
	assert.Contains(t, participantsOf(t, r, "Art Club"), email)
}

func TestRegistry_SoccerClubScenario(t *testing.T) {
	r := createTestRegistry()

	err := r.Signup("Soccer Club", "alex@mergington.edu")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeAlreadySignedUp, errors.CodeOf(err))

	require.NoError(t, r.Signup("Soccer Club", "new@x.edu"))
	participants := participantsOf(t, r, "Soccer Club")
	assert.Len(t, participants, 2)
	assert.Contains(t, participants, "alex@mergington.edu")
	assert.Contains(t, participants, "new@x.edu")

	require.NoError(t, r.Unregister("Soccer Club", "alex@mergington.edu"))
	assert.Len(t, participantsOf(t, r, "Soccer Club"), 1)
}

// ==========================
// Reset and Concurrency Tests
// ==========================

func TestRegistry_New_DoesNotAliasSeed(t *testing.T) {
	seed := map[string]models.Activity{
		"Robotics Club": {
			Description:     "Build and program robots",
			Schedule:        "Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 10,
			Participants:    []string{"sam@mergington.edu"},
		},
	}
	r := New(seed)

	seed["Robotics Club"].Participants[0] = "tampered@mergington.edu"

	assert.Equal(t, []string{"sam@mergington.edu"}, participantsOf(t, r, "Robotics Club"))
}

func TestRegistry_Reset_RestoresSeedState(t *testing.T) {
	r := createTestRegistry()

	require.NoError(t, r.Signup("Gym Class", "extra@mergington.edu"))
	r.Reset(DefaultSeed())

	assert.Equal(t, []string{"john@mergington.edu", "olivia@mergington.edu"},
		participantsOf(t, r, "Gym Class"))
}

func TestRegistry_ConcurrentSignups_NoDuplicates(t *testing.T) {
	r := createTestRegistry()
	email := "racer@mergington.edu"

	var wg sync.WaitGroup
	successes := make(chan struct{}, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.Signup("Science Club", email); err == nil {
				successes <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(successes)

	assert.Len(t, successes, 1)

	count := 0
	for _, p := range participantsOf(t, r, "Science Club") {
		if p == email {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRegistry_ConcurrentMixedOperations_ConsistentFinalState(t *testing.T) {
	r := createTestRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		email := fmt.Sprintf("student%d@mergington.edu", i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Signup("Math Olympiad", email)
			_ = r.Unregister("Math Olympiad", email)
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{"lucas@mergington.edu"}, participantsOf(t, r, "Math Olympiad"))
}
