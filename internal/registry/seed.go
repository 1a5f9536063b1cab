// internal/registry/seed.go
package registry

import (
	stderrors "errors"

	"activities-service/internal/common/errors"
	"activities-service/internal/models"
	"activities-service/pkg/catalog"
)

// DefaultSeed returns the reference catalog of nine Mergington High School
// activities with their initial rosters.
func DefaultSeed() map[string]models.Activity {
	return map[string]models.Activity{
		"Soccer Club": {
			Description:     "Team soccer practice and friendly matches",
			Schedule:        "Mondays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"alex@mergington.edu"},
		},
		"Basketball Team": {
			Description:     "Competitive basketball training and games",
			Schedule:        "Tuesdays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu", "isabella@mergington.edu"},
		},
		"Art Club": {
			Description:     "Painting, drawing, and mixed media projects",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"lily@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Theater productions and acting workshops",
			Schedule:        "Tuesdays and Thursdays, 4:30 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"noah@mergington.edu", "ava@mergington.edu"},
		},
		"Math Olympiad": {
			Description:     "Advanced problem-solving and math competitions",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"lucas@mergington.edu"},
		},
		"Science Club": {
			Description:     "Hands-on experiments and STEM projects",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"mia@mergington.edu", "ethan@mergington.edu"},
		},
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}

// SeedFromFile loads and validates a catalog file and converts it to the
// seed shape the registry consumes.
func SeedFromFile(path string) (map[string]models.Activity, error) {
	cat, err := catalog.Load(path)
	if err != nil {
		if stderrors.Is(err, catalog.ErrInvalid) {
			return nil, errors.NewCatalogValidationFailedError(err.Error())
		}
		return nil, errors.NewCatalogLoadFailedError(path, err)
	}

	seed := make(map[string]models.Activity, len(cat.Activities))
	for _, act := range cat.Activities {
		participants := act.Participants
		if participants == nil {
			participants = []string{}
		}
		seed[act.Name] = models.Activity{
			Description:     act.Description,
			Schedule:        act.Schedule,
			MaxParticipants: act.MaxParticipants,
			Participants:    participants,
		}
	}
	return seed, nil
}
