// cmd/tools/catalog-tool/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"activities-service/pkg/catalog"
)

func main() {
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	// Add command flags
	pathAdd := addCmd.String("path", "configs/activities.json", "Path to catalog file")
	name := addCmd.String("name", "", "Activity name (e.g., Robotics Club)")
	description := addCmd.String("description", "", "Description")
	schedule := addCmd.String("schedule", "", "Schedule (e.g., Thursdays, 4:00 PM - 5:30 PM)")
	maxParticipants := addCmd.Int("maxParticipants", 0, "Capacity (positive integer)")

	// Validate command flags
	pathValidate := validateCmd.String("path", "configs/activities.json", "Path to catalog file")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add":
		addCmd.Parse(os.Args[2:])
		if *name == "" || *description == "" || *schedule == "" || *maxParticipants < 1 {
			fmt.Println("Error: name, description, schedule, and a positive maxParticipants are required for add.")
			addCmd.Usage()
			os.Exit(1)
		}
		if err := addActivity(*pathAdd, catalog.Activity{
			Name:            *name,
			Description:     *description,
			Schedule:        *schedule,
			MaxParticipants: *maxParticipants,
			Participants:    []string{},
		}); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Added %q to %s\n", *name, *pathAdd)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		cat, err := catalog.Load(*pathValidate)
		if err != nil {
			fmt.Printf("Catalog invalid: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Catalog valid: %d activities\n", len(cat.Activities))

	default:
		help()
		os.Exit(1)
	}
}

func addActivity(path string, act catalog.Activity) error {
	cat, err := catalog.Load(path)
	if err != nil {
		return err
	}

	for _, existing := range cat.Activities {
		if existing.Name == act.Name {
			return fmt.Errorf("activity %q already exists", act.Name)
		}
	}

	cat.Activities = append(cat.Activities, act)
	cat.LastUpdated = time.Now().UTC().Format("2006-01-02")

	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func help() {
	fmt.Println(`catalog-tool manages the activity catalog file.

Usage:
  catalog-tool add -path <file> -name <name> -description <text> -schedule <text> -maxParticipants <n>
  catalog-tool validate -path <file>`)
}
