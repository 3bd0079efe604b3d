package common

import (
	"os"
)

var (
	// ProjectID is the GCP project hosting Firestore, Cloud Storage and
	// Secret Manager for this deployment.
	ProjectID string

	// Env is the logical environment name (production, staging, localhost).
	Env string

	// Production flag indicating if the app is running the production backend.
	Production bool

	// IsLocalhost flag indicating if the app is running on a developer machine.
	IsLocalhost bool

	// Domain is the public domain the portal frontend is served from.
	Domain string
)

const (
	productionProject = "ferremax-portal-prod"

	// TestProjectID is used by integration tests running against the
	// Firestore emulator.
	TestProjectID = "ferremax-portal-test"
)

func init() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "")
	Env = GetEnv("APP_ENV", "localhost")

	switch ProjectID {
	case productionProject:
		Production = true
		Domain = "portal.ferremax.cl"
	case "":
		IsLocalhost = true
		ProjectID = TestProjectID
		Domain = "localhost:8080"
	default:
		Domain = "portal-staging.ferremax.cl"
	}
}

// GetEnv returns the env var value for key, or fallback when unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
