package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

// GetMetadataEndpoint returns the DynamoDB endpoint for song metadata
// lookups, or "" when lookups are disabled.
func GetMetadataEndpoint() string {
	return os.Getenv("METADATA_ENDPOINT")
}

const MetadataTable = "blockbeat-metadata"

const ManifestFilename = "manifest.dat"

// DefaultBPM applies when a file carries no tempo event.
const DefaultBPM = 120
