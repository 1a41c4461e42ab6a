package instance

import "os"

// GetID returns the process instance identifier or a default value.
func GetID() string {
	if id := os.Getenv("SHOPFLOW_INSTANCE_ID"); id != "" {
		return id
	}
	return "local"
}
