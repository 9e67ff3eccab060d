// Package urls provides centralized constants for the documentation URLs
// shown in troubleshooting output.
//
// Usage:
//
//	import "github.com/muurk/ecotrip/internal/urls"
//
//	fmt.Printf("Get an API key at %s\n", urls.OpenCageSignUp)
package urls
