package vitrine

import "fmt"

// These constants follow Semantic Versioning 2.0.0.
const (
	major = 0
	minor = 1
	patch = 0
)

func StringVersion() string {
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}
