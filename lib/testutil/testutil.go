package testutil

import (
	"fmt"
	"testing"

	"skyblock-backend/lib/telemetry"
)

// SetupService wires up telemetry for a service test. The returned
// cleanup function flushes any pending spans and metrics.
func SetupService(t testing.TB, name string) func() {
	return telemetry.SetupForTesting(t, fmt.Sprintf("test:%s", name))
}
