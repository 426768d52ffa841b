//go:build !debug

package sweep

// logDebugf is a no-op unless the debug build tag is set.
func logDebugf(string, ...interface{}) {}
