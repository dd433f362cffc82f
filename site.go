package steal

import (
	"fmt"
	"runtime"
	"strings"
)

// callerPC captures the program counter of a caller frame. Resolving the
// frame to file and line is deferred to formatSite so that the steal path
// pays only for a single runtime.Callers probe.
func callerPC(skip int) uintptr {
	var pcs [1]uintptr
	if runtime.Callers(skip, pcs[:]) == 0 {
		return 0
	}
	return pcs[0]
}

// formatSite resolves a captured program counter to "file:line" with the
// directory stripped. Returns "" for the zero PC.
func formatSite(pc uintptr) string {
	if pc == 0 {
		return ""
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	if frame.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", shortFile(frame.File), frame.Line)
}

func shortFile(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
