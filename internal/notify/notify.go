package notify

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// runHook executes the sync command. Patched in tests.
var runHook = func(log io.Writer, name string, args ...string) error {
	fmt.Fprintf(log, "[decpac] sync: %s\n", strings.Join(append([]string{name}, args...), " "))
	cmd := exec.Command(name, args...)
	cmd.Stdout = log
	cmd.Stderr = log
	return cmd.Run()
}

// Hook notifies an external configuration-management tool that a list file
// changed, by running the configured command with the file path appended.
// It is fire-and-forget: hook failures are logged and swallowed.
//
// Track/Changed pairs gate the hook on the file's content hash, so no-op
// mutations (idempotent adds, removes of absent names) stay quiet.
type Hook struct {
	Command []string
	Log     io.Writer

	baseline map[string]string
}

// Track records the file's current content hash as the baseline for a later
// Changed call. A missing file hashes to the empty string.
func (h *Hook) Track(path string) {
	if h.baseline == nil {
		h.baseline = make(map[string]string)
	}
	if _, ok := h.baseline[path]; !ok {
		h.baseline[path] = fileHash(path)
	}
}

// Changed fires the hook if the file's content differs from the tracked
// baseline, then advances the baseline so repeated calls fire at most once
// per actual change.
func (h *Hook) Changed(path string) {
	cur := fileHash(path)
	if h.baseline != nil && h.baseline[path] == cur {
		return
	}
	if h.baseline == nil {
		h.baseline = make(map[string]string)
	}
	h.baseline[path] = cur
	if len(h.Command) == 0 {
		return
	}
	args := append(append([]string{}, h.Command[1:]...), path)
	if err := runHook(h.Log, h.Command[0], args...); err != nil {
		// Re-indexing is a convenience, not correctness; report and move on.
		fmt.Fprintf(h.Log, "[decpac] warning: sync hook failed: %v\n", err)
	}
}

func fileHash(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return ""
	}
	return hex.EncodeToString(h.Sum(nil))
}
