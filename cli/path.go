package cli

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/teya-lang/teya/pkg"
)

// cacheDir returns the per-user cache directory for teya, falling back
// to the system temp directory when none is available.
var cacheDir = sync.OnceValue(
	func() string {
		dir, err := os.UserCacheDir()
		if err != nil {
			dir = os.TempDir()
		}

		return filepath.Join(dir, pkg.Name)
	},
)

// historyPath returns the REPL history file location.
func historyPath() string {
	return filepath.Join(cacheDir(), "history")
}
