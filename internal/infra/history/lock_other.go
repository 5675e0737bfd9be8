//go:build !unix

package history

import "os"

// Only the in-process mutex applies here.
func lockFile(*os.File, bool) error { return nil }

func unlockFile(*os.File) {}
