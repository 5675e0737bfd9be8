//go:build unix

package executor

import (
	"os"
	"syscall"
)

func termSignal(state *os.ProcessState) int {
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return 0
	}
	return int(ws.Signal())
}
