package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaunchRecord_CommandLine(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want string
	}{
		{"plain", []string{"sleep", "30"}, "sleep 30"},
		{"program only", []string{"true"}, "true"},
		{"space quoted", []string{"echo", "a b"}, `echo "a b"`},
		{"empty quoted", []string{"echo", ""}, `echo ""`},
		{"quote escaped", []string{"echo", `say "hi"`}, `echo "say \"hi\""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LaunchRecord{Argv: tt.argv}.CommandLine())
		})
	}
}

func TestExitStatus_Success(t *testing.T) {
	assert.True(t, (&ExitStatus{Exited: true, Code: 0}).Success())
	assert.False(t, (&ExitStatus{Exited: true, Code: 2}).Success())
	assert.False(t, (&ExitStatus{Exited: false, Code: -1}).Success())
}
