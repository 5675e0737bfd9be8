// Package domain contains core entities, ports and the argument conversion rules.
package domain

import "slices"

// ExecCommand represents an external command to be launched.
// Args does not include the program name.
type ExecCommand struct {
	Program string
	Args    []string
}

// NewCommand creates an ExecCommand from a program and its arguments.
func NewCommand(program string, args []string) *ExecCommand {
	return &ExecCommand{
		Program: program,
		Args:    slices.Clone(args),
	}
}

// Argv returns the full argument vector with the program name first.
func (c *ExecCommand) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Program)
	return append(argv, c.Args...)
}
