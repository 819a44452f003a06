package commands

import (
	"errors"

	"foodmate/internal/pkg/guard"
)

var ErrAssignPartnerCommandIsNotConstructed = errors.New(
	"AssignPartnerCommand must be created via NewAssignPartnerCommand constructor",
)

// AssignPartnerCommand represents a request to retry partner assignment for
// active orders that have none. It carries no parameters: the handler scans
// the whole unassigned backlog. Issued periodically by the assignment job.
type AssignPartnerCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignPartnerCommand creates a command to run an assignment sweep.
func NewAssignPartnerCommand() AssignPartnerCommand {
	return AssignPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c AssignPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignPartnerCommandIsNotConstructed)
}
