// Package stack implements the CLI use cases around the grocery list
// stack: configuration checks, the declaration graph and engine runs.
package stack

import (
	"github.com/kompox/groceryops/domain"
	"github.com/kompox/groceryops/domain/model"
)

// Repos holds repositories needed for stack use cases.
type Repos struct {
	Run domain.RunRepository
}

// UseCase wires repositories and ports needed for stack use cases.
type UseCase struct {
	Repos     *Repos
	StackPort model.StackPort
}
