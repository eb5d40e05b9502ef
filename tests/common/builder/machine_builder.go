//go:build unit || e2e

package builder

import (
	"time"

	"lounge-scheduler/internal/domain/machine"
	reqdto "lounge-scheduler/internal/handler/dto/request"

	"github.com/google/uuid"
)

type MachineBuilder struct {
	ID        uuid.UUID
	Name      string
	Category  machine.Category
	State     machine.State
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewMachineBuilder() *MachineBuilder {
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	return &MachineBuilder{
		ID:        uuid.New(),
		Name:      "Station 01",
		Category:  machine.CategoryPC,
		State:     machine.StateAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (m *MachineBuilder) With(mutate func(*MachineBuilder)) *MachineBuilder {
	mutate(m)
	return m
}

// Build methods
func (m *MachineBuilder) BuildDomain() (*machine.Machine, error) {
	return machine.NewMachine(m.ID, m.Name, m.Category, m.CreatedAt)
}

func (m *MachineBuilder) BuildReconstructed() *machine.Machine {
	return machine.ReconstructMachine(m.ID, m.Name, m.Category, m.State, m.CreatedAt, m.UpdatedAt)
}

func (m *MachineBuilder) BuildCreateRequestDTO() reqdto.CreateMachineRequest {
	return reqdto.CreateMachineRequest{
		Name:     m.Name,
		Category: string(m.Category),
	}
}
