package response

import (
	"time"

	"lounge-scheduler/internal/domain/machine"

	"github.com/google/uuid"
)

type MachineResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromMachine(m *machine.Machine) *MachineResponse {
	return &MachineResponse{
		ID:        m.ID(),
		Name:      m.Name(),
		Category:  m.Category().String(),
		State:     m.State().String(),
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	}
}

func FromMachines(ms []*machine.Machine) []*MachineResponse {
	out := make([]*MachineResponse, len(ms))
	for i, m := range ms {
		out[i] = FromMachine(m)
	}
	return out
}
