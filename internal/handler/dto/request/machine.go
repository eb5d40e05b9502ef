package request

type CreateMachineRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Category string `json:"category" binding:"required,oneof=pc console vr simulator"`
}

// TransitionMachineRequest carries an operator event: enter_maintenance,
// exit_maintenance or release.
type TransitionMachineRequest struct {
	Event string `json:"event" binding:"required"`
}
