package repository

import (
	"context"
	"log/slog"
	"time"

	"lounge-scheduler/internal/domain/machine"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const machineColumns = `id, name, category, state, created_at, updated_at`

type MachineRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewMachineRepository(db DBTX, logger *slog.Logger) *MachineRepository {
	return &MachineRepository{db: db, logger: logger}
}

func scanMachine(row pgx.Row) (*machine.Machine, error) {
	var (
		id                   uuid.UUID
		name                 string
		category, state      string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &name, &category, &state, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return machine.ReconstructMachine(id, name, machine.Category(category), machine.State(state), createdAt, updatedAt), nil
}

func (r *MachineRepository) Create(ctx context.Context, m *machine.Machine) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO machines (`+machineColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID(), m.Name(), m.Category().String(), m.State().String(), m.CreatedAt(), m.UpdatedAt(),
	)
	if err != nil {
		return wrapErr(r.logger, "failed to create machine", err)
	}
	return nil
}

func (r *MachineRepository) Get(ctx context.Context, id uuid.UUID) (*machine.Machine, error) {
	m, err := scanMachine(r.db.QueryRow(ctx, `SELECT `+machineColumns+` FROM machines WHERE id = $1`, id))
	if err != nil {
		return nil, wrapErr(r.logger, "failed to get machine", err)
	}
	return m, nil
}

// GetForUpdate locks the machine row until the transaction ends.
func (r *MachineRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*machine.Machine, error) {
	m, err := scanMachine(r.db.QueryRow(ctx, `SELECT `+machineColumns+` FROM machines WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, wrapErr(r.logger, "failed to lock machine", err)
	}
	return m, nil
}

func (r *MachineRepository) List(ctx context.Context) ([]*machine.Machine, error) {
	rows, err := r.db.Query(ctx, `SELECT `+machineColumns+` FROM machines ORDER BY created_at, id`)
	if err != nil {
		return nil, wrapErr(r.logger, "failed to list machines", err)
	}
	return collect(r.logger, "machines", rows, scanMachine)
}

func (r *MachineRepository) UpdateState(ctx context.Context, m *machine.Machine) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE machines SET state = $2, updated_at = $3 WHERE id = $1`,
		m.ID(), m.State().String(), m.UpdatedAt(),
	)
	if err != nil {
		return wrapErr(r.logger, "failed to update machine", err)
	}
	return expectOne(r.logger, "machine", tag)
}
