package repository

import (
	"context"
	"log/slog"
	"time"

	"lounge-scheduler/internal/domain/notification"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const notificationColumns = `id, type, severity, subject_id, owner_id, message, read, created_at`

type NotificationRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewNotificationRepository(db DBTX, logger *slog.Logger) *NotificationRepository {
	return &NotificationRepository{db: db, logger: logger}
}

func scanNotification(row pgx.Row) (*notification.Notification, error) {
	var (
		id, subjectID    uuid.UUID
		typ, severity    string
		ownerID, message string
		read             bool
		createdAt        time.Time
	)
	if err := row.Scan(&id, &typ, &severity, &subjectID, &ownerID, &message, &read, &createdAt); err != nil {
		return nil, err
	}
	return notification.ReconstructNotification(
		id, notification.Type(typ), notification.Severity(severity),
		subjectID, ownerID, message, read, createdAt,
	), nil
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO notifications (`+notificationColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		n.ID(), string(n.Type()), string(n.Severity()), n.SubjectID(),
		n.OwnerID(), n.Message(), n.Read(), n.CreatedAt(),
	)
	if err != nil {
		return wrapErr(r.logger, "failed to create notification", err)
	}
	return nil
}

func (r *NotificationRepository) Get(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	n, err := scanNotification(r.db.QueryRow(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id))
	if err != nil {
		return nil, wrapErr(r.logger, "failed to get notification", err)
	}
	return n, nil
}

func (r *NotificationRepository) ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]*notification.Notification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE subject_id = $1 ORDER BY created_at, id`,
		subjectID,
	)
	if err != nil {
		return nil, wrapErr(r.logger, "failed to list notifications", err)
	}
	return collect(r.logger, "notifications", rows, scanNotification)
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return wrapErr(r.logger, "failed to mark notification read", err)
	}
	return expectOne(r.logger, "notification", tag)
}

// DeleteBySubject removes the subject's notices, restricted to types when given.
func (r *NotificationRepository) DeleteBySubject(ctx context.Context, subjectID uuid.UUID, types ...notification.Type) (int64, error) {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	tag, err := r.db.Exec(ctx,
		`DELETE FROM notifications WHERE subject_id = $1 AND (cardinality($2::text[]) = 0 OR type = ANY($2))`,
		subjectID, names,
	)
	if err != nil {
		return 0, wrapErr(r.logger, "failed to delete notifications", err)
	}
	return tag.RowsAffected(), nil
}
