package notification

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeRenewal Type = "renewal"
	TypeExpired Type = "expired"
)

func (t Type) IsValid() bool {
	return t == TypeRenewal || t == TypeExpired
}

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Notification is derived from subscription state and can be regenerated at any time.
type Notification struct {
	id        uuid.UUID
	typ       Type
	severity  Severity
	subjectID uuid.UUID
	ownerID   string
	message   string
	read      bool
	createdAt time.Time
}

func NewNotification(typ Type, severity Severity, subjectID uuid.UUID, ownerID, message string, now time.Time) *Notification {
	return &Notification{
		id:        uuid.New(),
		typ:       typ,
		severity:  severity,
		subjectID: subjectID,
		ownerID:   ownerID,
		message:   message,
		createdAt: now,
	}
}

func ReconstructNotification(
	id uuid.UUID,
	typ Type,
	severity Severity,
	subjectID uuid.UUID,
	ownerID, message string,
	read bool,
	createdAt time.Time,
) *Notification {
	return &Notification{
		id:        id,
		typ:       typ,
		severity:  severity,
		subjectID: subjectID,
		ownerID:   ownerID,
		message:   message,
		read:      read,
		createdAt: createdAt,
	}
}

func (n *Notification) MarkRead() {
	n.read = true
}

func (n *Notification) Clone() *Notification {
	c := *n
	return &c
}

func (n *Notification) ID() uuid.UUID        { return n.id }
func (n *Notification) Type() Type           { return n.typ }
func (n *Notification) Severity() Severity   { return n.severity }
func (n *Notification) SubjectID() uuid.UUID { return n.subjectID }
func (n *Notification) OwnerID() string      { return n.ownerID }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) Read() bool           { return n.read }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }
