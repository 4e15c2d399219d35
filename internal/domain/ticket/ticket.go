package ticket

import (
	"fmt"
	"strings"
	"time"

	"anishop/internal/shared/biztime"
)

// Status is the support ticket lifecycle state.
type Status string

const (
	StatusPending  Status = "pending"
	StatusResolved Status = "resolved"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusResolved
}

func (s Status) String() string { return string(s) }

// Ticket is a customer support request. The order code is a free-form
// reference, not a foreign key; tickets survive order deletion.
type Ticket struct {
	id          uint
	orderCode   string
	description string
	contactLink string
	imageURL    *string
	status      Status
	adminNotes  *string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTicket creates a pending ticket.
func NewTicket(orderCode, description, contactLink string, imageURL *string) (*Ticket, error) {
	if strings.TrimSpace(orderCode) == "" {
		return nil, fmt.Errorf("order code is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description is required")
	}
	if strings.TrimSpace(contactLink) == "" {
		return nil, fmt.Errorf("contact link is required")
	}

	now := biztime.NowUTC()
	return &Ticket{
		orderCode:   orderCode,
		description: description,
		contactLink: contactLink,
		imageURL:    imageURL,
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from the persistence layer.
func ReconstructTicket(
	id uint,
	orderCode, description, contactLink string,
	imageURL *string,
	status Status,
	adminNotes *string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid ticket status: %s", status)
	}
	return &Ticket{
		id:          id,
		orderCode:   orderCode,
		description: description,
		contactLink: contactLink,
		imageURL:    imageURL,
		status:      status,
		adminNotes:  adminNotes,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint             { return t.id }
func (t *Ticket) OrderCode() string    { return t.orderCode }
func (t *Ticket) Description() string  { return t.description }
func (t *Ticket) ContactLink() string  { return t.contactLink }
func (t *Ticket) ImageURL() *string    { return t.imageURL }
func (t *Ticket) Status() Status       { return t.status }
func (t *Ticket) AdminNotes() *string  { return t.adminNotes }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time { return t.updatedAt }

// Resolve marks the ticket resolved, optionally recording admin notes.
// Resolving an already resolved ticket just updates the notes.
func (t *Ticket) Resolve(notes *string) {
	t.status = StatusResolved
	if notes != nil {
		t.adminNotes = notes
	}
	t.updatedAt = biztime.NowUTC()
}

// SetID sets the ticket ID (only for persistence layer use).
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}
