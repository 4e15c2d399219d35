package user

import (
	"fmt"
	"strings"
	"time"

	"anishop/internal/shared/biztime"
)

// Ban records a banned account. Presence of a row means banned; banning has
// no cascading effect on the user's existing orders or tickets.
type Ban struct {
	userID   string
	reason   string
	bannedAt time.Time
	bannedBy string
}

func NewBan(userID, reason, bannedBy string) (*Ban, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("ban reason is required")
	}
	return &Ban{
		userID:   userID,
		reason:   reason,
		bannedAt: biztime.NowUTC(),
		bannedBy: bannedBy,
	}, nil
}

func ReconstructBan(userID, reason string, bannedAt time.Time, bannedBy string) *Ban {
	return &Ban{userID: userID, reason: reason, bannedAt: bannedAt, bannedBy: bannedBy}
}

func (b *Ban) UserID() string      { return b.userID }
func (b *Ban) Reason() string      { return b.reason }
func (b *Ban) BannedAt() time.Time { return b.bannedAt }
func (b *Ban) BannedBy() string    { return b.bannedBy }
