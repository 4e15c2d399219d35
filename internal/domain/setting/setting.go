package setting

import (
	"fmt"
	"strings"
	"time"

	"anishop/internal/shared/biztime"
)

// Known setting keys. Values are free strings; flags use "true"/"false" and
// numeric settings are parsed on read with a default on failure.
const (
	KeyDailyOrderLimit   = "daily_order_limit"
	KeyBannerEnabled     = "banner_enabled"
	KeyBannerText        = "banner_text"
	KeyBannerColor       = "banner_color"
	KeyMaintenanceMode   = "maintenance_mode"
	KeyBankName          = "bank_name"
	KeyBankAccountNumber = "bank_account_number"
	KeyBankAccountName   = "bank_account_name"
	KeySMTPHost          = "smtp_host"
	KeySMTPPort          = "smtp_port"
	KeySMTPUser          = "smtp_user"
	KeySMTPPassword      = "smtp_password"
	KeyMailFrom          = "mail_from"
)

// SiteSetting is a single key/value pair of the runtime-tunable site state.
type SiteSetting struct {
	key       string
	value     string
	updatedAt time.Time
}

// NewSiteSetting creates a setting. Keys are stored as given; the store
// upserts by key so there is at most one row per key.
func NewSiteSetting(key, value string) (*SiteSetting, error) {
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("setting key is required")
	}
	return &SiteSetting{
		key:       key,
		value:     value,
		updatedAt: biztime.NowUTC(),
	}, nil
}

// ReconstructSiteSetting rebuilds a setting from the persistence layer.
func ReconstructSiteSetting(key, value string, updatedAt time.Time) *SiteSetting {
	return &SiteSetting{key: key, value: value, updatedAt: updatedAt}
}

func (s *SiteSetting) Key() string          { return s.key }
func (s *SiteSetting) Value() string        { return s.value }
func (s *SiteSetting) UpdatedAt() time.Time { return s.updatedAt }

// BoolValue interprets the value as a flag. Anything but "true" is false.
func (s *SiteSetting) BoolValue() bool {
	return s.value == "true"
}
