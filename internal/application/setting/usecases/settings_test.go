package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anishop/internal/domain/setting"
	"anishop/internal/shared/logger"
	"anishop/internal/shared/services/markdown"
)

type mockSettingRepo struct {
	values     map[string]string
	failKeys   map[string]bool
	getManyErr error
}

func newMockSettingRepo() *mockSettingRepo {
	return &mockSettingRepo{
		values:   make(map[string]string),
		failKeys: make(map[string]bool),
	}
}

func (m *mockSettingRepo) Upsert(ctx context.Context, s *setting.SiteSetting) error {
	if m.failKeys[s.Key()] {
		return fmt.Errorf("write failed")
	}
	m.values[s.Key()] = s.Value()
	return nil
}

func (m *mockSettingRepo) Get(ctx context.Context, key string) (*setting.SiteSetting, error) {
	value, ok := m.values[key]
	if !ok {
		return nil, fmt.Errorf("setting %s not found", key)
	}
	s, _ := setting.NewSiteSetting(key, value)
	return s, nil
}

func (m *mockSettingRepo) GetAll(ctx context.Context) ([]*setting.SiteSetting, error) {
	settings := make([]*setting.SiteSetting, 0, len(m.values))
	for key, value := range m.values {
		s, _ := setting.NewSiteSetting(key, value)
		settings = append(settings, s)
	}
	return settings, nil
}

func (m *mockSettingRepo) GetMany(ctx context.Context, keys []string) (map[string]string, error) {
	if m.getManyErr != nil {
		return nil, m.getManyErr
	}
	values := make(map[string]string)
	for _, key := range keys {
		if v, ok := m.values[key]; ok {
			values[key] = v
		}
	}
	return values, nil
}

func TestGetPublicSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("banner markdown is rendered and sanitized", func(t *testing.T) {
		repo := newMockSettingRepo()
		repo.values[setting.KeyBannerEnabled] = "true"
		repo.values[setting.KeyBannerText] = "**Khuyến mãi** tháng 9 <script>alert(1)</script>"
		repo.values[setting.KeyBannerColor] = "#ff6600"

		uc := NewGetPublicSettingsUseCase(repo, markdown.NewMarkdownService(), logger.NewLogger())
		result, err := uc.Execute(ctx)
		require.NoError(t, err)

		assert.True(t, result.Banner.Enabled)
		assert.Contains(t, result.Banner.HTML, "<strong>Khuyến mãi</strong>")
		assert.NotContains(t, result.Banner.HTML, "<script>")
		assert.Equal(t, "#ff6600", result.Banner.Color)
	})

	t.Run("disabled banner stays empty", func(t *testing.T) {
		repo := newMockSettingRepo()
		repo.values[setting.KeyBannerEnabled] = "false"
		repo.values[setting.KeyBannerText] = "hidden"

		uc := NewGetPublicSettingsUseCase(repo, markdown.NewMarkdownService(), logger.NewLogger())
		result, err := uc.Execute(ctx)
		require.NoError(t, err)

		assert.False(t, result.Banner.Enabled)
		assert.Empty(t, result.Banner.HTML)
	})

	t.Run("bank details pass through for unpaid fees", func(t *testing.T) {
		repo := newMockSettingRepo()
		repo.values[setting.KeyBankName] = "Vietcombank"
		repo.values[setting.KeyBankAccountNumber] = "0123456789"
		repo.values[setting.KeyBankAccountName] = "NGUYEN VAN A"
		repo.values[setting.KeyMaintenanceMode] = "true"

		uc := NewGetPublicSettingsUseCase(repo, markdown.NewMarkdownService(), logger.NewLogger())
		result, err := uc.Execute(ctx)
		require.NoError(t, err)

		assert.Equal(t, "Vietcombank", result.BankName)
		assert.Equal(t, "0123456789", result.BankAccountNo)
		assert.Equal(t, "NGUYEN VAN A", result.BankAccountName)
		assert.True(t, result.MaintenanceMode)
	})
}

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("upserts every key", func(t *testing.T) {
		repo := newMockSettingRepo()
		uc := NewUpdateSettingsUseCase(repo, logger.NewLogger())

		result, err := uc.Execute(ctx, UpdateSettingsCommand{Settings: map[string]string{
			setting.KeyDailyOrderLimit: "50",
			setting.KeyBannerEnabled:   "true",
		}})
		require.NoError(t, err)

		assert.Equal(t, 2, result.Updated)
		assert.Nil(t, result.Failed)
		assert.Equal(t, "50", repo.values[setting.KeyDailyOrderLimit])
	})

	t.Run("a failing key does not block its siblings", func(t *testing.T) {
		repo := newMockSettingRepo()
		repo.failKeys[setting.KeyBannerText] = true
		uc := NewUpdateSettingsUseCase(repo, logger.NewLogger())

		result, err := uc.Execute(ctx, UpdateSettingsCommand{Settings: map[string]string{
			setting.KeyBannerText:  "boom",
			setting.KeyBannerColor: "#00aa00",
		}})
		require.NoError(t, err)

		assert.Equal(t, 1, result.Updated)
		require.Len(t, result.Failed, 1)
		assert.Contains(t, result.Failed, setting.KeyBannerText)
		assert.Equal(t, "#00aa00", repo.values[setting.KeyBannerColor])
	})

	t.Run("empty payload is rejected", func(t *testing.T) {
		uc := NewUpdateSettingsUseCase(newMockSettingRepo(), logger.NewLogger())
		_, err := uc.Execute(ctx, UpdateSettingsCommand{})
		assert.Error(t, err)
	})
}
