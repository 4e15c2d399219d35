package usecases

import (
	"context"

	"anishop/internal/domain/setting"
	"anishop/internal/shared/errors"
	"anishop/internal/shared/logger"
)

type UpdateSettingsCommand struct {
	Settings map[string]string
}

type UpdateSettingsResult struct {
	Updated int               `json:"updated"`
	Failed  map[string]string `json:"failed,omitempty"`
}

// UpdateSettingsUseCase upserts each key independently. A failing key is
// reported but does not roll back keys already written.
type UpdateSettingsUseCase struct {
	settings setting.Repository
	logger   logger.Interface
}

func NewUpdateSettingsUseCase(settings setting.Repository, logger logger.Interface) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{settings: settings, logger: logger}
}

func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, cmd UpdateSettingsCommand) (*UpdateSettingsResult, error) {
	if len(cmd.Settings) == 0 {
		return nil, errors.NewValidationError("no settings provided")
	}

	result := &UpdateSettingsResult{Failed: make(map[string]string)}
	for key, value := range cmd.Settings {
		s, err := setting.NewSiteSetting(key, value)
		if err != nil {
			result.Failed[key] = err.Error()
			continue
		}
		if err := uc.settings.Upsert(ctx, s); err != nil {
			uc.logger.Errorw("failed to upsert setting", "error", err, "key", key)
			result.Failed[key] = err.Error()
			continue
		}
		result.Updated++
	}

	if len(result.Failed) == 0 {
		result.Failed = nil
	}
	uc.logger.Infow("settings updated", "updated", result.Updated, "failed", len(result.Failed))
	return result, nil
}
