package usecases

import (
	"context"

	"anishop/internal/domain/setting"
	"anishop/internal/shared/logger"
)

type GetAllSettingsResult struct {
	Settings map[string]string `json:"settings"`
}

type GetAllSettingsUseCase struct {
	settings setting.Repository
	logger   logger.Interface
}

func NewGetAllSettingsUseCase(settings setting.Repository, logger logger.Interface) *GetAllSettingsUseCase {
	return &GetAllSettingsUseCase{settings: settings, logger: logger}
}

func (uc *GetAllSettingsUseCase) Execute(ctx context.Context) (*GetAllSettingsResult, error) {
	all, err := uc.settings.GetAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load settings", "error", err)
		return nil, err
	}

	values := make(map[string]string, len(all))
	for _, s := range all {
		values[s.Key()] = s.Value()
	}
	return &GetAllSettingsResult{Settings: values}, nil
}
