package usecases

import (
	"context"

	"anishop/internal/domain/setting"
	"anishop/internal/shared/logger"
	"anishop/internal/shared/services/markdown"
)

type BannerView struct {
	Enabled bool   `json:"enabled"`
	HTML    string `json:"html,omitempty"`
	Color   string `json:"color,omitempty"`
}

type PublicSettingsResult struct {
	Banner          BannerView `json:"banner"`
	MaintenanceMode bool       `json:"maintenance_mode"`
	BankName        string     `json:"bank_name,omitempty"`
	BankAccountNo   string     `json:"bank_account_number,omitempty"`
	BankAccountName string     `json:"bank_account_name,omitempty"`
}

// GetPublicSettingsUseCase serves the storefront's runtime flags. The banner
// text is authored as Markdown and rendered to sanitized HTML here, so the
// frontend never interprets raw admin input.
type GetPublicSettingsUseCase struct {
	settings setting.Repository
	markdown markdown.MarkdownService
	logger   logger.Interface
}

func NewGetPublicSettingsUseCase(
	settings setting.Repository,
	markdown markdown.MarkdownService,
	logger logger.Interface,
) *GetPublicSettingsUseCase {
	return &GetPublicSettingsUseCase{
		settings: settings,
		markdown: markdown,
		logger:   logger,
	}
}

func (uc *GetPublicSettingsUseCase) Execute(ctx context.Context) (*PublicSettingsResult, error) {
	values, err := uc.settings.GetMany(ctx, []string{
		setting.KeyBannerEnabled, setting.KeyBannerText, setting.KeyBannerColor,
		setting.KeyMaintenanceMode,
		setting.KeyBankName, setting.KeyBankAccountNumber, setting.KeyBankAccountName,
	})
	if err != nil {
		uc.logger.Errorw("failed to load public settings", "error", err)
		return nil, err
	}

	result := &PublicSettingsResult{
		MaintenanceMode: values[setting.KeyMaintenanceMode] == "true",
		BankName:        values[setting.KeyBankName],
		BankAccountNo:   values[setting.KeyBankAccountNumber],
		BankAccountName: values[setting.KeyBankAccountName],
	}

	if values[setting.KeyBannerEnabled] == "true" {
		html, err := uc.markdown.ToHTMLSanitized(values[setting.KeyBannerText])
		if err != nil {
			uc.logger.Warnw("failed to render banner markdown", "error", err)
		} else {
			result.Banner = BannerView{
				Enabled: true,
				HTML:    html,
				Color:   values[setting.KeyBannerColor],
			}
		}
	}

	return result, nil
}
