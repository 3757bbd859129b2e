package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	partnerDTO "actech_backend/internals/features/content/partners/dto"
	partnerRepo "actech_backend/internals/features/content/partners/repository"
	projectDTO "actech_backend/internals/features/content/projects/dto"
	projectRepo "actech_backend/internals/features/content/projects/repository"
	serviceDTO "actech_backend/internals/features/content/services/dto"
	serviceRepo "actech_backend/internals/features/content/services/repository"
	settingsDTO "actech_backend/internals/features/site/settings/dto"
	settingsModel "actech_backend/internals/features/site/settings/model"
	settingsService "actech_backend/internals/features/site/settings/service"
)

// HomeView: semua data yang dibutuhkan halaman publik.
type HomeView struct {
	SiteConfig settingsModel.SiteConfigModel  `json:"site_config"`
	Hero       settingsModel.HeroSectionModel `json:"hero"`
	Showroom   settingsModel.ShowroomModel    `json:"showroom"`
	Contact    settingsDTO.ContactInfoDTO     `json:"contact"`
	SEO        settingsDTO.SEOConfigDTO       `json:"seo"`
	Services   []serviceDTO.ServiceDTO        `json:"services"`
	Partners   []partnerDTO.PartnerDTO        `json:"partners"`
	Projects   []projectDTO.ProjectDTO        `json:"projects"`
}

// RenderHome hanya baca; baris nonaktif tidak ikut, proyek maksimal tiga.
func RenderHome(ctx context.Context, db *gorm.DB) (*HomeView, error) {
	settings, err := settingsService.LoadAll(ctx, db)
	if err != nil {
		return nil, err
	}

	services, err := serviceRepo.ListActiveServices(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	partners, err := partnerRepo.ListActivePartners(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	projects, err := projectRepo.ListTopActiveProjects(ctx, db, projectRepo.HomeProjectLimit)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return &HomeView{
		SiteConfig: *settings.Config,
		Hero:       *settings.Hero,
		Showroom:   *settings.Showroom,
		Contact:    settingsDTO.ToContactInfoDTO(*settings.Contact),
		SEO:        settingsDTO.ToSEOConfigDTO(*settings.SEO),
		Services:   serviceDTO.ToServiceDTOs(services),
		Partners:   partnerDTO.ToPartnerDTOs(partners),
		Projects:   projectDTO.ToProjectDTOs(projects),
	}, nil
}
