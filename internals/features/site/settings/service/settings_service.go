package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"actech_backend/internals/features/site/settings/model"
	"actech_backend/internals/helpers/slot"
)

// Bundle berisi kelima singleton situs.
type Bundle struct {
	Config   *model.SiteConfigModel
	Hero     *model.HeroSectionModel
	Showroom *model.ShowroomModel
	Contact  *model.ContactInfoModel
	SEO      *model.SEOConfigModel
}

// LoadAll memuat (atau membuat default) semua singleton.
func LoadAll(ctx context.Context, db *gorm.DB) (*Bundle, error) {
	var (
		b   Bundle
		err error
	)
	if b.Config, err = slot.Load[model.SiteConfigModel](ctx, db); err != nil {
		return nil, fmt.Errorf("load site config: %w", err)
	}
	if b.Hero, err = slot.Load[model.HeroSectionModel](ctx, db); err != nil {
		return nil, fmt.Errorf("load hero: %w", err)
	}
	if b.Showroom, err = slot.Load[model.ShowroomModel](ctx, db); err != nil {
		return nil, fmt.Errorf("load showroom: %w", err)
	}
	if b.Contact, err = slot.Load[model.ContactInfoModel](ctx, db); err != nil {
		return nil, fmt.Errorf("load contact info: %w", err)
	}
	if b.SEO, err = slot.Load[model.SEOConfigModel](ctx, db); err != nil {
		return nil, fmt.Errorf("load seo config: %w", err)
	}
	return &b, nil
}

// ClearSEOUpdatedBy dipanggil di dalam transaksi hapus user.
func ClearSEOUpdatedBy(tx *gorm.DB, userID any) error {
	return tx.Model(&model.SEOConfigModel{}).
		Where("seo_updated_by = ?", userID).
		Update("seo_updated_by", nil).Error
}
