package service_test

import (
	"context"
	"testing"

	partnerModel "actech_backend/internals/features/content/partners/model"
	projectModel "actech_backend/internals/features/content/projects/model"
	serviceModel "actech_backend/internals/features/content/services/model"
	"actech_backend/internals/features/home/landing/service"
	"actech_backend/internals/testkit"
)

func TestRenderHomeOnEmptyDatabase(t *testing.T) {
	db := testkit.NewDB(t)

	view, err := service.RenderHome(context.Background(), db)
	if err != nil {
		t.Fatalf("RenderHome: %v", err)
	}
	if view.SiteConfig.SiteConfigTitle == "" || view.SEO.SEOMetaTitle == "" {
		t.Errorf("singleton defaults missing: %+v", view.SiteConfig)
	}
	if view.Contact.ContactWhatsAppURL == "" {
		t.Error("whatsapp url empty")
	}
	if len(view.Services) != 0 || len(view.Partners) != 0 || len(view.Projects) != 0 {
		t.Errorf("collections not empty: %d/%d/%d", len(view.Services), len(view.Partners), len(view.Projects))
	}
}

func TestRenderHomeFiltersAndLimits(t *testing.T) {
	db := testkit.NewDB(t)

	services := []serviceModel.ServiceModel{
		{ServiceTitle: "on", ServiceDescription: "d", ServiceIcon: "i", ServiceIsActive: true},
		{ServiceTitle: "off", ServiceDescription: "d", ServiceIcon: "i", ServiceIsActive: false},
	}
	partners := []partnerModel.PartnerModel{
		{PartnerName: "Visible", PartnerIsActive: true},
		{PartnerName: "Hidden", PartnerIsActive: false},
	}
	projects := []projectModel.ProjectModel{
		{ProjectTitle: "p1", ProjectDescription: "d", ProjectOrder: 1, ProjectIsActive: true},
		{ProjectTitle: "p2", ProjectDescription: "d", ProjectOrder: 2, ProjectIsActive: true},
		{ProjectTitle: "p3", ProjectDescription: "d", ProjectOrder: 3, ProjectIsActive: true},
		{ProjectTitle: "featured", ProjectDescription: "d", ProjectOrder: 9, ProjectIsFeatured: true, ProjectIsActive: true},
		{ProjectTitle: "inactive", ProjectDescription: "d", ProjectOrder: 0, ProjectIsFeatured: true, ProjectIsActive: false},
	}
	for _, rows := range []any{&services, &partners, &projects} {
		if err := db.Create(rows).Error; err != nil {
			t.Fatal(err)
		}
	}

	view, err := service.RenderHome(context.Background(), db)
	if err != nil {
		t.Fatalf("RenderHome: %v", err)
	}
	if len(view.Services) != 1 || view.Services[0].ServiceTitle != "on" {
		t.Errorf("services = %+v", view.Services)
	}
	if len(view.Partners) != 1 || view.Partners[0].PartnerName != "Visible" {
		t.Errorf("partners = %+v", view.Partners)
	}
	if len(view.Projects) != 3 {
		t.Fatalf("projects = %d, want 3", len(view.Projects))
	}
	want := []string{"featured", "p1", "p2"}
	for i, p := range view.Projects {
		if p.ProjectTitle != want[i] {
			t.Errorf("projects[%d] = %s, want %s", i, p.ProjectTitle, want[i])
		}
	}
}
