package service_test

import (
	"context"
	"testing"
	"time"

	projectModel "actech_backend/internals/features/content/projects/model"
	serviceModel "actech_backend/internals/features/content/services/model"
	"actech_backend/internals/features/home/dashboard/service"
	"actech_backend/internals/testkit"
)

func TestBuildDashboardTotals(t *testing.T) {
	db := testkit.NewDB(t)
	testkit.CreateUser(t, db, "admin", "admin", true)
	for i := 0; i < 7; i++ {
		s := serviceModel.ServiceModel{ServiceTitle: "s", ServiceDescription: "d", ServiceIcon: "i", ServiceIsActive: true}
		if err := db.Create(&s).Error; err != nil {
			t.Fatal(err)
		}
	}

	v, err := service.BuildDashboard(context.Background(), db, time.Now())
	if err != nil {
		t.Fatalf("BuildDashboard: %v", err)
	}
	if v.Totals.Services != 7 || v.Totals.Users != 1 || v.Totals.Projects != 0 || v.Totals.Partners != 0 {
		t.Errorf("totals = %+v", v.Totals)
	}
	if len(v.RecentServices) != 5 {
		t.Errorf("recent services = %d, want 5", len(v.RecentServices))
	}
	if v.RecentProjects == nil || len(v.RecentProjects) != 0 {
		t.Errorf("recent projects = %v, want empty slice", v.RecentProjects)
	}
}

func TestBuildDashboardUsesDefaultOrder(t *testing.T) {
	db := testkit.NewDB(t)
	// dibuat berurutan dengan order menurun: yang terakhir dibuat punya order 0
	for i := 6; i >= 0; i-- {
		s := serviceModel.ServiceModel{ServiceTitle: "s", ServiceDescription: "d", ServiceIcon: "i", ServiceOrder: i, ServiceIsActive: true}
		if err := db.Create(&s).Error; err != nil {
			t.Fatal(err)
		}
	}
	projects := []projectModel.ProjectModel{
		{ProjectTitle: "featured", ProjectDescription: "d", ProjectCategory: projectModel.CategoryCorporate, ProjectIsFeatured: true, ProjectIsActive: true},
		{ProjectTitle: "hidden", ProjectDescription: "d", ProjectCategory: projectModel.CategoryOther, ProjectOrder: 1},
		{ProjectTitle: "first", ProjectDescription: "d", ProjectCategory: projectModel.CategoryOther, ProjectIsActive: true},
	}
	for i := range projects {
		if err := db.Create(&projects[i]).Error; err != nil {
			t.Fatal(err)
		}
	}

	v, err := service.BuildDashboard(context.Background(), db, time.Now())
	if err != nil {
		t.Fatalf("BuildDashboard: %v", err)
	}
	for i, s := range v.RecentServices {
		if s.ServiceOrder != i {
			t.Errorf("recent services[%d].order = %d, want %d", i, s.ServiceOrder, i)
		}
	}
	var titles []string
	for _, p := range v.RecentProjects {
		titles = append(titles, p.ProjectTitle)
	}
	want := []string{"featured", "first", "hidden"}
	if len(titles) != len(want) {
		t.Fatalf("recent projects = %v, want %v", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("recent projects = %v, want %v", titles, want)
			break
		}
	}
}
