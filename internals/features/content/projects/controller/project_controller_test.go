package controller_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"

	"actech_backend/internals/constants"
	"actech_backend/internals/features/content/projects/model"
	"actech_backend/internals/features/content/projects/route"
	"actech_backend/internals/testkit"
)

func TestProjectCreateAndCategory(t *testing.T) {
	db := testkit.NewDB(t)
	u := testkit.CreateUser(t, db, "admin1", constants.RoleAdmin, true)
	app := testkit.NewApp()
	route.ProjectAdminRoutes(app.Group("/panel-admin", testkit.AsUser(u)), db, nil)

	res := testkit.Do(t, app, fiber.MethodPost, "/panel-admin/projects/create", map[string]any{
		"project_title":       "Colegio San José",
		"project_description": "Red completa",
	})
	if res.Status != fiber.StatusCreated {
		t.Fatalf("create = %d, body = %s", res.Status, res.Raw)
	}
	if res.Data()["project_category"] != model.CategoryCorporate || res.Data()["project_category_label"] != "Corporativo" {
		t.Errorf("category = %v / %v", res.Data()["project_category"], res.Data()["project_category_label"])
	}

	bad := testkit.Do(t, app, fiber.MethodPost, "/panel-admin/projects/create", map[string]any{
		"project_title":       "X",
		"project_description": "Y",
		"project_category":    "industrial",
	})
	if bad.Status != fiber.StatusUnprocessableEntity {
		t.Fatalf("bad category = %d, want 422", bad.Status)
	}
	if _, ok := bad.FieldErrors()["project_category"]; !ok {
		t.Errorf("errors = %v", bad.FieldErrors())
	}
}

func TestProjectListFeaturedFirst(t *testing.T) {
	db := testkit.NewDB(t)
	u := testkit.CreateUser(t, db, "viewer1", constants.RoleViewer, false)
	app := testkit.NewApp()
	route.ProjectAdminRoutes(app.Group("/panel-admin", testkit.AsUser(u)), db, nil)

	rows := []model.ProjectModel{
		{ProjectTitle: "plain", ProjectDescription: "d", ProjectOrder: 1, ProjectIsActive: true},
		{ProjectTitle: "featured", ProjectDescription: "d", ProjectOrder: 5, ProjectIsFeatured: true, ProjectIsActive: true},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatal(err)
		}
	}

	list := testkit.Do(t, app, fiber.MethodGet, "/panel-admin/projects", nil).List()
	if len(list) != 2 {
		t.Fatalf("rows = %d, want 2", len(list))
	}
	if list[0]["project_title"] != "featured" {
		t.Errorf("first = %v, want featured", list[0]["project_title"])
	}

	del := testkit.Do(t, app, fiber.MethodPost, "/panel-admin/projects/"+rows[0].ProjectID.String()+"/delete", nil)
	if del.Status != fiber.StatusForbidden {
		t.Errorf("viewer delete = %d, want 403", del.Status)
	}
}
