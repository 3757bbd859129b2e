package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	partnerRepo "actech_backend/internals/features/content/partners/repository"
	projectDTO "actech_backend/internals/features/content/projects/dto"
	projectRepo "actech_backend/internals/features/content/projects/repository"
	serviceDTO "actech_backend/internals/features/content/services/dto"
	serviceRepo "actech_backend/internals/features/content/services/repository"
	activityDTO "actech_backend/internals/features/home/activities/dto"
	activity "actech_backend/internals/features/home/activities/service"
	userRepo "actech_backend/internals/features/users/user/repository"
)

const (
	recentContentLimit  = 5
	recentActivityLimit = 10
)

type Totals struct {
	Services int64 `json:"services"`
	Partners int64 `json:"partners"`
	Projects int64 `json:"projects"`
	Users    int64 `json:"users"`
}

type DashboardView struct {
	Totals           Totals                    `json:"totals"`
	RecentProjects   []projectDTO.ProjectDTO   `json:"recent_projects"`
	RecentServices   []serviceDTO.ServiceDTO   `json:"recent_services"`
	RecentActivities []activityDTO.ActivityDTO `json:"recent_activities"`
}

func BuildDashboard(ctx context.Context, db *gorm.DB, now time.Time) (*DashboardView, error) {
	var (
		v   DashboardView
		err error
	)
	if v.Totals.Services, err = serviceRepo.CountServices(ctx, db); err != nil {
		return nil, err
	}
	if v.Totals.Partners, err = partnerRepo.CountPartners(ctx, db); err != nil {
		return nil, err
	}
	if v.Totals.Projects, err = projectRepo.CountProjects(ctx, db); err != nil {
		return nil, err
	}
	if v.Totals.Users, err = userRepo.CountUsers(ctx, db); err != nil {
		return nil, err
	}

	projects, err := projectRepo.RecentProjects(ctx, db, recentContentLimit)
	if err != nil {
		return nil, err
	}
	services, err := serviceRepo.RecentServices(ctx, db, recentContentLimit)
	if err != nil {
		return nil, err
	}
	logs, err := activity.Recent(ctx, db, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	v.RecentProjects = projectDTO.ToProjectDTOs(projects)
	v.RecentServices = serviceDTO.ToServiceDTOs(services)
	v.RecentActivities = activityDTO.ToActivityDTOs(logs, now)
	return &v, nil
}
