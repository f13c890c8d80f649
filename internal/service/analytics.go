// internal/service/analytics.go
package service

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/skillsharehq/skillshare-hub/internal/repository"
)

// InstructorStats is the dashboard summary for one instructor.
type InstructorStats struct {
	TotalWorkshops   int64   `json:"total_workshops"`
	TotalEnrollments int64   `json:"total_enrollments"`
	TotalRevenue     float64 `json:"total_revenue"`
	AverageRating    float64 `json:"average_rating"`
}

// PlatformStats is the whole-marketplace summary.
type PlatformStats struct {
	TotalUsers       int64   `json:"total_users"`
	TotalWorkshops   int64   `json:"total_workshops"`
	TotalEnrollments int64   `json:"total_enrollments"`
	TotalRevenue     float64 `json:"total_revenue"`
}

type AnalyticsService struct {
	userRepo       repository.UserRepositoryIface
	workshopRepo   repository.WorkshopRepositoryIface
	enrollmentRepo repository.EnrollmentRepositoryIface
	paymentRepo    repository.PaymentRepositoryIface
	reviewRepo     repository.ReviewRepositoryIface
}

func NewAnalyticsService(
	userRepo repository.UserRepositoryIface,
	workshopRepo repository.WorkshopRepositoryIface,
	enrollmentRepo repository.EnrollmentRepositoryIface,
	paymentRepo repository.PaymentRepositoryIface,
	reviewRepo repository.ReviewRepositoryIface,
) *AnalyticsService {
	return &AnalyticsService{
		userRepo:       userRepo,
		workshopRepo:   workshopRepo,
		enrollmentRepo: enrollmentRepo,
		paymentRepo:    paymentRepo,
		reviewRepo:     reviewRepo,
	}
}

// InstructorStats aggregates across every workshop the instructor owns.
func (s *AnalyticsService) InstructorStats(ctx context.Context, ownerID uuid.UUID) (*InstructorStats, error) {
	workshops, err := s.workshopRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	revenue, err := s.paymentRepo.RevenueByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	rating, err := s.reviewRepo.AverageByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &InstructorStats{
		TotalWorkshops:   workshops,
		TotalEnrollments: enrollments,
		TotalRevenue:     revenue,
		AverageRating:    math.Round(rating*10) / 10,
	}, nil
}

func (s *AnalyticsService) PlatformStats(ctx context.Context) (*PlatformStats, error) {
	users, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	workshops, err := s.workshopRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := s.paymentRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &PlatformStats{
		TotalUsers:       users,
		TotalWorkshops:   workshops,
		TotalEnrollments: enrollments,
		TotalRevenue:     revenue,
	}, nil
}
