package usecase

import (
	"context"
	"fmt"
	"time"

	"eldercare-booking/internal/data/entity"
	"eldercare-booking/internal/data/repository"
	"eldercare-booking/internal/dto/request"
	"eldercare-booking/internal/dto/response"
	"eldercare-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateCompanionship(ctx context.Context, userID uuid.UUID, req *request.CompanionshipRequest) (*response.CompanionshipResponse, error)
	ListCompanionships(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CompanionshipResponse], error)
	CreateHomeNursing(ctx context.Context, userID uuid.UUID, req *request.HomeNursingRequest) (*response.HomeNursingResponse, error)
	ListHomeNursings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.HomeNursingResponse], error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log,
	}
}

func (s *bookingService) CreateCompanionship(ctx context.Context, userID uuid.UUID, req *request.CompanionshipRequest) (*response.CompanionshipResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Companionship validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	booking := &entity.Companionship{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:        userID,
		CompanionType: req.CompanionType,
		Date:          req.Date,
		Notes:         req.Notes,
	}

	if err := s.repo.Companionship.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create companionship booking",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to create booking")
	}

	s.log.Info("Companionship booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()))

	resp := response.CompanionshipToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListCompanionships(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CompanionshipResponse], error) {
	limit := req.Limit()
	offset := utils.CalculateOffset(req.Page, limit)

	bookings, err := s.repo.Companionship.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		s.log.Error("Failed to list companionship bookings",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get bookings")
	}

	total, err := s.repo.Companionship.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count companionship bookings",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to count bookings")
	}

	items := make([]response.CompanionshipResponse, len(bookings))
	for i, booking := range bookings {
		items[i] = response.CompanionshipToResponse(booking)
	}

	return response.NewPaginatedResponse(items, req.Page, limit, total), nil
}

func (s *bookingService) CreateHomeNursing(ctx context.Context, userID uuid.UUID, req *request.HomeNursingRequest) (*response.HomeNursingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Home nursing validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	booking := &entity.HomeNursing{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:    userID,
		NurseType: req.NurseType,
		Date:      req.Date,
		Notes:     req.Notes,
	}

	if err := s.repo.HomeNursing.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create home nursing booking",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to create booking")
	}

	s.log.Info("Home nursing booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()))

	resp := response.HomeNursingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListHomeNursings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.HomeNursingResponse], error) {
	limit := req.Limit()
	offset := utils.CalculateOffset(req.Page, limit)

	bookings, err := s.repo.HomeNursing.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		s.log.Error("Failed to list home nursing bookings",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get bookings")
	}

	total, err := s.repo.HomeNursing.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count home nursing bookings",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to count bookings")
	}

	items := make([]response.HomeNursingResponse, len(bookings))
	for i, booking := range bookings {
		items[i] = response.HomeNursingToResponse(booking)
	}

	return response.NewPaginatedResponse(items, req.Page, limit, total), nil
}
