package services

import (
	"errors"

	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"
)

type UserService interface {
	GetProfile(userID string) (*models.User, error)
	UpdateProfile(userID string, req dto.UpdateProfileRequest) (*models.User, error)

	AddPortfolioItem(freelancerID string, req dto.PortfolioItemRequest) (*models.PortfolioItem, error)
	GetPortfolio(freelancerID string) ([]models.PortfolioItem, error)
	UpdatePortfolioItem(freelancerID, itemID string, req dto.PortfolioItemRequest) (*models.PortfolioItem, error)
	DeletePortfolioItem(freelancerID, itemID string) error
}

type userService struct {
	users     repositories.UserRepository
	portfolio repositories.PortfolioRepository
}

func NewUserService(users repositories.UserRepository, portfolio repositories.PortfolioRepository) UserService {
	return &userService{users: users, portfolio: portfolio}
}

func (s *userService) GetProfile(userID string) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(userID string, req dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.HourlyRate != nil {
		user.HourlyRate = req.HourlyRate
	}

	if err := s.users.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *userService) AddPortfolioItem(freelancerID string, req dto.PortfolioItemRequest) (*models.PortfolioItem, error) {
	item := &models.PortfolioItem{
		FreelancerID: freelancerID,
		Title:        req.Title,
		Description:  req.Description,
		ProjectURL:   req.ProjectURL,
		ImageURL:     req.ImageURL,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsOngoing:    req.IsOngoing,
	}
	item.SetSkills(req.Skills)

	if err := s.portfolio.Create(item); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return item, nil
}

func (s *userService) GetPortfolio(freelancerID string) ([]models.PortfolioItem, error) {
	items, err := s.portfolio.FindByFreelancer(freelancerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *userService) UpdatePortfolioItem(freelancerID, itemID string, req dto.PortfolioItemRequest) (*models.PortfolioItem, error) {
	item, err := s.portfolio.FindByID(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrPortfolioItemNotFound) {
			return nil, apperrors.NewNotFoundError("portfolio", "Portfolio item not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if item.FreelancerID != freelancerID {
		return nil, apperrors.NewForbiddenError("Portfolio item belongs to another user")
	}

	item.Title = req.Title
	item.Description = req.Description
	item.ProjectURL = req.ProjectURL
	item.ImageURL = req.ImageURL
	item.StartDate = req.StartDate
	item.EndDate = req.EndDate
	item.IsOngoing = req.IsOngoing
	item.SetSkills(req.Skills)

	if err := s.portfolio.Update(item); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return item, nil
}

func (s *userService) DeletePortfolioItem(freelancerID, itemID string) error {
	err := s.portfolio.Delete(freelancerID, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrPortfolioItemNotFound) {
			return apperrors.NewNotFoundError("portfolio", "Portfolio item not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
