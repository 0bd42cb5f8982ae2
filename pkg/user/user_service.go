package user

import (
	"context"
	"errors"
	"strings"

	"Food-Sustainability-Backend/domain"
	"Food-Sustainability-Backend/entities"
	"Food-Sustainability-Backend/internal/utils/mailing"
	"Food-Sustainability-Backend/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultDietaryPreference = "general"

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserProfile, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserProfile, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.UserProfile, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		mailer         mailing.Mailer
		appURL         string
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, mailer mailing.Mailer, appURL string) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		mailer:         mailer,
		appURL:         appURL,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserProfile, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.userRepository.GetUserByEmail(ctx, email)
	if err == nil {
		return domain.UserProfile{}, domain.ErrEmailAlreadyUsed
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserProfile{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserProfile{}, err
	}

	user := &entities.User{
		ID:                uuid.New(),
		Name:              req.Name,
		Email:             email,
		Password:          string(hashed),
		Location:          req.Location,
		DietaryPreference: req.DietaryPreference,
		HouseholdSize:     req.HouseholdSize,
	}
	if user.DietaryPreference == "" {
		user.DietaryPreference = defaultDietaryPreference
	}
	if user.HouseholdSize <= 0 {
		user.HouseholdSize = 1
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserProfile{}, err
	}

	go s.sendWelcomeMail(user.Name, user.Email)

	return ToProfile(user), nil
}

func (s *userService) sendWelcomeMail(name, email string) {
	body, err := mailing.Render(mailing.WelcomeTemplate, map[string]string{
		"Name":   name,
		"AppURL": s.appURL,
	})
	if err != nil {
		zap.L().Error("render welcome mail", zap.Error(err))
		return
	}
	if err := s.mailer.SendMail(email, "Welcome to your food tracker", body); err != nil {
		zap.L().Warn("send welcome mail", zap.String("email", email), zap.Error(err))
	}
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateTokenUser(user.ID.String())
	if err != nil {
		return domain.LoginResponse{}, err
	}

	return domain.LoginResponse{
		Token: token,
		User:  ToProfile(user),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserProfile, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return domain.UserProfile{}, domain.ErrParseUUID
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfile{}, domain.ErrUserNotFound
		}
		return domain.UserProfile{}, err
	}
	return ToProfile(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.UserProfile, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return domain.UserProfile{}, domain.ErrParseUUID
	}

	updates := map[string]any{}

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.DietaryPreference != nil {
		updates["dietary_preference"] = *req.DietaryPreference
	}
	if req.HouseholdSize != nil {
		updates["household_size"] = *req.HouseholdSize
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.UserProfile{}, err
		}
		updates["password"] = string(hashed)
	}

	if len(updates) > 0 {
		if err := s.userRepository.UpdateUser(ctx, userID, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.UserProfile{}, domain.ErrUserNotFound
			}
			return domain.UserProfile{}, err
		}
	}

	return s.Me(ctx, userID)
}

func ToProfile(user *entities.User) domain.UserProfile {
	return domain.UserProfile{
		ID:                user.ID.String(),
		Name:              user.Name,
		Email:             user.Email,
		Location:          user.Location,
		DietaryPreference: user.DietaryPreference,
		HouseholdSize:     user.HouseholdSize,
		CreatedAt:         user.CreatedAt,
	}
}
