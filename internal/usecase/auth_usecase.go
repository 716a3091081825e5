package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hms-backend/internal/converter"
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"
	"hms-backend/internal/service"
	"hms-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrStaffNotFound      = errors.New("staff not found")
	ErrStaffInactive      = errors.New("staff account is deactivated")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, staffID uuid.UUID, accessTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*dto.StaffResponse, error)
	CreateStaff(ctx context.Context, adminID uuid.UUID, req *dto.CreateStaffRequest) (*dto.StaffResponse, error)
	ListStaffByRole(ctx context.Context, role entity.StaffRole) ([]dto.StaffResponse, error)
	ListDoctors(ctx context.Context, departmentID, subDepartmentID *int) ([]dto.StaffResponse, error)
	IsTokenValid(ctx context.Context, staffID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error)
}

type authUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	staffRepo   repository.StaffRepository
	auditSvc    service.AuditService
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	staffRepo repository.StaffRepository,
	auditSvc service.AuditService,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		db:          db,
		log:         log,
		staffRepo:   staffRepo,
		auditSvc:    auditSvc,
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// Find staff by email (read-only, no transaction needed)
	staff, err := u.staffRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find staff by email: %+v", err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrInvalidCredentials
	}
	if !staff.IsActive {
		return nil, ErrStaffInactive
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Generate tokens
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(staff.ID, staff.Email, string(staff.Role))
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(staff.ID, staff.Email, string(staff.Role))
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	// Store tokens in Redis
	accessKey := fmt.Sprintf("access_token:%s:%s", staff.ID.String(), accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", staff.ID.String(), refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	if err := u.auditSvc.Record(u.db.WithContext(ctx), &staff.ID, entity.AuditActionStaffLogin, "staff", staff.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to record login audit: %+v", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, staffID uuid.UUID, accessTokenID string) error {
	accessKey := fmt.Sprintf("access_token:%s:%s", staffID.String(), accessTokenID)
	if err := u.redisClient.Del(ctx, accessKey).Err(); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return err
	}

	// Drop every refresh token the staff member holds so the session
	// cannot be resumed
	refreshPattern := fmt.Sprintf("refresh_token:%s:*", staffID.String())
	refreshKeys, err := u.redisClient.Keys(ctx, refreshPattern).Result()
	if err != nil {
		u.log.Warnf("Failed to get refresh token keys: %+v", err)
		return err
	}
	if len(refreshKeys) > 0 {
		if err := u.redisClient.Del(ctx, refreshKeys...).Err(); err != nil {
			u.log.Warnf("Failed to delete refresh tokens: %+v", err)
			return err
		}
	}

	if err := u.auditSvc.Record(u.db.WithContext(ctx), &staffID, entity.AuditActionStaffLogout, "staff", staffID.String(), nil); err != nil {
		u.log.Warnf("Failed to record logout audit: %+v", err)
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	// Validate refresh token
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	// Check if refresh token exists in Redis
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.StaffID.String(), claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	// Rotate: delete old refresh token before issuing new ones
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(claims.StaffID, claims.Email, claims.Role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(claims.StaffID, claims.Email, claims.Role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKeyNew := fmt.Sprintf("access_token:%s:%s", claims.StaffID.String(), accessTokenID)
	refreshKeyNew := fmt.Sprintf("refresh_token:%s:%s", claims.StaffID.String(), refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKeyNew, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	if err := u.redisClient.Set(ctx, refreshKeyNew, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*dto.StaffResponse, error) {
	staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), staffID)
	if err != nil {
		u.log.Warnf("Failed to find staff by ID: %+v", err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	return converter.StaffToResponse(staff), nil
}

func (u *authUsecase) CreateStaff(ctx context.Context, adminID uuid.UUID, req *dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	staff := &entity.Staff{
		Role:            entity.StaffRole(req.Role),
		Email:           strings.ToLower(req.Email),
		Password:        string(hashedPassword),
		FullName:        req.FullName,
		DepartmentID:    req.DepartmentID,
		SubDepartmentID: req.SubDepartmentID,
		IsActive:        true,
	}

	if err := u.staffRepo.Create(tx, staff); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isForeignKeyError(err, "department") {
			return nil, ErrDepartmentNotFound
		}
		u.log.Warnf("Failed to create staff: %+v", err)
		return nil, err
	}

	if err := u.auditSvc.Record(tx, &adminID, entity.AuditActionStaffCreate, "staff", staff.ID.String(), entity.JSON{
		"role":  req.Role,
		"email": staff.Email,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.StaffToResponse(staff), nil
}

func (u *authUsecase) ListStaffByRole(ctx context.Context, role entity.StaffRole) ([]dto.StaffResponse, error) {
	if !entity.ValidRole(role) {
		return nil, ErrStaffNotFound
	}

	staff, err := u.staffRepo.FindByRole(u.db.WithContext(ctx), role)
	if err != nil {
		u.log.Warnf("Failed to list staff by role: %+v", err)
		return nil, err
	}

	return converter.StaffToResponses(staff), nil
}

func (u *authUsecase) ListDoctors(ctx context.Context, departmentID, subDepartmentID *int) ([]dto.StaffResponse, error) {
	doctors, err := u.staffRepo.FindDoctors(u.db.WithContext(ctx), departmentID, subDepartmentID)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return converter.StaffToResponses(doctors), nil
}

// IsTokenValid checks the Redis revocation list. A token missing from
// Redis is treated as revoked even if its signature still verifies.
func (u *authUsecase) IsTokenValid(ctx context.Context, staffID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error) {
	var key string
	if tokenType == jwt.AccessToken {
		key = fmt.Sprintf("access_token:%s:%s", staffID.String(), tokenID)
	} else {
		key = fmt.Sprintf("refresh_token:%s:%s", staffID.String(), tokenID)
	}

	exists, err := u.redisClient.Exists(ctx, key).Result()
	if err != nil {
		u.log.Warnf("Failed to check token validity: %+v", err)
		return false, err
	}

	return exists > 0, nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
