package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastro/pedidos-api/internal/application/dto"
	"github.com/jcastro/pedidos-api/internal/domain"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
	"github.com/jcastro/pedidos-api/internal/domain/repository"
	"github.com/jcastro/pedidos-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
// Un seller debe asociarse a un proveedor y un buyer a un cliente; el admin
// no tiene contraparte.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	supplierRepo repository.SupplierRepository
	customerRepo repository.CustomerRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	supplierRepo repository.SupplierRepository,
	customerRepo repository.CustomerRepository,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		supplierRepo: supplierRepo,
		customerRepo: customerRepo,
		jwtCfg:       jwtCfg,
	}
}

// Register crea un usuario: valida rol y contraparte, hashea la contraseña
// con bcrypt y persiste. Email repetido falla con ErrEmailAlreadyExists.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	role := in.Role
	if role == "" {
		role = entity.RoleBuyer
	}
	switch role {
	case entity.RoleAdmin:
		if in.PartnerID != "" {
			return nil, domain.ErrInvalidInput
		}
	case entity.RoleSeller:
		if in.PartnerID == "" {
			return nil, domain.ErrInvalidInput
		}
		if _, err := uc.supplierRepo.GetByID(in.PartnerID); err != nil {
			return nil, err
		}
	case entity.RoleBuyer:
		if in.PartnerID == "" {
			return nil, domain.ErrInvalidInput
		}
		if _, err := uc.customerRepo.GetByID(in.PartnerID); err != nil {
			return nil, err
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		PartnerID:    in.PartnerID,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		PartnerID: u.PartnerID,
	}
}
