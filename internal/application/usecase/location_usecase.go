package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jcastro/pedidos-api/internal/application/dto"
	"github.com/jcastro/pedidos-api/internal/domain"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
	"github.com/jcastro/pedidos-api/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD de ubicaciones de stock.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create crea una ubicación.
func (uc *LocationUseCase) Create(in dto.LocationRequest) (*dto.LocationResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	l := &entity.Location{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		IsDefault: in.IsDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(l); err != nil {
		return nil, err
	}
	return toLocationResponse(l), nil
}

// GetByID obtiene una ubicación.
func (uc *LocationUseCase) GetByID(id string) (*dto.LocationResponse, error) {
	l, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toLocationResponse(l), nil
}

// Update actualiza una ubicación.
func (uc *LocationUseCase) Update(id string, in dto.LocationRequest) (*dto.LocationResponse, error) {
	l, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		l.Name = in.Name
	}
	l.Address = in.Address
	l.IsDefault = in.IsDefault
	l.UpdatedAt = time.Now()
	if err := uc.repo.Update(l); err != nil {
		return nil, err
	}
	return toLocationResponse(l), nil
}

// List lista ubicaciones.
func (uc *LocationUseCase) List(page dto.PageRequest) ([]dto.LocationResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *toLocationResponse(l))
	}
	return out, nil
}

// Delete elimina una ubicación. Las entradas de ledger que la referencian
// conservan su ID histórico.
func (uc *LocationUseCase) Delete(id string) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		Address:   l.Address,
		IsDefault: l.IsDefault,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
