package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastro/pedidos-api/internal/application/dto"
	"github.com/jcastro/pedidos-api/internal/domain"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
	"github.com/jcastro/pedidos-api/internal/domain/repository"
	"github.com/jcastro/pedidos-api/pkg/textutil"
)

// ItemUseCase casos de uso CRUD del catálogo. La cantidad NO se toca aquí:
// todo stock entra y sale por el ledger.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un artículo con cantidad cero. SKU duplicado falla con
// ErrDuplicate.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Cost.LessThan(decimal.Zero) || in.Price.LessThan(decimal.Zero) || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Quantity:    0,
		Cost:        in.Cost,
		Price:       in.Price,
		MinStock:    in.MinStock,
		Category:    in.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Update actualiza los datos de catálogo. SKU y cantidad no son editables:
// el SKU identifica y la cantidad es caché del ledger.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if in.Cost.LessThan(decimal.Zero) || in.Price.LessThan(decimal.Zero) || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		item.Name = in.Name
	}
	item.Description = in.Description
	item.Cost = in.Cost
	item.Price = in.Price
	item.MinStock = in.MinStock
	item.Category = in.Category
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista artículos con paginación; query no vacío busca por SKU o nombre,
// insensible a mayúsculas y tildes.
func (uc *ItemUseCase) List(query string, page dto.PageRequest) ([]dto.ItemResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.Item
		err  error
	)
	if query != "" {
		list, err = uc.repo.Search(textutil.Normalize(query), page.Limit, page.Offset)
	} else {
		list, err = uc.repo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// ListLowStock devuelve los artículos en o por debajo de su umbral de
// reposición.
func (uc *ItemUseCase) ListLowStock(page dto.PageRequest) ([]dto.ItemResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0)
	for _, it := range list {
		if it.LowStock() {
			out = append(out, *toItemResponse(it))
		}
	}
	return out, nil
}

// Delete elimina un artículo. Sus entradas de ledger no se borran.
func (uc *ItemUseCase) Delete(id string) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:          it.ID,
		SKU:         it.SKU,
		Name:        it.Name,
		Description: it.Description,
		Quantity:    it.Quantity,
		Cost:        it.Cost,
		Price:       it.Price,
		MinStock:    it.MinStock,
		Category:    it.Category,
		LowStock:    it.LowStock(),
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}
