package usecase

import (
	"context"

	"github.com/jhoicas/ihuza-inventory/internal/application/dto"
	"github.com/jhoicas/ihuza-inventory/internal/domain"
	"github.com/jhoicas/ihuza-inventory/internal/domain/entity"
	"github.com/jhoicas/ihuza-inventory/internal/domain/repository"
)

// AddCategory crea una categoría (solo Admin).
func (uc *DataUseCase) AddCategory(ctx context.Context, actor *entity.Session, in dto.CreateCategoryRequest) (*entity.Category, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.categoryNameTakenLocked(in.Name, "") {
		return nil, domain.ErrCategoryNameExists
	}
	category := entity.Category{
		ID:          uc.opts.NewID(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   uc.opts.Clock(),
	}
	uc.categories = append([]entity.Category{category}, uc.categories...)
	if err := uc.commitLocked(ctx, actor, entity.ActivityCategoryAdd, category.ID, repository.KeyCategories); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory actualiza nombre y/o descripción (solo Admin).
func (uc *DataUseCase) UpdateCategory(ctx context.Context, actor *entity.Session, id string, in dto.UpdateCategoryRequest) (*entity.Category, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.categoryIndexLocked(id)
	if idx < 0 {
		return nil, domain.ErrCategoryNotFound
	}
	if !actor.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Name != nil && uc.categoryNameTakenLocked(*in.Name, id) {
		return nil, domain.ErrCategoryNameExists
	}

	c := uc.categories[idx]
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	uc.categories[idx] = c
	if err := uc.commitLocked(ctx, actor, entity.ActivityCategoryUpdate, id, repository.KeyCategories); err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteCategory elimina una categoría (solo Admin). Los productos que la referencian se conservan.
func (uc *DataUseCase) DeleteCategory(ctx context.Context, actor *entity.Session, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.categoryIndexLocked(id)
	if idx < 0 {
		return domain.ErrCategoryNotFound
	}
	if !actor.IsAdmin() {
		return domain.ErrUnauthorized
	}
	uc.categories = append(uc.categories[:idx:idx], uc.categories[idx+1:]...)
	return uc.commitLocked(ctx, actor, entity.ActivityCategoryDelete, id, repository.KeyCategories)
}

// GetCategoryByID obtiene una categoría por ID.
func (uc *DataUseCase) GetCategoryByID(id string) (*entity.Category, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	idx := uc.categoryIndexLocked(id)
	if idx < 0 {
		return nil, domain.ErrCategoryNotFound
	}
	c := uc.categories[idx]
	return &c, nil
}

// Categories devuelve una copia de la colección.
func (uc *DataUseCase) Categories() []entity.Category {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return append([]entity.Category(nil), uc.categories...)
}

// GetProductCountByCategory cuenta los productos (de cualquier dueño) con ese categoryId.
func (uc *DataUseCase) GetProductCountByCategory(categoryID string) (int, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.categoryIndexLocked(categoryID) < 0 {
		return 0, domain.ErrCategoryNotFound
	}
	n := 0
	for i := range uc.products {
		if uc.products[i].CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (uc *DataUseCase) categoryIndexLocked(id string) int {
	for i := range uc.categories {
		if uc.categories[i].ID == id {
			return i
		}
	}
	return -1
}

func (uc *DataUseCase) categoryNameTakenLocked(name, exceptID string) bool {
	for i := range uc.categories {
		if uc.categories[i].ID != exceptID && sameFold(uc.categories[i].Name, name) {
			return true
		}
	}
	return false
}
