package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/ihuza-inventory/internal/application/dto"
	"github.com/jhoicas/ihuza-inventory/internal/domain"
	"github.com/jhoicas/ihuza-inventory/internal/domain/entity"
	"github.com/jhoicas/ihuza-inventory/internal/domain/inventory"
	"github.com/jhoicas/ihuza-inventory/internal/domain/repository"
)

// AddProduct crea un producto; cualquier identidad autenticada puede hacerlo y queda como dueña.
func (uc *DataUseCase) AddProduct(ctx context.Context, actor *entity.Session, in dto.CreateProductRequest) (*entity.Product, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.productNameTakenLocked(in.Name, "") {
		return nil, domain.ErrProductNameExists
	}
	product := entity.Product{
		ID:         uc.opts.NewID(),
		Name:       in.Name,
		CategoryID: in.CategoryID,
		Quantity:   in.Quantity,
		Price:      in.Price,
		CreatedAt:  uc.opts.Clock(),
		CreatedBy:  actor.Email,
	}
	uc.products = append([]entity.Product{product}, uc.products...)
	if err := uc.commitLocked(ctx, actor, entity.ActivityProductAdd, product.ID, repository.KeyProducts); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct aplica una actualización parcial. Solo el dueño o un Admin.
func (uc *DataUseCase) UpdateProduct(ctx context.Context, actor *entity.Session, id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.productIndexLocked(id)
	if idx < 0 {
		return nil, domain.ErrProductNotFound
	}
	if !canManageProduct(actor, &uc.products[idx]) {
		return nil, domain.ErrUnauthorized
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Name != nil && uc.productNameTakenLocked(*in.Name, id) {
		return nil, domain.ErrProductNameExists
	}

	p := uc.products[idx]
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
	if in.Quantity != nil {
		p.Quantity = *in.Quantity
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	uc.products[idx] = p
	if err := uc.commitLocked(ctx, actor, entity.ActivityProductUpdate, id, repository.KeyProducts); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProduct elimina un producto. Solo el dueño o un Admin.
func (uc *DataUseCase) DeleteProduct(ctx context.Context, actor *entity.Session, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.productIndexLocked(id)
	if idx < 0 {
		return domain.ErrProductNotFound
	}
	if !canManageProduct(actor, &uc.products[idx]) {
		return domain.ErrUnauthorized
	}
	uc.products = append(uc.products[:idx:idx], uc.products[idx+1:]...)
	return uc.commitLocked(ctx, actor, entity.ActivityProductDelete, id, repository.KeyProducts)
}

// GetProductByID obtiene un producto por ID.
func (uc *DataUseCase) GetProductByID(id string) (*entity.Product, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	idx := uc.productIndexLocked(id)
	if idx < 0 {
		return nil, domain.ErrProductNotFound
	}
	p := uc.products[idx]
	return &p, nil
}

// Products devuelve una copia de la colección (más reciente primero).
func (uc *DataUseCase) Products() []entity.Product {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return append([]entity.Product(nil), uc.products...)
}

// SearchProducts filtra por nombre de producto o de categoría (sin distinguir mayúsculas).
// Un Admin ve todos los productos; el resto solo los suyos. Query vacío devuelve todo lo visible.
func (uc *DataUseCase) SearchProducts(actor *entity.Session, query string) ([]dto.ProductView, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	q := fold(query)
	out := make([]dto.ProductView, 0, len(uc.products))
	for i := range uc.products {
		p := &uc.products[i]
		if !actor.IsAdmin() && p.CreatedBy != actor.Email {
			continue
		}
		view := uc.productViewLocked(p)
		if q != "" && !strings.Contains(fold(view.Name), q) && !strings.Contains(fold(view.CategoryName), q) {
			continue
		}
		out = append(out, view)
	}
	return out, nil
}

func canManageProduct(actor *entity.Session, p *entity.Product) bool {
	if actor == nil {
		return false
	}
	return actor.IsAdmin() || actor.Email == p.CreatedBy
}

func (uc *DataUseCase) productIndexLocked(id string) int {
	for i := range uc.products {
		if uc.products[i].ID == id {
			return i
		}
	}
	return -1
}

// productNameTakenLocked busca otro producto con el mismo nombre; exceptID excluye el propio registro.
func (uc *DataUseCase) productNameTakenLocked(name, exceptID string) bool {
	for i := range uc.products {
		if uc.products[i].ID != exceptID && sameFold(uc.products[i].Name, name) {
			return true
		}
	}
	return false
}

const unknownCategory = "Unknown"

func (uc *DataUseCase) productViewLocked(p *entity.Product) dto.ProductView {
	categoryName := unknownCategory
	if idx := uc.categoryIndexLocked(p.CategoryID); idx >= 0 {
		categoryName = uc.categories[idx].Name
	}
	return dto.ProductView{
		ID:           p.ID,
		Name:         p.Name,
		CategoryID:   p.CategoryID,
		CategoryName: categoryName,
		Quantity:     p.Quantity,
		Price:        p.Price,
		StockStatus:  inventory.CheckQuantityStatus(p.Quantity),
		CreatedAt:    p.CreatedAt,
		CreatedBy:    p.CreatedBy,
	}
}
