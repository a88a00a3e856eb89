package mysql

import (
	"context"
	"errors"

	"furniture-store/internal/domain"
	"furniture-store/internal/repository"

	"gorm.io/gorm"
)

const productDetailSelect = `p.id, p.name, p.type_id, t.name AS type_name,
p.material_id, m.name AS material_name, p.stock, p.price, p.image_url`

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("products AS p").
		Select(productDetailSelect).
		Joins("LEFT JOIN furniture_types t ON p.type_id = t.id").
		Joins("LEFT JOIN materials m ON p.material_id = m.id")
}

func (r *productRepo) FindByID(ctx context.Context, id string) (*domain.ProductDetail, error) {
	var d domain.ProductDetail
	err := r.detailQuery(ctx).Where("p.id = ?", id).Take(&d).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *productRepo) List(ctx context.Context) ([]domain.ProductDetail, error) {
	var out []domain.ProductDetail
	if err := r.detailQuery(ctx).Order("p.id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) Create(ctx context.Context, p *domain.Product) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Product{}, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *productRepo) ListTypes(ctx context.Context) ([]domain.FurnitureType, error) {
	var out []domain.FurnitureType
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) ListMaterials(ctx context.Context) ([]domain.Material, error) {
	var out []domain.Material
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
