package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/validator"
)

// UUID等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在時刻
type Clock interface {
	Now() time.Time
}

// 商品の読みキャッシュ。nilでも動く。
type ProductCache interface {
	GetProduct(ctx context.Context, id string) (model.Product, bool)
	SetProduct(ctx context.Context, p model.Product)
	DeleteProduct(ctx context.Context, id string)
}

type ProductUsecase struct {
	products repo.ProductRepository
	tx       repo.TransactionManager
	cache    ProductCache
	idGen    IDGenerator
	clock    Clock
}

// DI
func NewProductUsecase(
	products repo.ProductRepository,
	tx repo.TransactionManager,
	cache ProductCache,
	idGen IDGenerator,
	clock Clock,
) *ProductUsecase {
	return &ProductUsecase{
		products: products,
		tx:       tx,
		cache:    cache,
		idGen:    idGen,
		clock:    clock,
	}
}

type CreateProductInput struct {
	Name            string
	InitialQuantity int64
}

// CreateProductは商品を登録する。nameは全商品でユニーク。
func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error) {
	name := strings.TrimSpace(in.Name)

	if err := validator.ValidateCreateProduct(name, in.InitialQuantity); err != nil {
		return model.Product{}, err
	}

	// 名前の重複チェック（最終防衛はDBのUNIQUE）
	_, err := u.products.FindByName(ctx, name)
	if err == nil {
		return model.Product{}, ErrProductNameTaken
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, err
	}

	now := u.clock.Now()
	p, err := u.products.Create(ctx, model.Product{
		ID:        u.idGen.NewID(),
		Name:      name,
		Quantity:  in.InitialQuantity,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if errors.Is(err, repo.ErrConflict) {
		// チェックとINSERTの間に同名が入った場合
		return model.Product{}, ErrProductNameTaken
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, id string) (model.Product, error) {
	if err := validator.ValidateProductID(id); err != nil {
		return model.Product{}, err
	}

	if u.cache != nil {
		if p, ok := u.cache.GetProduct(ctx, id); ok {
			return p, nil
		}
	}

	p, err := u.products.FindByID(ctx, id)
	if err != nil {
		return model.Product{}, err
	}

	if u.cache != nil {
		u.cache.SetProduct(ctx, p)
	}
	return p, nil
}

// AdjustStockは在庫を増減し、同じトランザクションで台帳に1行残す。
// changeAmountが正ならINBOUND、負ならOUTBOUND。
// 同じ商品への同時調整は行ロックで直列化され、更新のロストは起きない。
func (u *ProductUsecase) AdjustStock(ctx context.Context, productID string, changeAmount int64) (model.Product, error) {
	if err := validator.ValidateAdjustStock(productID, changeAmount); err != nil {
		return model.Product{}, err
	}

	var updated model.Product

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByIDForUpdate(ctx, productID)
		if err != nil {
			return err
		}

		newQuantity := p.Quantity + changeAmount
		if newQuantity < 0 {
			// ロールバックさせる（在庫も台帳も変わらない）
			return &InsufficientStockError{Current: p.Quantity, Requested: changeAmount}
		}

		if err := r.Products().UpdateQuantity(ctx, p.ID, newQuantity); err != nil {
			return err
		}

		txType := model.TransactionTypeInbound
		magnitude := changeAmount
		if changeAmount < 0 {
			txType = model.TransactionTypeOutbound
			magnitude = -changeAmount
		}

		if err := r.Transactions().Create(ctx, model.Transaction{
			ID:              u.idGen.NewID(),
			ProductID:       p.ID,
			Type:            txType,
			QuantityChanged: magnitude,
			Timestamp:       u.clock.Now(),
		}); err != nil {
			return err
		}

		p.Quantity = newQuantity
		updated = p
		return nil
	})
	if err != nil {
		return model.Product{}, err
	}

	//コミット後にキャッシュを無効化
	if u.cache != nil {
		u.cache.DeleteProduct(ctx, productID)
	}

	return updated, nil
}
