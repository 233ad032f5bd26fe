package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Whillz7/BizFinTrackr/internal/codegen"
	"github.com/Whillz7/BizFinTrackr/internal/dto"
	"github.com/Whillz7/BizFinTrackr/internal/model"
	"github.com/Whillz7/BizFinTrackr/internal/repository"
)

type CatalogService interface {
	CreateProduct(ctx context.Context, p model.Principal, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetProduct(ctx context.Context, p model.Principal, productID uint) (*dto.ProductResponse, error)
	ListProducts(ctx context.Context, p model.Principal) (*dto.ProductListResponse, error)
	Restock(ctx context.Context, p model.Principal, productID uint, req dto.RestockRequest) (*dto.ProductResponse, error)
	Sell(ctx context.Context, p model.Principal, productID uint, req dto.SellRequest) (*dto.SaleResponse, error)
	DeleteProduct(ctx context.Context, p model.Principal, productID uint) error
	InventoryHistory(ctx context.Context, p model.Principal, productID uint) ([]dto.InventoryLogResponse, error)
	ListSales(ctx context.Context, p model.Principal) (*dto.SaleListResponse, error)
}

type catalogService struct {
	products   repository.ProductRepository
	sales      repository.SaleRepository
	logs       repository.InventoryLogRepository
	businesses repository.BusinessRepository
	now        func() time.Time
}

func NewCatalogService(
	products repository.ProductRepository,
	sales repository.SaleRepository,
	logs repository.InventoryLogRepository,
	businesses repository.BusinessRepository,
) CatalogService {
	return &catalogService{
		products:   products,
		sales:      sales,
		logs:       logs,
		businesses: businesses,
		now:        time.Now,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *catalogService) CreateProduct(ctx context.Context, p model.Principal, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrInvalidInput)
	}
	if !req.Price.IsPositive() || !req.Cost.IsPositive() {
		return nil, fmt.Errorf("%w: price and cost must be positive", ErrInvalidInput)
	}
	if _, err := s.products.FindByName(ctx, p.BusinessID, name); err == nil {
		return nil, fmt.Errorf("%w: product %q", ErrDuplicateName, name)
	}

	business, err := s.businesses.FindByID(ctx, p.BusinessID)
	if err != nil {
		return nil, ErrNotFound
	}

	product := &model.Product{
		Name:       name,
		Price:      req.Price,
		Cost:       req.Cost,
		BusinessID: p.BusinessID,
	}
	txErr := runTx(ctx, s.products.DB(), func(tx *gorm.DB) error {
		if err := s.products.CreateTx(tx, product); err != nil {
			return classifyConstraint(err)
		}
		code := codegen.ProductCode(business.CodePrefix, product.ID, s.now())
		if err := s.products.UpdateCustomIDTx(tx, product.ID, code); err != nil {
			return classifyConstraint(err)
		}
		product.CustomID = &code
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := productToResponse(product)
	return &resp, nil
}

func (s *catalogService) GetProduct(ctx context.Context, p model.Principal, productID uint) (*dto.ProductResponse, error) {
	product, err := s.products.FindByID(ctx, p.BusinessID, productID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	resp := productToResponse(product)
	return &resp, nil
}

func (s *catalogService) ListProducts(ctx context.Context, p model.Principal) (*dto.ProductListResponse, error) {
	products, err := s.products.ListByBusiness(ctx, p.BusinessID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, productToResponse(&products[i]))
	}
	return &dto.ProductListResponse{Data: out, Total: len(out)}, nil
}

// Restock raises the stock level and appends a positive movement to the
// inventory ledger in the same transaction, keeping in_stock equal to the
// ledger sum.
func (s *catalogService) Restock(ctx context.Context, p model.Principal, productID uint, req dto.RestockRequest) (*dto.ProductResponse, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: restock quantity must be positive", ErrInvalidInput)
	}

	var product *model.Product
	txErr := runTx(ctx, s.products.DB(), func(tx *gorm.DB) error {
		var err error
		product, err = s.products.FindByIDForUpdateTx(tx, p.BusinessID, productID)
		if err != nil {
			return notFoundOr(err)
		}
		if err := s.products.UpdateCountersTx(tx, product.ID, req.Quantity, 0); err != nil {
			return err
		}
		return s.logs.CreateTx(tx, &model.InventoryLog{
			Date:      s.now(),
			Quantity:  req.Quantity,
			ProductID: product.ID,
			StaffID:   p.StaffID(),
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	product.InStock += req.Quantity
	resp := productToResponse(product)
	return &resp, nil
}

// Sell records a sale at the price supplied in the request. One transaction
// covers the stock check, the sale row, the counter updates, the negative
// ledger entry and the code assignment; an oversell aborts before any write.
func (s *catalogService) Sell(ctx context.Context, p model.Principal, productID uint, req dto.SellRequest) (*dto.SaleResponse, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: sale quantity must be positive", ErrInvalidInput)
	}
	if !req.UnitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: unit price must be positive", ErrInvalidInput)
	}

	business, err := s.businesses.FindByID(ctx, p.BusinessID)
	if err != nil {
		return nil, ErrNotFound
	}

	var sale model.Sale
	var productName string
	txErr := runTx(ctx, s.products.DB(), func(tx *gorm.DB) error {
		product, err := s.products.FindByIDForUpdateTx(tx, p.BusinessID, productID)
		if err != nil {
			return notFoundOr(err)
		}
		if product.InStock < req.Quantity {
			return fmt.Errorf("%w: %d in stock, %d requested", ErrInsufficientStock, product.InStock, req.Quantity)
		}
		productName = product.Name

		sale = model.Sale{
			Date:        s.now(),
			Quantity:    req.Quantity,
			TotalAmount: req.UnitPrice,
			ProductID:   product.ID,
			BusinessID:  p.BusinessID,
			StaffID:     p.StaffID(),
		}
		if err := s.sales.CreateTx(tx, &sale); err != nil {
			return classifyConstraint(err)
		}
		if err := s.products.UpdateCountersTx(tx, product.ID, -req.Quantity, req.Quantity); err != nil {
			return err
		}
		if err := s.logs.CreateTx(tx, &model.InventoryLog{
			Date:      sale.Date,
			Quantity:  -req.Quantity,
			ProductID: product.ID,
			StaffID:   p.StaffID(),
		}); err != nil {
			return err
		}

		code := codegen.SaleCode(business.CodePrefix, p.StaffID(), product.ID, req.Quantity, sale.ID)
		if err := s.sales.UpdateCustomIDTx(tx, sale.ID, code); err != nil {
			return classifyConstraint(err)
		}
		sale.CustomID = &code
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := saleToResponse(&sale, productName)
	return &resp, nil
}

// DeleteProduct removes the product together with its sales and ledger
// entries. Owner only; staff cannot destroy history.
func (s *catalogService) DeleteProduct(ctx context.Context, p model.Principal, productID uint) error {
	if p.Role != model.RoleOwner {
		return ErrAccessDenied
	}
	if _, err := s.products.FindByID(ctx, p.BusinessID, productID); err != nil {
		return notFoundOr(err)
	}
	return runTx(ctx, s.products.DB(), func(tx *gorm.DB) error {
		if err := s.sales.DeleteByProductTx(tx, productID); err != nil {
			return err
		}
		if err := s.logs.DeleteByProductTx(tx, productID); err != nil {
			return err
		}
		return s.products.DeleteTx(tx, p.BusinessID, productID)
	})
}

func (s *catalogService) InventoryHistory(ctx context.Context, p model.Principal, productID uint) ([]dto.InventoryLogResponse, error) {
	if _, err := s.products.FindByID(ctx, p.BusinessID, productID); err != nil {
		return nil, notFoundOr(err)
	}
	logs, err := s.logs.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.InventoryLogResponse{
			ID:       l.ID,
			Date:     l.Date.Format(time.RFC3339),
			Quantity: l.Quantity,
			StaffID:  l.StaffID,
		})
	}
	return out, nil
}

func (s *catalogService) ListSales(ctx context.Context, p model.Principal) (*dto.SaleListResponse, error) {
	sales, err := s.sales.ListByBusiness(ctx, p.BusinessID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		out = append(out, saleToResponse(&sales[i], sales[i].Product.Name))
	}
	return &dto.SaleListResponse{Data: out, Total: len(out)}, nil
}

// notFoundOr maps a missing row to ErrNotFound and anything else — a broken
// connection, a failed query — to ErrInternal so handlers render it as a 500
// without leaking the driver error.
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}

func productToResponse(p *model.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Cost:      p.Cost,
		InStock:   p.InStock,
		TotalSold: p.TotalSold,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
	if p.CustomID != nil {
		resp.CustomID = *p.CustomID
	}
	return resp
}

func saleToResponse(s *model.Sale, productName string) dto.SaleResponse {
	qty := decimal.NewFromInt(int64(s.Quantity))
	resp := dto.SaleResponse{
		ID:          s.ID,
		Date:        s.Date.Format(time.RFC3339),
		Quantity:    s.Quantity,
		UnitPrice:   s.TotalAmount,
		LineTotal:   s.TotalAmount.Mul(qty),
		ProductID:   s.ProductID,
		ProductName: productName,
		StaffID:     s.StaffID,
	}
	if s.CustomID != nil {
		resp.CustomID = *s.CustomID
	}
	return resp
}
