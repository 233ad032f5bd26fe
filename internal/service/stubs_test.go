package service_test

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/Whillz7/BizFinTrackr/internal/model"
	"github.com/Whillz7/BizFinTrackr/internal/repository"
)

// The stubs below are in-memory repository implementations. Reads return
// copies, matching what a real database round-trip would produce, so services
// cannot accidentally rely on shared pointers. Unique violations are reported
// as *pgconn.PgError with code 23505, the same shape the postgres driver
// returns.

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

// ── businesses ──

type stubBusinessRepo struct {
	businesses map[uint]*model.Business
	seq        uint
}

func newStubBusinessRepo() *stubBusinessRepo {
	return &stubBusinessRepo{businesses: make(map[uint]*model.Business)}
}

func (r *stubBusinessRepo) CreateTx(_ *gorm.DB, b *model.Business) error {
	for _, existing := range r.businesses {
		if existing.Name == b.Name {
			return uniqueViolation("businesses_name_key")
		}
	}
	r.seq++
	b.ID = r.seq
	cp := *b
	r.businesses[b.ID] = &cp
	return nil
}

func (r *stubBusinessRepo) UpdateCodePrefixTx(_ *gorm.DB, id uint, prefix string) error {
	for _, existing := range r.businesses {
		if existing.CodePrefix != nil && *existing.CodePrefix == prefix && existing.ID != id {
			return uniqueViolation("businesses_code_prefix_key")
		}
	}
	b, ok := r.businesses[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	b.CodePrefix = &prefix
	return nil
}

func (r *stubBusinessRepo) FindByID(_ context.Context, id uint) (*model.Business, error) {
	b, ok := r.businesses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *stubBusinessRepo) FindByName(_ context.Context, name string) (*model.Business, error) {
	for _, b := range r.businesses {
		if b.Name == name {
			cp := *b
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubBusinessRepo) DB() *gorm.DB { return nil }

var _ repository.BusinessRepository = (*stubBusinessRepo)(nil)

// ── owners ──

type stubOwnerRepo struct {
	owners map[uint]*model.Owner
	seq    uint
}

func newStubOwnerRepo() *stubOwnerRepo {
	return &stubOwnerRepo{owners: make(map[uint]*model.Owner)}
}

func (r *stubOwnerRepo) CreateTx(_ *gorm.DB, o *model.Owner) error {
	for _, existing := range r.owners {
		if existing.Email == o.Email {
			return uniqueViolation("owners_email_key")
		}
	}
	r.seq++
	o.ID = r.seq
	cp := *o
	r.owners[o.ID] = &cp
	return nil
}

func (r *stubOwnerRepo) SetBusinessTx(_ *gorm.DB, ownerID, businessID uint) error {
	o, ok := r.owners[ownerID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.BusinessID = &businessID
	return nil
}

func (r *stubOwnerRepo) FindByEmail(_ context.Context, email string) (*model.Owner, error) {
	for _, o := range r.owners {
		if o.Email == email {
			cp := *o
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubOwnerRepo) FindByID(_ context.Context, id uint) (*model.Owner, error) {
	o, ok := r.owners[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *stubOwnerRepo) Update(_ context.Context, o *model.Owner) error {
	cp := *o
	r.owners[o.ID] = &cp
	return nil
}

var _ repository.OwnerRepository = (*stubOwnerRepo)(nil)

// ── staff ──

type stubStaffRepo struct {
	staff map[uint]*model.Staff
	seq   uint
}

func newStubStaffRepo() *stubStaffRepo {
	return &stubStaffRepo{staff: make(map[uint]*model.Staff)}
}

func (r *stubStaffRepo) Create(_ context.Context, s *model.Staff) error {
	for _, existing := range r.staff {
		if existing.BusinessID == s.BusinessID && existing.Username == s.Username {
			return uniqueViolation("idx_staff_username_business")
		}
	}
	r.seq++
	s.ID = r.seq
	cp := *s
	r.staff[s.ID] = &cp
	return nil
}

func (r *stubStaffRepo) FindByUsername(_ context.Context, businessID uint, username string) (*model.Staff, error) {
	for _, s := range r.staff {
		if s.BusinessID == businessID && s.Username == username {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubStaffRepo) FindByID(_ context.Context, id uint) (*model.Staff, error) {
	s, ok := r.staff[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubStaffRepo) ListByBusiness(_ context.Context, businessID uint) ([]model.Staff, error) {
	var out []model.Staff
	for _, s := range r.staff {
		if s.BusinessID == businessID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *stubStaffRepo) Update(_ context.Context, s *model.Staff) error {
	cp := *s
	r.staff[s.ID] = &cp
	return nil
}

var _ repository.StaffRepository = (*stubStaffRepo)(nil)

// ── products ──

type stubProductRepo struct {
	products map[uint]*model.Product
	seq      uint
	findErr  error // simulates a driver failure on lookups when set
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uint]*model.Product)}
}

func (r *stubProductRepo) CreateTx(_ *gorm.DB, p *model.Product) error {
	for _, existing := range r.products {
		if existing.BusinessID == p.BusinessID && existing.Name == p.Name {
			return uniqueViolation("idx_product_name_business")
		}
	}
	r.seq++
	p.ID = r.seq
	p.CreatedAt = time.Now()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) UpdateCustomIDTx(_ *gorm.DB, id uint, customID string) error {
	for _, existing := range r.products {
		if existing.CustomID != nil && *existing.CustomID == customID && existing.ID != id {
			return uniqueViolation("products_custom_id_key")
		}
	}
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.CustomID = &customID
	return nil
}

func (r *stubProductRepo) find(businessID, id uint) (*model.Product, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	p, ok := r.products[id]
	if !ok || p.BusinessID != businessID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, businessID, id uint) (*model.Product, error) {
	return r.find(businessID, id)
}

func (r *stubProductRepo) FindByIDForUpdateTx(_ *gorm.DB, businessID, id uint) (*model.Product, error) {
	return r.find(businessID, id)
}

func (r *stubProductRepo) FindByName(_ context.Context, businessID uint, name string) (*model.Product, error) {
	for _, p := range r.products {
		if p.BusinessID == businessID && p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) ListByBusiness(_ context.Context, businessID uint) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.BusinessID == businessID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubProductRepo) UpdateCountersTx(_ *gorm.DB, id uint, stockDelta, soldDelta int) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.InStock += stockDelta
	p.TotalSold += soldDelta
	return nil
}

func (r *stubProductRepo) DeleteTx(_ *gorm.DB, businessID, id uint) error {
	p, ok := r.products[id]
	if !ok || p.BusinessID != businessID {
		return gorm.ErrRecordNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── sales ──

type stubSaleRepo struct {
	sales []model.Sale
	seq   uint
}

func (r *stubSaleRepo) CreateTx(_ *gorm.DB, s *model.Sale) error {
	r.seq++
	s.ID = r.seq
	r.sales = append(r.sales, *s)
	return nil
}

func (r *stubSaleRepo) UpdateCustomIDTx(_ *gorm.DB, id uint, customID string) error {
	for i := range r.sales {
		if r.sales[i].ID == id {
			r.sales[i].CustomID = &customID
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubSaleRepo) ListByBusiness(_ context.Context, businessID uint) ([]model.Sale, error) {
	return r.between(businessID, time.Time{}, time.Now().Add(time.Hour)), nil
}

func (r *stubSaleRepo) ListByBusinessBetween(_ context.Context, businessID uint, start, end time.Time) ([]model.Sale, error) {
	return r.between(businessID, start, end), nil
}

func (r *stubSaleRepo) ListRecent(_ context.Context, businessID uint, limit int) ([]model.Sale, error) {
	out := r.between(businessID, time.Time{}, time.Now().Add(time.Hour))
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubSaleRepo) SumQuantityBetween(_ context.Context, businessID uint, start, end time.Time) (int64, error) {
	var total int64
	for _, s := range r.between(businessID, start, end) {
		total += int64(s.Quantity)
	}
	return total, nil
}

func (r *stubSaleRepo) DeleteByProductTx(_ *gorm.DB, productID uint) error {
	kept := r.sales[:0]
	for _, s := range r.sales {
		if s.ProductID != productID {
			kept = append(kept, s)
		}
	}
	r.sales = kept
	return nil
}

func (r *stubSaleRepo) between(businessID uint, start, end time.Time) []model.Sale {
	var out []model.Sale
	for _, s := range r.sales {
		if s.BusinessID == businessID && !s.Date.Before(start) && !s.Date.After(end) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

// ── expenses ──

type stubExpenseRepo struct {
	expenses []model.Expense
	seq      uint
}

func (r *stubExpenseRepo) Create(_ context.Context, e *model.Expense) error {
	r.seq++
	e.ID = r.seq
	r.expenses = append(r.expenses, *e)
	return nil
}

func (r *stubExpenseRepo) ListByBusiness(_ context.Context, businessID uint) ([]model.Expense, error) {
	return r.between(businessID, time.Time{}, time.Now().Add(time.Hour)), nil
}

func (r *stubExpenseRepo) ListByBusinessBetween(_ context.Context, businessID uint, start, end time.Time) ([]model.Expense, error) {
	return r.between(businessID, start, end), nil
}

func (r *stubExpenseRepo) ListRecent(_ context.Context, businessID uint, limit int) ([]model.Expense, error) {
	out := r.between(businessID, time.Time{}, time.Now().Add(time.Hour))
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubExpenseRepo) between(businessID uint, start, end time.Time) []model.Expense {
	var out []model.Expense
	for _, e := range r.expenses {
		if e.BusinessID == businessID && !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

var _ repository.ExpenseRepository = (*stubExpenseRepo)(nil)

// ── inventory logs ──

type stubInventoryRepo struct {
	logs []model.InventoryLog
	seq  uint
}

func (r *stubInventoryRepo) CreateTx(_ *gorm.DB, l *model.InventoryLog) error {
	r.seq++
	l.ID = r.seq
	r.logs = append(r.logs, *l)
	return nil
}

func (r *stubInventoryRepo) ListByProduct(_ context.Context, productID uint) ([]model.InventoryLog, error) {
	var out []model.InventoryLog
	for _, l := range r.logs {
		if l.ProductID == productID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *stubInventoryRepo) SumByProduct(_ context.Context, productID uint) (int, error) {
	sum := 0
	for _, l := range r.logs {
		if l.ProductID == productID {
			sum += l.Quantity
		}
	}
	return sum, nil
}

func (r *stubInventoryRepo) DeleteByProductTx(_ *gorm.DB, productID uint) error {
	kept := r.logs[:0]
	for _, l := range r.logs {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	r.logs = kept
	return nil
}

var _ repository.InventoryLogRepository = (*stubInventoryRepo)(nil)
