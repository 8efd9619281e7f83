package apartment

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/estatehub/estatehub/internal/domain"
)

type mockApartmentRepo struct {
	apartments map[uuid.UUID]*domain.Apartment
	statsErr   error
}

func newMockApartmentRepo() *mockApartmentRepo {
	return &mockApartmentRepo{apartments: make(map[uuid.UUID]*domain.Apartment)}
}

func (m *mockApartmentRepo) Create(_ context.Context, a *domain.Apartment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	cp := *a
	m.apartments[a.ID] = &cp
	return nil
}

func (m *mockApartmentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Apartment, error) {
	a, ok := m.apartments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *mockApartmentRepo) List(_ context.Context, _ domain.PageRequest) (*domain.PageResult[domain.Apartment], error) {
	return &domain.PageResult[domain.Apartment]{}, nil
}

func (m *mockApartmentRepo) ListByHouse(_ context.Context, _ uuid.UUID, _ domain.PageRequest) (*domain.PageResult[domain.Apartment], error) {
	return &domain.PageResult[domain.Apartment]{}, nil
}

func (m *mockApartmentRepo) Search(_ context.Context, _ string, _ domain.PageRequest) (*domain.PageResult[domain.Apartment], error) {
	return &domain.PageResult[domain.Apartment]{}, nil
}

func (m *mockApartmentRepo) Update(_ context.Context, a *domain.Apartment) error {
	if _, ok := m.apartments[a.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *a
	m.apartments[a.ID] = &cp
	return nil
}

func (m *mockApartmentRepo) UpdateTenant(_ context.Context, id uuid.UUID, tenantID *uuid.UUID) error {
	a, ok := m.apartments[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.TenantID = tenantID
	return nil
}

func (m *mockApartmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.apartments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.apartments, id)
	return nil
}

func (m *mockApartmentRepo) Stats(_ context.Context, _ domain.StatsFilter) (*domain.TypeStats, error) {
	if m.statsErr != nil {
		return nil, m.statsErr
	}
	return &domain.TypeStats{}, nil
}

func TestCreateApartment(t *testing.T) {
	svc := NewApartmentService(newMockApartmentRepo())
	ctx := context.Background()

	created, err := svc.CreateApartment(ctx, &domain.Apartment{SellerID: uuid.New()})
	if err != nil {
		t.Fatalf("CreateApartment: %v", err)
	}
	if created.ApartmentStatus != "vacant" {
		t.Errorf("ApartmentStatus=%q; want default vacant", created.ApartmentStatus)
	}

	if _, err := svc.CreateApartment(ctx, &domain.Apartment{}); !domain.IsValidation(err) {
		t.Errorf("missing seller: expected validation error, got %v", err)
	}
	neg := -10.0
	if _, err := svc.CreateApartment(ctx, &domain.Apartment{SellerID: uuid.New(), RentAmount: &neg}); !domain.IsValidation(err) {
		t.Errorf("negative rent: expected validation error, got %v", err)
	}
}

func TestSearchApartments_EmptyTerm(t *testing.T) {
	svc := NewApartmentService(newMockApartmentRepo())

	if _, err := svc.SearchApartments(context.Background(), "   ", domain.PageRequest{}); !domain.IsValidation(err) {
		t.Errorf("expected validation error for empty term, got %v", err)
	}
}

func TestUpdateApartment(t *testing.T) {
	repo := newMockApartmentRepo()
	svc := NewApartmentService(repo)
	ctx := context.Background()

	created, err := svc.CreateApartment(ctx, &domain.Apartment{SellerID: uuid.New(), HouseName: "Lekki Heights"})
	if err != nil {
		t.Fatalf("CreateApartment: %v", err)
	}

	rent := 250000.0
	addr := " 5 Marina Road "
	updated, err := svc.UpdateApartment(ctx, created.ID, domain.ApartmentUpdate{RentAmount: &rent, ApartmentAddress: &addr})
	if err != nil {
		t.Fatalf("UpdateApartment: %v", err)
	}
	if updated.RentAmount == nil || *updated.RentAmount != rent {
		t.Errorf("RentAmount=%v; want %f", updated.RentAmount, rent)
	}
	if updated.ApartmentAddress != "5 Marina Road" {
		t.Errorf("ApartmentAddress=%q; want trimmed value", updated.ApartmentAddress)
	}
	if updated.HouseName != "Lekki Heights" {
		t.Errorf("HouseName=%q; nil field should be untouched", updated.HouseName)
	}

	neg := -1.0
	if _, err := svc.UpdateApartment(ctx, created.ID, domain.ApartmentUpdate{RentAmount: &neg}); !domain.IsValidation(err) {
		t.Errorf("expected validation error for negative rent, got %v", err)
	}
}

func TestUpdateApartmentTenant(t *testing.T) {
	repo := newMockApartmentRepo()
	svc := NewApartmentService(repo)
	ctx := context.Background()

	created, err := svc.CreateApartment(ctx, &domain.Apartment{SellerID: uuid.New()})
	if err != nil {
		t.Fatalf("CreateApartment: %v", err)
	}

	tenantID := uuid.New()
	if err := svc.UpdateApartmentTenant(ctx, created.ID, &tenantID); err != nil {
		t.Fatalf("UpdateApartmentTenant: %v", err)
	}
	got := repo.apartments[created.ID]
	if got.TenantID == nil || *got.TenantID != tenantID {
		t.Errorf("TenantID=%v; want %s", got.TenantID, tenantID)
	}
	if got.ApartmentStatus != "occupied" {
		t.Errorf("ApartmentStatus=%q; want occupied", got.ApartmentStatus)
	}

	other := uuid.New()
	if err := svc.UpdateApartmentTenant(ctx, created.ID, &other); !domain.IsAlreadyExists(err) {
		t.Errorf("expected conflict for occupied unit, got %v", err)
	}

	if err := svc.UpdateApartmentTenant(ctx, created.ID, nil); err != nil {
		t.Fatalf("vacate: %v", err)
	}
	got = repo.apartments[created.ID]
	if got.TenantID != nil {
		t.Errorf("TenantID=%v; want nil after vacate", got.TenantID)
	}
	if got.ApartmentStatus != "vacant" {
		t.Errorf("ApartmentStatus=%q; want vacant", got.ApartmentStatus)
	}
}
