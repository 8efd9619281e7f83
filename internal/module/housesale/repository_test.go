package housesale

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/estatehub/estatehub/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.HouseSale{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func floatPtr(v float64) *float64 { return &v }

func seedSale(t *testing.T, repo domain.HouseSaleRepository, mutate func(*domain.HouseSale)) *domain.HouseSale {
	t.Helper()
	s := &domain.HouseSale{
		OwnerID:            uuid.New(),
		Address:            "15 Bourdillon Road, Ikoyi",
		State:              "Lagos",
		Bedrooms:           4,
		AskingPrice:        floatPtr(120000000),
		Status:             domain.SaleStatusListed,
		VerificationStatus: domain.VerificationPending,
	}
	if mutate != nil {
		mutate(s)
	}
	if err := repo.Create(context.Background(), s); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return s
}

func TestSaleCreateAndGet(t *testing.T) {
	repo := NewHouseSaleRepository(setupTestDB(t))
	s := seedSale(t, repo, nil)

	if s.HouseID == uuid.Nil {
		t.Fatal("expected non-nil house ID after Create")
	}

	got, err := repo.GetByID(context.Background(), s.HouseID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Address != "15 Bourdillon Road, Ikoyi" {
		t.Errorf("Address=%q; want 15 Bourdillon Road, Ikoyi", got.Address)
	}
}

func TestSaleListByStatus(t *testing.T) {
	repo := NewHouseSaleRepository(setupTestDB(t))
	seedSale(t, repo, nil)
	seedSale(t, repo, func(s *domain.HouseSale) { s.Status = domain.SaleStatusSold })

	result, err := repo.ListByStatus(context.Background(), domain.SaleStatusListed, domain.PageRequest{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("Total=%d; want 1", result.Total)
	}
}

func TestSaleSearch(t *testing.T) {
	repo := NewHouseSaleRepository(setupTestDB(t))
	seedSale(t, repo, nil)
	seedSale(t, repo, func(s *domain.HouseSale) {
		s.Address = "2 Maitama Crescent"
		s.State = "Abuja"
	})

	result, err := repo.Search(context.Background(), "ikoyi", domain.PageRequest{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("Total=%d; want 1", result.Total)
	}
}

func TestSaleDelete(t *testing.T) {
	repo := NewHouseSaleRepository(setupTestDB(t))
	s := seedSale(t, repo, nil)
	ctx := context.Background()

	if err := repo.Delete(ctx, s.HouseID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, s.HouseID); !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, uuid.New()); !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestSaleStats(t *testing.T) {
	repo := NewHouseSaleRepository(setupTestDB(t))
	ownerID := uuid.New()
	seedSale(t, repo, func(s *domain.HouseSale) {
		s.OwnerID = ownerID
		s.AskingPrice = floatPtr(80000000)
	})
	seedSale(t, repo, func(s *domain.HouseSale) {
		s.OwnerID = ownerID
		s.AskingPrice = floatPtr(120000000)
	})
	seedSale(t, repo, func(s *domain.HouseSale) { s.AskingPrice = floatPtr(50000000) })

	stats, err := repo.Stats(context.Background(), domain.StatsFilter{SellerID: ownerID.String()})
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Count != 2 {
		t.Errorf("Count=%d; want 2", stats.Count)
	}
	if stats.TotalPrice != 200000000 {
		t.Errorf("TotalPrice=%f; want 200000000", stats.TotalPrice)
	}
	if stats.MinPrice != 80000000 || stats.MaxPrice != 120000000 {
		t.Errorf("Min/Max=%f/%f; want 80000000/120000000", stats.MinPrice, stats.MaxPrice)
	}
}
