package land

import (
	"context"
	"math"
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
	if err := db.AutoMigrate(&domain.LandProperty{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func floatPtr(v float64) *float64 { return &v }

func seedLand(t *testing.T, repo domain.LandRepository, mutate func(*domain.LandProperty)) *domain.LandProperty {
	t.Helper()
	l := &domain.LandProperty{
		SellerID:        uuid.New(),
		PropertyName:    "Epe Waterfront Plot",
		PropertyAddress: "Km 4 Epe Expressway",
		StateLocation:   "Lagos",
		Price:           floatPtr(5000000),
		AvailableQty:    3,
	}
	if mutate != nil {
		mutate(l)
	}
	if err := repo.Create(context.Background(), l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return l
}

func TestLandCreateAndGet(t *testing.T) {
	repo := NewLandRepository(setupTestDB(t))
	l := seedLand(t, repo, nil)

	if l.PropertyID == uuid.Nil {
		t.Fatal("expected non-nil property ID after Create")
	}

	got, err := repo.GetByID(context.Background(), l.PropertyID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.PropertyName != "Epe Waterfront Plot" {
		t.Errorf("PropertyName=%q; want Epe Waterfront Plot", got.PropertyName)
	}
}

func TestLandListBySeller(t *testing.T) {
	repo := NewLandRepository(setupTestDB(t))
	sellerID := uuid.New()
	seedLand(t, repo, func(l *domain.LandProperty) { l.SellerID = sellerID })
	seedLand(t, repo, nil)

	result, err := repo.ListBySeller(context.Background(), sellerID, domain.PageRequest{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("ListBySeller: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("Total=%d; want 1", result.Total)
	}
}

func TestLandListAvailable(t *testing.T) {
	repo := NewLandRepository(setupTestDB(t))
	seedLand(t, repo, nil)
	seedLand(t, repo, func(l *domain.LandProperty) { l.SoldOut = true })
	seedLand(t, repo, func(l *domain.LandProperty) { l.AvailableQty = 0 })

	result, err := repo.ListAvailable(context.Background(), domain.PageRequest{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("Total=%d; want 1", result.Total)
	}
}

func TestLandSearch(t *testing.T) {
	repo := NewLandRepository(setupTestDB(t))
	seedLand(t, repo, nil)
	seedLand(t, repo, func(l *domain.LandProperty) {
		l.PropertyName = "Gwagwalada Farm Land"
		l.PropertyAddress = "Plot 7 Gwagwalada"
		l.StateLocation = "Abuja"
	})

	result, err := repo.Search(context.Background(), "EPE", domain.PageRequest{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("Total=%d; want 1", result.Total)
	}

	result, err = repo.Search(context.Background(), "abuja", domain.PageRequest{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("Search by state: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("Total=%d; want 1 for state match", result.Total)
	}
}

func TestLandHardDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLandRepository(db)
	l := seedLand(t, repo, nil)
	ctx := context.Background()

	if err := repo.Delete(ctx, l.PropertyID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// No soft delete column on this table, so the row is gone.
	var count int64
	if err := db.Model(&domain.LandProperty{}).Where("property_id = ?", l.PropertyID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("count=%d; want 0 after hard delete", count)
	}

	if err := repo.Delete(ctx, uuid.New()); !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestLandStats(t *testing.T) {
	repo := NewLandRepository(setupTestDB(t))
	sellerID := uuid.New()
	seedLand(t, repo, func(l *domain.LandProperty) {
		l.SellerID = sellerID
		l.Price = floatPtr(2000000)
	})
	seedLand(t, repo, func(l *domain.LandProperty) {
		l.SellerID = sellerID
		l.Price = floatPtr(4000000)
	})
	seedLand(t, repo, func(l *domain.LandProperty) { l.Price = floatPtr(9000000) })

	stats, err := repo.Stats(context.Background(), domain.StatsFilter{SellerID: sellerID.String()})
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Count != 2 {
		t.Errorf("Count=%d; want 2", stats.Count)
	}
	if math.Abs(stats.AvgPrice-3000000) > 0.01 {
		t.Errorf("AvgPrice=%f; want 3000000", stats.AvgPrice)
	}
	if stats.TotalPrice != 6000000 {
		t.Errorf("TotalPrice=%f; want 6000000", stats.TotalPrice)
	}
}
