package slot

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type bannerRow struct {
	Slot  string `gorm:"column:banner_slot;primaryKey;size:20"`
	Title string `gorm:"column:banner_title;size:200"`
}

func (bannerRow) TableName() string { return "banners" }
func (b *bannerRow) SlotColumn() string { return "banner_slot" }
func (b *bannerRow) SetSlot(key string) { b.Slot = key }
func (b *bannerRow) ApplyDefaults() { b.Title = "Welcome" }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "slot.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&bannerRow{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestLoadCreatesDefaultsOnce(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	first, err := Load[bannerRow](ctx, db)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, err := Load[bannerRow](ctx, db)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if first.Slot != Key || second.Slot != Key {
		t.Errorf("slot = %q/%q, want %q", first.Slot, second.Slot, Key)
	}
	if first.Title != "Welcome" {
		t.Errorf("title = %q, want default", first.Title)
	}
	n, err := Count[bannerRow](ctx, db)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("rows = %d, want 1", n)
	}
}

func TestLoadConcurrentFirstReads(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := Load[bannerRow](ctx, db); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("load: %v", err)
	}
	if n, _ := Count[bannerRow](ctx, db); n != 1 {
		t.Errorf("rows = %d, want 1", n)
	}
}

func TestSaveForcesSlotKey(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	row, err := Load[bannerRow](ctx, db)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	row.Slot = "other"
	row.Title = "Changed"
	if err := Save[bannerRow](ctx, db, row); err != nil {
		t.Fatalf("save: %v", err)
	}
	if row.Slot != Key {
		t.Errorf("slot after save = %q, want %q", row.Slot, Key)
	}
	got, _ := Load[bannerRow](ctx, db)
	if got.Title != "Changed" {
		t.Errorf("title = %q, want Changed", got.Title)
	}
	if n, _ := Count[bannerRow](ctx, db); n != 1 {
		t.Errorf("rows = %d, want 1", n)
	}
}

func TestDeleteIsNoop(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := Load[bannerRow](ctx, db); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := Delete[bannerRow](ctx, db); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n, _ := Count[bannerRow](ctx, db); n != 1 {
		t.Errorf("rows after delete = %d, want 1", n)
	}
}
