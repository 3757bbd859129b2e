// Package slot menyimpan entitas singleton (satu baris per tabel) di bawah key tetap.
package slot

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Key adalah satu-satunya slot yang dipakai; baris singleton selalu di sini.
const Key = "main"

// Slotted diimplementasikan model singleton (pointer receiver).
type Slotted interface {
	// SlotColumn nama kolom primary key slot, mis. "site_config_slot".
	SlotColumn() string
	SetSlot(key string)
	// ApplyDefaults mengisi nilai awal saat baris dibuat pertama kali.
	ApplyDefaults()
}

// Load membaca baris singleton; bila belum ada, dibuat dari default lalu dikembalikan.
// Aman dipanggil bersamaan: insert memakai ON CONFLICT DO NOTHING lalu dibaca ulang.
func Load[T any, PT interface {
	*T
	Slotted
}](ctx context.Context, db *gorm.DB) (*T, error) {
	var row T
	col := PT(&row).SlotColumn()

	err := db.WithContext(ctx).Where(col+" = ?", Key).First(PT(&row)).Error
	if err == nil {
		return &row, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var fresh T
	PT(&fresh).ApplyDefaults()
	PT(&fresh).SetSlot(Key)
	res := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(PT(&fresh))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("[INFO] singleton %s created with defaults", col)
	}

	var out T
	if err := db.WithContext(ctx).Where(col+" = ?", Key).First(PT(&out)).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// Save menyimpan baris singleton. Slot dipaksa ke Key apa pun isinya.
func Save[T any, PT interface {
	*T
	Slotted
}](ctx context.Context, db *gorm.DB, row PT) error {
	row.SetSlot(Key)
	return db.WithContext(ctx).Save(row).Error
}

// Delete sengaja no-op: singleton tidak pernah dihapus.
func Delete[T any, PT interface {
	*T
	Slotted
}](ctx context.Context, db *gorm.DB) error {
	return nil
}

// Count jumlah baris di tabel singleton (harusnya 0 atau 1).
func Count[T any, PT interface {
	*T
	Slotted
}](ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(PT(new(T))).Count(&n).Error
	return n, err
}
