package repository

import (
	"context"
	"fmt"

	"siap-spj-backend/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SpjRepository interface {
	Create(ctx context.Context, actor string, tahun int, payload *model.SpjPayload) (*model.Spj, error)
	GetAll(ctx context.Context) ([]model.Spj, error)
	GetStats(ctx context.Context) (model.SpjStats, error)
}

type spjRepository struct {
	db *gorm.DB
}

func NewSpjRepository(db *gorm.DB) SpjRepository {
	return &spjRepository{db}
}

func FormatNoSpj(tahun, urutan int) string {
	return fmt.Sprintf("SPJ/%d/%d", tahun, urutan)
}

// Create menyimpan spj, seluruh rinciannya, dan satu log aktivitas dalam satu transaksi.
// Jika nomor bentrok, ErrDuplicateNumber dikembalikan dan tidak ada baris yang tersisa.
func (r *spjRepository) Create(ctx context.Context, actor string, tahun int, payload *model.SpjPayload) (*model.Spj, error) {
	var spj model.Spj

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Kunci nomor urut terakhir tahun ini
		var last model.Spj
		if err := tx.Select("id", "urutan").
			Where("tahun = ?", tahun).
			Order("urutan DESC").
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Limit(1).
			Find(&last).Error; err != nil {
			return err
		}
		urutan := last.Urutan + 1

		// 2. Header
		spj = payload.ToModel()
		spj.Tahun = tahun
		spj.Urutan = urutan
		spj.NoSpj = FormatNoSpj(tahun, urutan)
		spj.CreatedBy = actor
		if err := tx.Omit(clause.Associations).Create(&spj).Error; err != nil {
			if isDuplicateKey(err) {
				return fmt.Errorf("%w: %s", ErrDuplicateNumber, spj.NoSpj)
			}
			return err
		}

		// 3. Rincian, urut sesuai kiriman
		for _, row := range payload.TransportRows(spj.ID) {
			if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
				return fmt.Errorf("simpan transport: %w", err)
			}
		}
		for _, row := range payload.PenginapanRows(spj.ID) {
			if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
				return fmt.Errorf("simpan penginapan: %w", err)
			}
		}
		for _, row := range payload.TimRows(spj.ID) {
			if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
				return fmt.Errorf("simpan tim: %w", err)
			}
		}
		for _, row := range payload.PerusahaanRows(spj.ID) {
			if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
				return fmt.Errorf("simpan perusahaan: %w", err)
			}
		}

		// 4. Log aktivitas
		entry := model.LogAktivitas{
			User:      actor,
			Aktivitas: fmt.Sprintf("Created SPJ ID: %d", spj.ID),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("simpan log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &spj, nil
}

func (r *spjRepository) GetAll(ctx context.Context) ([]model.Spj, error) {
	list := []model.Spj{}
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Order("id desc").
		Find(&list).Error
	return list, err
}

func (r *spjRepository) GetStats(ctx context.Context) (model.SpjStats, error) {
	var stats model.SpjStats
	var err error

	if stats.TotalDipa, err = r.sumTotal(ctx, "sumber_anggaran = ?", string(model.SumberDIPA)); err != nil {
		return stats, err
	}
	if stats.TotalPnbp, err = r.sumTotal(ctx, "sumber_anggaran = ?", string(model.SumberPNBP)); err != nil {
		return stats, err
	}
	if err = r.db.WithContext(ctx).Model(&model.Spj{}).
		Where("jenis_kegiatan = ?", string(model.KegiatanPerjalananDinas)).
		Count(&stats.CountPerjadin).Error; err != nil {
		return stats, err
	}
	if err = r.db.WithContext(ctx).Model(&model.Spj{}).
		Where("jenis_kegiatan = ?", string(model.KegiatanRapat)).
		Count(&stats.CountRapat).Error; err != nil {
		return stats, err
	}
	if stats.KkpUsage, err = r.sumTotal(ctx, "metode_pembayaran = ?", string(model.BayarKKP)); err != nil {
		return stats, err
	}
	return stats, nil
}

func (r *spjRepository) sumTotal(ctx context.Context, cond string, arg string) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Spj{}).
		Select("COALESCE(SUM(total_biaya), 0)").
		Where(cond, arg).
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
