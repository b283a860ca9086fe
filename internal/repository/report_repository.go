package repository

import (
	"context"

	"siap-spj-backend/internal/model"

	"gorm.io/gorm"
)

type ReportRepository interface {
	Recap(ctx context.Context, mulai, selesai string) (model.SpjRecap, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db}
}

// between membatasi kolom tanggal; batas kosong diabaikan.
func between(q *gorm.DB, col, mulai, selesai string) *gorm.DB {
	if mulai != "" {
		q = q.Where(col+" >= ?", mulai)
	}
	if selesai != "" {
		q = q.Where(col+" <= ?", selesai)
	}
	return q
}

func (r *reportRepository) spj(ctx context.Context, mulai, selesai string) *gorm.DB {
	return between(r.db.WithContext(ctx).Model(&model.Spj{}), "tanggal_berangkat", mulai, selesai)
}

func (r *reportRepository) Recap(ctx context.Context, mulai, selesai string) (model.SpjRecap, error) {
	recap := model.SpjRecap{
		Mulai:      mulai,
		Selesai:    selesai,
		PerSumber:  []model.RekapBaris{},
		PerJenis:   []model.RekapBaris{},
		Perusahaan: []string{},
	}
	const agg = "COUNT(*) AS jumlah, COALESCE(SUM(total_biaya), 0) AS total"

	// 1. Rekap sumber anggaran
	if err := r.spj(ctx, mulai, selesai).
		Select("sumber_anggaran AS kunci, " + agg).
		Group("sumber_anggaran").
		Order("sumber_anggaran").
		Scan(&recap.PerSumber).Error; err != nil {
		return recap, err
	}

	// 2. Rekap jenis kegiatan
	if err := r.spj(ctx, mulai, selesai).
		Select("jenis_kegiatan AS kunci, " + agg).
		Group("jenis_kegiatan").
		Order("jenis_kegiatan").
		Scan(&recap.PerJenis).Error; err != nil {
		return recap, err
	}

	// 3. Penggunaan KKP
	if err := r.spj(ctx, mulai, selesai).
		Select(agg).
		Where("metode_pembayaran = ?", string(model.BayarKKP)).
		Scan(&recap.Kkp).Error; err != nil {
		return recap, err
	}
	recap.Kkp.Kunci = string(model.BayarKKP)

	// 4. Perusahaan yang diuji
	q := r.db.WithContext(ctx).Model(&model.Perusahaan{}).
		Joins("JOIN spj ON spj.id = perusahaan.spj_id")
	if err := between(q, "spj.tanggal_berangkat", mulai, selesai).
		Distinct().
		Order("perusahaan.nama_perusahaan").
		Pluck("perusahaan.nama_perusahaan", &recap.Perusahaan).Error; err != nil {
		return recap, err
	}

	return recap, nil
}
