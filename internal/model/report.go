package model

import "github.com/shopspring/decimal"

// RekapBaris adalah satu baris rekap: kunci kelompok, jumlah SPJ, dan total biaya.
type RekapBaris struct {
	Kunci  string          `json:"kunci"`
	Jumlah int64           `json:"jumlah"`
	Total  decimal.Decimal `json:"total"`
}

// SpjRecap dipakai menu Laporan. Rentang tanggal mengikuti tanggal_berangkat.
type SpjRecap struct {
	Mulai      string       `json:"mulai"`
	Selesai    string       `json:"selesai"`
	PerSumber  []RekapBaris `json:"per_sumber"`
	PerJenis   []RekapBaris `json:"per_jenis"`
	Kkp        RekapBaris   `json:"kkp"`
	Perusahaan []string     `json:"perusahaan"`
}
