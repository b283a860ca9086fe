package model

import "github.com/shopspring/decimal"

func init() {
	// Nominal rupiah dikirim sebagai angka JSON, bukan string.
	decimal.MarshalJSONWithoutQuotes = true
}

// Enum menandai tipe string dengan himpunan nilai tertutup. Dipakai tag validasi "enum".
type Enum interface {
	IsValid() bool
}

type SumberAnggaran string

const (
	SumberDIPA SumberAnggaran = "SPJ DIPA"
	SumberPNBP SumberAnggaran = "SPJ PNBP"
)

func (s SumberAnggaran) IsValid() bool {
	return s == SumberDIPA || s == SumberPNBP
}

type JenisKegiatan string

const (
	KegiatanPerjalananDinas JenisKegiatan = "Perjalanan Dinas"
	KegiatanPengujian       JenisKegiatan = "Pengujian"
	KegiatanPelatihan       JenisKegiatan = "Pelatihan"
	KegiatanDiklat          JenisKegiatan = "Diklat"
	KegiatanRapat           JenisKegiatan = "Rapat"
	KegiatanDalamKantor     JenisKegiatan = "Kegiatan Dalam Kantor"
)

var AllJenisKegiatan = []JenisKegiatan{
	KegiatanPerjalananDinas,
	KegiatanPengujian,
	KegiatanPelatihan,
	KegiatanDiklat,
	KegiatanRapat,
	KegiatanDalamKantor,
}

func (j JenisKegiatan) IsValid() bool {
	for _, k := range AllJenisKegiatan {
		if j == k {
			return true
		}
	}
	return false
}

type MetodePembayaran string

const (
	BayarTunai    MetodePembayaran = "Tunai"
	BayarTransfer MetodePembayaran = "Transfer"
	BayarKKP      MetodePembayaran = "KKP"
)

func (m MetodePembayaran) IsValid() bool {
	return m == BayarTunai || m == BayarTransfer || m == BayarKKP
}

type JenisTransport string

const (
	TransportDarat   JenisTransport = "Roda 4"
	TransportKereta  JenisTransport = "Kereta"
	TransportPesawat JenisTransport = "Pesawat"
)

func (j JenisTransport) IsValid() bool {
	return j == TransportDarat || j == TransportKereta || j == TransportPesawat
}
