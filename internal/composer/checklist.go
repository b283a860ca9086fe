package composer

import "siap-spj-backend/internal/model"

type DocStatus struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
	Attached bool   `json:"attached"`
}

// Checklist bersifat anjuran, tidak pernah menahan pengiriman.
func Checklist(p *model.SpjPayload) []DocStatus {
	b := p.BasicInfo
	d := p.Dokumen
	return []DocStatus{
		{"file_spt", "SPT (Surat Perintah Tugas)", true, d.FileSpt != ""},
		{"file_rincian", "Rincian Pembayaran", true, d.FileRincian != ""},
		{"file_sppd", "SPPD", true, d.FileSppd != ""},
		{"file_sptjm", "SPTJM", b.SumberAnggaran == model.SumberPNBP, d.FileSptjm != ""},
		{"file_kwitansi", "Kwitansi Transport & Hotel", b.MetodePembayaran != model.BayarKKP, d.FileKwitansi != ""},
		{"file_laporan_perjadin", "Laporan Perjadin", true, d.FileLaporanPerjadin != ""},
		{"file_surat_penawaran", "Surat Penawaran", false, d.FileSuratPenawaran != ""},
	}
}

// Missing mengembalikan kunci dokumen wajib yang belum dilampirkan.
func Missing(list []DocStatus) []string {
	var out []string
	for _, s := range list {
		if s.Required && !s.Attached {
			out = append(out, s.Key)
		}
	}
	return out
}

// VisibleComponents hanya petunjuk tampilan; semua komponen tetap dijumlahkan.
func VisibleComponents(jenis model.JenisKegiatan) []string {
	switch jenis {
	case model.KegiatanPerjalananDinas, model.KegiatanPengujian:
		return []string{"uang_harian", "penginapan", "transport_pp", "transport_lokal", "bbm", "tol"}
	case model.KegiatanPelatihan, model.KegiatanDiklat:
		return []string{"biaya_pendaftaran", "konsumsi"}
	case model.KegiatanDalamKantor:
		return []string{"honorarium", "konsumsi"}
	default:
		return nil
	}
}

// ShowsTravelTables: tabel transport dan penginapan hanya untuk perjalanan.
func ShowsTravelTables(jenis model.JenisKegiatan) bool {
	return jenis == model.KegiatanPerjalananDinas || jenis == model.KegiatanPengujian
}
