package database

import (
	"fmt"
	"log"

	"siap-spj-backend/internal/access"
	"siap-spj-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedUser struct {
	Username string
	Nama     string
	Password string
	Role     access.Role
}

// Akun awal, satu per role. Password wajib diganti setelah deploy.
var defaultUsers = []seedUser{
	{"admin", "Administrator", "admin123", access.RoleAdmin},
	{"bendahara_pengeluaran", "Bendahara Pengeluaran", "ben123", access.RoleBendaharaPengeluaran},
	{"bendahara_penerimaan", "Bendahara Penerimaan", "ben123", access.RoleBendaharaPenerimaan},
	{"verifikator", "Verifikator", "cek123", access.RoleVerifikator},
}

// SeedAll aman dipanggil berulang; akun yang sudah ada tidak disentuh.
func SeedAll(db *gorm.DB) error {
	created := 0
	for _, su := range defaultUsers {
		var existing int64
		if err := db.Model(&model.User{}).Where("username = ?", su.Username).Count(&existing).Error; err != nil {
			return fmt.Errorf("cek user %s: %w", su.Username, err)
		}
		if existing > 0 {
			continue
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := model.User{
			Username: su.Username,
			Nama:     su.Nama,
			Password: string(hashedPassword),
			Role:     su.Role,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("seed user %s: %w", su.Username, err)
		}
		created++
	}

	if created > 0 {
		log.Printf("Seeding %d akun awal berhasil! Segera ganti password default.", created)
	}
	return nil
}
