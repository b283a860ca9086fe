package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"siap-spj-backend/internal/composer"
	"siap-spj-backend/internal/model"
	"siap-spj-backend/internal/notify"
	"siap-spj-backend/internal/repository"
)

const maxCreateAttempts = 3

type SpjUsecase struct {
	repo     repository.SpjRepository
	notifier notify.Notifier
	now      func() time.Time
}

func NewSpjUsecase(repo repository.SpjRepository, notifier notify.Notifier) *SpjUsecase {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &SpjUsecase{repo: repo, notifier: notifier, now: time.Now}
}

// Create memvalidasi lalu menyimpan SPJ atas nama actor.
// Nomor yang bentrok dibuat ulang, paling banyak maxCreateAttempts kali.
func (u *SpjUsecase) Create(ctx context.Context, actor string, p *model.SpjPayload) (*model.Spj, error) {
	p.Normalize()
	if err := composer.Validate(p); err != nil {
		return nil, err
	}

	tahun := u.now().Year()

	var spj *model.Spj
	var err error
	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		spj, err = u.repo.Create(ctx, actor, tahun, p)
		if !errors.Is(err, repository.ErrDuplicateNumber) {
			break
		}
		log.Printf("⚠️ Nomor SPJ bentrok (percobaan %d/%d): %v", attempt, maxCreateAttempts, err)
	}
	if err != nil {
		return nil, err
	}

	// Email dikirim di belakang, gagal kirim tidak membatalkan SPJ
	saved := *spj
	go func() {
		if err := u.notifier.ClaimSubmitted(saved); err != nil {
			log.Printf("⚠️ Notifikasi %s gagal: %v", saved.NoSpj, err)
		}
	}()

	return spj, nil
}

func (u *SpjUsecase) List(ctx context.Context) ([]model.Spj, error) {
	return u.repo.GetAll(ctx)
}

func (u *SpjUsecase) Stats(ctx context.Context) (model.SpjStats, error) {
	return u.repo.GetStats(ctx)
}
