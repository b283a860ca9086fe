// Package notify mengabarkan SPJ yang baru tersimpan ke bagian keuangan.
package notify

import (
	"fmt"
	"log"
	"strings"

	"siap-spj-backend/config"
	"siap-spj-backend/internal/model"

	"gopkg.in/gomail.v2"
)

type Notifier interface {
	ClaimSubmitted(spj model.Spj) error
}

// New memilih SMTP bila SMTP_HOST dan NOTIFY_TO terisi, selain itu Noop.
func New(cfg config.Config) Notifier {
	if cfg.SMTPHost == "" || len(cfg.NotifyTo) == 0 {
		log.Println("Notifikasi email nonaktif (SMTP_HOST/NOTIFY_TO kosong)")
		return Noop{}
	}
	return NewSMTPNotifier(cfg)
}

type Noop struct{}

func (Noop) ClaimSubmitted(model.Spj) error { return nil }

type SMTPNotifier struct {
	from string
	to   []string
	send func(m ...*gomail.Message) error
}

func NewSMTPNotifier(cfg config.Config) *SMTPNotifier {
	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	return &SMTPNotifier{from: from, to: cfg.NotifyTo, send: d.DialAndSend}
}

func (n *SMTPNotifier) ClaimSubmitted(spj model.Spj) error {
	if err := n.send(n.message(spj)); err != nil {
		return fmt.Errorf("kirim email %s: %w", spj.NoSpj, err)
	}
	return nil
}

func (n *SMTPNotifier) message(spj model.Spj) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to...)
	m.SetHeader("Subject", fmt.Sprintf("[SIAP-SPJ] %s - %s", spj.NoSpj, spj.JenisKegiatan))

	var b strings.Builder
	b.WriteString("SPJ baru telah tersimpan.\n\n")
	fmt.Fprintf(&b, "Nomor SPJ      : %s\n", spj.NoSpj)
	fmt.Fprintf(&b, "Nomor SPT      : %s\n", spj.NoSpt)
	fmt.Fprintf(&b, "Sumber Anggaran: %s\n", spj.SumberAnggaran)
	fmt.Fprintf(&b, "Jenis Kegiatan : %s\n", spj.JenisKegiatan)
	fmt.Fprintf(&b, "Tujuan         : %s\n", spj.Tujuan)
	fmt.Fprintf(&b, "Tanggal        : %s s/d %s\n", spj.TanggalBerangkat, spj.TanggalPulang)
	fmt.Fprintf(&b, "Total Biaya    : Rp %s\n", spj.TotalBiaya.StringFixed(2))
	fmt.Fprintf(&b, "Diinput oleh   : %s\n", spj.CreatedBy)
	m.SetBody("text/plain", b.String())
	return m
}
