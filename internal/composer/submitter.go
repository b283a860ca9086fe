package composer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"siap-spj-backend/internal/model"

	"github.com/gofiber/fiber/v2"
)

type SubmitResult struct {
	ID    uint   `json:"id"`
	NoSpj string `json:"no_spj"`
}

type Submitter interface {
	Create(ctx context.Context, p *model.SpjPayload) (*SubmitResult, error)
}

// HTTPSubmitter mengirim SPJ ke endpoint create milik server.
type HTTPSubmitter struct {
	BaseURL string
	Path    string
	Token   string
	Timeout time.Duration
}

func NewHTTPSubmitter(baseURL, token string) *HTTPSubmitter {
	return &HTTPSubmitter{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Path:    "/api/spj",
		Token:   token,
		Timeout: 15 * time.Second,
	}
}

// NewPublicSubmitter untuk mode publik, tanpa token.
func NewPublicSubmitter(baseURL string) *HTTPSubmitter {
	s := NewHTTPSubmitter(baseURL, "")
	s.Path = "/api/public/spj"
	return s
}

// ErrUnexpectedReply: server menjawab sukses tanpa id atau nomor SPJ.
var ErrUnexpectedReply = errors.New("balasan server tidak dikenali")

type createResponse struct {
	Message string       `json:"message"`
	Data    SubmitResult `json:"data"`
	Error   string       `json:"error"`
}

func (s *HTTPSubmitter) Create(ctx context.Context, p *model.SpjPayload) (*SubmitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timeout := s.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); timeout <= 0 || left < timeout {
			timeout = left
		}
	}

	a := fiber.Post(s.BaseURL + s.Path)
	if s.Token != "" {
		a.Set(fiber.HeaderAuthorization, "Bearer "+s.Token)
	}
	if timeout > 0 {
		a.Timeout(timeout)
	}
	a.JSON(p)

	var resp createResponse
	code, _, errs := a.Struct(&resp)
	if code != fiber.StatusCreated && code != fiber.StatusOK {
		if code == 0 && len(errs) > 0 {
			return nil, errs[0]
		}
		return nil, fmt.Errorf("server menjawab %d: %s", code, resp.Error)
	}
	if len(errs) > 0 {
		return nil, errs[0]
	}
	if resp.Data.ID == 0 || resp.Data.NoSpj == "" {
		return nil, ErrUnexpectedReply
	}
	return &resp.Data, nil
}
