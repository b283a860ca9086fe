package composer

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"siap-spj-backend/internal/model"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Nama field mengikuti tag json agar cocok dengan payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(model.Enum)
		return ok && e.IsValid()
	})
	return v
}

// FieldErrors memetakan path field (mis. "basicInfo.no_spt", "tim[0].nama") ke tag yang gagal.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "validasi gagal: " + strings.Join(parts, ", ")
}

// Validate memeriksa kiriman sebelum ada interaksi jaringan.
// Hasilnya nil atau FieldErrors.
func Validate(p *model.SpjPayload) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	out := make(FieldErrors, len(ve))
	for _, fe := range ve {
		out[fieldPath(fe.Namespace())] = fe.Tag()
	}
	return out
}

// fieldPath membuang nama struct akar dari namespace validator.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
