package submission

import (
	"bytes"
	"encoding/json"
	"reflect"
	"regexp"
	"strings"

	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/domain/phone"
	"funnel/internal/domain/reservation"
	"funnel/internal/errors"

	"github.com/go-playground/validator/v10"
)

var marketerCodePattern = regexp.MustCompile(`^[A-Z0-9]{1,32}$`)

// fieldMessages are the user-facing messages per validation tag.
var fieldMessages = map[string]string{
	"required":     "필수 입력 항목입니다.",
	"required_if":  "필수 입력 항목입니다.",
	"krphone":      "올바른 전화번호를 입력해주세요.",
	"marketercode": "추천 코드는 영문 대문자와 숫자만 사용할 수 있습니다.",
	"oneof":        "허용되지 않는 값입니다.",
	"eq":           "개인정보 수집에 동의해주세요.",
	"min":          "값이 너무 작습니다.",
	"max":          "값이 너무 큽니다.",
}

// Validator decodes and checks inbound payloads. It also satisfies echo.Validator so
// request binding shares the same rules.
type Validator struct {
	validate     *validator.Validate
	maxUnitCount int
}

// NewValidator returns a Validator with the krphone and marketercode tags registered.
// Non-positive maxUnitCount falls back to the reservation default.
func NewValidator(maxUnitCount int) *Validator {
	if maxUnitCount <= 0 {
		maxUnitCount = reservation.DefaultMaxUnitCount
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("krphone", func(fl validator.FieldLevel) bool {
		return phone.IsValid(fl.Field().String())
	})
	_ = v.RegisterValidation("marketercode", func(fl validator.FieldLevel) bool {
		return marketerCodePattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: v, maxUnitCount: maxUnitCount}
}

// Validate runs struct validation and converts failures into a ValidationError.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return toValidationError(err)
	}

	return nil
}

// MaxUnitCount is the cap applied to outdoor and indoor counts.
func (v *Validator) MaxUnitCount() int {
	return v.maxUnitCount
}

type envelope struct {
	Kind        *string         `json:"kind"`
	InquiryType json.RawMessage `json:"inquiryType"`
}

// Parse reads the discriminator, decodes the matching variant and validates it.
func (v *Validator) Parse(body []byte) (*Submission, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, decodeError(err)
	}

	kind, err := resolveKind(env)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, decodeError(err)
	}

	sub := &Submission{Kind: kind, Raw: raw}

	switch kind {
	case KindLegacy:
		var p LegacyPayload
		if err := DecodeJSON(body, &p); err != nil {
			return nil, err
		}
		p.MarketerCode = normalizeCode(p.MarketerCode)
		p.ReferrerURL = trimOptional(p.ReferrerURL)
		p.InstallLocation = strings.TrimSpace(p.InstallLocation)
		if err := v.Validate(&p); err != nil {
			return nil, err
		}
		p.PhoneNumber = phone.Normalize(p.PhoneNumber)
		sub.Legacy = &p
	case KindUnified:
		var p UnifiedPayload
		if err := DecodeJSON(body, &p); err != nil {
			return nil, err
		}
		p.MarketerCode = normalizeCode(p.MarketerCode)
		p.ReferrerURL = trimOptional(p.ReferrerURL)
		p.Address = trimOptional(p.Address)
		p.InstallLocation = trimOptional(p.InstallLocation)
		if err := v.validateUnified(&p); err != nil {
			return nil, err
		}
		p.PhoneNumber = phone.Normalize(p.PhoneNumber)
		sub.Unified = &p
	}

	return sub, nil
}

func resolveKind(env envelope) (Kind, error) {
	if env.Kind != nil {
		kind := Kind(strings.ToLower(strings.TrimSpace(*env.Kind)))
		if !kind.IsValid() {
			return "", domainerrors.NewValidationError("", domainerrors.FieldError{
				Field: "kind", Message: "지원하지 않는 요청 형식입니다.",
			})
		}

		return kind, nil
	}

	trimmed := bytes.TrimSpace(env.InquiryType)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return KindLegacy, nil
	}

	return KindUnified, nil
}

func (v *Validator) validateUnified(p *UnifiedPayload) error {
	var fields []domainerrors.FieldError

	if err := v.validate.Struct(p); err != nil {
		verr := toValidationError(err)
		var ve *domainerrors.ValidationError
		if !errors.As(verr, &ve) {
			return verr
		}
		fields = append(fields, ve.Fields()...)
	}

	if p.OutdoorCount != nil && *p.OutdoorCount > v.maxUnitCount {
		fields = append(fields, domainerrors.FieldError{Field: "outdoorCount", Message: fieldMessages["max"]})
	}
	if p.IndoorCount != nil && *p.IndoorCount > v.maxUnitCount {
		fields = append(fields, domainerrors.FieldError{Field: "indoorCount", Message: fieldMessages["max"]})
	}

	if p.IsInstallation() {
		if deref(p.OutdoorCount)+deref(p.IndoorCount) <= 0 {
			fields = append(fields, domainerrors.FieldError{Field: "outdoorCount", Message: "설치 수량을 1대 이상 입력해주세요."})
		}
		if p.ReservationDate != nil && p.ReservationDate.IsZero() {
			fields = append(fields, domainerrors.FieldError{Field: "reservationDate", Message: fieldMessages["required"]})
		}
	}

	for key, ref := range p.Documents {
		if !entity.DocumentKind(key).IsValid() || strings.TrimSpace(ref) == "" {
			fields = append(fields, domainerrors.FieldError{Field: "documents." + key, Message: "서류 정보가 올바르지 않습니다."})
		}
	}

	if len(fields) > 0 {
		return domainerrors.NewValidationError("", fields...)
	}

	return nil
}

// DocumentMap returns the payload documents keyed by document kind.
func (p *UnifiedPayload) DocumentMap() entity.Documents {
	return toDocuments(p.Documents)
}

func toDocuments(in map[string]string) entity.Documents {
	out := make(entity.Documents, len(in))
	for k, v := range in {
		out[entity.DocumentKind(k)] = v
	}

	return out
}

func deref(v *int) int {
	if v == nil {
		return 0
	}

	return *v
}

// DecodeJSON unmarshals body into dst and reports malformed input as a ValidationError.
func DecodeJSON(body []byte, dst any) error {
	if err := json.Unmarshal(body, dst); err != nil {
		return decodeError(err)
	}

	return nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return domainerrors.NewValidationError("", domainerrors.FieldError{
			Field: typeErr.Field, Message: "형식이 올바르지 않습니다.",
		})
	}

	return domainerrors.NewValidationError("요청 본문을 읽을 수 없습니다.", domainerrors.FieldError{
		Field: "body", Message: err.Error(),
	})
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "validation failed")
	}

	fields := make([]domainerrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Tag()]
		if !ok {
			msg = "입력값이 올바르지 않습니다."
		}
		fields = append(fields, domainerrors.FieldError{Field: fieldPath(fe), Message: msg})
	}

	return domainerrors.NewValidationError("", fields...)
}

// fieldPath drops the root struct name from the namespace (LegacyPayload.phoneNumber → phoneNumber).
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.IndexByte(ns, '.'); idx >= 0 {
		return ns[idx+1:]
	}

	return fe.Field()
}
