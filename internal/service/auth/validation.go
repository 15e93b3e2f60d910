package auth

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/OdontoBooking/internal/domain"
	"github.com/m04kA/OdontoBooking/pkg/types"
)

const passwordSymbols = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?~`"

// brazilCountryCode добавляется к номерам без кода страны
const brazilCountryCode = "+55"

// fieldMessages сообщения формы по полю и тегу валидации
var fieldMessages = map[string]map[string]string{
	"fullName": {
		"required": "Nome completo é obrigatório.",
	},
	"cpf": {
		"required": "CPF é obrigatório.",
		"cpf":      "CPF inválido.",
	},
	"email": {
		"required": "E-mail é obrigatório.",
		"email":    "Formato de e-mail inválido.",
	},
	"password": {
		"required":        "Senha é obrigatória.",
		"strong_password": "Use 8+ caracteres com maiúscula, minúscula, número e símbolo (ex: !@#$).",
	},
	"confirmPassword": {
		"required": "Confirmação de senha é obrigatória.",
		"eqfield":  "As senhas não coincidem.",
	},
	"phone": {
		"e164": "Telefone inválido. Informe DDD e número, ex: (34) 99999-8888.",
	},
	"birthDate": {
		"required":   "Data de nascimento é obrigatória.",
		"birth_date": "Data de nascimento inválida.",
		"min_age":    "É necessário ter pelo menos 16 anos.",
	},
}

// newValidator создает validator с тегами формы регистрации.
// Имена полей в ошибках берутся из json тегов.
func newValidator(clock Clock) *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return IsValidCPF(fl.Field().String())
	})
	_ = v.RegisterValidation("strong_password", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	_ = v.RegisterValidation("birth_date", func(fl validator.FieldLevel) bool {
		_, err := types.ParseDate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("min_age", func(fl validator.FieldLevel) bool {
		birth, err := types.ParseDate(fl.Field().String())
		if err != nil {
			// формат проверяет birth_date
			return true
		}
		return HasMinAge(birth, clock.Today(), domain.MinPatientAge)
	})

	return v
}

// toValidationError собирает ошибки validator в ValidationError с сообщениями формы.
// Для каждого поля остается первое нарушенное правило.
func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		msg, ok := fieldMessages[fe.Field()][fe.Tag()]
		if !ok {
			msg = "Valor inválido."
		}
		fields[fe.Field()] = msg
	}
	return &ValidationError{Fields: fields}
}

// IsValidCPF проверяет CPF по контрольным цифрам. Маска (точки, тире) допускается
func IsValidCPF(raw string) bool {
	digits := make([]int, 0, 11)
	for _, r := range raw {
		switch {
		case unicode.IsDigit(r):
			digits = append(digits, int(r-'0'))
		case r == '.' || r == '-' || r == ' ':
		default:
			return false
		}
	}
	if len(digits) != 11 {
		return false
	}

	allSame := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	return cpfCheckDigit(digits[:9]) == digits[9] && cpfCheckDigit(digits[:10]) == digits[10]
}

func cpfCheckDigit(digits []int) int {
	sum := 0
	weight := len(digits) + 1
	for _, d := range digits {
		sum += d * weight
		weight--
	}
	rest := sum * 10 % 11
	if rest == 10 {
		return 0
	}
	return rest
}

// IsStrongPassword проверяет длину и наличие заглавной, строчной буквы, цифры и символа
func IsStrongPassword(password string) bool {
	if len([]rune(password)) < domain.MinPasswordLength {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// NormalizePhone убирает маску телефона. Номер без кода страны считается бразильским
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case r == ' ' || r == '(' || r == ')' || r == '-' || r == '.':
		default:
			b.WriteRune(r)
		}
	}

	phone := b.String()
	if phone == "" || strings.HasPrefix(phone, "+") {
		return phone
	}
	return brazilCountryCode + strings.TrimLeft(phone, "0")
}

// HasMinAge возвращает true, если на дату today исполнилось minAge лет
func HasMinAge(birth, today types.Date, minAge int) bool {
	birthTime, err := birth.Time()
	if err != nil {
		return false
	}
	return !types.NewDate(birthTime.AddDate(minAge, 0, 0)).After(today)
}
