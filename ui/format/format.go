// Package format renders Brazilian document numbers, phone numbers, dates and
// amounts the way the CRM forms display them.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Mask kinds accepted by Mask.
const (
	KindCPF      = "cpf"
	KindCNPJ     = "cnpj"
	KindCEP      = "cep"
	KindTelefone = "telefone"
	KindData     = "data"
	KindMoeda    = "moeda"
)

// DefaultDateLayout uses dd, MM and yyyy placeholders.
const DefaultDateLayout = "dd/MM/yyyy"

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Digits strips every non-digit rune.
func Digits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// pattern groups exactly sum(sizes) digits with the given separators,
// other lengths are returned as bare digits.
func pattern(digits string, sizes []int, separators []string) string {
	total := 0
	for _, size := range sizes {
		total += size
	}
	if len(digits) != total {
		return digits
	}
	var b strings.Builder
	offset := 0
	for i, size := range sizes {
		b.WriteString(separators[i])
		b.WriteString(digits[offset : offset+size])
		offset += size
	}
	return b.String()
}

func truncate(digits string, max int) string {
	if len(digits) > max {
		return digits[:max]
	}
	return digits
}

// CPF formats 11 digits as 000.000.000-00.
func CPF(value string) string {
	return pattern(truncate(Digits(value), 11), []int{3, 3, 3, 2}, []string{"", ".", ".", "-"})
}

// CNPJ formats 14 digits as 00.000.000/0000-00.
func CNPJ(value string) string {
	return pattern(truncate(Digits(value), 14), []int{2, 3, 3, 4, 2}, []string{"", ".", ".", "/", "-"})
}

// CEP formats 8 digits as 00000-000.
func CEP(value string) string {
	return pattern(truncate(Digits(value), 8), []int{5, 3}, []string{"", "-"})
}

// Phone formats landlines (10 digits) and mobiles (11 digits).
func Phone(value string) string {
	digits := truncate(Digits(value), 11)
	if len(digits) <= 10 {
		return pattern(digits, []int{2, 4, 4}, []string{"(", ") ", "-"})
	}
	return pattern(digits, []int{2, 5, 4}, []string{"(", ") ", "-"})
}

// Date renders t with layout placeholders dd, MM and yyyy.
func Date(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	if layout == "" {
		layout = DefaultDateLayout
	}
	r := strings.NewReplacer(
		"dd", fmt.Sprintf("%02d", t.Day()),
		"MM", fmt.Sprintf("%02d", int(t.Month())),
		"yyyy", strconv.Itoa(t.Year()),
	)
	return r.Replace(layout)
}

// Number renders value with pt-BR grouping and the given decimals.
func Number(value float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return printer.Sprintf(fmt.Sprintf("%%.%df", decimals), value)
}

// Currency renders a BRL amount.
func Currency(value float64) string {
	return "R$ " + Number(value, 2)
}

// Mask applies the input mask of kind to value. Unknown kinds return value
// unchanged.
func Mask(kind, value string) string {
	digits := Digits(value)
	switch kind {
	case KindCPF:
		return CPF(digits)
	case KindCNPJ:
		return CNPJ(digits)
	case KindCEP:
		return CEP(digits)
	case KindTelefone:
		return Phone(digits)
	case KindData:
		return pattern(truncate(digits, 8), []int{2, 2, 4}, []string{"", "/", "/"})
	case KindMoeda:
		if digits == "" {
			return ""
		}
		cents, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return value
		}
		return Currency(cents / 100)
	}
	return value
}
