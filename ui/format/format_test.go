package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDocuments(t *testing.T) {
	var testCases = []struct {
		description string
		fn          func(string) string
		input       string
		expect      string
	}{
		{description: "cpf", fn: CPF, input: "12345678901", expect: "123.456.789-01"},
		{description: "cpf masked input", fn: CPF, input: "123.456.789-01", expect: "123.456.789-01"},
		{description: "cpf too long", fn: CPF, input: "123456789012345", expect: "123.456.789-01"},
		{description: "cpf partial", fn: CPF, input: "1234", expect: "1234"},
		{description: "cnpj", fn: CNPJ, input: "12345678000190", expect: "12.345.678/0001-90"},
		{description: "cep", fn: CEP, input: "01310100", expect: "01310-100"},
		{description: "landline", fn: Phone, input: "1133334444", expect: "(11) 3333-4444"},
		{description: "mobile", fn: Phone, input: "11987654321", expect: "(11) 98765-4321"},
		{description: "phone partial", fn: Phone, input: "119", expect: "119"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, testCase.fn(testCase.input), testCase.description)
	}
}

func TestDate(t *testing.T) {
	d := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "05/03/2024", Date(d, ""))
	assert.Equal(t, "2024-03-05", Date(d, "yyyy-MM-dd"))
	assert.Equal(t, "", Date(time.Time{}, ""))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "1.234,50", Number(1234.5, 2))
	assert.Equal(t, "42", Number(42, 0))
	assert.Equal(t, "R$ 1.234,56", Currency(1234.56))
	assert.Equal(t, "R$ 0,99", Currency(0.99))
}

func TestMask(t *testing.T) {
	assert.Equal(t, "123.456.789-01", Mask(KindCPF, "12345678901"))
	assert.Equal(t, "25/12/2023", Mask(KindData, "25122023"))
	assert.Equal(t, "R$ 12,34", Mask(KindMoeda, "1234"))
	assert.Equal(t, "", Mask(KindMoeda, "abc"))
	assert.Equal(t, "(11) 98765-4321", Mask(KindTelefone, "(11) 98765-4321"))
	assert.Equal(t, "as-is", Mask("unknown", "as-is"))
}
