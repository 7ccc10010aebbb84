package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var rows = Rows{
	{"id": 1, "nome": "Souza, Ana", "valor": 99.9},
	{"id": 2, "nome": `Bruno "B"`},
}

func TestCSV(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, CSV(buf, rows, nil))
	assert.Equal(t, "id,nome,valor\n1,\"Souza, Ana\",99.9\n2,\"Bruno \"\"B\"\"\",\n", buf.String())

	buf.Reset()
	require.NoError(t, CSV(buf, rows, []string{"nome"}))
	assert.Equal(t, "nome\n\"Souza, Ana\"\n\"Bruno \"\"B\"\"\"\n", buf.String())

	assert.ErrorIs(t, CSV(buf, nil, nil), ErrNoData)
}

func TestXLSX(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, XLSX(buf, rows, []string{"id", "nome"}))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	got, err := f.GetRows(sheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"id", "nome"}, {"1", "Souza, Ana"}, {"2", `Bruno "B"`}}, got)
}

func TestWrite(t *testing.T) {
	buf := &bytes.Buffer{}
	assert.Error(t, Write(buf, "pdf", rows, nil))
	assert.NoError(t, Write(buf, FormatCSV, rows, nil))
	assert.Equal(t, "clientes.csv", FileName("clientes", FormatCSV))
	assert.Equal(t, "clientes.xlsx", FileName("clientes.xlsx", FormatXLSX))
}
