package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.ExecuteContext(t.Context())
	return out.String(), err
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestSummaryCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/transactions/summary", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("month"))
		assert.Equal(t, "2026", r.URL.Query().Get("year"))
		writeJSON(w, http.StatusOK, map[string]any{
			"month": 1, "year": 2026,
			"total_income": 200000, "total_expense": 50000, "balance": 150000,
			"expenses_by_category": []map[string]any{{"category": "Comida", "total": 50000}},
		})
	}))
	defer server.Close()

	out, err := runCLI(t, "--api-url", server.URL, "summary", "--month", "1", "--year", "2026")

	require.NoError(t, err)
	assert.Contains(t, out, "₲ 200.000")
	assert.Contains(t, out, "₲ 150.000")
	assert.Contains(t, out, "Comida")
}

func TestReadViewsDegradeWhenAPIIsDown(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	out, err := runCLI(t, "--api-url", url, "dashboard")

	require.NoError(t, err, "read views exit cleanly")
	assert.Contains(t, out, "no se pudo cargar el panel")
	assert.Contains(t, out, "Sin datos disponibles")
}

func TestAPIURLFromEnvironment(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(w, http.StatusOK, map[string]any{"goals": []any{}})
	}))
	defer server.Close()
	t.Setenv("YOUNGFIN_API_URL", server.URL)

	out, err := runCLI(t, "goals", "list")

	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
	assert.Contains(t, out, "No hay metas")
}

func TestAddAmountCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/goals/g1/add_amount":
			writeJSON(w, http.StatusOK, map[string]any{
				"id": "g1", "title": "Bicicleta", "status": "completed",
				"target_amount": 1000, "current_amount": 1000, "percent_complete": 100,
				"completed": true,
			})
		default:
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "Goal not found", "code": "GOAL-010001"})
		}
	}))
	defer server.Close()

	out, err := runCLI(t, "--api-url", server.URL, "goals", "add-amount", "g1", "400")
	require.NoError(t, err)
	assert.Contains(t, out, "Bicicleta")
	assert.Contains(t, out, "¡Meta completada!")

	_, err = runCLI(t, "--api-url", server.URL, "goals", "add-amount", "missing", "400")
	require.Error(t, err, "failed mutations exit non-zero")
	assert.Contains(t, err.Error(), "Goal not found")

	_, err = runCLI(t, "--api-url", server.URL, "goals", "add-amount", "g1", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be greater than zero")
}

func TestImportOFXCommand(t *testing.T) {
	var created atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/transactions", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "6f1c2a40-1b7e-4c1a-9d1e-0a0000000001", body["category_id"])

		created.Add(1)
		writeJSON(w, http.StatusCreated, map[string]any{"id": "t", "description": body["description"], "type": body["type"]})
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "statement.ofx")
	require.NoError(t, os.WriteFile(path, []byte(statement), 0o600))

	out, err := runCLI(t, "--api-url", server.URL, "import", "ofx", path,
		"--category", "6f1c2a40-1b7e-4c1a-9d1e-0a0000000001", "--quiet")

	require.NoError(t, err)
	assert.Equal(t, int32(2), created.Load())
	assert.Contains(t, out, "Importadas 2 de 2 transacciones")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := runCLI(t, "--log-level", "loud", "categories", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestCurrentPeriod(t *testing.T) {
	month, year := currentPeriod(3, 2025)
	assert.Equal(t, 3, month)
	assert.Equal(t, 2025, year)

	month, year = currentPeriod(0, 0)
	assert.NotZero(t, month)
	assert.NotZero(t, year)
}

const statement = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20260131120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>PYG
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>000111222
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20260101120000[0:GMT]
<DTEND>20260131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260110120000[0:GMT]
<TRNAMT>-25000.00
<FITID>2026011001
<NAME>SUPERMERCADO CENTRAL
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20260105120000[0:GMT]
<TRNAMT>150000.00
<FITID>2026010501
<NAME>TRANSFERENCIA RECIBIDA
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>125000.00
<DTASOF>20260131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`
