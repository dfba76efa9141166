// app/echoServer/routes_test.go
package echoServer_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KIKE335/tool-management-backend/app/echoServer"
	authctrl "github.com/KIKE335/tool-management-backend/app/echoServer/controller/auth"
	toolctrl "github.com/KIKE335/tool-management-backend/app/echoServer/controller/tool"
	"github.com/KIKE335/tool-management-backend/model"
	sheetsrepo "github.com/KIKE335/tool-management-backend/repository/sheets"
	authsvc "github.com/KIKE335/tool-management-backend/service/auth"
	toolsvc "github.com/KIKE335/tool-management-backend/service/tool"
	"github.com/KIKE335/tool-management-backend/util/hash"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// fakeSheet is an in-memory stand-in for the master sheet.
type fakeSheet struct {
	header []string
	rows   [][]string
}

var _ toolsvc.Repo = (*fakeSheet)(nil)

func (f *fakeSheet) Header(context.Context) ([]string, error) { return f.header, nil }

func (f *fakeSheet) AllRecords(context.Context) ([]sheetsrepo.Record, error) {
	records := make([]sheetsrepo.Record, 0, len(f.rows))
	for i, raw := range f.rows {
		row := make(sheetsrepo.Row, len(f.header))
		for j, label := range f.header {
			if j < len(raw) {
				row[label] = raw[j]
			} else {
				row[label] = ""
			}
		}
		records = append(records, sheetsrepo.Record{RowNumber: i + 2, Values: row})
	}
	return records, nil
}

func (f *fakeSheet) AppendRow(_ context.Context, values []string) error {
	f.rows = append(f.rows, values)
	return nil
}

func (f *fakeSheet) UpdateCell(_ context.Context, row, col int, value string) error {
	f.rows[row-2][col-1] = value
	return nil
}

func newServer(t *testing.T, withAuth bool) (*echo.Echo, *fakeSheet) {
	t.Helper()

	sheet := &fakeSheet{header: []string{
		toolsvc.ColID, toolsvc.ColName, toolsvc.ColModelNumber, toolsvc.ColType,
		toolsvc.ColStorageLocation, toolsvc.ColStatus, toolsvc.ColPurchaseDate,
		toolsvc.ColPurchasePrice, toolsvc.ColRecommendedReplacement,
		toolsvc.ColRemarks, toolsvc.ColImageURL,
	}}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	v := validator.New()
	toolC := &toolctrl.Controller{Svc: toolsvc.New(sheet, log), V: v, Log: log}

	c := echoServer.C{Tool: toolC}
	if withAuth {
		hashed, err := hash.HashPassword("supersecret")
		require.NoError(t, err)
		c.Auth = &authctrl.Controller{Svc: authsvc.New(hashed, "test-secret"), V: v, Log: log}
		c.JWTSecret = "test-secret"
	}

	e := echo.New()
	echoServer.Register(e, c)
	return e, sheet
}

func do(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateTool(t *testing.T) {
	e, sheet := newServer(t, false)

	rec := do(e, http.MethodPost, "/tools",
		`{"name":"Press Jig","modelNumber":"PJ-1","type":"jig","storageLocation":"Plant1","status":"in_stock"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var out model.Tool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Regexp(t, `^TOOL-\d{14}-[0-9a-f]{4}$`, out.ID)
	require.Equal(t, model.StatusInStock, out.Status)
	require.NotEmpty(t, out.QRCode)
	require.Len(t, sheet.rows, 1)
}

func TestCreateTool_BadStatus(t *testing.T) {
	e, sheet := newServer(t, false)

	rec := do(e, http.MethodPost, "/tools",
		`{"name":"Press Jig","modelNumber":"PJ-1","type":"jig","storageLocation":"Plant1","status":"lost"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, sheet.rows)
}

func TestStatusUpdateThenList(t *testing.T) {
	e, _ := newServer(t, false)

	rec := do(e, http.MethodPost, "/tools",
		`{"name":"Press Jig","modelNumber":"PJ-1","type":"jig","storageLocation":"Plant1"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var created model.Tool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = do(e, http.MethodPut, "/tools/"+created.ID+"/status", `{"status":"on_loan"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var updated model.Tool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Equal(t, model.StatusOnLoan, updated.Status)

	rec = do(e, http.MethodGet, "/tools", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []model.Tool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	require.Equal(t, created.ID, listed[0].ID)
	require.Equal(t, model.StatusOnLoan, listed[0].Status)
}

func TestStatusUpdate_UnknownID(t *testing.T) {
	e, sheet := newServer(t, false)
	sheet.rows = append(sheet.rows, []string{"TOOL-20240401120000-aa01", "Press Jig", "PJ-1", "jig", "Plant1", "in_stock", "", "", "", "", ""})

	rec := do(e, http.MethodPut, "/tools/TOOL-nope/status", `{"status":"on_loan"}`, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "in_stock", sheet.rows[0][5])
}

func TestListTools_SkipsRowsWithoutIdentifier(t *testing.T) {
	e, sheet := newServer(t, false)
	sheet.rows = append(sheet.rows,
		[]string{"TOOL-20240401120000-aa01", "Press Jig", "PJ-1", "jig", "Plant1", "in_stock", "", "", "", "", ""},
		[]string{"", "orphan", "", "", "", "", "", "", "", "", ""},
		[]string{"TOOL-20240401120001-bb02", "Drill", "D-2", "tool", "Plant2", "on_loan", "", "", "", "", ""},
	)

	rec := do(e, http.MethodGet, "/tools", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []model.Tool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
}

func TestRoot(t *testing.T) {
	e, _ := newServer(t, false)
	rec := do(e, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "工具")
}

func TestAuthGuardsMutations(t *testing.T) {
	e, sheet := newServer(t, true)

	body := `{"name":"Press Jig","modelNumber":"PJ-1","type":"jig","storageLocation":"Plant1"}`

	rec := do(e, http.MethodPost, "/tools", body, "")
	require.Equal(t, http.StatusBadRequest, rec.Code) // missing jwt
	require.Empty(t, sheet.rows)

	rec = do(e, http.MethodPost, "/v1/auth/login", `{"password":"wrong"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodPost, "/v1/auth/login", `{"password":"supersecret"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	rec = do(e, http.MethodPost, "/tools", body, login.Token)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, sheet.rows, 1)

	// listing stays public
	rec = do(e, http.MethodGet, "/tools", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
}
