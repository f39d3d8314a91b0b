package handler_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"medmcq/internal/domain"
	"medmcq/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportHandler_Excel(t *testing.T) {
	a, b := util.NewULID(), util.NewULID()
	deps := newTestDeps()
	deps.exports.ExcelFunc = func(ctx context.Context, ids []string) ([]byte, error) {
		assert.Equal(t, []string{b, a}, ids)
		return []byte("xlsx-bytes"), nil
	}

	resp, err := deps.app().Test(authed(jsonRequest(t, http.MethodGet, "/api/export/excel?ids="+b+","+a, nil)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `attachment; filename="questions-`)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `.xlsx"`)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "xlsx-bytes", string(body))
}

func TestExportHandler_PDF(t *testing.T) {
	deps := newTestDeps()
	deps.exports.PDFFunc = func(ctx context.Context, ids []string, practice bool) ([]byte, error) {
		assert.Empty(t, ids)
		assert.True(t, practice)
		return []byte("%PDF-1.3"), nil
	}

	resp, err := deps.app().Test(authed(jsonRequest(t, http.MethodGet, "/api/export/pdf?practice=true", nil)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `filename="practice-`)
}

func TestExportHandler_Errors(t *testing.T) {
	deps := newTestDeps()
	deps.exports.PDFFunc = func(ctx context.Context, ids []string, practice bool) ([]byte, error) {
		return nil, domain.NewRecordNotFoundError(ids[0])
	}
	app := deps.app()

	resp, err := app.Test(authed(jsonRequest(t, http.MethodGet, "/api/export/pdf?ids="+util.NewULID(), nil)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(authed(jsonRequest(t, http.MethodGet, "/api/export/excel?ids=1,2", nil)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
