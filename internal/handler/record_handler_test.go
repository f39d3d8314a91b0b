package handler_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"medmcq/internal/domain"
	"medmcq/internal/dto"
	"medmcq/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord(id string) *domain.Record {
	now := time.Now()
	return &domain.Record{
		ID:              id,
		Name:            "Chest pain",
		Topic:           "ACS",
		RawText:         "raw",
		Content:         *sampleContent(),
		Rating:          3,
		Model:           "o4-mini",
		ReasoningEffort: domain.EffortMedium,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestRecordHandler_List(t *testing.T) {
	deps := newTestDeps()
	deps.records.ListFunc = func(ctx context.Context, filter domain.RecordFilter) ([]*domain.Record, error) {
		assert.Equal(t, "acs", filter.Topic)
		assert.Equal(t, 2, filter.MinRating)
		return []*domain.Record{sampleRecord(util.NewULID()), sampleRecord(util.NewULID())}, nil
	}
	app := deps.app()

	resp, err := app.Test(authed(jsonRequest(t, http.MethodGet, "/api/records?topic=acs&min_rating=2", nil)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body dto.RecordListResponse
	decode(t, resp, &body)
	assert.Equal(t, 2, body.Total)

	resp, err = app.Test(authed(jsonRequest(t, http.MethodGet, "/api/records?min_rating=9", nil)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(authed(jsonRequest(t, http.MethodGet, "/api/records?min_rating=high", nil)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRecordHandler_Create(t *testing.T) {
	t.Run("from draft", func(t *testing.T) {
		draftID := util.NewULID()
		deps := newTestDeps()
		deps.records.SaveFunc = func(ctx context.Context, req *dto.SaveRecordRequest) (*domain.Record, error) {
			assert.Equal(t, draftID, req.DraftID)
			if assert.NotNil(t, req.Content) && assert.NotNil(t, req.Content.CorrectAnswer) {
				assert.Equal(t, "B", *req.Content.CorrectAnswer)
			}
			return sampleRecord(util.NewULID()), nil
		}
		answer := "B"
		resp, err := deps.app().Test(authed(jsonRequest(t, http.MethodPost, "/api/records", dto.SaveRecordRequest{
			DraftID: draftID,
			Content: &dto.ContentOverrideRequest{CorrectAnswer: &answer},
		})))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("inline text without topic", func(t *testing.T) {
		resp, err := newTestDeps().app().Test(authed(jsonRequest(t, http.MethodPost, "/api/records",
			dto.SaveRecordRequest{RawText: "QUESTION: x"})))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("incomplete content", func(t *testing.T) {
		deps := newTestDeps()
		deps.records.SaveFunc = func(ctx context.Context, req *dto.SaveRecordRequest) (*domain.Record, error) {
			return nil, domain.NewInvalidContentError([]string{"explanation"})
		}
		resp, err := deps.app().Test(authed(jsonRequest(t, http.MethodPost, "/api/records",
			dto.SaveRecordRequest{Topic: "ACS", RawText: "QUESTION: x"})))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestRecordHandler_GetUpdateDelete(t *testing.T) {
	id := util.NewULID()
	deps := newTestDeps()
	deps.records.GetFunc = func(ctx context.Context, got string) (*domain.Record, error) {
		if got != id {
			return nil, domain.NewRecordNotFoundError(got)
		}
		return sampleRecord(id), nil
	}
	deps.records.UpdateFunc = func(ctx context.Context, got string, req *dto.UpdateRecordRequest) (*domain.Record, error) {
		r := sampleRecord(got)
		if assert.NotNil(t, req.Name) {
			r.Name = *req.Name
		}
		return r, nil
	}
	deps.records.DeleteFunc = func(ctx context.Context, got string) error {
		if got != id {
			return domain.NewRecordNotFoundError(got)
		}
		return nil
	}
	app := deps.app()

	resp, err := app.Test(authed(jsonRequest(t, http.MethodGet, "/api/records/"+id, nil)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got dto.RecordResponse
	decode(t, resp, &got)
	assert.Equal(t, id, got.ID)

	resp, err = app.Test(authed(jsonRequest(t, http.MethodGet, "/api/records/"+util.NewULID(), nil)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	name := "Renamed"
	resp, err = app.Test(authed(jsonRequest(t, http.MethodPut, "/api/records/"+id, dto.UpdateRecordRequest{Name: &name})))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &got)
	assert.Equal(t, "Renamed", got.Name)

	resp, err = app.Test(authed(jsonRequest(t, http.MethodDelete, "/api/records/"+id, nil)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(authed(jsonRequest(t, http.MethodDelete, "/api/records/"+util.NewULID(), nil)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRecordHandler_Rate(t *testing.T) {
	id := util.NewULID()
	deps := newTestDeps()
	deps.records.RateFunc = func(ctx context.Context, got string, rating int) (*domain.Record, error) {
		r := sampleRecord(got)
		r.Rating = rating
		return r, nil
	}
	app := deps.app()

	rating := 5
	resp, err := app.Test(authed(jsonRequest(t, http.MethodPatch, "/api/records/"+id+"/rating", dto.RateRecordRequest{Rating: &rating})))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got dto.RecordResponse
	decode(t, resp, &got)
	assert.Equal(t, 5, got.Rating)

	tooHigh := 6
	resp, err = app.Test(authed(jsonRequest(t, http.MethodPatch, "/api/records/"+id+"/rating", dto.RateRecordRequest{Rating: &tooHigh})))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(authed(jsonRequest(t, http.MethodPatch, "/api/records/"+id+"/rating", dto.RateRecordRequest{})))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRecordHandler_Preview(t *testing.T) {
	id := util.NewULID()
	deps := newTestDeps()
	deps.exports.PreviewHTMLFunc = func(ctx context.Context, got string) (string, error) {
		assert.Equal(t, id, got)
		return "<h1>Chest pain</h1>", nil
	}

	resp, err := deps.app().Test(authed(jsonRequest(t, http.MethodGet, "/api/records/"+id+"/preview", nil)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "<h1>Chest pain</h1>", string(body))
}
