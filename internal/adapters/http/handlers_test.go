package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/kropki/internal/domain"
	"svw.info/kropki/internal/hint"
	"svw.info/kropki/internal/infrastructure/storage"
	"svw.info/kropki/internal/solver"
	"svw.info/kropki/internal/usecase"
	"svw.info/kropki/internal/validator"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	s := solver.NewCSPSolver(domain.GAC, true)
	uc := usecase.NewService(s, nil, validator.New(), hint.NewSingles(), storage.NewFS(t.TempDir()))
	mux := http.NewServeMux()
	New(uc).Register(mux)
	return mux
}

func postJSON(t *testing.T, mux *http.ServeMux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestSolveEndpoint(t *testing.T) {
	mux := newTestMux(t)

	board := domain.Board{Dim: 6}
	dots := []domain.Dot{{
		A:     domain.CellCoord{Row: 0, Col: 0},
		B:     domain.CellCoord{Row: 0, Col: 1},
		Color: domain.White,
	}}
	rec := postJSON(t, mux, "/api/solve", solveReq{Board: board, Dots: dots})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp solveResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Unsatisfiable)
	require.NotNil(t, resp.Board)
	a := int(resp.Board.Values[0][0])
	b := int(resp.Board.Values[0][1])
	require.Equal(t, 1, (a-b)*(a-b))
}

func TestSolveEndpointUnsatisfiable(t *testing.T) {
	mux := newTestMux(t)

	board := domain.Board{Dim: 9}
	board.Values[0][0] = 5
	board.Fixed[0][0] = true
	board.Values[0][1] = 5
	board.Fixed[0][1] = true
	rec := postJSON(t, mux, "/api/solve", solveReq{Board: board})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp solveResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Unsatisfiable)
	require.Nil(t, resp.Board)
}

func TestValidateEndpoint(t *testing.T) {
	mux := newTestMux(t)

	board := domain.Board{Dim: 9}
	board.Values[3][0] = 7
	board.Values[3][8] = 7
	rec := postJSON(t, mux, "/api/validate", validateReq{Board: board})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp validateResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.OK)
	require.NotEmpty(t, resp.Conflicts)
}

func TestHintEndpoint(t *testing.T) {
	mux := newTestMux(t)

	board := domain.Board{Dim: 9}
	for c := 0; c < 8; c++ {
		board.Values[0][c] = uint8(c + 1)
		board.Fixed[0][c] = true
	}
	rec := postJSON(t, mux, "/api/hint", hintReq{Board: board})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp hintResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Found)
	require.Equal(t, uint8(9), resp.Hint.Value)
}

func TestSaveLoadEndpoints(t *testing.T) {
	mux := newTestMux(t)

	p := domain.Puzzle{ID: "t1", Difficulty: domain.Easy, Board: domain.Board{Dim: 6}}
	rec := postJSON(t, mux, "/api/save", p)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, mux, "/api/load", loadReq{ID: "t1"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp loadResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Puzzle)
	require.Equal(t, "t1", resp.Puzzle.ID)

	rec = postJSON(t, mux, "/api/load", loadReq{ID: "missing"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRejectsPost(t *testing.T) {
	mux := newTestMux(t)
	rec := postJSON(t, mux, "/api/list", struct{}{})
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
