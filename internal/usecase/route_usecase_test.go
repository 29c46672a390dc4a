package usecase_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/geo-gateway/internal/domain"
	"github.com/geo-gateway/internal/pkg/errors"
	"github.com/geo-gateway/internal/usecase"
	"github.com/geo-gateway/internal/usecase/dto"
)

func TestRouteUseCase_Solve(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	a := domain.Coordinate{X: 121.55, Y: 25.15}
	b := domain.Coordinate{X: 121.32, Y: 24.37}

	t.Run("wrong stop count makes no upstream call", func(t *testing.T) {
		solver := &MockRouteSolverRepository{}
		uc := usecase.NewRouteUseCase(solver, logger)

		for _, stops := range [][]domain.Coordinate{nil, {a}, {a, b, a}} {
			doc, err := uc.Solve(ctx, dto.RouteRequest{Stops: stops})
			assert.ErrorIs(t, err, errors.ErrTwoStopsRequired)
			assert.Nil(t, doc)
		}
		solver.AssertNotCalled(t, "Solve", mock.Anything, mock.Anything)
	})

	t.Run("forwards json unchanged", func(t *testing.T) {
		solver := &MockRouteSolverRepository{}
		uc := usecase.NewRouteUseCase(solver, logger)

		body := `{"routes":{"features":[]},"messages":[]}`
		barriers := []domain.Barrier{domain.Barrier(`[[121.55,25.15],[121.32,24.37],[121.55,25.15]]`)}
		solver.On("Solve", ctx, domain.RouteQuery{Stops: []domain.Coordinate{a, b}, Barriers: barriers}).
			Return(domain.NewJSONRouteResult([]byte(body)), nil)

		doc, err := uc.Solve(ctx, dto.RouteRequest{
			Stops:    []domain.Coordinate{a, b},
			Barriers: json.RawMessage(`[[[121.55,25.15],[121.32,24.37],[121.55,25.15]]]`),
		})
		require.NoError(t, err)
		assert.Equal(t, body, string(doc))
		solver.AssertExpectations(t)
	})

	t.Run("non-json body is a format error", func(t *testing.T) {
		solver := &MockRouteSolverRepository{}
		uc := usecase.NewRouteUseCase(solver, logger)

		solver.On("Solve", ctx, mock.Anything).
			Return(domain.NewRawRouteResult("<html><body>Server Error</body></html>"), nil)

		doc, err := uc.Solve(ctx, dto.RouteRequest{Stops: []domain.Coordinate{a, b}})
		assert.Nil(t, doc)
		assert.ErrorIs(t, err, errors.ErrInvalidRouteFormat)
		assert.NotContains(t, err.Error(), "Server Error")
	})

	t.Run("null barriers means none", func(t *testing.T) {
		solver := &MockRouteSolverRepository{}
		uc := usecase.NewRouteUseCase(solver, logger)

		solver.On("Solve", ctx, domain.RouteQuery{Stops: []domain.Coordinate{a, b}}).
			Return(domain.NewJSONRouteResult([]byte(`{}`)), nil)

		_, err := uc.Solve(ctx, dto.RouteRequest{Stops: []domain.Coordinate{a, b}, Barriers: json.RawMessage(`null`)})
		require.NoError(t, err)
		solver.AssertExpectations(t)
	})

	t.Run("barriers that are not an array", func(t *testing.T) {
		solver := &MockRouteSolverRepository{}
		uc := usecase.NewRouteUseCase(solver, logger)

		doc, err := uc.Solve(ctx, dto.RouteRequest{Stops: []domain.Coordinate{a, b}, Barriers: json.RawMessage(`{"rings":[]}`)})
		assert.Nil(t, doc)
		assert.ErrorIs(t, err, errors.ErrInvalidBarriers)
		solver.AssertNotCalled(t, "Solve", mock.Anything, mock.Anything)
	})

	t.Run("transport failure", func(t *testing.T) {
		solver := &MockRouteSolverRepository{}
		uc := usecase.NewRouteUseCase(solver, logger)

		solver.On("Solve", ctx, mock.Anything).Return(nil, stderrors.New("connection reset by peer"))

		doc, err := uc.Solve(ctx, dto.RouteRequest{Stops: []domain.Coordinate{a, b}})
		assert.Nil(t, doc)
		assert.ErrorIs(t, err, errors.ErrRouteRequestFailed)
	})
}

func TestRouteUseCase_Solve_LogsRawBodySnippet(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	solver := &MockRouteSolverRepository{}
	uc := usecase.NewRouteUseCase(solver, zap.New(core))

	raw := "<html>" + strings.Repeat("x", 700) + "</html>"
	solver.On("Solve", mock.Anything, mock.Anything).Return(domain.NewRawRouteResult(raw), nil)

	doc, err := uc.Solve(context.Background(), dto.RouteRequest{
		Stops: []domain.Coordinate{{X: 121.55, Y: 25.15}, {X: 121.32, Y: 24.37}},
	})
	assert.Nil(t, doc)
	require.ErrorIs(t, err, errors.ErrInvalidRouteFormat)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "Routing service returned non-JSON body", entries[0].Message)

	body, ok := entries[0].ContextMap()["body"].(string)
	require.True(t, ok)
	assert.Len(t, []rune(body), 500)
	assert.True(t, strings.HasPrefix(raw, body))

	assert.NotContains(t, err.Error(), body)
	assert.NotContains(t, err.Error(), "<html>")
}
