package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	evententity "twitchplanner/internal/feature/event/domain/entity"
	"twitchplanner/internal/feature/planning/domain/entity"
	"twitchplanner/internal/feature/planning/usecase"
	jwtmw "twitchplanner/internal/platform/jwt"
)

type mockPlanningUsecase struct {
	ListFunc     func(ctx context.Context, userID uint) ([]*entity.Planning, error)
	GetFunc      func(ctx context.Context, userID, id uint) (*entity.Planning, error)
	CreateFunc   func(ctx context.Context, userID uint, params usecase.CreatePlanningParams) (*entity.Planning, error)
	UpdateFunc   func(ctx context.Context, userID, id uint, params usecase.UpdatePlanningParams) (*entity.Planning, error)
	DeleteFunc   func(ctx context.Context, userID, id uint) error
	WeekViewFunc func(ctx context.Context, userID, id uint) ([]usecase.WeekDay, error)
}

func (m *mockPlanningUsecase) List(ctx context.Context, userID uint) ([]*entity.Planning, error) {
	return m.ListFunc(ctx, userID)
}

func (m *mockPlanningUsecase) Get(ctx context.Context, userID, id uint) (*entity.Planning, error) {
	return m.GetFunc(ctx, userID, id)
}

func (m *mockPlanningUsecase) Create(ctx context.Context, userID uint, params usecase.CreatePlanningParams) (*entity.Planning, error) {
	return m.CreateFunc(ctx, userID, params)
}

func (m *mockPlanningUsecase) Update(ctx context.Context, userID, id uint, params usecase.UpdatePlanningParams) (*entity.Planning, error) {
	return m.UpdateFunc(ctx, userID, id, params)
}

func (m *mockPlanningUsecase) Delete(ctx context.Context, userID, id uint) error {
	return m.DeleteFunc(ctx, userID, id)
}

func (m *mockPlanningUsecase) WeekView(ctx context.Context, userID, id uint) ([]usecase.WeekDay, error) {
	return m.WeekViewFunc(ctx, userID, id)
}

func newPlanningRouter(uc PlanningUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPlanningHandler(uc)
	r := gin.New()
	asUser := func(c *gin.Context) { c.Set(jwtmw.ContextUserID, uint(7)) }
	r.GET("/plannings", asUser, h.List)
	r.POST("/plannings", asUser, h.Create)
	r.GET("/plannings/:id", asUser, h.Get)
	r.PUT("/plannings/:id", asUser, h.Update)
	r.DELETE("/plannings/:id", asUser, h.Delete)
	r.GET("/plannings/:id/week", asUser, h.Week)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestPlanningHandlerList(t *testing.T) {
	t.Run("empty list encodes as an array", func(t *testing.T) {
		uc := &mockPlanningUsecase{
			ListFunc: func(ctx context.Context, userID uint) ([]*entity.Planning, error) {
				return nil, nil
			},
		}

		w := doJSON(newPlanningRouter(uc), http.MethodGet, "/plannings", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"plannings":[]}`, w.Body.String())
	})
}

func TestPlanningHandlerCreate(t *testing.T) {
	t.Run("parses a bare date and scopes to the caller", func(t *testing.T) {
		uc := &mockPlanningUsecase{
			CreateFunc: func(ctx context.Context, userID uint, params usecase.CreatePlanningParams) (*entity.Planning, error) {
				require.Equal(t, uint(7), userID)
				require.Equal(t, time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC), params.StartDate)
				return &entity.Planning{ID: 1, UserID: userID, Title: params.Title, StartDate: params.StartDate, EndDate: params.EndDate}, nil
			},
		}

		w := doJSON(newPlanningRouter(uc), http.MethodPost, "/plannings",
			`{"title":"Semaine","startDate":"2026-03-16","endDate":"2026-03-22"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"message":"planning created"`)
	})

	t.Run("unparseable date yields 400", func(t *testing.T) {
		uc := &mockPlanningUsecase{
			CreateFunc: func(ctx context.Context, userID uint, params usecase.CreatePlanningParams) (*entity.Planning, error) {
				t.Fatal("Create should not be called")
				return nil, nil
			},
		}

		w := doJSON(newPlanningRouter(uc), http.MethodPost, "/plannings",
			`{"startDate":"16/03/2026","endDate":"2026-03-22"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("inverted range yields 400", func(t *testing.T) {
		uc := &mockPlanningUsecase{
			CreateFunc: func(ctx context.Context, userID uint, params usecase.CreatePlanningParams) (*entity.Planning, error) {
				return nil, usecase.ErrInvalidDateRange
			},
		}

		w := doJSON(newPlanningRouter(uc), http.MethodPost, "/plannings",
			`{"startDate":"2026-03-22","endDate":"2026-03-16"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPlanningHandlerGet(t *testing.T) {
	t.Run("not found maps to 404", func(t *testing.T) {
		uc := &mockPlanningUsecase{
			GetFunc: func(ctx context.Context, userID, id uint) (*entity.Planning, error) {
				return nil, usecase.ErrPlanningNotFound
			},
		}

		w := doJSON(newPlanningRouter(uc), http.MethodGet, "/plannings/42", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id yields 400", func(t *testing.T) {
		uc := &mockPlanningUsecase{
			GetFunc: func(ctx context.Context, userID, id uint) (*entity.Planning, error) {
				t.Fatal("Get should not be called")
				return nil, nil
			},
		}

		w := doJSON(newPlanningRouter(uc), http.MethodGet, "/plannings/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPlanningHandlerDelete(t *testing.T) {
	var gotID uint
	uc := &mockPlanningUsecase{
		DeleteFunc: func(ctx context.Context, userID, id uint) error {
			gotID = id
			return nil
		},
	}

	w := doJSON(newPlanningRouter(uc), http.MethodDelete, "/plannings/42", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(42), gotID)
	assert.JSONEq(t, `{"message":"planning deleted"}`, w.Body.String())
}

func TestPlanningHandlerWeek(t *testing.T) {
	uc := &mockPlanningUsecase{
		WeekViewFunc: func(ctx context.Context, userID, id uint) ([]usecase.WeekDay, error) {
			return []usecase.WeekDay{
				{
					Date:      time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC),
					DayOfWeek: 1,
					Events: []evententity.Event{
						{ID: 1, GameName: "Hades", DayOfWeek: 1, StartTime: "18:00"},
					},
				},
			}, nil
		},
	}

	w := doJSON(newPlanningRouter(uc), http.MethodGet, "/plannings/42/week", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"date":"2026-03-16"`)
	assert.Contains(t, w.Body.String(), `"gameName":"Hades"`)
}
