package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/OMAR684257931/nawy-apartments/internal/modules/model"
	"github.com/OMAR684257931/nawy-apartments/internal/modules/service"
)

// MockCatalogService is a mock implementation of CatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListCompounds(ctx context.Context) ([]model.Compound, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Compound), args.Error(1)
}

func (m *MockCatalogService) GetCompound(ctx context.Context, id uuid.UUID) (*model.Compound, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Compound), args.Error(1)
}

func (m *MockCatalogService) GetCompoundBySlug(ctx context.Context, slug string) (*model.Compound, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Compound), args.Error(1)
}

func (m *MockCatalogService) ListDevelopers(ctx context.Context) ([]model.Developer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Developer), args.Error(1)
}

func (m *MockCatalogService) GetDeveloper(ctx context.Context, id uuid.UUID) (*model.Developer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Developer), args.Error(1)
}

func setupCatalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestCompoundHandler_ListCompounds(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(*MockCatalogService)
		expectedStatus int
	}{
		{
			name: "successful compounds retrieval",
			setup: func(svc *MockCatalogService) {
				svc.On("ListCompounds", mock.Anything).Return([]model.Compound{
					{ID: uuid.New(), Name: "Palm Vista", Slug: "palm-vista", UnitsCount: 2},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "empty compounds list",
			setup: func(svc *MockCatalogService) {
				svc.On("ListCompounds", mock.Anything).Return([]model.Compound{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "service layer error",
			setup: func(svc *MockCatalogService) {
				svc.On("ListCompounds", mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockCatalogService{}
			tt.setup(mockService)

			handler := NewCompoundHandler(mockService, zap.NewNop())
			router := setupCatalogRouter()
			router.GET("/compounds", handler.ListCompounds)

			req := httptest.NewRequest("GET", "/compounds", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestCompoundHandler_GetCompound(t *testing.T) {
	compoundID := uuid.New()

	tests := []struct {
		name           string
		idParam        string
		setup          func(*MockCatalogService)
		expectedStatus int
	}{
		{
			name:    "successful compound retrieval",
			idParam: compoundID.String(),
			setup: func(svc *MockCatalogService) {
				svc.On("GetCompound", mock.Anything, compoundID).Return(&model.Compound{ID: compoundID, Name: "Palm Vista"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed compound ID",
			idParam:        "not-a-uuid",
			setup:          func(svc *MockCatalogService) {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:    "compound not found",
			idParam: compoundID.String(),
			setup: func(svc *MockCatalogService) {
				svc.On("GetCompound", mock.Anything, compoundID).Return(nil, service.ErrCompoundNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:    "service layer error",
			idParam: compoundID.String(),
			setup: func(svc *MockCatalogService) {
				svc.On("GetCompound", mock.Anything, compoundID).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockCatalogService{}
			tt.setup(mockService)

			handler := NewCompoundHandler(mockService, zap.NewNop())
			router := setupCatalogRouter()
			router.GET("/compounds/:id", handler.GetCompound)

			req := httptest.NewRequest("GET", "/compounds/"+tt.idParam, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestCompoundHandler_GetCompoundBySlug(t *testing.T) {
	tests := []struct {
		name           string
		slug           string
		setup          func(*MockCatalogService)
		expectedStatus int
	}{
		{
			name: "successful slug lookup",
			slug: "palm-vista",
			setup: func(svc *MockCatalogService) {
				svc.On("GetCompoundBySlug", mock.Anything, "palm-vista").Return(&model.Compound{Name: "Palm Vista", Slug: "palm-vista"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown slug",
			slug: "no-such-compound",
			setup: func(svc *MockCatalogService) {
				svc.On("GetCompoundBySlug", mock.Anything, "no-such-compound").Return(nil, service.ErrCompoundNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockCatalogService{}
			tt.setup(mockService)

			handler := NewCompoundHandler(mockService, zap.NewNop())
			router := setupCatalogRouter()
			router.GET("/compounds/slug/:slug", handler.GetCompoundBySlug)

			req := httptest.NewRequest("GET", "/compounds/slug/"+tt.slug, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestDeveloperHandler_ListDevelopers(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(*MockCatalogService)
		expectedStatus int
	}{
		{
			name: "successful developers retrieval",
			setup: func(svc *MockCatalogService) {
				svc.On("ListDevelopers", mock.Anything).Return([]model.Developer{
					{ID: uuid.New(), Name: "Emaar Misr", CompoundsCount: 2},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "service layer error",
			setup: func(svc *MockCatalogService) {
				svc.On("ListDevelopers", mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockCatalogService{}
			tt.setup(mockService)

			handler := NewDeveloperHandler(mockService, zap.NewNop())
			router := setupCatalogRouter()
			router.GET("/developers", handler.ListDevelopers)

			req := httptest.NewRequest("GET", "/developers", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestDeveloperHandler_GetDeveloper(t *testing.T) {
	developerID := uuid.New()

	tests := []struct {
		name           string
		idParam        string
		setup          func(*MockCatalogService)
		expectedStatus int
	}{
		{
			name:    "successful developer retrieval",
			idParam: developerID.String(),
			setup: func(svc *MockCatalogService) {
				svc.On("GetDeveloper", mock.Anything, developerID).Return(&model.Developer{ID: developerID, Name: "Emaar Misr"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed developer ID",
			idParam:        "not-a-uuid",
			setup:          func(svc *MockCatalogService) {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:    "developer not found",
			idParam: developerID.String(),
			setup: func(svc *MockCatalogService) {
				svc.On("GetDeveloper", mock.Anything, developerID).Return(nil, service.ErrDeveloperNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockCatalogService{}
			tt.setup(mockService)

			handler := NewDeveloperHandler(mockService, zap.NewNop())
			router := setupCatalogRouter()
			router.GET("/developers/:id", handler.GetDeveloper)

			req := httptest.NewRequest("GET", "/developers/"+tt.idParam, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
