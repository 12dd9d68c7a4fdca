package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stockpile/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) ListInStock(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id int) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id int, patch model.ProductPatch) (*model.Product, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// newRequestWithID builds a request carrying a chi URL parameter.
func newRequestWithID(method, target, id string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, body io.Reader) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp.Error
}

func TestProductHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	testProducts := []model.Product{
		{ID: 1, Name: "Widget", Price: 5, InStock: true},
		{ID: 2, Name: "Gadget", Price: 10, InStock: false},
	}

	tests := []struct {
		name           string
		mockReturn     []model.Product
		mockError      error
		expectedStatus int
		expectedLen    int
	}{
		{
			name:           "Success",
			mockReturn:     testProducts,
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name:           "Empty collection yields empty array",
			mockReturn:     []model.Product{},
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
		{
			name:           "Service error",
			mockReturn:     nil,
			mockError:      errors.New("disk error"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			mockService.On("List", mock.Anything).Return(tt.mockReturn, tt.mockError)
			h := NewProductHandler(mockService, logger)

			req := httptest.NewRequest(http.MethodGet, "/products", nil)
			w := httptest.NewRecorder()

			h.List(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var products []model.Product
				require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
				assert.Len(t, products, tt.expectedLen)
				assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			} else {
				assert.Equal(t, "Internal server error", decodeError(t, w.Body))
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_ListInStock(t *testing.T) {
	logger := zerolog.Nop()

	inStock := []model.Product{
		{ID: 1, Name: "Widget", Price: 5, InStock: true},
	}

	mockService := new(MockProductService)
	mockService.On("ListInStock", mock.Anything).Return(inStock, nil)
	h := NewProductHandler(mockService, logger)

	req := httptest.NewRequest(http.MethodGet, "/products/instock", nil)
	w := httptest.NewRecorder()

	h.ListInStock(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var products []model.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
	require.Len(t, products, 1)
	assert.True(t, products[0].InStock)
	mockService.AssertExpectations(t)
}

func TestProductHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	created := &model.Product{ID: 1, Name: "Widget", Price: 5, InStock: true}

	tests := []struct {
		name           string
		body           string
		mockReturn     *model.Product
		mockError      error
		expectService  bool
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Success",
			body:           `{"name":"Widget","price":5,"inStock":true}`,
			mockReturn:     created,
			expectService:  true,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing price and inStock",
			body:           `{"name":"X"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields: price, inStock",
		},
		{
			name:           "Missing all fields",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields: name, price, inStock",
		},
		{
			name:           "Wrong type for price",
			body:           `{"name":"Widget","price":"five","inStock":true}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Field 'price' must be a number",
		},
		{
			name:           "Wrong type for inStock",
			body:           `{"name":"Widget","price":5,"inStock":"yes"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Field 'inStock' must be a boolean",
		},
		{
			name:           "Malformed JSON",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid JSON body",
		},
		{
			name:           "Save failure",
			body:           `{"name":"Widget","price":5,"inStock":true}`,
			mockError:      errors.New("disk full"),
			expectService:  true,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			if tt.expectService {
				mockService.On("Create", mock.Anything, mock.Anything).
					Return(tt.mockReturn, tt.mockError)
			}
			h := NewProductHandler(mockService, logger)

			req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var product model.Product
				require.NoError(t, json.NewDecoder(w.Body).Decode(&product))
				assert.Equal(t, *created, product)
			} else {
				assert.Equal(t, tt.expectedError, decodeError(t, w.Body))
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Update(t *testing.T) {
	logger := zerolog.Nop()

	updated := &model.Product{ID: 2, Name: "Gadget", Price: 10, InStock: true}

	tests := []struct {
		name           string
		id             string
		body           string
		mockReturn     *model.Product
		mockError      error
		expectService  bool
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Success with partial body",
			id:             "2",
			body:           `{"inStock":true}`,
			mockReturn:     updated,
			expectService:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid ID",
			id:             "abc",
			body:           `{"price":9.99}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid product ID",
		},
		{
			name:           "Wrong type for name",
			id:             "2",
			body:           `{"name":42}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Field 'name' must be a string",
		},
		{
			name:           "Not found",
			id:             "999",
			body:           `{"price":9.99}`,
			mockError:      model.ErrProductNotFound,
			expectService:  true,
			expectedStatus: http.StatusNotFound,
			expectedError:  "Product not found",
		},
		{
			name:           "Save failure",
			id:             "2",
			body:           `{"price":9.99}`,
			mockError:      errors.New("disk full"),
			expectService:  true,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			if tt.expectService {
				mockService.On("Update", mock.Anything, mock.Anything, mock.Anything).
					Return(tt.mockReturn, tt.mockError)
			}
			h := NewProductHandler(mockService, logger)

			req := newRequestWithID(http.MethodPut, "/products/"+tt.id, tt.id, strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.Update(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var product model.Product
				require.NoError(t, json.NewDecoder(w.Body).Decode(&product))
				assert.Equal(t, *updated, product)
			} else {
				assert.Equal(t, tt.expectedError, decodeError(t, w.Body))
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Delete(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		id             string
		mockError      error
		expectService  bool
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Success",
			id:             "1",
			expectService:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid ID",
			id:             "abc",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid product ID",
		},
		{
			name:           "Not found",
			id:             "999",
			mockError:      model.ErrProductNotFound,
			expectService:  true,
			expectedStatus: http.StatusNotFound,
			expectedError:  "Product not found",
		},
		{
			name:           "Save failure",
			id:             "1",
			mockError:      errors.New("disk full"),
			expectService:  true,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			if tt.expectService {
				mockService.On("Delete", mock.Anything, mock.Anything).Return(tt.mockError)
			}
			h := NewProductHandler(mockService, logger)

			req := newRequestWithID(http.MethodDelete, "/products/"+tt.id, tt.id, nil)
			w := httptest.NewRecorder()

			h.Delete(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp MessageResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "Product deleted successfully", resp.Message)
			} else {
				assert.Equal(t, tt.expectedError, decodeError(t, w.Body))
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	testProduct := &model.Product{ID: 1, Name: "Widget", Price: 5, InStock: true}

	tests := []struct {
		name           string
		id             string
		mockReturn     *model.Product
		mockError      error
		expectService  bool
		expectedStatus int
	}{
		{
			name:           "Success",
			id:             "1",
			mockReturn:     testProduct,
			expectService:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid ID",
			id:             "abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Not found",
			id:             "999",
			mockError:      model.ErrProductNotFound,
			expectService:  true,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			if tt.expectService {
				mockService.On("GetByID", mock.Anything, mock.Anything).
					Return(tt.mockReturn, tt.mockError)
			}
			h := NewProductHandler(mockService, logger)

			req := newRequestWithID(http.MethodGet, "/products/"+tt.id, tt.id, nil)
			w := httptest.NewRecorder()

			h.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
