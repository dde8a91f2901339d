package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateShopRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		request       CreateShopRequest
		expectedError bool
	}{
		{
			name:          "valid request",
			request:       CreateShopRequest{Name: "Central Market"},
			expectedError: false,
		},
		{
			name:          "blank name",
			request:       CreateShopRequest{Name: "   "},
			expectedError: true,
		},
		{
			name:          "empty name",
			request:       CreateShopRequest{},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateShopRequest_ToModel_TrimsName(t *testing.T) {
	req := CreateShopRequest{Name: "  Corner Store  ", Location: "downtown"}
	shop := req.ToModel()
	assert.Equal(t, "Corner Store", shop.Name)
	assert.Equal(t, "downtown", shop.Location)
}

func TestCreateProductRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		request       CreateProductRequest
		expectedError bool
	}{
		{
			name: "valid request",
			request: CreateProductRequest{
				Name:   "Whole Milk 1L",
				Price:  decimal.RequireFromString("2.50"),
				ShopID: "shop-1",
			},
			expectedError: false,
		},
		{
			name: "free product allowed",
			request: CreateProductRequest{
				Name:   "Sample",
				Price:  decimal.Zero,
				ShopID: "shop-1",
			},
			expectedError: false,
		},
		{
			name: "blank name",
			request: CreateProductRequest{
				Name:   " ",
				Price:  decimal.RequireFromString("2.50"),
				ShopID: "shop-1",
			},
			expectedError: true,
		},
		{
			name: "negative price",
			request: CreateProductRequest{
				Name:   "Whole Milk 1L",
				Price:  decimal.RequireFromString("-0.01"),
				ShopID: "shop-1",
			},
			expectedError: true,
		},
		{
			name: "missing shop id",
			request: CreateProductRequest{
				Name:  "Whole Milk 1L",
				Price: decimal.RequireFromString("2.50"),
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedError {
				assert.Error(t, err)
				assert.IsType(t, &ValidationError{}, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateShoppingListRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		request       CreateShoppingListRequest
		expectedError bool
	}{
		{
			name:          "valid request",
			request:       CreateShoppingListRequest{Name: "Weekly groceries"},
			expectedError: false,
		},
		{
			name: "malformed items tolerated",
			request: CreateShoppingListRequest{
				Name: "Weekly groceries",
				Items: []ListItemRequest{
					{Name: "", Quantity: 2},
					{Name: "milk", Quantity: -1},
				},
			},
			expectedError: false,
		},
		{
			name:          "blank name",
			request:       CreateShoppingListRequest{Name: " "},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateShoppingListRequest_ToModel(t *testing.T) {
	req := CreateShoppingListRequest{
		Name: "Weekly groceries",
		Items: []ListItemRequest{
			{Name: "Milk", Quantity: 2, ProductID: "p1"},
			{Name: "Bread", Quantity: 1, Notes: "whole grain"},
		},
	}

	list := req.ToModel()
	assert.Equal(t, "Weekly groceries", list.Name)
	assert.Len(t, list.Items, 2)
	assert.Equal(t, "p1", list.Items[0].ProductID)
	assert.Equal(t, "whole grain", list.Items[1].Notes)
}

func TestRenameShoppingListRequest_Validate(t *testing.T) {
	assert.NoError(t, (&RenameShoppingListRequest{Name: "Monthly run"}).Validate())
	assert.Error(t, (&RenameShoppingListRequest{Name: "  "}).Validate())
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name          string
		validationErr *ValidationError
		expected      string
	}{
		{
			name: "validation error message format",
			validationErr: &ValidationError{
				Field:   "quantity",
				Message: "must be positive",
			},
			expected: "quantity: must be positive",
		},
		{
			name: "validation error with different field",
			validationErr: &ValidationError{
				Field:   "email",
				Message: "invalid format",
			},
			expected: "email: invalid format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.validationErr.Error())
		})
	}
}
