// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/model"
)

type MockMaterialService struct {
	mock.Mock
}

func (m *MockMaterialService) GetByID(ctx context.Context, materialID string) (*model.Material, error) {
	args := m.Called(ctx, materialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Material), args.Error(1)
}

func (m *MockMaterialService) Create(ctx context.Context, material model.Material) (*model.Material, error) {
	args := m.Called(ctx, material)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Material), args.Error(1)
}

func (m *MockMaterialService) Update(ctx context.Context, materialID string, material model.Material) (*model.Material, error) {
	args := m.Called(ctx, materialID, material)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Material), args.Error(1)
}

func (m *MockMaterialService) List(ctx context.Context, limit int) ([]model.Material, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Material), args.Error(1)
}

func NewMockMaterialService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMaterialService {
	m := &MockMaterialService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
