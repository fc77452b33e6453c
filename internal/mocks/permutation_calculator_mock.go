// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/model"
)

type MockPermutationCalculator struct {
	mock.Mock
}

func (m *MockPermutationCalculator) Calculate(material model.Material, req model.PermutationRequest, calculatedBy string) (*model.CalculationResult, error) {
	args := m.Called(material, req, calculatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CalculationResult), args.Error(1)
}

func (m *MockPermutationCalculator) InvalidateCache() {
	m.Called()
}

func NewMockPermutationCalculator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPermutationCalculator {
	m := &MockPermutationCalculator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
