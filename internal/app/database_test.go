//go:build !integration

package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/config"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/model"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/mocks"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{Enabled: false}, nil)
	assert.Nil(t, components)
}

func TestSeedMaterialCatalog(t *testing.T) {
	seedMaterial := model.Material{
		MaterialID:       "BOPP-30",
		MaterialName:     "BOPP Clear 30um",
		MasterWidthMM:    1300,
		GSM:              27.4,
		PricePerTonneAUD: 3200,
	}

	tests := []struct {
		name      string
		seed      []model.Material
		setupMock func(*mocks.MockMaterialRepositoryInterface)
		wantError bool
	}{
		{
			name: "missing material is created as active",
			seed: []model.Material{seedMaterial},
			setupMock: func(m *mocks.MockMaterialRepositoryInterface) {
				m.On("GetByID", mock.Anything, "BOPP-30").Return(nil, nil).Once()
				m.On("Create", mock.Anything, mock.MatchedBy(func(mat model.Material) bool {
					return mat.MaterialID == "BOPP-30" && mat.Active
				})).Return(&seedMaterial, nil).Once()
			},
		},
		{
			name: "existing material is never overwritten",
			seed: []model.Material{seedMaterial},
			setupMock: func(m *mocks.MockMaterialRepositoryInterface) {
				existing := seedMaterial
				existing.MasterWidthMM = 1250 // operator edit must survive restarts
				m.On("GetByID", mock.Anything, "BOPP-30").Return(&existing, nil).Once()
			},
		},
		{
			name:      "empty seed makes no repository calls",
			seed:      nil,
			setupMock: func(m *mocks.MockMaterialRepositoryInterface) {},
		},
		{
			name: "lookup error aborts seeding",
			seed: []model.Material{seedMaterial},
			setupMock: func(m *mocks.MockMaterialRepositoryInterface) {
				m.On("GetByID", mock.Anything, "BOPP-30").Return(nil, errors.New("database error")).Once()
			},
			wantError: true,
		},
		{
			name: "create error aborts seeding",
			seed: []model.Material{seedMaterial},
			setupMock: func(m *mocks.MockMaterialRepositoryInterface) {
				m.On("GetByID", mock.Anything, "BOPP-30").Return(nil, nil).Once()
				m.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("database error")).Once()
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockMaterialRepositoryInterface)
			mockRepo.Test(t)
			tt.setupMock(mockRepo)

			err := seedMaterialCatalog(mockRepo, tt.seed)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
