package usecase

import (
	"context"
	"time"

	"github.com/calconv/backend/internal/domain"
)

// MockUSDAClient is a mock implementation of domain.USDAClient
type MockUSDAClient struct {
	searchResult *domain.USDASearchResponse
	searchError  error
	searchCalls  int
	lastQuery    string
	lastPageSize int
}

func NewMockUSDAClient() *MockUSDAClient {
	return &MockUSDAClient{}
}

func (m *MockUSDAClient) SearchFoods(ctx context.Context, query string, pageSize int) (*domain.USDASearchResponse, error) {
	m.searchCalls++
	m.lastQuery = query
	m.lastPageSize = pageSize
	if m.searchError != nil {
		return nil, m.searchError
	}
	return m.searchResult, nil
}

// MockNutritionixClient is a mock implementation of domain.NutritionixClient
type MockNutritionixClient struct {
	result    *domain.NutritionixResponse
	err       error
	calls     int
	lastQuery string
}

func NewMockNutritionixClient() *MockNutritionixClient {
	return &MockNutritionixClient{}
}

func (m *MockNutritionixClient) NaturalNutrients(ctx context.Context, query string) (*domain.NutritionixResponse, error) {
	m.calls++
	m.lastQuery = query
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// MockInteractionRepository is a mock implementation of domain.InteractionRepository
type MockInteractionRepository struct {
	data     map[string]domain.Interaction
	setError error
	setCalls int
}

func NewMockInteractionRepository() *MockInteractionRepository {
	return &MockInteractionRepository{data: make(map[string]domain.Interaction)}
}

func (m *MockInteractionRepository) Get(ctx context.Context, id string) (*domain.Interaction, error) {
	v, ok := m.data[id]
	if !ok {
		return nil, domain.ErrInteractionNotFound
	}
	return &v, nil
}

func (m *MockInteractionRepository) Set(ctx context.Context, interaction *domain.Interaction, ttl time.Duration) error {
	m.setCalls++
	if m.setError != nil {
		return m.setError
	}
	m.data[interaction.ID] = *interaction
	return nil
}

func float64Ptr(v float64) *float64 {
	return &v
}

func usdaFood(id int, description string, kcal float64) domain.USDAFood {
	return domain.USDAFood{
		FdcID:       id,
		Description: description,
		Nutrients: []domain.USDANutrient{
			{NutrientID: 1008, NutrientName: "Energy", UnitName: "KCAL", Value: kcal},
		},
	}
}
