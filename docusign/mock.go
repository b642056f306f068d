package docusign

import (
	"context"

	"github.com/ruteri/embedded-signing-demo/interfaces"
	"github.com/stretchr/testify/mock"
)

// MockProvider mocks the EnvelopeProvider interface
type MockProvider struct {
	mock.Mock
}

// CreateEnvelope mocks the CreateEnvelope method
func (m *MockProvider) CreateEnvelope(ctx context.Context, envelope *interfaces.EnvelopeDefinition) (*interfaces.EnvelopeSummary, error) {
	args := m.Called(ctx, envelope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interfaces.EnvelopeSummary), args.Error(1)
}

// CreateRecipientView mocks the CreateRecipientView method
func (m *MockProvider) CreateRecipientView(ctx context.Context, envelopeID string, req *interfaces.RecipientViewRequest) (*interfaces.ViewURL, error) {
	args := m.Called(ctx, envelopeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interfaces.ViewURL), args.Error(1)
}

// GetCombinedDocument mocks the GetCombinedDocument method
func (m *MockProvider) GetCombinedDocument(ctx context.Context, envelopeID string) ([]byte, error) {
	args := m.Called(ctx, envelopeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
