package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/ruteri/embedded-signing-demo/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStorageBackend implements interfaces.ScratchStorage for testing
type MockStorageBackend struct {
	mock.Mock
	name string
}

func (m *MockStorageBackend) Put(ctx context.Context, area interfaces.ScratchArea, name string, data []byte) (string, error) {
	args := m.Called(ctx, area, name, data)
	return args.String(0), args.Error(1)
}

func (m *MockStorageBackend) Get(ctx context.Context, area interfaces.ScratchArea, name string) ([]byte, error) {
	args := m.Called(ctx, area, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStorageBackend) Name() string {
	return m.name
}

func (m *MockStorageBackend) LocationURI() string {
	return "mock:" + m.name
}

func TestMultiStorageBackend_Put(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	data := []byte("pdf")

	tests := []struct {
		name        string
		results     []error
		expectedLoc string
		expectErr   bool
	}{
		{"all succeed", []error{nil, nil}, "loc-0", false},
		{"first fails", []error{errors.New("down"), nil}, "loc-1", false},
		{"all fail", []error{errors.New("down"), errors.New("denied")}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var backends []interfaces.ScratchStorage
			var mocks []*MockStorageBackend
			for i, res := range tt.results {
				b := &MockStorageBackend{name: string(rune('a' + i))}
				loc := ""
				if res == nil {
					loc = "loc-" + string(rune('0'+i))
				}
				b.On("Put", mock.Anything, interfaces.UploadsArea, "x.pdf", data).Return(loc, res)
				backends = append(backends, b)
				mocks = append(mocks, b)
			}

			multi := NewMultiStorageBackend(backends, logger)
			loc, err := multi.Put(context.Background(), interfaces.UploadsArea, "x.pdf", data)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expectedLoc, loc)

			// Every backend receives the write
			for _, b := range mocks {
				b.AssertExpectations(t)
			}
		})
	}
}

func TestMultiStorageBackend_Get(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	first := &MockStorageBackend{name: "first"}
	second := &MockStorageBackend{name: "second"}
	first.On("Get", mock.Anything, interfaces.SignedArea, "signed_x.pdf").Return(nil, interfaces.ErrContentNotFound)
	second.On("Get", mock.Anything, interfaces.SignedArea, "signed_x.pdf").Return([]byte("signed"), nil)

	multi := NewMultiStorageBackend([]interfaces.ScratchStorage{first, second}, logger)
	data, err := multi.Get(context.Background(), interfaces.SignedArea, "signed_x.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("signed"), data)

	second.On("Get", mock.Anything, interfaces.SignedArea, "missing.pdf").Return(nil, interfaces.ErrContentNotFound)
	first.On("Get", mock.Anything, interfaces.SignedArea, "missing.pdf").Return(nil, interfaces.ErrContentNotFound)
	_, err = multi.Get(context.Background(), interfaces.SignedArea, "missing.pdf")
	assert.ErrorIs(t, err, interfaces.ErrContentNotFound)

	assert.Equal(t, "multi:[mock:first,mock:second]", multi.LocationURI())
}
