package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/ruteri/embedded-signing-demo/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockS3Client implements the two S3 calls the backend makes.
type mockS3Client struct {
	s3iface.S3API
	mock.Mock
}

func (m *mockS3Client) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	body, _ := io.ReadAll(input.Body)
	args := m.Called(aws.StringValue(input.Bucket), aws.StringValue(input.Key), body)
	return &s3.PutObjectOutput{}, args.Error(0)
}

func (m *mockS3Client) GetObjectWithContext(ctx aws.Context, input *s3.GetObjectInput, opts ...request.Option) (*s3.GetObjectOutput, error) {
	args := m.Called(aws.StringValue(input.Bucket), aws.StringValue(input.Key))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(args.Get(0).([]byte)))}, args.Error(1)
}

func TestS3Backend_PutGet(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := new(mockS3Client)
	backend := NewS3BackendWithClient(client, "bucket", "/demo/", "s3://bucket/demo", logger)

	pdf := []byte("%PDF-1.4 signed")
	client.On("PutObjectWithContext", "bucket", "demo/signed/signed_x.pdf", pdf).Return(nil)
	client.On("GetObjectWithContext", "bucket", "demo/signed/signed_x.pdf").Return(pdf, nil)

	location, err := backend.Put(context.Background(), interfaces.SignedArea, "signed_x.pdf", pdf)
	require.NoError(t, err)
	assert.Equal(t, "s3://bucket/demo/signed/signed_x.pdf", location)

	data, err := backend.Get(context.Background(), interfaces.SignedArea, "signed_x.pdf")
	require.NoError(t, err)
	assert.Equal(t, pdf, data)

	client.AssertExpectations(t)
}

func TestS3Backend_GetMissing(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := new(mockS3Client)
	backend := NewS3BackendWithClient(client, "bucket", "", "s3://bucket", logger)

	client.On("GetObjectWithContext", "bucket", "uploads/missing.pdf").
		Return(nil, awserr.New(s3.ErrCodeNoSuchKey, "not found", nil))

	_, err := backend.Get(context.Background(), interfaces.UploadsArea, "missing.pdf")
	assert.ErrorIs(t, err, interfaces.ErrContentNotFound)
}
