package export

import (
	"context"
	"testing"

	"locsync/core/storage/mocks"
	"locsync/core/termstore"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPublish_UploadsUnderLanguagePrefix(t *testing.T) {
	data := []byte(`{"welcome":"Welcome"}`)

	client := new(mocks.Client)
	client.On("BucketExists", context.Background(), "localizations").Return(true, nil)
	client.On("PutObject", context.Background(), "localizations", "exports/en/en.json",
		mock.Anything, int64(len(data)), mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
			return opts.ContentType == "application/json"
		})).
		Return(minio.UploadInfo{}, nil)

	publisher := NewPublisher(client, "localizations", zap.NewNop())
	object, err := publisher.Publish(context.Background(), "en", termstore.FormatKeyValueJSON, "en.json", data)

	require.NoError(t, err)
	assert.Equal(t, "exports/en/en.json", object)
	client.AssertExpectations(t)
}

func TestPublish_CreatesBucketOnFirstUse(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", context.Background(), "localizations").Return(false, nil)
	client.On("MakeBucket", context.Background(), "localizations", minio.MakeBucketOptions{}).Return(nil)
	client.On("PutObject", context.Background(), "localizations", "exports/de/Localizable.strings",
		mock.Anything, mock.AnythingOfType("int64"), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	publisher := NewPublisher(client, "localizations", zap.NewNop())
	_, err := publisher.Publish(context.Background(), "de", termstore.FormatAppleStrings, "Localizable.strings", []byte("x"))

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestPublish_BucketCheckFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", context.Background(), "localizations").
		Return(false, assert.AnError)

	publisher := NewPublisher(client, "localizations", zap.NewNop())
	_, err := publisher.Publish(context.Background(), "en", termstore.FormatAppleStrings, "x.strings", []byte("x"))

	assert.Error(t, err)
	client.AssertNotCalled(t, "PutObject")
}
