package source_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devzarghami/translate/pkg/source"
)

func TestS3(t *testing.T) {
	t.Parallel()

	t.Run("requires a bucket", func(t *testing.T) {
		t.Parallel()

		_, err := source.S3(source.S3Config{}, "i18n/en.json")
		require.ErrorIs(t, err, source.ErrEmptyBucket)
	})

	t.Run("requires a supported object key extension", func(t *testing.T) {
		t.Parallel()

		_, err := source.S3(source.S3Config{Bucket: "assets"}, "i18n/en.txt")
		require.ErrorIs(t, err, source.ErrUnsupportedFormat)
	})

	t.Run("builds a source for a valid config", func(t *testing.T) {
		t.Parallel()

		src, err := source.S3(source.S3Config{
			Bucket:    "assets",
			Region:    "eu-west-1",
			Endpoint:  "http://localhost:9000",
			PathStyle: true,
		}, "i18n/en.yaml")
		require.NoError(t, err)
		require.NotNil(t, src)
	})
}
