package repositories

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e3mc/bschool-admin/internal/app/models"
)

func TestMarshalFileNilStoresNull(t *testing.T) {
	value, err := marshalFile(nil)
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestFileMetadataRoundTrip(t *testing.T) {
	meta := &models.FileMeta{
		OriginalName: "transcript.pdf",
		StoredName:   "a1b2_transcript.pdf",
		Path:         "/uploads/documents/a1b2_transcript.pdf",
		MimeType:     "application/pdf",
		Size:         2048,
	}

	value, err := marshalFile(meta)
	require.NoError(t, err)

	decoded, err := unmarshalFile(value.([]byte))
	require.NoError(t, err)
	assert.Equal(t, meta, decoded)
}

func TestUnmarshalFileNullColumn(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("null")} {
		decoded, err := unmarshalFile(data)
		require.NoError(t, err)
		assert.Nil(t, decoded)
	}
}

func TestMarshalFilesNilStoresEmptyArray(t *testing.T) {
	data, err := marshalFiles(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestUnmarshalFilesNullColumn(t *testing.T) {
	files, err := unmarshalFiles(nil)
	require.NoError(t, err)
	assert.NotNil(t, files)
	assert.Empty(t, files)
}

func TestIsDuplicateKeyError(t *testing.T) {
	assert.True(t, isDuplicateKeyError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isDuplicateKeyError(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isDuplicateKeyError(assert.AnError))
}

func TestJoinColumns(t *testing.T) {
	assert.Equal(t, "id, ap_code, email", joinColumns([]string{"id", "ap_code", "email"}))
}
