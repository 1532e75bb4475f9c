package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullRevision = `<page>
  <revision>
    <id>1001</id>
    <timestamp>2020-01-02T00:00:00Z</timestamp>
    <contributor>
      <username>Alice</username>
      <id>7</id>
    </contributor>
    <comment>copyedit</comment>
    <text>Hello revision</text>
  </revision>
</page>`

func TestExtractAllFields(t *testing.T) {
	record, err := Extract(fullRevision, false)
	require.NoError(t, err)
	require.NotNil(t, record)

	require.NotNil(t, record.RevisionID)
	assert.Equal(t, "1001", *record.RevisionID)
	require.NotNil(t, record.Timestamp)
	assert.Equal(t, "2020-01-02T00:00:00Z", *record.Timestamp)
	require.NotNil(t, record.Username)
	assert.Equal(t, "Alice", *record.Username)
	require.NotNil(t, record.UserID)
	assert.Equal(t, "7", *record.UserID)
	require.NotNil(t, record.Comment)
	assert.Equal(t, "copyedit", *record.Comment)
	assert.Equal(t, len("Hello revision"), record.TextLength)
}

func TestExtractNoRevisionElement(t *testing.T) {
	record, err := Extract(`<page><title>Nothing here</title></page>`, false)
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestExtractMalformedXML(t *testing.T) {
	_, err := Extract(`<revision><id>1</revision>`, false)
	assert.Error(t, err)
}

func TestExtractContributorFallback(t *testing.T) {
	tests := []struct {
		name         string
		fragment     string
		wantUsername *string
		wantUserID   *string
	}{
		{
			name: "ip fallback when username absent",
			fragment: `<revision>
				<contributor><ip>192.0.2.1</ip></contributor>
			</revision>`,
			wantUsername: strPtr("192.0.2.1"),
		},
		{
			name: "username preferred over ip",
			fragment: `<revision>
				<contributor><username>Bob</username><ip>192.0.2.1</ip><id>9</id></contributor>
			</revision>`,
			wantUsername: strPtr("Bob"),
			wantUserID:   strPtr("9"),
		},
		{
			name:     "no contributor leaves both absent",
			fragment: `<revision><id>1</id></revision>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := Extract(tt.fragment, false)
			require.NoError(t, err)
			require.NotNil(t, record)

			assert.Equal(t, tt.wantUsername, record.Username)
			assert.Equal(t, tt.wantUserID, record.UserID)
		})
	}
}

func TestExtractOptionalFieldsIndependent(t *testing.T) {
	// No timestamp, no comment: the remaining fields still come through.
	record, err := Extract(`<revision><id>42</id><text>abc</text></revision>`, false)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Nil(t, record.Timestamp)
	assert.Nil(t, record.Comment)
	require.NotNil(t, record.RevisionID)
	assert.Equal(t, "42", *record.RevisionID)
	assert.Equal(t, 3, record.TextLength)
}

func TestExtractTextRetention(t *testing.T) {
	fragment := `<revision><text>some wiki text</text></revision>`

	withoutText, err := Extract(fragment, false)
	require.NoError(t, err)
	assert.Nil(t, withoutText.Text)
	assert.Equal(t, len("some wiki text"), withoutText.TextLength)

	withText, err := Extract(fragment, true)
	require.NoError(t, err)
	require.NotNil(t, withText.Text)
	assert.Equal(t, "some wiki text", *withText.Text)
	assert.Equal(t, withoutText.TextLength, withText.TextLength)
}

func TestExtractTextLengthEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		wantLen  int
	}{
		{"empty text element", `<revision><text></text></revision>`, 0},
		{"missing text element", `<revision><id>1</id></revision>`, 0},
		{"multibyte characters counted once", `<revision><text>héllo wörld</text></revision>`, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := Extract(tt.fragment, true)
			require.NoError(t, err)
			require.NotNil(t, record)

			assert.Equal(t, tt.wantLen, record.TextLength)
			require.NotNil(t, record.Text)
		})
	}
}

func strPtr(s string) *string {
	return &s
}
