package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_UsesSalonZone(t *testing.T) {
	d, err := ParseDate("2026-09-03")
	require.NoError(t, err)
	assert.Equal(t, SalonLocation, d.Location())
	assert.Equal(t, "2026-09-03", d.Format(DateFormat))
}

func TestParseDate_RejectsMalformedValue(t *testing.T) {
	_, err := ParseDate("03/09/2026")
	assert.Error(t, err)
}

func TestNow_UsesSalonZone(t *testing.T) {
	assert.Equal(t, SalonLocation, Now().Location())
}
