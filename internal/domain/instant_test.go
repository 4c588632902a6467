package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/internal/domain"
)

func TestInstantNormalizesToUTCSeconds(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	i := domain.NewInstant(time.Date(2019, 6, 20, 16, 53, 7, 900_000_000, loc))
	assert.Equal(t, "2019-06-20T19:53:07Z", i.String())

	b, err := json.Marshal(i)
	require.NoError(t, err)
	assert.Equal(t, `"2019-06-20T19:53:07Z"`, string(b))

	var back domain.Instant
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(i.Time))
}

func TestInstantScanValue(t *testing.T) {
	i := domain.MustInstant("2019-06-20T19:53:07Z")
	v, err := i.Value()
	require.NoError(t, err)
	assert.Equal(t, "2019-06-20T19:53:07Z", v)

	var got domain.Instant
	require.NoError(t, got.Scan("2019-06-20T16:53:07-03:00"))
	assert.Equal(t, i.String(), got.String())
	require.NoError(t, got.Scan([]byte("2019-06-20T19:53:07Z")))
	assert.Equal(t, i.String(), got.String())

	_, err = domain.ParseInstant("yesterday")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
