package v1handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := parseDate("2026-10-09")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 10, 9, 0, 0, 0, 0, time.UTC), d)

	d, err = parseDate("2026-10-09T20:30:00+02:00")
	require.NoError(t, err)
	require.True(t, d.Equal(time.Date(2026, 10, 9, 18, 30, 0, 0, time.UTC)))

	_, err = parseDate("09/10/2026")
	require.Error(t, err)
}

func TestDecodePlayerRequest(t *testing.T) {
	req, err := decodePlayerRequest([]byte(`{"name":"Tom","totalIn":150,"totalOut":null,"extra":{"a":[1,2]}}`))
	require.NoError(t, err)
	require.Equal(t, "Tom", *req.Name)
	require.Equal(t, int64(150), *req.TotalIn)
	require.Nil(t, req.TotalOut)

	_, err = decodePlayerRequest([]byte(`[]`))
	require.Error(t, err)
}
