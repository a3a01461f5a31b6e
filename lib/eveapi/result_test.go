package eveapi

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHandleResultReturnsResultOnSuccess(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?><pew version="2"><currentTime>123</currentTime><result><a>1</a><b>2</b></result><cachedUntil>123</cachedUntil></pew>`

	result, err := HandleResult([]byte(body))
	require.NoError(t, err)

	a, ok := result.Get("a")
	require.True(t, ok)
	i, _ := a.Int()
	require.Equal(t, int64(1), i)

	b, _ := result.Get("b")
	i, _ = b.Int()
	require.Equal(t, int64(2), i)
}

func TestHandleResultReturnsAPIErrorOnError(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?><pew version="2"><currentTime>123</currentTime><error code="1">Error 1</error><cachedUntil>123</cachedUntil></pew>`

	_, err := HandleResult([]byte(body))
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, 1, apiErr.Code)
	require.Equal(t, "Error 1", apiErr.Message)
	require.Equal(t, "[1] Error 1", apiErr.Error())
}

func TestDecodeEnvelope(t *testing.T) {
	body := `<eveapi version="2">
		<currentTime>2012-07-04 12:00:00</currentTime>
		<result><serverOpen>True</serverOpen><onlinePlayers>31337</onlinePlayers></result>
		<cachedUntil>2012-07-04 12:03:00</cachedUntil>
	</eveapi>`

	env, err := DecodeEnvelope([]byte(body))
	require.NoError(t, err)
	require.NoError(t, env.Err())
	require.Nil(t, env.Failure)
	require.Equal(t, "2012-07-04 12:00:00", env.CurrentTime)

	cachedUntil, err := env.CachedUntilTime()
	require.NoError(t, err)
	require.Equal(t, time.Date(2012, 7, 4, 12, 3, 0, 0, time.UTC), cachedUntil)

	current, err := env.CurrentTimeTime()
	require.NoError(t, err)
	require.Equal(t, 3*time.Minute, cachedUntil.Sub(current))

	players, ok := env.Result.Get("onlinePlayers")
	require.True(t, ok)
	n, _ := players.Int()
	require.Equal(t, int64(31337), n)
}

func TestDecodeEnvelopeFailure(t *testing.T) {
	body := `<eveapi version="2"><currentTime>2012-07-04 12:00:00</currentTime><error code="203">Authentication failure.</error><cachedUntil>2012-07-05 12:00:00</cachedUntil></eveapi>`

	env, err := DecodeEnvelope([]byte(body))
	require.NoError(t, err)
	require.NotNil(t, env.Failure)
	require.Equal(t, 203, env.Failure.Code)
	require.Equal(t, "Authentication failure.", env.Failure.Message)
	require.Equal(t, env.Failure, env.Err())
}

func TestDecodeEnvelopeErrorWithoutMessage(t *testing.T) {
	env, err := DecodeEnvelope([]byte(`<eveapi><error code="500"/></eveapi>`))
	require.NoError(t, err)
	require.Equal(t, &APIError{Code: 500}, env.Failure)
}

func TestDecodeEnvelopeErrorWinsOverResult(t *testing.T) {
	env, err := DecodeEnvelope([]byte(`<eveapi><result>1</result><error code="2">x</error></eveapi>`))
	require.NoError(t, err)
	require.Equal(t, 2, env.Failure.Code)
}

func TestDecodeEnvelopeEmptyResult(t *testing.T) {
	result, err := HandleResult([]byte(`<eveapi><result/></eveapi>`))
	require.NoError(t, err)
	require.True(t, result.IsNone())
}

func TestDecodeEnvelopeMalformed(t *testing.T) {
	testCases := []string{
		`<eveapi>1</eveapi>`,
		`<eveapi/>`,
		`<eveapi><currentTime>1</currentTime></eveapi>`,
		`<eveapi><error>no code</error></eveapi>`,
		`<eveapi><error reason="x">no code</error></eveapi>`,
		`<eveapi><error code="abc">bad code</error></eveapi>`,
	}

	for _, body := range testCases {
		_, err := HandleResult([]byte(body))
		require.True(t, errors.Is(err, ErrMalformedEnvelope), "body %s: %v", body, err)
	}
}

func TestDecodeEnvelopeInvalidXML(t *testing.T) {
	_, err := HandleResult([]byte(`<eveapi><result>`))
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrMalformedEnvelope))

	var apiErr *APIError
	require.False(t, errors.As(err, &apiErr))
	var connErr *ConnectionError
	require.False(t, errors.As(err, &connErr))
}
