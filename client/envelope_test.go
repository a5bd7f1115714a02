package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func TestParsePayloadObject(t *testing.T) {
	p := ParsePayload([]byte(`{"token":"abc","count":2,"nothing":null}`))
	assert.True(t, p.IsStructured())
	assert.True(t, p.IsObject())
	assert.False(t, p.IsArray())
	assert.False(t, p.IsScalar())
	assert.True(t, p.HasField("token"))
	assert.True(t, p.HasField("nothing"))
	assert.False(t, p.HasField("missing"))
	assert.Equal(t, ldvalue.StringType, p.Field("token").Type())
	assert.Equal(t, "abc", p.Field("token").StringValue())

	s, ok := p.FieldString("token")
	assert.True(t, ok)
	assert.Equal(t, "abc", s)

	s, ok = p.FieldString("count")
	assert.True(t, ok)
	assert.Equal(t, "2", s)

	_, ok = p.FieldString("missing")
	assert.False(t, ok)
}

func TestParsePayloadArray(t *testing.T) {
	p := ParsePayload([]byte(`[{"address":"0x1"},{"address":"0x2"}]`))
	assert.True(t, p.IsArray())
	assert.Equal(t, 2, p.Len())
	assert.False(t, p.HasField("address"))
	assert.True(t, p.Field("address").IsNull())
}

func TestParsePayloadScalars(t *testing.T) {
	assert.True(t, ParsePayload([]byte(`12345`)).IsScalar())
	assert.True(t, ParsePayload([]byte(`"0x1a2b"`)).IsScalar())
	assert.False(t, ParsePayload([]byte(`true`)).IsScalar())
	assert.False(t, ParsePayload([]byte(`null`)).IsScalar())
}

func TestParsePayloadFallsBackToRawText(t *testing.T) {
	p := ParsePayload([]byte("Internal Server Error"))
	assert.False(t, p.IsStructured())
	assert.False(t, p.IsObject())
	assert.True(t, p.IsScalar())
	assert.False(t, p.HasField("status"))
	assert.Equal(t, "Internal Server Error", p.Raw())
	assert.Equal(t, "Internal Server Error", p.String())
	assert.Equal(t, 0, p.Len())
}

func TestEmptyBodyIsRawText(t *testing.T) {
	p := ParsePayload(nil)
	assert.False(t, p.IsStructured())
	assert.Equal(t, "", p.String())
}

func TestTransportFailure(t *testing.T) {
	e := TransportFailure(errors.New("connection refused"))
	assert.Equal(t, 0, e.Status)
	assert.False(t, e.Reached())
	assert.Equal(t, "connection refused", e.Body.String())
	assert.False(t, e.Body.IsStructured())
}
