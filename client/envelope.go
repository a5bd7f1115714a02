package client

import (
	"encoding/json"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Payload is a response body: either a parsed JSON value or, when the body
// was not valid JSON, the raw text. Use the accessors rather than inspecting
// the value directly.
type Payload struct {
	value      ldvalue.Value
	raw        string
	structured bool
}

// StructuredPayload wraps an already parsed JSON value.
func StructuredPayload(v ldvalue.Value) Payload {
	return Payload{value: v, raw: v.JSONString(), structured: true}
}

// RawPayload wraps text that is not JSON.
func RawPayload(s string) Payload {
	return Payload{value: ldvalue.Null(), raw: s}
}

// ParsePayload parses data as JSON, falling back to the raw text.
func ParsePayload(data []byte) Payload {
	var v ldvalue.Value
	if err := json.Unmarshal(data, &v); err != nil {
		return RawPayload(string(data))
	}
	return Payload{value: v, raw: string(data), structured: true}
}

// IsStructured is true if the body was valid JSON.
func (p Payload) IsStructured() bool {
	return p.structured
}

// Value returns the parsed JSON value, or a null value for raw text.
func (p Payload) Value() ldvalue.Value {
	return p.value
}

// Raw returns the body text exactly as received.
func (p Payload) Raw() string {
	return p.raw
}

func (p Payload) IsObject() bool {
	return p.structured && p.value.Type() == ldvalue.ObjectType
}

func (p Payload) IsArray() bool {
	return p.structured && p.value.Type() == ldvalue.ArrayType
}

// IsScalar is true for raw text and for JSON strings and numbers.
func (p Payload) IsScalar() bool {
	if !p.structured {
		return true
	}
	t := p.value.Type()
	return t == ldvalue.StringType || t == ldvalue.NumberType
}

// HasField is true if the body is a JSON object with the named key, even if
// the key's value is null.
func (p Payload) HasField(name string) bool {
	if !p.IsObject() {
		return false
	}
	for _, k := range p.value.Keys() {
		if k == name {
			return true
		}
	}
	return false
}

// Field returns the named property of a JSON object, or null.
func (p Payload) Field(name string) ldvalue.Value {
	if !p.IsObject() {
		return ldvalue.Null()
	}
	return p.value.GetByKey(name)
}

// FieldString returns a property as text: string values as-is, anything else
// as JSON. The second value is false if the field is absent.
func (p Payload) FieldString(name string) (string, bool) {
	if !p.HasField(name) {
		return "", false
	}
	v := p.Field(name)
	if v.Type() == ldvalue.StringType {
		return v.StringValue(), true
	}
	return v.JSONString(), true
}

// Len is the number of elements of a JSON array or object, or zero.
func (p Payload) Len() int {
	if !p.structured {
		return 0
	}
	return p.value.Count()
}

// String returns compact JSON for structured bodies and the raw text otherwise.
func (p Payload) String() string {
	if p.structured {
		return p.value.JSONString()
	}
	return p.raw
}

// Envelope is the normalized result of one HTTP attempt. Status is 0 when no
// response was obtained at all, in which case Body holds the error text.
type Envelope struct {
	Status int
	Body   Payload
}

// TransportFailure builds the envelope for a request that got no response.
func TransportFailure(err error) Envelope {
	return Envelope{Status: 0, Body: RawPayload(err.Error())}
}

// Reached is true if the server sent any response.
func (e Envelope) Reached() bool {
	return e.Status != 0
}
