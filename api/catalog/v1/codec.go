// Package catalogv1 is the gRPC surface of the catalog service. Messages are
// plain Go structs carried by a JSON codec registered under the "json"
// content subtype, so clients must call with grpc.CallContentSubtype("json").
package catalogv1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

const CodecName = "json"

// Codec marshals messages as JSON.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

func (Codec) Name() string { return CodecName }

func init() {
	encoding.RegisterCodec(Codec{})
}
