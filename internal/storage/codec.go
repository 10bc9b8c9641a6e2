package storage

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/osse101/PackSim_Go/internal/domain"
)

// Codec names
const (
	CodecJSON    = "json"
	CodecMsgpack = "msgpack"
)

// Codec serializes values stored through a Store.
type Codec interface {
	Name() string
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

// NewCodec returns the codec registered under name.
func NewCodec(name string) (Codec, error) {
	switch name {
	case "", CodecJSON:
		return JSONCodec{}, nil
	case CodecMsgpack:
		return MsgpackCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedCodec, name)
	}
}

// JSONCodec stores values as JSON, readable by any client of the store.
type JSONCodec struct{}

func (JSONCodec) Name() string                               { return CodecJSON }
func (JSONCodec) Marshal(v interface{}) ([]byte, error)      { return json.Marshal(v) }
func (JSONCodec) Unmarshal(data []byte, v interface{}) error { return json.Unmarshal(data, v) }

// MsgpackCodec stores values as MessagePack.
type MsgpackCodec struct{}

func (MsgpackCodec) Name() string                               { return CodecMsgpack }
func (MsgpackCodec) Marshal(v interface{}) ([]byte, error)      { return msgpack.Marshal(v) }
func (MsgpackCodec) Unmarshal(data []byte, v interface{}) error { return msgpack.Unmarshal(data, v) }
