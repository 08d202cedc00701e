/*
 * Sint - Overflow-checked fixed-width signed integers
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sint

import (
	"bytes"
	"fmt"
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// Values are CBOR-encoded with one custom tag per width, so the width
// survives a round trip.

// !!! *WARNING* !!!
//
// Only add new tags by appending.
//
// DO *NOT* REPLACE OR REORDER EXISTING TAGS!

const cborTagBase = 6091201

const (
	cborTagInt8Value = cborTagBase + iota
	cborTagInt16Value
	cborTagInt32Value
	cborTagInt64Value
)

type encodedInt8Value int8
type encodedInt16Value int16
type encodedInt32Value int32
type encodedInt64Value int64

var cborTagSet = func() cbor.TagSet {
	tagSet := cbor.NewTagSet()
	tagOptions := cbor.TagOptions{
		EncTag: cbor.EncTagRequired,
		DecTag: cbor.DecTagRequired,
	}

	register := func(tag uint64, encodingType any) {
		err := tagSet.Add(
			tagOptions,
			reflect.TypeOf(encodingType),
			tag,
		)
		if err != nil {
			panic(err)
		}
	}

	register(cborTagInt8Value, encodedInt8Value(0))
	register(cborTagInt16Value, encodedInt16Value(0))
	register(cborTagInt32Value, encodedInt32Value(0))
	register(cborTagInt64Value, encodedInt64Value(0))

	return tagSet
}()

var cborEncMode = func() cbor.EncMode {
	encMode, err := cbor.CanonicalEncOptions().EncModeWithTags(cborTagSet)
	if err != nil {
		panic(err)
	}
	return encMode
}()

var cborDecMode = func() cbor.DecMode {
	decMode, err := cbor.DecOptions{
		IntDec: cbor.IntDecConvertNone,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return decMode
}()

// Encoder converts values into CBOR-encoded bytes.
type Encoder struct {
	enc *cbor.Encoder
}

// EncodeNum returns the CBOR-encoded representation of the given value.
func EncodeNum(v Num) ([]byte, error) {
	var w bytes.Buffer
	enc := NewEncoder(&w)

	err := enc.Encode(v)
	if err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// NewEncoder initializes an Encoder that will write CBOR-encoded bytes
// to the given io.Writer.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: cborEncMode.NewEncoder(w)}
}

// Encode writes the CBOR-encoded representation of the given value to
// this encoder's io.Writer.
func (e *Encoder) Encode(v Num) error {
	return e.enc.Encode(e.prepare(v))
}

func (e *Encoder) prepare(v Num) any {
	switch v := v.(type) {
	case Int8:
		return encodedInt8Value(v)
	case Int16:
		return encodedInt16Value(v)
	case Int32:
		return encodedInt32Value(v)
	case Int64:
		return encodedInt64Value(v)
	default:
		panic(fmt.Sprintf("unknown value type: %T", v))
	}
}

// Decoder converts CBOR-encoded bytes back into values.
type Decoder struct {
	dec *cbor.Decoder
}

// DecodeNum returns the value encoded in the given CBOR bytes.
func DecodeNum(data []byte) (Num, error) {
	return NewDecoder(bytes.NewReader(data)).Decode()
}

// NewDecoder initializes a Decoder that will read CBOR-encoded bytes
// from the given io.Reader.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: cborDecMode.NewDecoder(r)}
}

// Decode reads the next value from this decoder's io.Reader.
func (d *Decoder) Decode() (Num, error) {
	var raw cbor.RawTag
	err := d.dec.Decode(&raw)
	if err != nil {
		return nil, err
	}

	switch raw.Number {
	case cborTagInt8Value:
		var v int8
		err = cborDecMode.Unmarshal(raw.Content, &v)
		if err != nil {
			return nil, err
		}
		return NewInt8(v), nil

	case cborTagInt16Value:
		var v int16
		err = cborDecMode.Unmarshal(raw.Content, &v)
		if err != nil {
			return nil, err
		}
		return NewInt16(v), nil

	case cborTagInt32Value:
		var v int32
		err = cborDecMode.Unmarshal(raw.Content, &v)
		if err != nil {
			return nil, err
		}
		return NewInt32(v), nil

	case cborTagInt64Value:
		var v int64
		err = cborDecMode.Unmarshal(raw.Content, &v)
		if err != nil {
			return nil, err
		}
		return NewInt64(v), nil

	default:
		return nil, UnsupportedTagDecodingError{Tag: raw.Number}
	}
}
