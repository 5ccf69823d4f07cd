// Copyright 2026 Parsatext
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"fmt"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/parsatext/hamanand/core"
)

// sentenceRecordSer serializes a SentenceRecord with mus-go primitives.
// CreatedAt travels as integer unix seconds.
type sentenceRecordSer struct{}

// SentenceRecordMUS is the binary serializer for SentenceRecord values.
var SentenceRecordMUS = sentenceRecordSer{}

func (sentenceRecordSer) Marshal(record core.SentenceRecord, bs []byte) (n int) {
	n = ord.String.Marshal(record.Id, bs)
	n += ord.String.Marshal(record.Text, bs[n:])
	n += varint.Int64.Marshal(record.CreatedAt.Unix(), bs[n:])
	return n
}

func (sentenceRecordSer) Unmarshal(bs []byte) (record core.SentenceRecord, n int, err error) {
	var n1 int
	record.Id, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	record.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var seconds int64
	seconds, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	record.CreatedAt = time.Unix(seconds, 0).UTC()
	return
}

func (sentenceRecordSer) Size(record core.SentenceRecord) int {
	return ord.String.Size(record.Id) +
		ord.String.Size(record.Text) +
		varint.Int64.Size(record.CreatedAt.Unix())
}

// MarshalSentenceRecord serializes a SentenceRecord to bytes.
func MarshalSentenceRecord(record *core.SentenceRecord) []byte {
	buf := make([]byte, SentenceRecordMUS.Size(*record))
	SentenceRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalSentenceRecord deserializes a SentenceRecord from bytes.
func UnmarshalSentenceRecord(data []byte) (*core.SentenceRecord, error) {
	record, _, err := SentenceRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &record, nil
}
