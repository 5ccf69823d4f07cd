package badger

import (
	"encoding/binary"
	"time"
)

// Key prefixes for different data types
const (
	sentencePrefix     = "senrec"
	sentenceDatePrefix = "senrecd"
)

// makeSentenceKey generates the primary key for a sentence record by id.
func makeSentenceKey(id string) []byte {
	return []byte(sentencePrefix + ":" + id)
}

// sentenceKeyPrefix is the iteration prefix for primary sentence keys.
// The trailing colon keeps date index keys out of primary-key scans.
func sentenceKeyPrefix() []byte {
	return []byte(sentencePrefix + ":")
}

// makeSentenceDateKey generates a composite key for the creation-time index.
// Format: prefix:timestamp:id, with the timestamp in BigEndian order so
// lexicographic sort matches chronological sort.
func makeSentenceDateKey(timestamp time.Time, id string) []byte {
	prefix := []byte(sentenceDatePrefix + ":")
	buf := make([]byte, len(prefix)+8+len(id))
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	copy(buf[offset:], id)
	return buf
}

// makePartialSentenceDateKey generates a partial key for seeking into the
// creation-time index at a given timestamp.
func makePartialSentenceDateKey(timestamp time.Time) []byte {
	prefix := []byte(sentenceDatePrefix + ":")
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}

// sentenceDateKeyPrefix is the iteration prefix for date index keys.
func sentenceDateKeyPrefix() []byte {
	return []byte(sentenceDatePrefix + ":")
}
