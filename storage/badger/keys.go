package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/carena/core"
)

// Key prefixes for different data types
const (
	concernRecordPrefix = "conrec"
	careRecordPrefix    = "carrec"
	variantRecordPrefix = "varrec"
	careVariantPrefix   = "carvar"
	bundleRecordPrefix  = "bunrec"
)

// makeConcernKey generates a key for a concern by ID.
func makeConcernKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", concernRecordPrefix, id))
}

// makeCareKey generates a key for a care by ID.
func makeCareKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", careRecordPrefix, id))
}

// makeVariantKey generates a key for a care variant by ID.
func makeVariantKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", variantRecordPrefix, id))
}

// makeBundleKey generates a key for a bundle by its concern ID.
// Keying by concern ID is what enforces one bundle per concern.
func makeBundleKey(concernID core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", bundleRecordPrefix, concernID))
}

// makeCareVariantKey generates a composite key for the care->variant index.
// Format: prefix:careID:variantID
func makeCareVariantKey(careID, variantID core.ID) []byte {
	prefix := careVariantPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for careID + 8 bytes for variantID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(careID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(variantID))
	return buf
}

// makePartialCareVariantKey generates a partial key for variants-of-care scans.
// Format: prefix:careID
func makePartialCareVariantKey(careID core.ID) []byte {
	prefix := careVariantPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for careID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(careID))
	return buf
}
