package identity

import (
	"strconv"
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must prefix keys by entity type so distinct entities never share a key.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// ContentUUID identifies a content item by its public path.
func ContentUUID(path string) uuid.UUID {
	return UUID("artia:content:" + strings.TrimSpace(path))
}

// SubmissionUUID identifies a contact submission. The key combines the sender
// and the submission time so retries of the same request collapse.
func SubmissionUUID(email string, unixNano int64) uuid.UUID {
	return UUID("artia:contact:" + strings.ToLower(strings.TrimSpace(email)) + ":" + strconv.FormatInt(unixNano, 10))
}
