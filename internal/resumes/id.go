package resumes

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	idPrefix     = "resume_"
	idTimeLayout = "20060102_150405"
	idSuffixLen  = 12
	fileSuffix   = ".json"
	filePattern  = idPrefix + "*" + fileSuffix
)

// NewID returns resume_<YYYYMMDD>_<HHMMSS>_<random hex>. The random suffix keeps
// identifiers unique when several saves land in the same second.
func NewID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:idSuffixLen]
	return idPrefix + now.UTC().Format(idTimeLayout) + "_" + suffix
}

func keyFor(id string) string {
	return id + fileSuffix
}

func idFromKey(key string) string {
	return strings.TrimSuffix(key, fileSuffix)
}
