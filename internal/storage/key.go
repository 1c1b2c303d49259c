package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// keyPrefix namespaces every stored photo under its owning project so the
// whole set can be removed by prefix.
const keyPrefix = "projects/"

// ObjectKey builds the storage key for one uploaded file:
// projects/{project_id}/{token}-{unix_ms}.{ext}. The random token plus
// millisecond timestamp keeps concurrent uploads collision-free, and the
// project segment keeps every object traceable to its owner.
func ObjectKey(projectID, filename string) string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")
	name := fmt.Sprintf("%s-%d", token, time.Now().UnixMilli())
	if ext := fileExt(filename); ext != "" {
		name += "." + ext
	}
	return keyPrefix + projectID + "/" + name
}

// KeyFromURL re-derives a storage key from a public URL's trailing path
// segment. Only used for image rows written before storage keys were
// persisted on the row.
func KeyFromURL(projectID, imageURL string) string {
	segs := strings.Split(imageURL, "/")
	return keyPrefix + projectID + "/" + segs[len(segs)-1]
}

// ProjectIDFromKey extracts the owning project id from a storage key, or
// "" if the key is not under the project prefix.
func ProjectIDFromKey(key string) string {
	rest, ok := strings.CutPrefix(key, keyPrefix)
	if !ok {
		return ""
	}
	id, _, ok := strings.Cut(rest, "/")
	if !ok {
		return ""
	}
	return id
}

func fileExt(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}
