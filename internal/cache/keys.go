package cache

import "strings"

const (
	GlobalKeyPrefix = "medmcq"

	ServiceGeneration = "generation"
	TypeDraft         = "draft"
)

// GenerateCacheKey builds "medmcq:<service>:<type>:<id>".
// If paramsKey are provided, they are joined by "_" and appended as a final segment.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return baseKey + ":" + strings.Join(paramsKey, "_")
	}
	return baseKey
}

// DraftKey is where a generated draft lives until it is saved or expires.
func DraftKey(id string) string {
	return GenerateCacheKey(ServiceGeneration, TypeDraft, id)
}
