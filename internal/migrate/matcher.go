/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package migrate

import (
	"context"
	"fmt"
	"strings"
)

// TargetSource resolves the target-environment counterpart of a source
// entity. Implementations are an indexed target export file or a live
// lookup against the target catalog API.
type TargetSource interface {
	Lookup(ctx context.Context, entity *Entity) (*Entity, bool, error)
}

// FileTargetSource matches against a target-environment export that
// was loaded once and indexed by URN and by (platform, name).
type FileTargetSource struct {
	byURN map[string]*Entity
	byKey map[string]*Entity
}

// NewFileTargetSource loads and indexes a target export file
func NewFileTargetSource(path string) (*FileTargetSource, error) {
	entities, _, err := LoadEntities(path)
	if err != nil {
		return nil, err
	}
	return NewTargetIndex(entities), nil
}

// NewTargetIndex indexes an already loaded target entity list
func NewTargetIndex(entities []*Entity) *FileTargetSource {
	source := FileTargetSource{
		byURN: make(map[string]*Entity, len(entities)),
		byKey: make(map[string]*Entity, len(entities)),
	}
	for _, entity := range entities {
		if entity.URN != "" {
			source.byURN[entity.URN] = entity
		}
		if key := matchKey(entity); key != "" {
			source.byKey[key] = entity
		}
	}
	return &source
}

// Lookup matches by exact URN first, then by case-insensitive
// (platform, name) for targets with a different URN namespace
func (s *FileTargetSource) Lookup(
	ctx context.Context,
	entity *Entity,
) (*Entity, bool, error) {
	if target, ok := s.byURN[entity.URN]; ok {
		return target, true, nil
	}
	if key := matchKey(entity); key != "" {
		if target, ok := s.byKey[key]; ok {
			return target, true, nil
		}
	}
	return nil, false, nil
}

// matchKey is the fallback identity of an entity when URN namespaces
// differ between environments
func matchKey(entity *Entity) string {
	platform := entity.PlatformName()
	name := entity.EntityName()
	if platform == "" || name == "" {
		return ""
	}
	return strings.ToLower(fmt.Sprintf("%s/%s", platform, name))
}
