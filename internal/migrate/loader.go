/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package migrate

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// export is the wrapped form of an entity export file. Exports come in
// three shapes: a bare list, {"entities": [...]} and
// {"export_data": [...]}.
type export struct {
	Entities   []json.RawMessage `json:"entities"`
	ExportData []json.RawMessage `json:"export_data"`
}

// LoadEntities reads an export file and normalizes it to a list of
// entities. Null and non-object entries are dropped and counted as
// skipped. An unreadable file, invalid JSON or an export with no
// usable entities is an InputError.
func LoadEntities(path string) ([]*Entity, int, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, &InputError{Path: path, Err: err}
	}

	raw, err := normalizeExport(body)
	if err != nil {
		return nil, 0, &InputError{Path: path, Err: err}
	}

	entities := make([]*Entity, 0, len(raw))
	skipped := 0
	for i, message := range raw {
		if !isJSONObject(message) {
			logrus.Debugf("Skipping entry %d: not an entity object\n", i)
			skipped++
			continue
		}
		entity := Entity{}
		if err := json.Unmarshal(message, &entity); err != nil {
			logrus.Warnf("Skipping entry %d: %s\n", i, err.Error())
			skipped++
			continue
		}
		entities = append(entities, &entity)
	}

	if len(entities) == 0 {
		return nil, skipped, &InputError{
			Path: path,
			Err:  fmt.Errorf("no usable entities in export"),
		}
	}
	return entities, skipped, nil
}

// normalizeExport reduces the three accepted export shapes to one list
func normalizeExport(body []byte) ([]json.RawMessage, error) {
	var list []json.RawMessage
	if err := json.Unmarshal(body, &list); err == nil {
		return list, nil
	}

	wrapped := export{}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Entities != nil {
		return wrapped.Entities, nil
	}
	if wrapped.ExportData != nil {
		return wrapped.ExportData, nil
	}
	return nil, fmt.Errorf("export is neither a list nor an entities/export_data document")
}

func isJSONObject(message json.RawMessage) bool {
	for _, b := range message {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}
