package model

import (
	"encoding/json"
	"strconv"
)

// ExtractStrategy tells where the file attributes were found in an InboundEvent.
type ExtractStrategy string

const (
	StrategyFlat   ExtractStrategy = "flat"
	StrategyNested ExtractStrategy = "nested"
)

const nestedEventKey = "data"

// FileInfo is the set of file attributes required to build an OutboundMessage.
// Size keeps the type it had in the event (json.Number, number or string).
type FileInfo struct {
	Name        string `json:"name"`
	Size        any    `json:"size"`
	ContentType string `json:"contentType"`
	Bucket      string `json:"bucket"`
}

// Missing returns keys of the event that were absent or empty.
func (x FileInfo) Missing() []string {
	var keys []string
	if x.Name == "" {
		keys = append(keys, "name")
	}
	if x.Size == nil {
		keys = append(keys, "size")
	}
	if x.ContentType == "" {
		keys = append(keys, "contentType")
	}
	if x.Bucket == "" {
		keys = append(keys, "bucket")
	}
	return keys
}

func (x FileInfo) Complete() bool { return len(x.Missing()) == 0 }

// ExtractFlat reads the file attributes from the top level of src.
func ExtractFlat(src map[string]any) FileInfo {
	return FileInfo{
		Name:        stringAttr(src, "name"),
		Size:        sizeAttr(src, "size"),
		ContentType: stringAttr(src, "contentType"),
		Bucket:      stringAttr(src, "bucket"),
	}
}

// ExtractNested reads the file attributes from the mapping under "data". The
// second return value is false when there is no such mapping.
func ExtractNested(event InboundEvent) (FileInfo, bool) {
	switch nested := event[nestedEventKey].(type) {
	case map[string]any:
		return ExtractFlat(nested), true
	case InboundEvent:
		return ExtractFlat(nested), true
	default:
		return FileInfo{}, false
	}
}

// Extract tries the flat strategy first and falls back to the nested one when
// any attribute is missing. A nested result replaces the flat one as a whole,
// even when it is partial. The returned bool reports whether all four
// attributes are present.
func Extract(event InboundEvent) (FileInfo, ExtractStrategy, bool) {
	info := ExtractFlat(event)
	if info.Complete() {
		return info, StrategyFlat, true
	}

	nested, ok := ExtractNested(event)
	if !ok {
		return info, StrategyFlat, false
	}

	return nested, StrategyNested, nested.Complete()
}

func stringAttr(src map[string]any, key string) string {
	v, _ := src[key].(string)
	return v
}

// sizeAttr returns nil for absent, zero or non-numeric-typed values.
func sizeAttr(src map[string]any, key string) any {
	switch v := src[key].(type) {
	case json.Number:
		if f, err := strconv.ParseFloat(v.String(), 64); err == nil && f == 0 {
			return nil
		}
		return v
	case string:
		if v == "" {
			return nil
		}
		return v
	case float64:
		if v == 0 {
			return nil
		}
		return v
	case int:
		if v == 0 {
			return nil
		}
		return v
	case int64:
		if v == 0 {
			return nil
		}
		return v
	default:
		return nil
	}
}
