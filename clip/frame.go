package clip

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Frame is one unit of video content at a clip position. The pixel
// payload is opaque to this library; only the host interprets it. Props
// carries host-attached per-frame metadata such as picture type or
// scene-change markers.
type Frame struct {
	Data  []byte
	Props map[string]any
}

// GetProp returns the property stored under key, asserting it has type T.
//
// It returns ErrPropNotFound when the key is absent and ErrPropWrongType
// when the stored value is not a T, so callers can rely on the result
// without a second type check.
func GetProp[T any](frame *Frame, key string) (T, error) {
	var zero T

	if frame == nil {
		return zero, fmt.Errorf("get prop %q: %w: nil frame", key, ErrInvalidInput)
	}

	raw, ok := frame.Props[key]
	if !ok {
		logrus.WithFields(logrus.Fields{
			"function": "GetProp",
			"key":      key,
		}).Error("Frame property lookup failed")
		return zero, fmt.Errorf("get prop %q: %w", key, ErrPropNotFound)
	}

	value, ok := raw.(T)
	if !ok {
		logrus.WithFields(logrus.Fields{
			"function":    "GetProp",
			"key":         key,
			"actual_type": fmt.Sprintf("%T", raw),
		}).Error("Frame property type assertion failed")
		return zero, fmt.Errorf("get prop %q: %w: expected %T, got %T", key, ErrPropWrongType, zero, raw)
	}

	return value, nil
}
