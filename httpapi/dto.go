package httpapi

import (
	"fmt"

	"github.com/alex-panda/knuthplass/breaker"
)

func dtosToItems(dtos []ItemDTO) ([]breaker.Item, error) {
	items := make([]breaker.Item, 0, len(dtos))
	for i, d := range dtos {
		switch d.Kind {
		case "box":
			items = append(items, breaker.Box(d.Width, nil))
		case "glue":
			items = append(items, breaker.Glue(d.Width, d.Stretch, d.Shrink, nil))
		case "penalty":
			items = append(items, breaker.Penalty(d.Width, d.Penalty, d.Flagged, nil))
		default:
			return nil, fmt.Errorf("httpapi: item %d has unknown kind %q", i, d.Kind)
		}
	}
	return items, nil
}
