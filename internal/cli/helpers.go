package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/quadro/internal/models"
)

// ParseLocation parses a "column:index" flag value such as "toDo:0"
func ParseLocation(value string) (models.Location, error) {
	columnID, indexStr, ok := strings.Cut(value, ":")
	if !ok || columnID == "" || indexStr == "" {
		return models.Location{}, fmt.Errorf("location must look like column:index (e.g., toDo:0), got: %q", value)
	}

	index, err := strconv.Atoi(indexStr)
	if err != nil {
		return models.Location{}, fmt.Errorf("index in %q must be an integer: %w", value, err)
	}
	if index < 0 {
		return models.Location{}, fmt.Errorf("index in %q must not be negative", value)
	}

	return models.Location{ColumnID: columnID, Index: index}, nil
}
