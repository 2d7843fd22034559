package output

import (
	"encoding/json"

	"github.com/rgehrsitz/ctcgo/internal/domain"
)

// JSONFormatter serializes the full breakdown
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(b *domain.SalaryBreakdown) ([]byte, error) {
	if j.Pretty {
		return json.MarshalIndent(b, "", "  ")
	}
	return json.Marshal(b)
}
