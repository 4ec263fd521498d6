package suppliers

import (
	"fmt"
	"strings"

	"github.com/meridian-erp/meridian/internal/masterdata/shared"
)

func (s *Service) validate(sup Supplier) error {
	if strings.TrimSpace(sup.Code) == "" {
		return fmt.Errorf("%w: code", shared.ErrRequiredField)
	}
	if strings.TrimSpace(sup.Name) == "" {
		return fmt.Errorf("%w: name", shared.ErrRequiredField)
	}
	return nil
}
