package suppliers

import (
	"fmt"
	"strings"

	"github.com/stocksheet/stocksheet/internal/platform/httpx"
)

func (s *Service) validate(sup Supplier) error {
	return s.validateName(sup.Name)
}

func (s *Service) validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: supplier name is required", httpx.ErrValidation)
	}
	return nil
}
