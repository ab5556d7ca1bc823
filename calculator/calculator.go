// Package calculator is a small arithmetic service that reports every
// operation it performs to its logger.
package calculator

import (
	"course_catalog/logger"
)

type Service struct {
	logger logger.Logger
}

func New(l logger.Logger) *Service {
	return &Service{logger: l}
}

func (s *Service) Add(a, b float64) float64 {
	s.logger.Log("Called add()", a, b)
	return a + b
}

func (s *Service) Subtract(a, b float64) float64 {
	s.logger.Log("Called subtract()", a, b)
	return a - b
}
