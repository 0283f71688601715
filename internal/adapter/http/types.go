package adapthttp

import (
	"time"

	"bmicalc/internal/domain"
)

type calculateRequest struct {
	Weight domain.RawValue `json:"weight"`
	Height domain.RawValue `json:"height"`
}

type recordResponse struct {
	Success bool                     `json:"success"`
	Data    domain.CalculationRecord `json:"data"`
}

type historyResponse struct {
	Success bool                       `json:"success"`
	Count   int                        `json:"count"`
	Data    []domain.CalculationRecord `json:"data"`
}

type deleteResponse struct {
	Success bool                      `json:"success"`
	Message string                    `json:"message"`
	Data    *domain.CalculationRecord `json:"data,omitempty"`
}

type statisticsResponse struct {
	Success bool              `json:"success"`
	Data    domain.Statistics `json:"data"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type healthResponse struct {
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
	Calculations int       `json:"calculations"`
}
