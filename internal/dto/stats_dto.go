package dto

import "github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/repository"

// DashboardResponse aggregates the staff dashboard counters.
type DashboardResponse struct {
	Users             []repository.RoleCount        `json:"users"`
	Insertion         []repository.StatusCount      `json:"insertion"`
	Jobs              []repository.StatusCount      `json:"jobs"`
	Applications      []repository.StatusCount      `json:"applications"`
	Events            []repository.StatusCount      `json:"events"`
	MonthlyInsertions []repository.MonthlyInsertion `json:"monthly_insertions"`
}
