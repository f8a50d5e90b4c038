package schedule

import (
	"context"

	domain "github.com/ShasthoSeba/telemed-scheduler/internal/domain/schedule"
	"github.com/ShasthoSeba/telemed-scheduler/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) ForPatient(
	ctx context.Context,
	patientID uint,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointmentsForPatient(ctx, patientID)
}

func (uc *ListAppointments) ForDoctor(
	ctx context.Context,
	doctorID uint,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointmentsForDoctor(ctx, doctorID)
}
