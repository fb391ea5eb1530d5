package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository             *UserRepository
	StudentRepository          *StudentRepository
	EventRepository            *EventRepository
	RegistrationRepository     *RegistrationRepository
	TeamRegistrationRepository *TeamRegistrationRepository
	SummaryRepository          *SummaryRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:             NewUserRepository(db),
		StudentRepository:          NewStudentRepository(db),
		EventRepository:            NewEventRepository(db),
		RegistrationRepository:     NewRegistrationRepository(db),
		TeamRegistrationRepository: NewTeamRegistrationRepository(db),
		SummaryRepository:          NewSummaryRepository(db),
	}
}
