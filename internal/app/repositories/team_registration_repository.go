package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deepak/eventsphere/internal/app/models"
)

// ITeamRegistrationRepository defines the interface for team registration
// database operations
type ITeamRegistrationRepository interface {
	Create(ctx context.Context, team *models.TeamRegistration) (int64, error)
	ListAll(ctx context.Context) ([]*models.TeamRegistration, error)
}

// TeamRegistrationRepository handles database operations for team
// registrations. The table is denormalized into five fixed member slots;
// unused slots stay empty.
type TeamRegistrationRepository struct {
	db *pgxpool.Pool
}

// NewTeamRegistrationRepository creates a new TeamRegistrationRepository
func NewTeamRegistrationRepository(db *pgxpool.Pool) *TeamRegistrationRepository {
	return &TeamRegistrationRepository{db: db}
}

// Create inserts a team registration row
func (r *TeamRegistrationRepository) Create(ctx context.Context, team *models.TeamRegistration) (int64, error) {
	query := `
		INSERT INTO team_registrations (team_name,
			member1_name, member1_roll, member2_name, member2_roll,
			member3_name, member3_roll, member4_name, member4_roll,
			member5_name, member5_roll)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	m := team.Members
	var id int64
	err := r.db.QueryRow(ctx, query, team.TeamName,
		m[0].Name, m[0].RollNo, m[1].Name, m[1].RollNo,
		m[2].Name, m[2].RollNo, m[3].Name, m[3].RollNo,
		m[4].Name, m[4].RollNo,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating team registration: %w", err)
	}
	return id, nil
}

// ListAll retrieves every team registration, newest first
func (r *TeamRegistrationRepository) ListAll(ctx context.Context) ([]*models.TeamRegistration, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, team_name,
			member1_name, member1_roll, member2_name, member2_roll,
			member3_name, member3_roll, member4_name, member4_roll,
			member5_name, member5_roll, created_at
		FROM team_registrations
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var teams []*models.TeamRegistration
	for rows.Next() {
		var team models.TeamRegistration
		m := &team.Members
		err := rows.Scan(&team.ID, &team.TeamName,
			&m[0].Name, &m[0].RollNo, &m[1].Name, &m[1].RollNo,
			&m[2].Name, &m[2].RollNo, &m[3].Name, &m[3].RollNo,
			&m[4].Name, &m[4].RollNo, &team.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		teams = append(teams, &team)
	}
	return teams, rows.Err()
}
