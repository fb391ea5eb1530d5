package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepak/eventsphere/internal/app/models"
	"github.com/deepak/eventsphere/internal/app/models/dto"
	"github.com/deepak/eventsphere/internal/pkg/apperrors"
)

type fakeTeamRepo struct {
	teams []*models.TeamRegistration
}

func (f *fakeTeamRepo) Create(ctx context.Context, team *models.TeamRegistration) (int64, error) {
	id := int64(len(f.teams) + 1)
	f.teams = append(f.teams, team)
	return id, nil
}

func (f *fakeTeamRepo) ListAll(ctx context.Context) ([]*models.TeamRegistration, error) {
	return f.teams, nil
}

func teamRequest(memberCount int) *dto.RegisterTeamRequest {
	req := &dto.RegisterTeamRequest{TeamName: "Null Pointers"}
	names := []string{"Anita Rao", "Vikram Iyer", "Priya Nair", "Rahul Menon", "Divya Shetty"}
	for i := 0; i < memberCount; i++ {
		req.Members = append(req.Members, dto.TeamMemberRequest{
			Name:   names[i],
			RollNo: "CB12345" + string(rune('0'+i)),
		})
	}
	return req
}

func TestRegisterTeam(t *testing.T) {
	ctx := context.Background()

	t.Run("pads the unused member slots", func(t *testing.T) {
		repo := &fakeTeamRepo{}
		svc := NewTeamService(repo, zerolog.Nop())

		team, err := svc.RegisterTeam(ctx, teamRequest(3))
		require.NoError(t, err)
		assert.Equal(t, "Null Pointers", team.TeamName)
		assert.Equal(t, "Priya Nair", team.Members[2].Name)
		assert.Empty(t, team.Members[3].Name)
		assert.Empty(t, team.Members[4].Name)
	})

	t.Run("accepts a full team of five", func(t *testing.T) {
		svc := NewTeamService(&fakeTeamRepo{}, zerolog.Nop())

		team, err := svc.RegisterTeam(ctx, teamRequest(5))
		require.NoError(t, err)
		assert.Equal(t, "Divya Shetty", team.Members[4].Name)
	})

	t.Run("rejects fewer than three members", func(t *testing.T) {
		svc := NewTeamService(&fakeTeamRepo{}, zerolog.Nop())

		_, err := svc.RegisterTeam(ctx, teamRequest(2))
		assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
	})
}

func TestListTeams(t *testing.T) {
	repo := &fakeTeamRepo{}
	svc := NewTeamService(repo, zerolog.Nop())

	_, err := svc.RegisterTeam(context.Background(), teamRequest(4))
	require.NoError(t, err)

	teams, err := svc.ListTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 1)
}
