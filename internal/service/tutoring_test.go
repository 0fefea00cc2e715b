package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/tutoring-api/internal/model"
)

func newTutoringService() *TutoringService {
	return NewTutoringService(newRepos(false).Tutoring, nil)
}

func TestTutoringListFilters(t *testing.T) {
	ctx := context.Background()
	svc := newTutoringService()

	for _, s := range []model.TutoringSession{
		{TutorID: "t1", CourseID: "c1", Title: "a"},
		{TutorID: "t2", CourseID: "c1", Title: "b"},
		{TutorID: "t1", CourseID: "c2", Title: "c"},
	} {
		_, err := svc.Create(ctx, s)
		require.NoError(t, err)
	}

	tests := []struct {
		name   string
		filter SessionFilter
		want   int
	}{
		{"all", SessionFilter{}, 3},
		{"by tutor", SessionFilter{TutorID: "t1"}, 2},
		{"by course", SessionFilter{CourseID: "c1"}, 2},
		{"tutor wins", SessionFilter{TutorID: "t2", CourseID: "c2"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestTutoringChildrenRequireSession(t *testing.T) {
	ctx := context.Background()
	svc := newTutoringService()

	_, err := svc.AddMaterial(ctx, "ghost", model.TutoringMaterial{Title: "Notes"})
	requireNotFound(t, err)
	_, err = svc.AddReview(ctx, "ghost", model.TutoringReview{Rating: 5})
	requireNotFound(t, err)
	_, err = svc.AddAvailableTime(ctx, "ghost", model.TutoringAvailableTime{StartTime: "10:00"})
	requireNotFound(t, err)
	_, err = svc.GetMaterials(ctx, "ghost")
	requireNotFound(t, err)
	_, err = svc.GetReviews(ctx, "ghost")
	requireNotFound(t, err)
	_, err = svc.GetAvailableTimes(ctx, "ghost")
	requireNotFound(t, err)
}

func TestTutoringChildLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTutoringService()

	session, err := svc.Create(ctx, model.TutoringSession{Title: "Logic"})
	require.NoError(t, err)

	material, err := svc.AddMaterial(ctx, session.ID, model.TutoringMaterial{Title: "Slides", TutoringID: "other"})
	require.NoError(t, err)
	assert.Equal(t, session.ID, material.TutoringID)

	review, err := svc.AddReview(ctx, session.ID, model.TutoringReview{ReviewerID: "s1", Rating: 4})
	require.NoError(t, err)

	slot, err := svc.AddAvailableTime(ctx, session.ID, model.TutoringAvailableTime{DayOfWeek: 2, StartTime: "09:00", EndTime: "10:00"})
	require.NoError(t, err)

	rating := 5
	updatedReview, err := svc.UpdateReview(ctx, review.ID, model.ReviewPatch{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 5, updatedReview.Rating)

	found, err := svc.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, found.Materials, 1)
	assert.Len(t, found.Reviews, 1)
	assert.Len(t, found.AvailableTimes, 1)

	require.NoError(t, svc.DeleteMaterial(ctx, material.ID))
	requireNotFound(t, svc.DeleteMaterial(ctx, material.ID))

	_, err = svc.UpdateMaterial(ctx, material.ID, model.MaterialPatch{})
	requireNotFound(t, err)
	_, err = svc.UpdateAvailableTime(ctx, "ghost", model.AvailableTimePatch{})
	requireNotFound(t, err)

	require.NoError(t, svc.Delete(ctx, session.ID))

	_, err = svc.GetByID(ctx, session.ID)
	requireNotFound(t, err)
	requireNotFound(t, svc.DeleteReview(ctx, review.ID))
	requireNotFound(t, svc.DeleteAvailableTime(ctx, slot.ID))
}

func TestTutoringUpdateAndDeleteMissing(t *testing.T) {
	ctx := context.Background()
	svc := newTutoringService()

	title := "x"
	_, err := svc.Update(ctx, "ghost", model.TutoringSessionPatch{Title: &title})
	requireNotFound(t, err)
	requireNotFound(t, svc.Delete(ctx, "ghost"))
}
