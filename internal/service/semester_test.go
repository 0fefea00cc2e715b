package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/tutoring-api/internal/model"
)

func TestCourseService(t *testing.T) {
	ctx := context.Background()
	svc := NewCourseService(newRepos(false).Course)

	course, err := svc.Create(ctx, model.Course{Name: "Calculus", SemesterNumber: 1})
	require.NoError(t, err)
	_, err = svc.Create(ctx, model.Course{Name: "Physics", SemesterNumber: 2})
	require.NoError(t, err)

	first, err := svc.ListBySemesterNumber(ctx, 1)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, course.ID, first[0].ID)

	name := "Calculus I"
	updated, err := svc.Update(ctx, course.ID, model.CoursePatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Calculus I", updated.Name)

	require.NoError(t, svc.Delete(ctx, course.ID))
	requireNotFound(t, svc.Delete(ctx, course.ID))

	_, err = svc.GetByID(ctx, course.ID)
	requireNotFound(t, err)
}

func TestSemesterCourseAssociation(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(false)
	svc := NewSemesterService(repos.Semester, repos.Course)

	semester, err := svc.Create(ctx, model.Semester{Name: "2024-2", Year: 2024})
	require.NoError(t, err)
	course, err := repos.Course.Create(ctx, model.Course{Name: "Algorithms", SemesterNumber: 3})
	require.NoError(t, err)

	courses, err := svc.AddCourse(ctx, semester.ID, course.ID)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Algorithms", courses[0].Name)

	_, err = svc.AddCourse(ctx, semester.ID, "ghost")
	requireNotFound(t, err)

	_, err = svc.AddCourse(ctx, "ghost", course.ID)
	requireNotFound(t, err)

	require.NoError(t, svc.RemoveCourse(ctx, semester.ID, course.ID))
	courses, err = svc.GetCourses(ctx, semester.ID)
	require.NoError(t, err)
	assert.Empty(t, courses)

	requireNotFound(t, svc.RemoveCourse(ctx, "ghost", course.ID))

	_, err = svc.GetCourses(ctx, "ghost")
	requireNotFound(t, err)
}

func TestSemesterCrud(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(false)
	svc := NewSemesterService(repos.Semester, repos.Course)

	semester, err := svc.Create(ctx, model.Semester{Name: "2025-1"})
	require.NoError(t, err)

	active := true
	updated, err := svc.Update(ctx, semester.ID, model.SemesterPatch{IsActive: &active})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)

	_, err = svc.Update(ctx, "ghost", model.SemesterPatch{IsActive: &active})
	requireNotFound(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.Delete(ctx, semester.ID))
	requireNotFound(t, svc.Delete(ctx, semester.ID))
}
