package service

import (
	"context"
	"testing"

	"github.com/ebarlowe/gradplan/internal/domain"
	"github.com/ebarlowe/gradplan/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateDemo(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	svc := NewStudentService(env.students)

	created, err := svc.GetOrCreateDemo(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DemoStudentEmail, created.Email)

	again, err := svc.GetOrCreateDemo(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID, "second call resolves the same identity")
}

func TestGetByEmail_NotFound(t *testing.T) {
	env := setupEnv(t)
	svc := NewStudentService(env.students)

	_, err := svc.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCatalogSearch(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	env.createCourse(t, "CSCI 111")
	env.createCourse(t, "CSCI 112")
	env.createCourse(t, "MATH 201")
	svc := NewCatalogService(env.courses)

	results, err := svc.Search(ctx, "csci", "")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "CSCI 111", results[0].Code, "results come back in code order")

	all, err := svc.Search(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCatalogSearch_ExcludesAssignedForStudent(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	taken := env.createCourse(t, "CSCI 111")
	env.createCourse(t, "CSCI 112")

	student := env.createStudent(t)
	sem := env.createSemester(t, student.ID, "Fall 2025")
	env.plan(t, student.ID, sem, taken)

	svc := NewCatalogService(env.courses)
	results, err := svc.Search(ctx, "csci", student.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "CSCI 112", results[0].Code)
}

func TestCatalogGetByCode_NormalizesInput(t *testing.T) {
	env := setupEnv(t)
	env.createCourse(t, "CSCI 111")
	svc := NewCatalogService(env.courses)

	course, err := svc.GetByCode(context.Background(), "  csci 111 ")
	require.NoError(t, err)
	assert.Equal(t, "CSCI 111", course.Code)
}
