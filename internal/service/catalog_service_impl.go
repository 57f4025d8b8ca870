package service

import (
	"context"
	"strings"

	"github.com/ebarlowe/gradplan/internal/domain"
	"github.com/ebarlowe/gradplan/internal/repository"
)

const searchLimit = 50

type catalogService struct {
	courses  repository.CourseRepo
	observer UseCaseObserver
}

func NewCatalogService(courses repository.CourseRepo, observers ...UseCaseObserver) CatalogService {
	return &catalogService{courses: courses, observer: useCaseObserverOrNoop(observers)}
}

func (s *catalogService) Search(ctx context.Context, query string, unassignedForStudent string) (courses []*domain.Course, err error) {
	defer observe(ctx, s.observer, "search-courses", map[string]any{"query": query}, &err)()

	return s.courses.Search(ctx, strings.TrimSpace(query), unassignedForStudent, searchLimit)
}

func (s *catalogService) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	return s.courses.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
}

func (s *catalogService) ListAll(ctx context.Context) ([]*domain.Course, error) {
	return s.courses.ListAll(ctx)
}
