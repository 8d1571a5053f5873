package services

import (
	"context"
	"fmt"

	"github.com/arzan03/ThreadHive/internal/models"
	"github.com/arzan03/ThreadHive/internal/utils"
)

// Counter is any collection that can count its documents.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type StatsService struct {
	posts, comments, users Counter
}

func NewStatsService(posts, comments, users Counter) *StatsService {
	return &StatsService{posts: posts, comments: comments, users: users}
}

// Stats runs the three counts concurrently.
func (s *StatsService) Stats(ctx context.Context) (models.Stats, error) {
	counters := []Counter{s.posts, s.comments, s.users}
	tasks := make([]utils.ParallelTask[int64], len(counters))
	for i, c := range counters {
		c := c
		tasks[i] = func() (int64, error) { return c.Count(ctx) }
	}

	counts, errs := utils.RunParallelTasks(tasks)
	if err := utils.JoinErrors(errs); err != nil {
		return models.Stats{}, fmt.Errorf("collect stats: %w", err)
	}
	return models.Stats{Posts: counts[0], Comments: counts[1], Users: counts[2]}, nil
}
