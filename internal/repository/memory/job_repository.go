package memory

import (
	"time"

	"interview-eval-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// JobRepository is the ephemeral pipeline-job registry. Entries expire after
// the configured TTL and everything is lost on restart; callers treat job
// ids as best-effort correlation tokens and poll entity state for the
// durable outcome.
type JobRepository struct {
	cache *cache.Cache
}

func NewJobRepository(ttl time.Duration) *JobRepository {
	c := cache.New(ttl, ttl/4)
	return &JobRepository{
		cache: c,
	}
}

func (r *JobRepository) Save(job *entity.Job) {
	r.cache.Set(job.Id, job, cache.DefaultExpiration)
}

func (r *JobRepository) Get(jobId string) (*entity.Job, bool) {
	if x, found := r.cache.Get(jobId); found {
		return x.(*entity.Job), true
	}
	return nil, false
}

func (r *JobRepository) Delete(jobId string) {
	r.cache.Delete(jobId)
}
