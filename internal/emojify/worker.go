package emojify

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/photoprism/emojify/pkg/sanitize"
)

// Job represents a file to be processed.
type Job struct {
	FileName   string
	OutputName string
	emojifier  *Emojifier
}

// JobResult represents the outcome of a Job.
type JobResult struct {
	Job    Job
	Result Result
	Err    error
}

// NewJob returns a new job for the emojifier.
func (e *Emojifier) NewJob(fileName, outputName string) Job {
	return Job{
		FileName:   fileName,
		OutputName: outputName,
		emojifier:  e,
	}
}

// Worker processes jobs until the channel is closed.
func Worker(ctx context.Context, jobs <-chan Job, results chan<- JobResult) {
	for job := range jobs {
		if job.emojifier == nil || job.FileName == "" {
			continue
		}

		res, err := job.emojifier.ProcessFile(ctx, job.FileName, job.OutputName)

		if err != nil {
			log.Errorf("emojify: %s for %s", strings.TrimSpace(err.Error()), sanitize.Log(filepath.Base(job.FileName)))
		}

		results <- JobResult{Job: job, Result: res, Err: err}
	}
}

// BatchResult summarizes a batch of jobs.
type BatchResult struct {
	Composited int
	NoFaces    int
	Failed     int
	Results    []JobResult
}

// Batch processes jobs with the given number of workers and waits until all are done.
func Batch(ctx context.Context, jobs []Job, workers int) (result BatchResult) {
	if workers < 1 {
		workers = 1
	}

	jobCh := make(chan Job)
	resultCh := make(chan JobResult, len(jobs))

	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Worker(ctx, jobCh, resultCh)
		}()
	}

	for _, job := range jobs {
		jobCh <- job
	}

	close(jobCh)
	wg.Wait()
	close(resultCh)

	for r := range resultCh {
		switch {
		case r.Err != nil:
			result.Failed++
		case r.Result.NoFaces():
			result.NoFaces++
		default:
			result.Composited++
		}

		result.Results = append(result.Results, r)
	}

	return result
}
