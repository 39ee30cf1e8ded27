package videogen

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"globehunters/config"
)

const (
	maxConcurrent   = 3
	interBatchDelay = 5 * time.Second
)

// Compressor turns a raw download into the final streamable MP4. Split out
// so tests can run the driver without ffmpeg installed.
type Compressor func(input, output string) error

// FFmpegCompress re-encodes with libx264 CRF 25, strips audio, and moves
// the moov atom up front for streaming.
func FFmpegCompress(input, output string) error {
	cmd := exec.Command("ffmpeg", "-y", "-i", input,
		"-c:v", "libx264", "-crf", "25", "-preset", "medium",
		"-an", "-movflags", "+faststart", output)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run()
}

// Driver runs the catalog to completion: submit, poll, download, compress,
// record. Already-done jobs whose file still exists are skipped, so a
// re-run only retries unfinished or failed videos.
type Driver struct {
	client   *RunwayClient
	store    ProgressStore
	outDir   string
	compress Compressor

	mu sync.Mutex // guards progress map writes and saves
}

func NewDriver(client *RunwayClient, store ProgressStore, outDir string, compress Compressor) *Driver {
	if compress == nil {
		compress = FFmpegCompress
	}
	return &Driver{client: client, store: store, outDir: outDir, compress: compress}
}

func (d *Driver) finalPath(slug string) string {
	return filepath.Join(d.outDir, slug+"-hero-video.mp4")
}

func (d *Driver) rawPath(slug string) string {
	return filepath.Join(d.outDir, slug+"-hero-video-raw.mp4")
}

// Run processes all jobs in batches of maxConcurrent, waiting for each
// batch to finish before starting the next.
func (d *Driver) Run(ctx context.Context, jobs []config.VideoJob) error {
	if err := os.MkdirAll(d.outDir, 0755); err != nil {
		return err
	}

	progress, err := d.store.Load()
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	var remaining []config.VideoJob
	for _, job := range jobs {
		if progress[job.Slug].Status == StatusDone && fileExists(d.finalPath(job.Slug)) {
			log.Printf("%s — already done (%s)", job.Slug, formatBytes(fileSize(d.finalPath(job.Slug))))
			continue
		}
		remaining = append(remaining, job)
	}

	log.Printf("Hero video generator: model=%s duration=%ds ratio=%s", model, duration, ratio)
	log.Printf("Total: %d | Remaining: %d | Concurrent: %d", len(jobs), len(remaining), maxConcurrent)

	for i := 0; i < len(remaining); i += maxConcurrent {
		end := i + maxConcurrent
		if end > len(remaining) {
			end = len(remaining)
		}
		batch := remaining[i:end]

		names := make([]string, len(batch))
		for j, job := range batch {
			names[j] = job.Slug
		}
		log.Printf("--- Batch %d (%s) ---", i/maxConcurrent+1, strings.Join(names, ", "))

		var wg sync.WaitGroup
		for _, job := range batch {
			wg.Add(1)
			go func(job config.VideoJob) {
				defer wg.Done()
				d.processVideo(ctx, job, progress)
			}(job)
		}
		wg.Wait()

		if end < len(remaining) {
			log.Printf("Waiting %s before next batch...", interBatchDelay)
			select {
			case <-time.After(interBatchDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	d.summarize(jobs, progress)
	return nil
}

// processVideo runs one job end to end. A failure records the error,
// removes the partial download, and lets the rest of the batch continue.
func (d *Driver) processVideo(ctx context.Context, job config.VideoJob, progress map[string]Record) {
	slug := job.Slug
	rawPath := d.rawPath(slug)
	finalPath := d.finalPath(slug)

	fail := func(err error) {
		d.record(progress, slug, Record{Status: StatusFailed, Error: err.Error()})
		log.Printf("%s — failed: %v", slug, err)
		os.Remove(rawPath)
	}

	log.Printf("%s — submitting...", slug)
	taskID, err := d.client.Submit(ctx, job.Prompt)
	if err != nil {
		fail(err)
		return
	}
	d.record(progress, slug, Record{Status: StatusSubmitted, TaskID: taskID})
	log.Printf("%s — task %s, polling...", slug, taskID)

	videoURL, err := d.client.WaitForOutput(ctx, taskID)
	if err != nil {
		fail(err)
		return
	}

	if err := d.client.Download(ctx, videoURL, rawPath); err != nil {
		fail(err)
		return
	}
	log.Printf("%s — raw %s", slug, formatBytes(fileSize(rawPath)))

	// Always run the compressor for the faststart flag; keep the raw file
	// as the final output when ffmpeg is unavailable.
	if err := d.compress(rawPath, finalPath); err == nil {
		os.Remove(rawPath)
	} else {
		if renameErr := os.Rename(rawPath, finalPath); renameErr != nil {
			fail(renameErr)
			return
		}
		log.Printf("%s — ffmpeg unavailable, using raw", slug)
	}

	d.record(progress, slug, Record{Status: StatusDone, TaskID: taskID, Size: fileSize(finalPath)})
	log.Printf("%s — complete (%s)", slug, formatBytes(fileSize(finalPath)))
}

func (d *Driver) record(progress map[string]Record, slug string, rec Record) {
	d.mu.Lock()
	defer d.mu.Unlock()
	progress[slug] = rec
	if err := d.store.Save(progress); err != nil {
		log.Printf("Error saving progress: %v", err)
	}
}

func (d *Driver) summarize(jobs []config.VideoJob, progress map[string]Record) {
	var done int
	var failed []string
	for _, job := range jobs {
		switch progress[job.Slug].Status {
		case StatusDone:
			done++
		case StatusFailed:
			failed = append(failed, job.Slug)
		}
	}
	sort.Strings(failed)

	log.Printf("Complete: %d/%d succeeded, %d failed", done, len(jobs), len(failed))
	if len(failed) > 0 {
		log.Printf("Failed: %s", strings.Join(failed, ", "))
		log.Printf("Run again to retry failed videos.")
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
