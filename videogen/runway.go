// Package videogen batch-generates destination hero videos through the
// Runway text-to-video API and tracks completion in a progress file so the
// run is resumable.
package videogen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	runwayAPIBase = "https://api.dev.runwayml.com/v1"
	runwayVersion = "2024-11-06"

	model    = "gen4.5"
	duration = 10
	ratio    = "1280:720"

	pollInterval  = 10 * time.Second
	throttleDelay = 30 * time.Second
)

// RunwayClient talks to the text-to-video and task endpoints. Downloads go
// through a separate client with a generous timeout since a finished video
// is tens of megabytes.
type RunwayClient struct {
	apiKey   string
	baseURL  string
	client   *http.Client
	download *http.Client
}

func NewRunwayClient(apiKey string, client *http.Client) *RunwayClient {
	return &RunwayClient{
		apiKey:   apiKey,
		baseURL:  runwayAPIBase,
		client:   client,
		download: &http.Client{Timeout: 5 * time.Minute},
	}
}

type runwayTask struct {
	ID        string   `json:"id"`
	Status    string   `json:"status"`
	Output    []string `json:"output"`
	Artifacts []struct {
		URL      string `json:"url"`
		Download string `json:"download"`
	} `json:"artifacts"`
	Failure string `json:"failure"`
}

// outputURL finds the downloadable asset across the response variants the
// API has used.
func (t *runwayTask) outputURL() string {
	if len(t.Output) > 0 {
		return t.Output[0]
	}
	if len(t.Artifacts) > 0 {
		if t.Artifacts[0].URL != "" {
			return t.Artifacts[0].URL
		}
		return t.Artifacts[0].Download
	}
	return ""
}

func (r *RunwayClient) request(ctx context.Context, method, endpoint string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("X-Runway-Version", runwayVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("API %d: %s", resp.StatusCode, text)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Submit starts a text-to-video generation and returns the task id.
func (r *RunwayClient) Submit(ctx context.Context, prompt string) (string, error) {
	var task runwayTask
	err := r.request(ctx, http.MethodPost, "/text_to_video", map[string]any{
		"model":      model,
		"promptText": prompt,
		"ratio":      ratio,
		"duration":   duration,
	}, &task)
	if err != nil {
		return "", err
	}
	if task.ID == "" {
		return "", fmt.Errorf("no task id in response")
	}
	return task.ID, nil
}

// WaitForOutput polls a task until it succeeds, returning the output URL.
// THROTTLED backs off longer than PENDING/RUNNING; FAILED is terminal.
func (r *RunwayClient) WaitForOutput(ctx context.Context, taskID string) (string, error) {
	for {
		var task runwayTask
		if err := r.request(ctx, http.MethodGet, "/tasks/"+taskID, nil, &task); err != nil {
			return "", err
		}

		delay := pollInterval
		switch task.Status {
		case "SUCCEEDED":
			url := task.outputURL()
			if url == "" {
				return "", fmt.Errorf("task %s succeeded with no output URL", taskID)
			}
			return url, nil
		case "FAILED":
			return "", fmt.Errorf("task %s failed: %s", taskID, task.Failure)
		case "THROTTLED":
			delay = throttleDelay
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
}

// Download streams the generated video to path.
func (r *RunwayClient) Download(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := r.download.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: %d", resp.StatusCode)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, resp.Body)
	return err
}
