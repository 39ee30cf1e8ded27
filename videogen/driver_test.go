package videogen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"globehunters/config"
)

type memStore struct {
	saved map[string]Record
}

func (m *memStore) Load() (map[string]Record, error) {
	out := make(map[string]Record, len(m.saved))
	for k, v := range m.saved {
		out[k] = v
	}
	return out, nil
}

func (m *memStore) Save(progress map[string]Record) error {
	m.saved = make(map[string]Record, len(progress))
	for k, v := range progress {
		m.saved[k] = v
	}
	return nil
}

// fakeRunway serves submit, poll, and download endpoints. Tasks whose id
// contains "fail" report FAILED on the first poll.
func fakeRunway(t *testing.T, submits *int32) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/text_to_video":
			if got := r.Header.Get("X-Runway-Version"); got != runwayVersion {
				t.Errorf("version header = %q", got)
			}
			var body struct {
				PromptText string `json:"promptText"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			atomic.AddInt32(submits, 1)
			id := "task-ok"
			if strings.Contains(body.PromptText, "fail") {
				id = "task-fail"
			}
			json.NewEncoder(w).Encode(map[string]string{"id": id})
		case strings.HasPrefix(r.URL.Path, "/tasks/"):
			id := strings.TrimPrefix(r.URL.Path, "/tasks/")
			if strings.Contains(id, "fail") {
				json.NewEncoder(w).Encode(map[string]any{"id": id, "status": "FAILED", "failure": "content moderation"})
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"id": id, "status": "SUCCEEDED",
				"output": []string{srv.URL + "/asset/" + id + ".mp4"},
			})
		case strings.HasPrefix(r.URL.Path, "/asset/"):
			fmt.Fprint(w, "fake video bytes")
		default:
			http.NotFound(w, r)
		}
	}))
	return srv
}

func testClient(srv *httptest.Server) *RunwayClient {
	return &RunwayClient{
		apiKey:   "test-key",
		baseURL:  srv.URL,
		client:   srv.Client(),
		download: srv.Client(),
	}
}

func copyCompress(input, output string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	return os.WriteFile(output, data, 0644)
}

func TestDriverSuccess(t *testing.T) {
	var submits int32
	srv := fakeRunway(t, &submits)
	defer srv.Close()

	dir := t.TempDir()
	store := &memStore{}
	d := NewDriver(testClient(srv), store, dir, copyCompress)

	jobs := []config.VideoJob{{Slug: "paris", Prompt: "aerial view of Paris"}}
	if err := d.Run(context.Background(), jobs); err != nil {
		t.Fatalf("Run: %v", err)
	}

	final := filepath.Join(dir, "paris-hero-video.mp4")
	data, err := os.ReadFile(final)
	if err != nil {
		t.Fatalf("final video missing: %v", err)
	}
	if string(data) != "fake video bytes" {
		t.Errorf("final content = %q", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "paris-hero-video-raw.mp4")); err == nil {
		t.Error("raw file should be removed after compression")
	}

	rec := store.saved["paris"]
	if rec.Status != StatusDone || rec.TaskID != "task-ok" || rec.Size == 0 {
		t.Errorf("record = %+v", rec)
	}
}

func TestDriverSkipsCompletedJobs(t *testing.T) {
	var submits int32
	srv := fakeRunway(t, &submits)
	defer srv.Close()

	dir := t.TempDir()
	final := filepath.Join(dir, "rome-hero-video.mp4")
	if err := os.WriteFile(final, []byte("existing"), 0644); err != nil {
		t.Fatal(err)
	}
	store := &memStore{saved: map[string]Record{"rome": {Status: StatusDone, TaskID: "old"}}}
	d := NewDriver(testClient(srv), store, dir, copyCompress)

	if err := d.Run(context.Background(), []config.VideoJob{{Slug: "rome", Prompt: "rome"}}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n := atomic.LoadInt32(&submits); n != 0 {
		t.Errorf("done job resubmitted %d times", n)
	}
}

func TestDriverRedoesDoneJobWhenFileMissing(t *testing.T) {
	var submits int32
	srv := fakeRunway(t, &submits)
	defer srv.Close()

	dir := t.TempDir()
	store := &memStore{saved: map[string]Record{"rome": {Status: StatusDone, TaskID: "old"}}}
	d := NewDriver(testClient(srv), store, dir, copyCompress)

	if err := d.Run(context.Background(), []config.VideoJob{{Slug: "rome", Prompt: "rome"}}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n := atomic.LoadInt32(&submits); n != 1 {
		t.Errorf("job with missing file should re-run, submits = %d", n)
	}
}

func TestDriverRecordsFailureAndContinues(t *testing.T) {
	var submits int32
	srv := fakeRunway(t, &submits)
	defer srv.Close()

	dir := t.TempDir()
	store := &memStore{}
	d := NewDriver(testClient(srv), store, dir, copyCompress)

	jobs := []config.VideoJob{
		{Slug: "bad", Prompt: "please fail"},
		{Slug: "good", Prompt: "sunset over Bali"},
	}
	if err := d.Run(context.Background(), jobs); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if rec := store.saved["bad"]; rec.Status != StatusFailed || !strings.Contains(rec.Error, "content moderation") {
		t.Errorf("bad record = %+v", rec)
	}
	if rec := store.saved["good"]; rec.Status != StatusDone {
		t.Errorf("good record = %+v", rec)
	}
	if _, err := os.Stat(filepath.Join(dir, "good-hero-video.mp4")); err != nil {
		t.Errorf("good video missing: %v", err)
	}
}

func TestDriverFallsBackToRawWhenCompressorFails(t *testing.T) {
	var submits int32
	srv := fakeRunway(t, &submits)
	defer srv.Close()

	dir := t.TempDir()
	store := &memStore{}
	broken := func(input, output string) error { return fmt.Errorf("ffmpeg not found") }
	d := NewDriver(testClient(srv), store, dir, broken)

	if err := d.Run(context.Background(), []config.VideoJob{{Slug: "bali", Prompt: "beach"}}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "bali-hero-video.mp4"))
	if err != nil {
		t.Fatalf("raw file should be promoted to final: %v", err)
	}
	if string(data) != "fake video bytes" {
		t.Errorf("final content = %q", data)
	}
	if store.saved["bali"].Status != StatusDone {
		t.Errorf("record = %+v", store.saved["bali"])
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	store := &FileStore{Path: path}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("missing file should load empty: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty map, got %v", loaded)
	}

	want := map[string]Record{"paris": {Status: StatusDone, TaskID: "t1", Size: 42}}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got["paris"] != want["paris"] {
		t.Errorf("round trip = %+v", got["paris"])
	}
}

func TestFileStoreCorruptFileStartsOver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	store := &FileStore{Path: path}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("corrupt file should not error: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty map, got %v", loaded)
	}
}
