package inkpress

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newImageTestApp(t *testing.T) *App {
	t.Helper()
	return &App{Store: setupTestStore(t), staticDir: t.TempDir()}
}

func savedImage(filename string) Image {
	return Image{
		Filename:     filename,
		OriginalName: filename,
		Width:        100,
		Height:       100,
		Size:         1,
		UploadedAt:   time.Now().UTC().Format(time.RFC3339),
	}
}

func TestEnsureUniqueFilename(t *testing.T) {
	a := newImageTestApp(t)

	img := Image{Filename: "photo.jpg"}
	if err := a.ensureUniqueFilename(&img); err != nil {
		t.Fatalf("ensureUniqueFilename failed: %v", err)
	}
	if img.Filename != "photo.jpg" {
		t.Errorf("Filename = %q, want photo.jpg", img.Filename)
	}

	if err := a.Store.SaveImage(savedImage("photo.jpg")); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}
	img = Image{Filename: "photo.jpg"}
	if err := a.ensureUniqueFilename(&img); err != nil {
		t.Fatalf("ensureUniqueFilename failed: %v", err)
	}
	if img.Filename != "photo-2.jpg" {
		t.Errorf("Filename = %q, want photo-2.jpg", img.Filename)
	}

	// A file already sitting in the uploads dir counts as taken too.
	dir := filepath.Join(a.staticDir, uploadsSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "photo-2.jpg"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	img = Image{Filename: "photo.jpg"}
	if err := a.ensureUniqueFilename(&img); err != nil {
		t.Fatalf("ensureUniqueFilename failed: %v", err)
	}
	if img.Filename != "photo-3.jpg" {
		t.Errorf("Filename = %q, want photo-3.jpg", img.Filename)
	}
}

func TestEnsureUniqueFilenameStoreError(t *testing.T) {
	a := newImageTestApp(t)
	a.Store.Close()

	img := Image{Filename: "photo.jpg"}
	if err := a.ensureUniqueFilename(&img); err == nil {
		t.Error("expected an error when the image listing fails")
	}
}
