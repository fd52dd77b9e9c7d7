package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestNewLocalStorageClient(t *testing.T) {
	baseDir := filepath.Join(t.TempDir(), "charts")

	client, err := NewLocalStorageClient(baseDir)
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}
	defer client.Close()

	if _, err := os.Stat(baseDir); os.IsNotExist(err) {
		t.Error("Base directory was not created")
	}
	if !filepath.IsAbs(client.BaseDir()) {
		t.Errorf("Expected absolute base dir, got %s", client.BaseDir())
	}
	if !client.IsLocal() {
		t.Error("Local client must report IsLocal")
	}
}

func TestLocalStorageClient_StoreAndGetFile(t *testing.T) {
	client, err := NewLocalStorageClient(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}
	ctx := context.Background()

	tests := []struct {
		name     string
		filePath string
		fileData []byte
	}{
		{name: "simple file", filePath: "series.json", fileData: []byte(`{"name":"USA"}`)},
		{name: "nested file", filePath: "USA/2010-2015/20250101-120000/index.html", fileData: []byte("<html></html>")},
		{name: "binary file", filePath: "USA/chart.png", fileData: []byte{0x89, 0x50, 0x4E, 0x47}},
		{name: "empty file", filePath: "empty.txt", fileData: []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := client.StoreFile(ctx, tt.filePath, tt.fileData); err != nil {
				t.Fatalf("StoreFile() error = %v", err)
			}

			data, err := client.GetFile(ctx, tt.filePath)
			if err != nil {
				t.Fatalf("GetFile() error = %v", err)
			}
			if string(data) != string(tt.fileData) {
				t.Errorf("Content mismatch: expected %q, got %q", tt.fileData, data)
			}

			exists, err := client.FileExists(ctx, tt.filePath)
			if err != nil || !exists {
				t.Errorf("FileExists() = %v, %v; want true, nil", exists, err)
			}
		})
	}
}

func TestLocalStorageClient_PathsStayInsideBaseDir(t *testing.T) {
	baseDir := t.TempDir()
	client, err := NewLocalStorageClient(baseDir)
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}

	if err := client.StoreFile(context.Background(), "../../escape.txt", []byte("x")); err != nil {
		t.Fatalf("StoreFile() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(baseDir, "escape.txt")); err != nil {
		t.Errorf("Expected file to be written inside base dir: %v", err)
	}

	if err := client.StoreFile(context.Background(), "", []byte("x")); err == nil {
		t.Error("Expected error for empty path")
	}
}

func TestLocalStorageClient_ListFiles(t *testing.T) {
	client, err := NewLocalStorageClient(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}
	ctx := context.Background()

	for _, p := range []string{"USA/2010-2015/a/index.html", "USA/2010-2015/a/chart.png", "BRA/2000-2001/b/index.html"} {
		if err := client.StoreFile(ctx, p, []byte("x")); err != nil {
			t.Fatalf("StoreFile(%s) error = %v", p, err)
		}
	}

	files, err := client.ListFiles(ctx, "USA/")
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	want := []string{"USA/2010-2015/a/chart.png", "USA/2010-2015/a/index.html"}
	if len(files) != len(want) {
		t.Fatalf("Expected %v, got %v", want, files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("Expected %s at %d, got %s", want[i], i, files[i])
		}
	}

	exists, err := client.FileExists(ctx, "USA/missing.html")
	if err != nil || exists {
		t.Errorf("FileExists() = %v, %v; want false, nil", exists, err)
	}
}

func TestLocalStorageClient_Location(t *testing.T) {
	baseDir := t.TempDir()
	client, err := NewLocalStorageClient(baseDir)
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}

	got := client.Location("USA/index.html")
	want := filepath.Join(client.BaseDir(), "USA", "index.html")
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}
