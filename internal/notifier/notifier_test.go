package notifier

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"cadence/internal/constants"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int { return m.pid }

func (m *mockProcess) PPid() int { return 0 }

func (m *mockProcess) Executable() string { return m.executable }

func TestGetTrayAppConfigDir(t *testing.T) {
	tempDir := t.TempDir()

	oldUserConfigDirFunc := userConfigDirFunc
	defer func() { userConfigDirFunc = oldUserConfigDirFunc }()
	userConfigDirFunc = func() (string, error) {
		return tempDir, nil
	}

	t.Run("default", func(t *testing.T) {
		expected := filepath.Join(tempDir, constants.TrayAppIdentifier)
		dir, err := GetTrayAppConfigDir()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dir != expected {
			t.Errorf("GetTrayAppConfigDir() = %s, want %s", dir, expected)
		}
	})

	t.Run("custom lockfile dir", func(t *testing.T) {
		trayConfigDir := filepath.Join(tempDir, constants.TrayAppIdentifier)
		if err := os.MkdirAll(trayConfigDir, 0755); err != nil {
			t.Fatal(err)
		}

		customDir := "/custom/cadence/dir"
		settingsJSON := fmt.Sprintf(`{"settings": {"lockfile_dir": "%s"}}`, customDir)
		if err := os.WriteFile(filepath.Join(trayConfigDir, "settings.json"), []byte(settingsJSON), 0644); err != nil {
			t.Fatal(err)
		}

		dir, err := GetTrayAppConfigDir()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dir != customDir {
			t.Errorf("GetTrayAppConfigDir() = %s, want %s", dir, customDir)
		}
	})
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	oldFindProcessFunc := findProcessFunc
	defer func() { findProcessFunc = oldFindProcessFunc }()

	tempDir := t.TempDir()
	lockfilePath := filepath.Join(tempDir, constants.NotifierLockfileName)

	writeLockfile := func(content string) {
		t.Helper()
		if err := os.WriteFile(lockfilePath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("missing lockfile", func(t *testing.T) {
		_, _, err := findAndValidateTrayProcess(filepath.Join(tempDir, "nope.lock"))
		if err == nil {
			t.Error("expected error for missing lockfile")
		}
	})

	t.Run("malformed two-part lockfile", func(t *testing.T) {
		writeLockfile("8080|12345")
		if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
			t.Error("expected error for malformed lockfile")
		}
	})

	t.Run("empty secret", func(t *testing.T) {
		writeLockfile("8080|12345|")
		_, _, err := findAndValidateTrayProcess(lockfilePath)
		if err == nil || !strings.Contains(err.Error(), "secret") {
			t.Errorf("expected error about empty secret, got: %v", err)
		}
	})

	t.Run("empty port", func(t *testing.T) {
		writeLockfile("|12345|testsecret123")
		if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
			t.Error("expected error for empty port")
		}
	})

	t.Run("port out of range", func(t *testing.T) {
		writeLockfile("99999|12345|testsecret123")
		if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
			t.Error("expected error for out-of-range port")
		}
	})

	t.Run("process not running", func(t *testing.T) {
		writeLockfile("8080|12345|testsecret123")
		findProcessFunc = func(pid int) (ps.Process, error) {
			return nil, nil
		}
		if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
			t.Error("expected error when process is not running")
		}
	})

	t.Run("wrong executable", func(t *testing.T) {
		writeLockfile("8080|12345|testsecret123")
		findProcessFunc = func(pid int) (ps.Process, error) {
			return &mockProcess{pid: pid, executable: "imposter"}, nil
		}
		_, _, err := findAndValidateTrayProcess(lockfilePath)
		if err == nil || !strings.Contains(err.Error(), "not cadence-tray") {
			t.Errorf("expected executable mismatch error, got: %v", err)
		}
	})

	t.Run("valid", func(t *testing.T) {
		writeLockfile("8080|12345|testsecret123")
		findProcessFunc = func(pid int) (ps.Process, error) {
			return &mockProcess{pid: pid, executable: "cadence-tray"}, nil
		}
		port, secret, err := findAndValidateTrayProcess(lockfilePath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if port != "8080" || secret != "testsecret123" {
			t.Errorf("got (%s, %s), want (8080, testsecret123)", port, secret)
		}
	})
}

func TestNotifyDeliversWebhook(t *testing.T) {
	var received WebhookPayload
	var gotSecret string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSecret = r.Header.Get("X-Cadence-Secret")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	u, err := url.Parse(server.URL)
	if err != nil {
		t.Fatal(err)
	}

	err = sendNotification(u.Port(), "testsecret123", WebhookPayload{
		Title:      "Meditate",
		Text:       "Time to: Meditate",
		DurationMs: constants.NotificationDurationMs,
	})
	if err != nil {
		t.Fatalf("sendNotification() failed: %v", err)
	}

	if gotSecret != "testsecret123" {
		t.Errorf("secret header = %q, want testsecret123", gotSecret)
	}
	if received.Title != "Meditate" || received.Text != "Time to: Meditate" {
		t.Errorf("payload = %+v", received)
	}
	if received.DurationMs != constants.NotificationDurationMs {
		t.Errorf("DurationMs = %d, want %d", received.DurationMs, constants.NotificationDurationMs)
	}
}

func TestSendNotificationNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad secret", http.StatusUnauthorized)
	}))
	defer server.Close()

	u, err := url.Parse(server.URL)
	if err != nil {
		t.Fatal(err)
	}

	err = sendNotification(u.Port(), "wrong", WebhookPayload{Title: "x", Text: "y"})
	if err == nil {
		t.Error("sendNotification() should fail on a non-200 response")
	}
}
