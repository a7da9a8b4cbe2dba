package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oraculo-app/oraculo-sync/internal/config"
	"github.com/oraculo-app/oraculo-sync/internal/engine"
	"github.com/oraculo-app/oraculo-sync/internal/logger"
	"github.com/oraculo-app/oraculo-sync/models"
)

type stubFlags struct {
	mu      sync.Mutex
	pending bool
}

func (s *stubFlags) PendingSync(context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

func (s *stubFlags) SetPendingSync(_ context.Context, pending bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = pending
	return nil
}

type stubBackups struct {
	mu    sync.Mutex
	saved []models.PreSyncBackup
}

func (s *stubBackups) SaveBackup(_ context.Context, b models.PreSyncBackup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, b)
	return nil
}

func (s *stubBackups) LoadBackup(context.Context) (*models.PreSyncBackup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.saved) == 0 {
		return nil, nil
	}
	last := s.saved[len(s.saved)-1]
	return &last, nil
}

func (s *stubBackups) last(t *testing.T) models.PreSyncBackup {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.saved, "expected at least one backup")
	return s.saved[len(s.saved)-1]
}

type stubDocs struct {
	mu      sync.Mutex
	adopted []*models.StateDocument
}

func (s *stubDocs) LoadDocument(context.Context) *models.StateDocument {
	return models.NewDefaultDocument()
}

func (s *stubDocs) SaveDocument(context.Context, *models.StateDocument) bool { return true }

func (s *stubDocs) AdoptDocument(_ context.Context, doc *models.StateDocument) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adopted = append(s.adopted, doc)
	return true
}

func (s *stubDocs) adoptedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.adopted)
}

// newTestAdapter points an httpServerAdapter at the test server.
func newTestAdapter(t *testing.T, serverURL string) (*httpServerAdapter, *engine.Monitor, *stubFlags, *stubBackups) {
	t.Helper()

	flags := &stubFlags{}
	backups := &stubBackups{}
	monitor := engine.NewMonitor(context.Background(), flags, logger.Nop())

	a, err := NewHTTPServerAdapter(
		config.ClientAdapter{BaseURL: serverURL, RequestTimeout: 2 * time.Second},
		monitor,
		engine.NewEstimator(engine.DefaultWeights()),
		&stubDocs{},
		backups,
		0.5,
		logger.Nop(),
	)
	require.NoError(t, err)
	return a.(*httpServerAdapter), monitor, flags, backups
}

// docWithTasks builds a document whose richness equals n (tasks weigh 1).
func docWithTasks(t *testing.T, n int) *models.StateDocument {
	t.Helper()

	items := make([]map[string]string, n)
	for i := range items {
		items[i] = map[string]string{"id": fmt.Sprintf("t%d", i)}
	}
	payload, err := json.Marshal(items)
	require.NoError(t, err)

	doc := models.NewDefaultDocument()
	doc.SetCollection("tasks", payload)
	return doc
}

func writeState(t *testing.T, w http.ResponseWriter, doc *models.StateDocument, updatedAt time.Time) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(models.StateResponse{
		Data:      doc,
		Version:   models.SchemaVersion,
		UpdatedAt: updatedAt,
	})
	require.NoError(t, err)
}

// ── Register / Login ─────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	user := models.User{Login: "ana", Name: "Ana"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		w.Header().Set("Authorization", "Bearer test.jwt.token")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a, _, _, _ := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, user.Login, got.Login)
	assert.Equal(t, "test.jwt.token", a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("login already exists"))
	}))
	defer srv.Close()

	a, _, _, _ := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Login: "ana"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLogin_Success(t *testing.T) {
	want := models.User{Login: "ana", Name: "Ana"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Authorization", "Bearer test.jwt.token")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a, _, _, _ := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.User{Login: "ana"})

	require.NoError(t, err)
	assert.Equal(t, want.Login, got.Login)
	assert.Equal(t, "test.jwt.token", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid login/password"))
	}))
	defer srv.Close()

	a, _, _, _ := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Login: "ana"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Load ────────────────────────────────────────────────────────────────────

func TestLoad_Success(t *testing.T) {
	stamp := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	remoteDoc := docWithTasks(t, 3)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/state", r.URL.Path)
		assert.Equal(t, "Bearer test.jwt.token", r.Header.Get("Authorization"))
		writeState(t, w, remoteDoc, stamp)
	}))
	defer srv.Close()

	a, _, _, _ := newTestAdapter(t, srv.URL)
	a.SetToken("test.jwt.token")

	record, err := a.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.True(t, record.UpdatedAt.Equal(stamp))
	assert.JSONEq(t, string(remoteDoc.Collection("tasks")), string(record.Data.Collection("tasks")))
}

func TestLoad_NotFoundIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a, monitor, _, _ := newTestAdapter(t, srv.URL)
	a.SetToken("test.jwt.token")

	record, err := a.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, record)
	assert.True(t, monitor.Online(), "a 404 is a server answer, not a connectivity failure")
}

func TestLoad_NoTokenSkipsRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without a session")
	}))
	defer srv.Close()

	a, _, _, _ := newTestAdapter(t, srv.URL)

	record, err := a.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestLoad_TransportFailureGoesOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	a, monitor, _, _ := newTestAdapter(t, srv.URL)
	a.SetToken("test.jwt.token")

	record, err := a.Load(context.Background())
	require.NoError(t, err, "connectivity failures must not surface as errors")
	assert.Nil(t, record)
	assert.False(t, monitor.Online())
}

// ── Save ────────────────────────────────────────────────────────────────────

func TestSave_Success(t *testing.T) {
	serverStamp := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
		case http.MethodPut:
			assert.Equal(t, "/api/state", r.URL.Path)

			var req models.StateUpsertRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, models.SchemaVersion, req.Version)
			assert.Nil(t, req.BaseUpdatedAt, "no base stamp without a remote record")

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(models.StateUpsertResponse{UpdatedAt: serverStamp})
		}
	}))
	defer srv.Close()

	a, _, flags, _ := newTestAdapter(t, srv.URL)
	a.SetToken("test.jwt.token")

	doc := docWithTasks(t, 5)
	ok, err := a.Save(context.Background(), doc)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, doc.UpdatedAt.Equal(serverStamp), "server timestamp is authoritative")
	assert.False(t, flags.PendingSync(context.Background()))
}

// TestSave_PersistsServerStampLocally verifies a confirmed write is stored
// back into local storage carrying the server's timestamp, so a later
// startup reconciliation sees both sides already in agreement.
func TestSave_PersistsServerStampLocally(t *testing.T) {
	serverStamp := time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
		case http.MethodPut:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(models.StateUpsertResponse{UpdatedAt: serverStamp})
		}
	}))
	defer srv.Close()

	a, _, _, _ := newTestAdapter(t, srv.URL)
	a.SetToken("test.jwt.token")
	docs := a.docs.(*stubDocs)

	doc := docWithTasks(t, 3)
	ok, err := a.Save(context.Background(), doc)

	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, docs.adoptedCount())
	assert.True(t, docs.adopted[0].UpdatedAt.Equal(serverStamp))
}

func TestSave_SendsBaseUpdatedAt(t *testing.T) {
	remoteStamp := time.Date(2026, 4, 30, 8, 0, 0, 0, time.UTC)
	remoteDoc := docWithTasks(t, 4)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeState(t, w, remoteDoc, remoteStamp)
		case http.MethodPut:
			var req models.StateUpsertRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.NotNil(t, req.BaseUpdatedAt)
			assert.True(t, req.BaseUpdatedAt.Equal(remoteStamp))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(models.StateUpsertResponse{UpdatedAt: time.Now()})
		}
	}))
	defer srv.Close()

	a, _, _, _ := newTestAdapter(t, srv.URL)
	a.SetToken("test.jwt.token")

	ok, err := a.Save(context.Background(), docWithTasks(t, 5))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSave_BlockedOverwrite(t *testing.T) {
	remoteDoc := docWithTasks(t, 30)

	var putCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeState(t, w, remoteDoc, time.Now())
		case http.MethodPut:
			putCalls++
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer srv.Close()

	a, _, flags, backups := newTestAdapter(t, srv.URL)
	a.SetToken("test.jwt.token")

	// 12 < 30*0.5: the local document lost most of its content
	ok, err := a.Save(context.Background(), docWithTasks(t, 12))

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, putCalls, "a blocked overwrite must never reach the server")

	backup := backups.last(t)
	assert.Equal(t, models.BackupBlockedOverwrite, backup.Reason)
	assert.Equal(t, 30, backup.Richness)
	assert.JSONEq(t, string(remoteDoc.Collection("tasks")), string(backup.Data.Collection("tasks")))

	assert.False(t, flags.PendingSync(context.Background()),
		"a refused overwrite is not retryable, retrying would be refused again")
}

func TestSave_PreOverwriteBackup(t *testing.T) {
	remoteDoc := docWithTasks(t, 10)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeState(t, w, remoteDoc, time.Now())
		case http.MethodPut:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(models.StateUpsertResponse{UpdatedAt: time.Now()})
		}
	}))
	defer srv.Close()

	a, _, _, backups := newTestAdapter(t, srv.URL)
	a.SetToken("test.jwt.token")

	ok, err := a.Save(context.Background(), docWithTasks(t, 20))
	require.NoError(t, err)
	assert.True(t, ok)

	backup := backups.last(t)
	assert.Equal(t, models.BackupPreOverwrite, backup.Reason)
	assert.Equal(t, 10, backup.Richness)
}

func TestSave_OfflineMarksPending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	a, monitor, flags, _ := newTestAdapter(t, srv.URL)
	a.SetToken("test.jwt.token")

	ok, err := a.Save(context.Background(), docWithTasks(t, 5))

	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, monitor.Online())
	assert.True(t, flags.PendingSync(context.Background()))
}

func TestSave_NoSessionMarksPending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without a session")
	}))
	defer srv.Close()

	a, _, flags, _ := newTestAdapter(t, srv.URL)

	ok, err := a.Save(context.Background(), docWithTasks(t, 5))

	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, flags.PendingSync(context.Background()))
}

func TestSave_UnauthorizedPutMarksPending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
		case http.MethodPut:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	a, _, flags, _ := newTestAdapter(t, srv.URL)
	a.SetToken("stale.jwt.token")

	ok, err := a.Save(context.Background(), docWithTasks(t, 5))

	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, flags.PendingSync(context.Background()))
}

func TestSave_ServerErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
		case http.MethodPut:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("boom"))
		}
	}))
	defer srv.Close()

	a, _, _, _ := newTestAdapter(t, srv.URL)
	a.SetToken("test.jwt.token")

	_, err := a.Save(context.Background(), docWithTasks(t, 5))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}
