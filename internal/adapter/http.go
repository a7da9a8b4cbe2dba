package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/oraculo-app/oraculo-sync/internal/config"
	"github.com/oraculo-app/oraculo-sync/internal/engine"
	"github.com/oraculo-app/oraculo-sync/internal/logger"
	"github.com/oraculo-app/oraculo-sync/internal/utils"
	"github.com/oraculo-app/oraculo-sync/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	monitor   *engine.Monitor
	estimator *engine.Estimator
	docs      engine.DocumentStore
	backups   engine.BackupStore
	ratio     float64

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// The monitor receives connectivity transitions observed on the wire, the
// estimator and ratio drive the read-before-write overwrite guard, backups
// receives the snapshots the guard produces, and docs persists the server
// timestamp of a confirmed write.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(
	adapterCfg config.ClientAdapter,
	monitor *engine.Monitor,
	estimator *engine.Estimator,
	docs engine.DocumentStore,
	backups engine.BackupStore,
	ratio float64,
	logger *logger.Logger,
) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	if ratio <= 0 || ratio > 1 {
		ratio = config.DefaultRegressionRatio
	}

	return &httpServerAdapter{
		client:    client,
		monitor:   monitor,
		estimator: estimator,
		docs:      docs,
		backups:   backups,
		ratio:     ratio,
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token
// cannot be parsed.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return user, nil
}

// Login implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns the
// server-side user record. Returns an error if the request fails, the server
// returns a non-2xx status, or the token cannot be parsed.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	var foundUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&foundUser).
		Post("/api/auth/login")

	if err != nil {
		return user, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return user, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return user, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return foundUser, nil
}

// Load implements [ServerAdapter]. It GETs the state record from
// GET /api/state.
//
// The outcomes deliberately collapse toward (nil, nil): a brand-new account
// (404), a missing session (401, no token) and a connectivity failure all
// mean "no usable remote document right now", and the caller proceeds with
// local data. A connectivity failure additionally flips the monitor offline.
func (h *httpServerAdapter) Load(ctx context.Context) (*models.RemoteRecord, error) {
	if h.Token() == "" {
		return nil, nil
	}

	resp, err := h.authedRequest(ctx).Get("/api/state")
	if err != nil {
		h.logger.Warn().Err(err).Msg("state load failed, going offline")
		h.monitor.SetOnline(ctx, false)
		return nil, nil
	}

	h.monitor.SetOnline(ctx, true)

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return nil, nil
	case http.StatusUnauthorized:
		h.logger.Warn().Msg("state load unauthorized, session expired")
		return nil, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var sr models.StateResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return nil, fmt.Errorf("decode state response: %w", err)
	}

	return &models.RemoteRecord{
		Data:      sr.Data,
		Version:   sr.Version,
		UpdatedAt: sr.UpdatedAt,
	}, nil
}

// Save implements [ServerAdapter]. It pushes doc to PUT /api/state behind a
// read-before-write guard.
//
// The guard re-reads the remote record and refuses to overwrite a remote
// document whose richness dwarfs the local one: the refused remote copy is
// backed up with reason "blocked-overwrite" and Save reports (false, nil)
// without marking a pending sync, since retrying would be refused again.
//
// A legitimate overwrite of a non-trivial remote document first preserves
// the remote copy with reason "pre-overwrite"; that backup is best-effort
// and never blocks the write.
//
// Connectivity failures and a missing or expired session mark a pending sync
// and report (false, nil) so the scheduler retries later.
//
// On success doc carries the server's timestamp and is re-persisted locally,
// so both sides agree on when the document last changed.
func (h *httpServerAdapter) Save(ctx context.Context, doc *models.StateDocument) (bool, error) {
	if h.Token() == "" {
		h.logger.Warn().Msg("state save skipped, no session")
		h.monitor.MarkPendingSync(ctx)
		return false, nil
	}

	remote, err := h.Load(ctx)
	if err != nil {
		return false, err
	}
	if !h.monitor.Online() {
		h.monitor.MarkPendingSync(ctx)
		return false, nil
	}

	var baseUpdatedAt *time.Time
	if remote != nil && remote.Data != nil {
		localScore := h.estimator.Score(doc)
		remoteScore := h.estimator.Score(remote.Data)

		if remoteScore > 0 && float64(localScore) < float64(remoteScore)*h.ratio {
			h.logger.Warn().
				Int("local_richness", localScore).
				Int("remote_richness", remoteScore).
				Msg("refusing to overwrite a much richer remote document")

			if backupErr := h.backups.SaveBackup(ctx, models.PreSyncBackup{
				Data:     remote.Data.Clone(),
				Reason:   models.BackupBlockedOverwrite,
				SavedAt:  time.Now().UTC(),
				Richness: remoteScore,
			}); backupErr != nil {
				h.logger.Err(backupErr).Msg("blocked-overwrite backup failed")
			}
			return false, nil
		}

		if remoteScore > 0 {
			if backupErr := h.backups.SaveBackup(ctx, models.PreSyncBackup{
				Data:     remote.Data.Clone(),
				Reason:   models.BackupPreOverwrite,
				SavedAt:  time.Now().UTC(),
				Richness: remoteScore,
			}); backupErr != nil {
				h.logger.Err(backupErr).Msg("pre-overwrite backup failed, continuing")
			}
		}

		stamp := remote.UpdatedAt
		baseUpdatedAt = &stamp
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.StateUpsertRequest{
			Data:          doc,
			Version:       doc.Version,
			BaseUpdatedAt: baseUpdatedAt,
		}).
		Put("/api/state")
	if err != nil {
		h.logger.Warn().Err(err).Msg("state save failed, going offline")
		h.monitor.SetOnline(ctx, false)
		h.monitor.MarkPendingSync(ctx)
		return false, nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		h.logger.Warn().Msg("state save unauthorized, will retry after relogin")
		h.monitor.MarkPendingSync(ctx)
		return false, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	var ur models.StateUpsertResponse
	if err = json.Unmarshal(resp.Body(), &ur); err != nil {
		return false, fmt.Errorf("decode upsert response: %w", err)
	}

	// server time is authoritative for conflict resolution; persisting the
	// stamp keeps the next startup reconciliation from re-adopting a remote
	// document this device just wrote
	doc.UpdatedAt = ur.UpdatedAt
	if !h.docs.AdoptDocument(ctx, doc) {
		h.logger.Warn().Msg("could not persist server timestamp locally")
	}

	return true, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
