package gate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// apiErrorBody is the structured error envelope the backend returns:
// {"error": {"message": "...", "fields": {"email": "taken"}}}
type apiErrorBody struct {
	Error struct {
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	} `json:"error"`
}

// APIClient wraps the backend REST API. Each request reads the bearer
// token from the session store at call time, the token is never cached
// across calls since login/logout can change it between requests.
//
// Failure policy mirrors the auth client: a human-readable notification
// is emitted AND the error is returned. When the server reports per-field
// validation errors those supersede the generic error as the returned
// value (see ValidationFields). A forbidden response is returned as-is
// with no redirect, session-expiry handling belongs to a higher layer.
type APIClient struct {
	baseURL  string
	http     *http.Client
	store    SessionStore
	notifier Notifier
	logger   Logger
}

// NewAPIClient creates a client rooted at baseURL.
func NewAPIClient(baseURL string, store SessionStore) *APIClient {
	return &APIClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{},
		store:    store,
		logger:   defLogger{},
		notifier: logNotifier{logger: defLogger{}},
	}
}

func (c *APIClient) WithLogger(logger Logger) *APIClient {
	if logger != nil {
		c.logger = logger
	}
	return c
}

func (c *APIClient) WithNotifier(notifier Notifier) *APIClient {
	c.notifier = normalizeNotifier(notifier, c.logger)
	return c
}

// WithHTTPClient overrides the transport, e.g. to set a timeout.
func (c *APIClient) WithHTTPClient(client *http.Client) *APIClient {
	if client != nil {
		c.http = client
	}
	return c
}

// Get issues an authenticated GET and decodes the JSON response into out.
func (c *APIClient) Get(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

// Post issues an authenticated POST with a JSON payload.
func (c *APIClient) Post(ctx context.Context, endpoint string, payload, out any) error {
	return c.do(ctx, http.MethodPost, endpoint, payload, out)
}

// Put issues an authenticated PUT with a JSON payload.
func (c *APIClient) Put(ctx context.Context, endpoint string, payload, out any) error {
	return c.do(ctx, http.MethodPut, endpoint, payload, out)
}

// Delete issues an authenticated DELETE.
func (c *APIClient) Delete(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, out)
}

func (c *APIClient) do(ctx context.Context, method, endpoint string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			c.notifier.Error("An unexpected error occurred")
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to encode request payload")
		}
		body = bytes.NewReader(data)
	}

	url := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		c.notifier.Error("An unexpected error occurred")
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to build request")
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.store.Read().Token; token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("API request transport error", "method", method, "endpoint", endpoint, "error", err)
		c.notifier.Error("An unexpected error occurred")
		return goerrors.Wrap(err, goerrors.CategoryOperation, "request failed")
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		c.notifier.Error("An unexpected error occurred")
		return goerrors.Wrap(err, goerrors.CategoryOperation, "failed to read response")
	}

	if res.StatusCode >= 400 {
		return c.translateError(res.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			c.notifier.Error("An unexpected error occurred")
			return goerrors.Wrap(err, goerrors.CategoryOperation, "failed to decode response")
		}
	}
	return nil
}

// translateError maps an error response onto the notify-and-re-raise
// contract. Field validation errors win over the generic message; a 403
// produces a forbidden error but never a redirect.
func (c *APIClient) translateError(status int, data []byte) error {
	var parsed apiErrorBody
	structured := json.Unmarshal(data, &parsed) == nil && parsed.Error.Message != ""

	if structured {
		c.notifier.Error(parsed.Error.Message)
	} else {
		c.notifier.Error("An unexpected error occurred")
	}

	if structured && len(parsed.Error.Fields) > 0 {
		fields := make(map[string]any, len(parsed.Error.Fields))
		for k, v := range parsed.Error.Fields {
			fields[k] = v
		}
		return goerrors.New(parsed.Error.Message, goerrors.CategoryValidation).
			WithCode(goerrors.CodeBadRequest).
			WithMetadata(map[string]any{"fields": fields})
	}

	if status == http.StatusForbidden {
		message := "access forbidden"
		if structured {
			message = parsed.Error.Message
		}
		return goerrors.New(message, goerrors.CategoryAuthz).
			WithCode(goerrors.CodeForbidden).
			WithTextCode("FORBIDDEN").
			WithMetadata(map[string]any{"status": status})
	}

	message := fmt.Sprintf("request failed with status %d", status)
	if structured {
		message = parsed.Error.Message
	}
	return goerrors.New(message, goerrors.CategoryOperation).
		WithMetadata(map[string]any{"status": status})
}

// Profile fetches the acting user's profile with its ban sub-records.
func (c *APIClient) Profile(ctx context.Context) (*User, error) {
	user := &User{}
	if err := c.Get(ctx, "/user/profile", user); err != nil {
		return nil, err
	}
	return user, nil
}

// UnbanUser clears every ban on the target user (admin console only; the
// route guards never call this).
func (c *APIClient) UnbanUser(ctx context.Context, userID uuid.UUID) error {
	return c.Post(ctx, fmt.Sprintf("/user/%s/unban", userID), nil, nil)
}

// LikeReview toggles the acting user's like on a review.
func (c *APIClient) LikeReview(ctx context.Context, reviewID string) error {
	return c.Post(ctx, fmt.Sprintf("/review/%s/like", reviewID), nil, nil)
}

// ReportReview flags a review for moderation.
func (c *APIClient) ReportReview(ctx context.Context, reviewID, reason string) error {
	payload := map[string]string{"reason": reason}
	return c.Post(ctx, fmt.Sprintf("/review/%s/report", reviewID), payload, nil)
}

// Bookmarks lists the acting user's bookmarks.
func (c *APIClient) Bookmarks(ctx context.Context) ([]Bookmark, error) {
	var bookmarks []Bookmark
	if err := c.Get(ctx, "/bookmarks", &bookmarks); err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// CreateBookmark stores a new bookmark.
func (c *APIClient) CreateBookmark(ctx context.Context, bookmark *Bookmark) (*Bookmark, error) {
	created := &Bookmark{}
	if err := c.Post(ctx, "/bookmarks", bookmark, created); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateBookmark replaces an existing bookmark.
func (c *APIClient) UpdateBookmark(ctx context.Context, bookmark *Bookmark) (*Bookmark, error) {
	updated := &Bookmark{}
	endpoint := fmt.Sprintf("/bookmarks/%s", bookmark.ID)
	if err := c.Put(ctx, endpoint, bookmark, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteBookmark removes a bookmark.
func (c *APIClient) DeleteBookmark(ctx context.Context, bookmarkID uuid.UUID) error {
	return c.Delete(ctx, fmt.Sprintf("/bookmarks/%s", bookmarkID), nil)
}
