package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSessionStore is a mock implementation of SessionStoreInterface.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) RevokeSession(ctx context.Context, sessionID string, ttl time.Duration) error {
	args := m.Called(ctx, sessionID, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) IsSessionRevoked(ctx context.Context, sessionID string) (bool, error) {
	args := m.Called(ctx, sessionID)
	return args.Bool(0), args.Error(1)
}

const testSecret = "test-secret"

// runChain sends a request through SessionParser + CurrentUser and returns
// the email the terminal handler observed.
func runChain(t *testing.T, store SessionStoreInterface, cookie *http.Cookie) string {
	t.Helper()

	e := echo.New()
	var seen string
	terminal := func(c echo.Context) error {
		seen = EmailFromContext(c)
		return c.NoContent(http.StatusOK)
	}
	chain := SessionParser(testSecret)(CurrentUser(store)(terminal))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, chain(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	return seen
}

func TestCurrentUser_NoCookieIsAnonymous(t *testing.T) {
	assert.Empty(t, runChain(t, new(MockSessionStore), nil))
}

func TestCurrentUser_ValidSession(t *testing.T) {
	_, token, err := NewSessionService(testSecret).IssueSession("testuser@evg-project.org")
	assert.NoError(t, err)

	store := new(MockSessionStore)
	store.On("IsSessionRevoked", mock.Anything, mock.Anything).Return(false, nil)

	seen := runChain(t, store, &http.Cookie{Name: SessionCookieName, Value: token})
	assert.Equal(t, "testuser@evg-project.org", seen)
}

func TestCurrentUser_RevokedSessionIsAnonymous(t *testing.T) {
	sessionID, token, err := NewSessionService(testSecret).IssueSession("testuser@evg-project.org")
	assert.NoError(t, err)

	store := new(MockSessionStore)
	store.On("IsSessionRevoked", mock.Anything, sessionID).Return(true, nil)

	seen := runChain(t, store, &http.Cookie{Name: SessionCookieName, Value: token})
	assert.Empty(t, seen)
	store.AssertExpectations(t)
}

func TestCurrentUser_TamperedTokenIsAnonymous(t *testing.T) {
	_, token, err := NewSessionService("other-secret").IssueSession("testuser@evg-project.org")
	assert.NoError(t, err)

	seen := runChain(t, new(MockSessionStore), &http.Cookie{Name: SessionCookieName, Value: token})
	assert.Empty(t, seen)
}
