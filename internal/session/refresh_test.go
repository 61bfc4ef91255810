package session

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/fintrack-web/internal/mocks"
	"github.com/dtroode/fintrack-web/internal/model"
	"github.com/dtroode/fintrack-web/internal/testutil"
)

// blockingClient answers refresh calls once release is closed.
type blockingClient struct {
	mocks.HTTPClient
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func newBlockingClient() *blockingClient {
	return &blockingClient{started: make(chan struct{}), release: make(chan struct{})}
}

func (c *blockingClient) Post(ctx context.Context, path string, body, out any, cfg *model.RequestConfig) error {
	c.calls.Add(1)
	c.once.Do(func() { close(c.started) })
	<-c.release
	*out.(*model.AuthTokens) = model.AuthTokens{AccessToken: "new", ExpiresIn: 900}
	return nil
}

func TestRefresher_Exchange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	client := mocks.NewHTTPClient(t)
	client.On("Post", mock.Anything, RefreshPath, refreshRequest{RefreshToken: "RT1"}, mock.Anything,
		mock.MatchedBy(func(cfg *model.RequestConfig) bool { return cfg == nil })).
		Run(func(args mock.Arguments) {
			*args.Get(3).(*model.AuthTokens) = model.AuthTokens{AccessToken: "new", ExpiresIn: 900}
		}).
		Return(nil).Once()

	r := NewRefresher(client, testutil.MakeNoopLogger())

	tokens, err := r.Exchange(ctx, "RT1")
	require.NoError(t, err)
	assert.Equal(t, model.AuthTokens{AccessToken: "new", ExpiresIn: 900}, tokens)
}

func TestRefresher_ExchangeError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	rejected := &model.StatusError{Method: http.MethodPost, URL: RefreshPath, StatusCode: http.StatusUnauthorized}
	client := mocks.NewHTTPClient(t)
	client.On("Post", mock.Anything, RefreshPath, mock.Anything, mock.Anything, mock.Anything).Return(rejected).Once()

	r := NewRefresher(client, testutil.MakeNoopLogger())

	_, err := r.Exchange(ctx, "RT1")
	require.Error(t, err)
	assert.True(t, model.IsUnauthorized(err))
}

func TestRefresher_ConcurrentExchangesShareOneCall(t *testing.T) {
	t.Parallel()

	client := newBlockingClient()
	r := NewRefresher(client, testutil.MakeNoopLogger())

	const waiters = 8
	results := make(chan model.AuthTokens, waiters)
	var wg sync.WaitGroup
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tokens, err := r.Exchange(context.Background(), "RT1")
			assert.NoError(t, err)
			results <- tokens
		}()
	}

	<-client.started
	time.Sleep(50 * time.Millisecond)
	close(client.release)
	wg.Wait()
	close(results)

	assert.Equal(t, int32(1), client.calls.Load())
	for tokens := range results {
		assert.Equal(t, "new", tokens.AccessToken)
	}
}

func TestRefresher_DistinctTokensAreNotShared(t *testing.T) {
	t.Parallel()

	client := newBlockingClient()
	close(client.release)
	r := NewRefresher(client, testutil.MakeNoopLogger())

	_, err := r.Exchange(context.Background(), "RT1")
	require.NoError(t, err)
	_, err = r.Exchange(context.Background(), "RT2")
	require.NoError(t, err)

	assert.Equal(t, int32(2), client.calls.Load())
}

func TestRefresher_WaiterCancellation(t *testing.T) {
	t.Parallel()

	client := newBlockingClient()
	r := NewRefresher(client, testutil.MakeNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := r.Exchange(ctx, "RT1")
		done <- err
	}()

	<-client.started
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	// the in-flight call still completes for later waiters
	close(client.release)
	tokens, err := r.Exchange(context.Background(), "RT1")
	require.NoError(t, err)
	assert.Equal(t, "new", tokens.AccessToken)
}

func TestRefresher_RecentExchangeIsReused(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	rotated := model.AuthTokens{AccessToken: "AT2", RefreshToken: "RT2", ExpiresIn: 900}
	client := mocks.NewHTTPClient(t)
	client.On("Post", mock.Anything, RefreshPath, refreshRequest{RefreshToken: "RT1"}, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(3).(*model.AuthTokens) = rotated
		}).
		Return(nil).Twice()

	now := time.Date(2025, time.March, 17, 10, 0, 0, 0, time.UTC)
	r := NewRefresher(client, testutil.MakeNoopLogger())
	r.now = func() time.Time { return now }

	first, err := r.Exchange(ctx, "RT1")
	require.NoError(t, err)

	now = now.Add(RotationGrace - time.Second)
	second, err := r.Exchange(ctx, "RT1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	client.AssertNumberOfCalls(t, "Post", 1)

	now = now.Add(2 * time.Second)
	_, err = r.Exchange(ctx, "RT1")
	require.NoError(t, err)
	client.AssertNumberOfCalls(t, "Post", 2)
}

func TestRefresher_FailedExchangeIsNotReused(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	client := mocks.NewHTTPClient(t)
	client.On("Post", mock.Anything, RefreshPath, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("connection reset")).Once()
	client.On("Post", mock.Anything, RefreshPath, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(3).(*model.AuthTokens) = model.AuthTokens{AccessToken: "AT2"}
		}).
		Return(nil).Once()

	r := NewRefresher(client, testutil.MakeNoopLogger())

	_, err := r.Exchange(ctx, "RT1")
	require.Error(t, err)

	tokens, err := r.Exchange(ctx, "RT1")
	require.NoError(t, err)
	assert.Equal(t, "AT2", tokens.AccessToken)
}

func TestCoordinator_LateRequestWithRotatedTokenKeepsSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	rotated := model.AuthTokens{AccessToken: "AT2", RefreshToken: "RT2", ExpiresIn: 900}
	client := mocks.NewHTTPClient(t)
	client.On("Post", mock.Anything, RefreshPath, refreshRequest{RefreshToken: "RT1"}, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(3).(*model.AuthTokens) = rotated
		}).
		Return(nil).Once()

	manager := NewManager(client, NewRefresher(client, testutil.MakeNoopLogger()), testutil.MakeNoopLogger())
	stale := &http.Cookie{Name: model.TokensKey, Value: encoded(t, model.AuthTokens{AccessToken: "AT1", RefreshToken: "RT1"})}

	// two requests sent with the same cookies, answered one after the other
	for i := 0; i < 2; i++ {
		var torn bool
		sess := manager.Bind(newCookieStorage(t, stale), WithTeardownHook(func(context.Context) { torn = true }))

		tokens, err := sess.Refresh(ctx)
		require.NoError(t, err)
		assert.Equal(t, rotated, tokens)
		assert.Equal(t, rotated, sess.Store().Tokens(ctx))
		assert.False(t, torn)
	}
}

func newTestCoordinator(t *testing.T, exchanger Exchanger, opts ...CoordinatorOption) (*Coordinator, *Store) {
	t.Helper()

	store := NewStore(newCookieStorage(t), testutil.MakeNoopLogger())
	return NewCoordinator(store, exchanger, testutil.MakeNoopLogger(), opts...), store
}

func TestCoordinator_Refresh(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		response model.AuthTokens
		want     model.AuthTokens
	}{
		{
			name:     "refresh token preserved",
			response: model.AuthTokens{AccessToken: "new", ExpiresIn: 900},
			want:     model.AuthTokens{AccessToken: "new", RefreshToken: "RT1", ExpiresIn: 900},
		},
		{
			name:     "refresh token rotated",
			response: model.AuthTokens{AccessToken: "new", RefreshToken: "RT2", ExpiresIn: 900},
			want:     model.AuthTokens{AccessToken: "new", RefreshToken: "RT2", ExpiresIn: 900},
		},
		{
			name:     "negative expiry clamped",
			response: model.AuthTokens{AccessToken: "new", ExpiresIn: -1},
			want:     model.AuthTokens{AccessToken: "new", RefreshToken: "RT1"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			exchanger := mocks.NewExchanger(t)
			exchanger.On("Exchange", ctx, "RT1").Return(tt.response, nil).Once()

			c, store := newTestCoordinator(t, exchanger)
			_, err := store.SetTokens(ctx, model.AuthTokens{AccessToken: "old", RefreshToken: "RT1"})
			require.NoError(t, err)

			got, err := c.Refresh(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, store.Tokens(ctx))
		})
	}
}

func TestCoordinator_RefreshWithoutRefreshToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	exchanger := mocks.NewExchanger(t)
	hookCalls := 0
	c, store := newTestCoordinator(t, exchanger, WithTeardownHook(func(context.Context) { hookCalls++ }))

	_, err := store.SetAccessToken(ctx, "stale")
	require.NoError(t, err)

	_, err = c.Refresh(ctx)
	require.ErrorIs(t, err, model.ErrSessionExpired)

	exchanger.AssertNotCalled(t, "Exchange", mock.Anything, mock.Anything)
	assert.Equal(t, model.AuthTokens{}, store.Tokens(ctx))
	assert.Equal(t, 1, hookCalls)
}

func TestCoordinator_RefreshFailureTearsDown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		response model.AuthTokens
		err      error
	}{
		{name: "unauthorized", err: &model.StatusError{Method: http.MethodPost, URL: RefreshPath, StatusCode: http.StatusUnauthorized}},
		{name: "server error", err: &model.StatusError{Method: http.MethodPost, URL: RefreshPath, StatusCode: http.StatusBadGateway}},
		{name: "transport error", err: errors.New("connection refused")},
		{name: "empty access token", response: model.AuthTokens{RefreshToken: "RT2"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			exchanger := mocks.NewExchanger(t)
			exchanger.On("Exchange", ctx, "RT1").Return(tt.response, tt.err).Once()

			torn := false
			c, store := newTestCoordinator(t, exchanger, WithTeardownHook(func(context.Context) { torn = true }))
			_, err := store.SetTokens(ctx, model.AuthTokens{AccessToken: "old", RefreshToken: "RT1"})
			require.NoError(t, err)
			_, err = store.SetUser(ctx, model.User{ID: "u1"})
			require.NoError(t, err)

			_, err = c.Refresh(ctx)
			require.ErrorIs(t, err, model.ErrSessionExpired)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}

			assert.True(t, torn)
			assert.Equal(t, model.AuthTokens{}, store.Tokens(ctx))
			_, ok := store.User(ctx)
			assert.False(t, ok)
		})
	}
}

func TestCoordinator_CancelledRefreshKeepsSession(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exchanger := mocks.NewExchanger(t)
	exchanger.On("Exchange", ctx, "RT1").Return(model.AuthTokens{}, context.Canceled).Once()

	c, store := newTestCoordinator(t, exchanger)
	_, err := store.SetTokens(ctx, model.AuthTokens{AccessToken: "old", RefreshToken: "RT1"})
	require.NoError(t, err)

	_, err = c.Refresh(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, model.ErrSessionExpired)
	assert.Equal(t, "RT1", store.Tokens(ctx).RefreshToken)
}

func TestCoordinator_TeardownIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	hookCalls := 0
	c, store := newTestCoordinator(t, mocks.NewExchanger(t), WithTeardownHook(func(context.Context) { hookCalls++ }))

	require.NoError(t, c.Teardown(ctx))
	_, err := store.SetTokens(ctx, model.AuthTokens{AccessToken: "a", RefreshToken: "r"})
	require.NoError(t, err)
	require.NoError(t, c.Teardown(ctx))
	require.NoError(t, c.Teardown(ctx))

	assert.Equal(t, model.AuthTokens{}, store.Tokens(ctx))
	assert.Equal(t, 3, hookCalls)
}
