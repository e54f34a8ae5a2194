package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	yamlrepo "github.com/bnema/trastodon/internal/adapters/repo/yaml"
	"github.com/bnema/trastodon/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeToken = "token-123"

type fakeMastodon struct {
	*httptest.Server

	mu            sync.Mutex
	appStatus     int
	tokenStatus   int
	notifications string
	posts         []url.Values
	notifQueries  []url.Values
}

func newFakeMastodon(t *testing.T, opts ...func(*fakeMastodon)) *fakeMastodon {
	t.Helper()

	f := &fakeMastodon{
		appStatus:     http.StatusOK,
		tokenStatus:   http.StatusOK,
		notifications: "[]",
	}
	for _, opt := range opts {
		opt(f)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/apps", func(w http.ResponseWriter, _ *http.Request) {
		if f.appStatus != http.StatusOK {
			writeJSON(w, f.appStatus, `{"error":"boom"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"id":"1","client_id":"cid","client_secret":"csecret"}`)
	})
	mux.HandleFunc("POST /oauth/token", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		if f.tokenStatus != http.StatusOK || r.PostForm.Get("code") != "good-code" {
			writeJSON(w, http.StatusBadRequest, `{"error":"invalid_grant","error_description":"bad code"}`)
			return
		}
		writeJSON(w, http.StatusOK, fmt.Sprintf(`{"access_token":%q,"token_type":"Bearer","scope":"read write"}`, fakeToken))
	})
	mux.HandleFunc("GET /api/v1/accounts/verify_credentials", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+fakeToken {
			writeJSON(w, http.StatusUnauthorized, `{"error":"The access token is invalid"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"id":"42","username":"bot","acct":"bot"}`)
	})
	mux.HandleFunc("GET /api/v1/notifications", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.notifQueries = append(f.notifQueries, r.URL.Query())
		body := f.notifications
		f.mu.Unlock()

		page, err := notificationPage(body, r.URL.Query())
		if !assert.NoError(t, err) {
			writeJSON(w, http.StatusBadRequest, `{"error":"bad query"}`)
			return
		}
		writeJSON(w, http.StatusOK, page)
	})
	mux.HandleFunc("POST /api/v1/statuses", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		f.mu.Lock()
		f.posts = append(f.posts, r.PostForm)
		id := len(f.posts)
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, fmt.Sprintf(`{"id":"%d","visibility":%q,"account":{"id":"42","acct":"bot"}}`, id, r.PostForm.Get("visibility")))
	})

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Close)
	return f
}

// notificationPage serves notifications the way Mastodon pages them: with
// min_id it returns the limit oldest entries above min_id, otherwise the
// limit newest ones, always newest first.
func notificationPage(body string, query url.Values) (string, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(body), &entries); err != nil {
		return "", err
	}

	type entry struct {
		id  int64
		raw json.RawMessage
	}
	all := make([]entry, 0, len(entries))
	for _, raw := range entries {
		var head struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(raw, &head); err != nil {
			return "", err
		}
		id, err := strconv.ParseInt(head.ID, 10, 64)
		if err != nil {
			return "", err
		}
		all = append(all, entry{id: id, raw: raw})
	}

	limit := 40
	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return "", err
		}
		limit = n
	}

	sort.Slice(all, func(i, j int) bool { return all[i].id < all[j].id })
	var page []entry
	if raw := query.Get("min_id"); raw != "" {
		minID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return "", err
		}
		for _, e := range all {
			if e.id > minID && len(page) < limit {
				page = append(page, e)
			}
		}
	} else {
		page = all[max(0, len(all)-limit):]
	}

	out := make([]json.RawMessage, 0, len(page))
	for i := len(page) - 1; i >= 0; i-- {
		out = append(out, page[i].raw)
	}
	encoded, err := json.Marshal(out)
	return string(encoded), err
}

func withNotifications(body string) func(*fakeMastodon) {
	return func(f *fakeMastodon) { f.notifications = body }
}

func (f *fakeMastodon) postedForms() []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]url.Values(nil), f.posts...)
}

func (f *fakeMastodon) notificationQueries() []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]url.Values(nil), f.notifQueries...)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func executeCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := execute(context.Background(), args, strings.NewReader(stdin), stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func writeState(t *testing.T, server, token string, cursor int) string {
	t.Helper()

	body := fmt.Sprintf("server: %s\nclient_id: cid\nclient_secret: csecret\naccess_token: %s\n", server, token)
	if cursor > 0 {
		body += fmt.Sprintf("notif_pointer: %d\n", cursor)
	}
	path := filepath.Join(t.TempDir(), "bot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func writeGrammar(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "grammar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func loadState(t *testing.T, path string) domain.State {
	t.Helper()

	repo, err := yamlrepo.NewRepository(path)
	require.NoError(t, err)
	state, err := repo.Load(context.Background())
	require.NoError(t, err)
	return state
}

func TestAuthCreatesStateFile(t *testing.T) {
	server := newFakeMastodon(t)
	statePath := filepath.Join(t.TempDir(), "bot.yaml")

	stdout, _, err := executeCLI(t, "good-code\n", statePath, "auth", server.URL)

	require.NoError(t, err)
	assert.Contains(t, stdout, "successfully registered app\n")
	assert.Contains(t, stdout, "please go to "+server.URL+"/oauth/authorize?")
	assert.Contains(t, stdout, "then paste the authorization code you will be given back into this terminal\n")
	assert.True(t, strings.HasSuffix(stdout, "success!\n"), stdout)

	assert.Equal(t, domain.State{
		Server:       server.URL,
		ClientID:     "cid",
		ClientSecret: "csecret",
		AccessToken:  fakeToken,
	}, loadState(t, statePath))
}

func TestAuthFailures(t *testing.T) {
	tests := []struct {
		name     string
		server   func(*fakeMastodon)
		stdin    string
		wantCode int
		wantMsg  string
	}{
		{
			name:     "registration rejected",
			server:   func(f *fakeMastodon) { f.appStatus = http.StatusUnprocessableEntity },
			stdin:    "good-code\n",
			wantCode: 2,
			wantMsg:  "couldn't register app. check your server url",
		},
		{
			name:     "wrong code",
			stdin:    "bad-code\n",
			wantCode: 3,
			wantMsg:  "couldn't log in with provided authorization code",
		},
		{
			name:     "no code",
			stdin:    "",
			wantCode: 3,
			wantMsg:  "couldn't log in with provided authorization code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []func(*fakeMastodon)
			if tt.server != nil {
				opts = append(opts, tt.server)
			}
			server := newFakeMastodon(t, opts...)
			statePath := filepath.Join(t.TempDir(), "bot.yaml")

			stdout, _, err := executeCLI(t, tt.stdin, statePath, "auth", server.URL)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, ExitCode(err))
			assert.Contains(t, stdout, tt.wantMsg)
			assert.NoFileExists(t, statePath)
		})
	}
}

func TestAuthUnreachableServer(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "bot.yaml")

	_, _, err := executeCLI(t, "good-code\n", statePath, "auth", "not a url")

	assert.Equal(t, 2, ExitCode(err))
	assert.NoFileExists(t, statePath)
}

func TestTootPostsUnlisted(t *testing.T) {
	server := newFakeMastodon(t)
	statePath := writeState(t, server.URL, fakeToken, 0)
	grammarPath := writeGrammar(t, "origin: \"#greeting#, world\"\ngreeting: hello\n")

	_, _, err := executeCLI(t, "", statePath, "toot", grammarPath)

	require.NoError(t, err)
	require.Len(t, server.postedForms(), 1)
	assert.Equal(t, "hello, world", server.postedForms()[0].Get("status"))
	assert.Equal(t, "unlisted", server.postedForms()[0].Get("visibility"))
	assert.Empty(t, server.postedForms()[0].Get("in_reply_to_id"))
}

func TestTootCustomRule(t *testing.T) {
	server := newFakeMastodon(t)
	statePath := writeState(t, server.URL, fakeToken, 0)
	grammarPath := writeGrammar(t, "origin: nope\nother: picked\n")

	_, _, err := executeCLI(t, "", statePath, "toot", grammarPath, "-r", "#other#!")

	require.NoError(t, err)
	require.Len(t, server.postedForms(), 1)
	assert.Equal(t, "picked!", server.postedForms()[0].Get("status"))
}

func TestContentCommandsRequireSession(t *testing.T) {
	grammarPath := writeGrammar(t, "origin: hi\nreply: hi\n")

	commands := map[string][]string{
		"toot":                {"toot", grammarPath},
		"reply":               {"reply", grammarPath},
		"clear_notifications": {"clear_notifications"},
	}

	for name, args := range commands {
		t.Run(name+"/missing state file", func(t *testing.T) {
			statePath := filepath.Join(t.TempDir(), "missing.yaml")

			stdout, _, err := executeCLI(t, "", append([]string{statePath}, args...)...)

			assert.Equal(t, 1, ExitCode(err))
			assert.Contains(t, stdout, "Couldn't read state file!")
		})

		t.Run(name+"/invalid token", func(t *testing.T) {
			server := newFakeMastodon(t)
			statePath := writeState(t, server.URL, "revoked", 7)

			stdout, _, err := executeCLI(t, "", append([]string{statePath}, args...)...)

			assert.Equal(t, 4, ExitCode(err))
			assert.Contains(t, stdout, "Couldn't log in. Try auth first")
			assert.Empty(t, server.postedForms())
			assert.Equal(t, domain.NotificationID(7), loadState(t, statePath).NotifPointer)
		})
	}
}

func TestTootGrammarUnreadable(t *testing.T) {
	server := newFakeMastodon(t)
	statePath := writeState(t, server.URL, fakeToken, 0)

	stdout, _, err := executeCLI(t, "", statePath, "toot", filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Equal(t, 1, ExitCode(err))
	assert.Contains(t, stdout, "Grammar file could not be read! Check your path and permissions")
	assert.Empty(t, server.postedForms())
}

func TestReplyAnswersMentionsAndAdvancesCursor(t *testing.T) {
	server := newFakeMastodon(t, withNotifications(`[
		{"id":"103","type":"mention","status":{"id":"9001","visibility":"public","account":{"id":"5","acct":"alice@example.social"}}},
		{"id":"102","type":"favourite","status":{"id":"8000","visibility":"public","account":{"id":"6","acct":"bob"}}},
		{"id":"101","type":"mention","status":{"id":"9000","visibility":"direct","account":{"id":"7","acct":"carol"}}}
	]`))
	statePath := writeState(t, server.URL, fakeToken, 100)
	grammarPath := writeGrammar(t, "reply: thanks\n")

	_, _, err := executeCLI(t, "", statePath, "reply", grammarPath)

	require.NoError(t, err)
	require.Len(t, server.postedForms(), 2)
	assert.Equal(t, "@carol thanks", server.postedForms()[0].Get("status"))
	assert.Equal(t, "9000", server.postedForms()[0].Get("in_reply_to_id"))
	assert.Equal(t, "direct", server.postedForms()[0].Get("visibility"))
	assert.Equal(t, "@alice@example.social thanks", server.postedForms()[1].Get("status"))
	assert.Equal(t, "9001", server.postedForms()[1].Get("in_reply_to_id"))
	assert.Equal(t, "unlisted", server.postedForms()[1].Get("visibility"))

	queries := server.notificationQueries()
	require.Len(t, queries, 2)
	assert.Equal(t, "100", queries[0].Get("min_id"))
	assert.Equal(t, "40", queries[0].Get("limit"))
	assert.False(t, queries[0].Has("since_id"))
	assert.Equal(t, "103", queries[1].Get("min_id"))
	assert.Equal(t, domain.NotificationID(103), loadState(t, statePath).NotifPointer)
}

func TestReplyPagesThroughBacklogLargerThanLimit(t *testing.T) {
	var mentions []string
	for id := 99; id <= 105; id++ {
		mentions = append(mentions, fmt.Sprintf(
			`{"id":"%d","type":"mention","status":{"id":"s%d","visibility":"public","account":{"id":"5","acct":"fan%d"}}}`, id, id, id))
	}
	server := newFakeMastodon(t, withNotifications("["+strings.Join(mentions, ",")+"]"))
	statePath := writeState(t, server.URL, fakeToken, 100)
	grammarPath := writeGrammar(t, "reply: thanks\n")
	t.Setenv("TRASTODON_NOTIFICATIONS_LIMIT", "2")

	_, _, err := executeCLI(t, "", statePath, "reply", grammarPath)
	require.NoError(t, err)

	var repliedTo []string
	for _, form := range server.postedForms() {
		repliedTo = append(repliedTo, form.Get("in_reply_to_id"))
	}
	assert.Equal(t, []string{"s101", "s102", "s103", "s104", "s105"}, repliedTo)
	for _, query := range server.notificationQueries() {
		assert.Equal(t, "2", query.Get("limit"))
	}
	assert.Equal(t, domain.NotificationID(105), loadState(t, statePath).NotifPointer)

	_, _, err = executeCLI(t, "", statePath, "reply", grammarPath)
	require.NoError(t, err)
	assert.Len(t, server.postedForms(), 5)
}

func TestReplyStateFileNamedLikeCommand(t *testing.T) {
	server := newFakeMastodon(t)
	dir := t.TempDir()
	state := fmt.Sprintf("server: %s\nclient_id: cid\nclient_secret: csecret\naccess_token: %s\nnotif_pointer: 7\n", server.URL, fakeToken)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reply"), []byte(state), 0o600))
	grammarPath := writeGrammar(t, "reply: thanks\n")
	t.Chdir(dir)

	_, _, err := executeCLI(t, "", "reply", "reply", grammarPath)

	require.NoError(t, err)
	require.Len(t, server.notificationQueries(), 1)
	assert.Equal(t, "7", server.notificationQueries()[0].Get("min_id"))
}

func TestReplyWithoutCursorOmitsMinID(t *testing.T) {
	server := newFakeMastodon(t)
	statePath := writeState(t, server.URL, fakeToken, 0)
	grammarPath := writeGrammar(t, "reply: thanks\n")

	_, _, err := executeCLI(t, "", statePath, "reply", grammarPath)

	require.NoError(t, err)
	require.Len(t, server.notificationQueries(), 1)
	assert.False(t, server.notificationQueries()[0].Has("min_id"))
	assert.Empty(t, server.postedForms())
}

func TestClearNotificationsMovesCursor(t *testing.T) {
	server := newFakeMastodon(t, withNotifications(`[{"id":"555","type":"follow"}]`))
	statePath := writeState(t, server.URL, fakeToken, 0)

	_, _, err := executeCLI(t, "", statePath, "clear_notifications")

	require.NoError(t, err)
	require.Len(t, server.notificationQueries(), 1)
	assert.Equal(t, "1", server.notificationQueries()[0].Get("limit"))
	assert.Equal(t, domain.NotificationID(555), loadState(t, statePath).NotifPointer)
}

func TestClearNotificationsWithNoneKeepsCursor(t *testing.T) {
	server := newFakeMastodon(t)
	statePath := writeState(t, server.URL, fakeToken, 12)

	_, _, err := executeCLI(t, "", statePath, "clear_notifications")

	require.NoError(t, err)
	assert.Equal(t, domain.NotificationID(12), loadState(t, statePath).NotifPointer)
}

func TestMissingStateFileArgument(t *testing.T) {
	_, _, err := executeCLI(t, "", "toot", "grammar.yaml")

	require.ErrorIs(t, err, errMissingStateFile)
	assert.Equal(t, 1, ExitCode(err))
}

func TestUsageErrorsExitOne(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "bot.yaml")

	tests := map[string][]string{
		"unknown command":  {statePath, "dance"},
		"missing filename": {statePath, "toot"},
		"extra server":     {statePath, "auth", "a", "b"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, stderr, err := executeCLI(t, "", args...)

			require.Error(t, err)
			assert.Equal(t, 1, ExitCode(err))
			assert.Contains(t, stderr, "Error:")
		})
	}
}

func TestVersionNeedsNoStateFile(t *testing.T) {
	stdout, _, err := executeCLI(t, "", "version")

	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestSplitStatePath(t *testing.T) {
	tests := []struct {
		args     []string
		wantPath string
		wantRest []string
	}{
		{args: nil, wantPath: "", wantRest: nil},
		{args: []string{"bot.yaml", "toot", "g.yaml"}, wantPath: "bot.yaml", wantRest: []string{"toot", "g.yaml"}},
		{args: []string{"toot", "g.yaml"}, wantPath: "", wantRest: []string{"toot", "g.yaml"}},
		{args: []string{"--help"}, wantPath: "", wantRest: []string{"--help"}},
		{args: []string{"version"}, wantPath: "", wantRest: []string{"version"}},
		{args: []string{"reply", "reply", "g.yaml"}, wantPath: "reply", wantRest: []string{"reply", "g.yaml"}},
		{args: []string{"auth", "auth", "https://example.social"}, wantPath: "auth", wantRest: []string{"auth", "https://example.social"}},
		{args: []string{"toot", "clear_notifications"}, wantPath: "toot", wantRest: []string{"clear_notifications"}},
		{args: []string{"reply", "g.yaml"}, wantPath: "", wantRest: []string{"reply", "g.yaml"}},
		{args: []string{"help", "reply"}, wantPath: "", wantRest: []string{"help", "reply"}},
		{args: []string{"./help", "reply", "g.yaml"}, wantPath: "./help", wantRest: []string{"reply", "g.yaml"}},
	}

	for _, tt := range tests {
		path, rest := splitStatePath(tt.args)
		assert.Equal(t, tt.wantPath, path)
		assert.Equal(t, tt.wantRest, rest)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: nil, want: 0},
		{err: errors.New("usage"), want: 1},
		{err: domain.NewError(domain.KindStateUnavailable, domain.ErrStateNotFound), want: 1},
		{err: domain.NewError(domain.KindStatePersistFailed, domain.ErrStatePersist), want: 1},
		{err: domain.NewError(domain.KindStateLocked, domain.ErrStateLocked), want: 1},
		{err: domain.NewError(domain.KindGrammarUnreadable, domain.ErrGrammarUnreadable), want: 1},
		{err: domain.NewError(domain.KindRegistrationFailed, errors.New("x")), want: 2},
		{err: domain.NewError(domain.KindLoginFailed, errors.New("x")), want: 3},
		{err: domain.NewError(domain.KindSessionInvalid, errors.New("x")), want: 4},
		{err: fmt.Errorf("wrapped: %w", domain.NewError(domain.KindRequestFailed, errors.New("x"))), want: 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExitCode(tt.err), "%v", tt.err)
	}
}

func TestPromptReadsTrimmedCode(t *testing.T) {
	prompt := newTerminalPrompter(strings.NewReader("  abc123 \r\nignored\n"), &bytes.Buffer{})

	code, err := prompt.ReadAuthorizationCode(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "abc123", code)
}

func TestPromptEmptyInput(t *testing.T) {
	prompt := newTerminalPrompter(strings.NewReader("\n"), &bytes.Buffer{})

	_, err := prompt.ReadAuthorizationCode(context.Background())

	assert.ErrorIs(t, err, errEmptyAuthorizationCode)
}

func TestStateFileIsPrivate(t *testing.T) {
	server := newFakeMastodon(t)
	statePath := filepath.Join(t.TempDir(), "bot.yaml")

	_, _, err := executeCLI(t, "good-code\n", statePath, "auth", server.URL)
	require.NoError(t, err)

	info, err := os.Stat(statePath)
	require.NoError(t, err)
	if info.Mode().Perm()&0o077 != 0 {
		t.Fatalf("state file mode %v is readable by others", info.Mode().Perm())
	}
}
