package bot

import (
	"context"
	"errors"
	"testing"

	tele "gopkg.in/telebot.v4"

	"lyricsbot/internal/genius"
	"lyricsbot/internal/session"
	"lyricsbot/internal/users"
)

type fakeAPI struct {
	tele.API
	deleted []string
}

func (f *fakeAPI) Delete(msg tele.Editable) error {
	id, _ := msg.MessageSig()
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeContext implements the handful of tele.Context methods the
// callback handlers touch; everything else panics via the embedded nil.
type fakeContext struct {
	tele.Context
	api       *fakeAPI
	chat      *tele.Chat
	sender    *tele.User
	message   *tele.Message
	callback  *tele.Callback
	values    map[string]interface{}
	responses []*tele.CallbackResponse
	sent      []string
	edited    []string
}

func newFakeContext(chatID int64, cb *tele.Callback) *fakeContext {
	return &fakeContext{
		api:      &fakeAPI{},
		chat:     &tele.Chat{ID: chatID},
		sender:   &tele.User{ID: chatID, FirstName: "Test"},
		message:  &tele.Message{ID: 77, Chat: &tele.Chat{ID: chatID}},
		callback: cb,
		values:   make(map[string]interface{}),
	}
}

func (f *fakeContext) Bot() tele.API            { return f.api }
func (f *fakeContext) Chat() *tele.Chat         { return f.chat }
func (f *fakeContext) Sender() *tele.User       { return f.sender }
func (f *fakeContext) Message() *tele.Message   { return f.message }
func (f *fakeContext) Callback() *tele.Callback { return f.callback }
func (f *fakeContext) Update() tele.Update      { return tele.Update{ID: 1} }

func (f *fakeContext) Get(key string) interface{}      { return f.values[key] }
func (f *fakeContext) Set(key string, val interface{}) { f.values[key] = val }

func (f *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	r := &tele.CallbackResponse{}
	if len(resp) > 0 {
		r = resp[0]
	}
	f.responses = append(f.responses, r)
	return nil
}

func (f *fakeContext) Send(what interface{}, _ ...interface{}) error {
	if s, ok := what.(string); ok {
		f.sent = append(f.sent, s)
	}
	return nil
}

func (f *fakeContext) Edit(what interface{}, _ ...interface{}) error {
	if s, ok := what.(string); ok {
		f.edited = append(f.edited, s)
	}
	return nil
}

func (f *fakeContext) lastResponse(t *testing.T) *tele.CallbackResponse {
	t.Helper()
	if len(f.responses) == 0 {
		t.Fatal("callback was never answered")
	}
	return f.responses[len(f.responses)-1]
}

type fakeUsers struct {
	languages  map[int64]string
	setErr     error
	registered int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{languages: make(map[int64]string)}
}

func (f *fakeUsers) Get(_ context.Context, chatID int64) (*users.User, error) {
	lang, ok := f.languages[chatID]
	if !ok {
		return nil, nil
	}
	return &users.User{ChatID: chatID, Language: lang}, nil
}

func (f *fakeUsers) Register(_ context.Context, chatID int64, language string, _ users.Profile) error {
	f.registered++
	f.languages[chatID] = language
	return nil
}

func (f *fakeUsers) SetLanguage(_ context.Context, chatID int64, language string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.languages[chatID] = language
	return nil
}

func TestStaleCallbackDeletesListAndNotifies(t *testing.T) {
	a := testApp(t)
	fc := newFakeContext(5, &tele.Callback{Unique: cbPageNext})

	if err := a.handleCallback(fc); err != nil {
		t.Fatalf("handleCallback: %v", err)
	}

	if len(fc.api.deleted) != 1 || fc.api.deleted[0] != "77" {
		t.Fatalf("deleted = %v, want the triggering message", fc.api.deleted)
	}
	if got := fc.lastResponse(t).Text; got != "This list has expired" {
		t.Fatalf("response = %q, want the expired-list notice", got)
	}
}

func TestDismissedListingExpiresFollowUps(t *testing.T) {
	a := testApp(t)
	sess := session.New(9, "query", []genius.Song{
		{ID: "1", Title: "T", FullTitle: "A - T", URL: "https://example.com/1"},
	})
	sess.MessageID = 42
	a.sessions.Replace(9, sess)

	fc := newFakeContext(9, &tele.Callback{Unique: cbListClose})
	if err := a.handleCallback(fc); err != nil {
		t.Fatalf("dismiss: %v", err)
	}
	if len(fc.api.deleted) != 1 || fc.api.deleted[0] != "42" {
		t.Fatalf("deleted = %v, want the listing message", fc.api.deleted)
	}
	if _, ok := a.sessions.Get(9); ok {
		t.Fatal("session must be gone after dismiss")
	}

	again := newFakeContext(9, &tele.Callback{Unique: cbPageNext})
	if err := a.handleCallback(again); err != nil {
		t.Fatalf("follow-up: %v", err)
	}
	if got := again.lastResponse(t).Text; got != "This list has expired" {
		t.Fatalf("follow-up response = %q, want the expired-list notice", got)
	}
}

func TestLanguageCallbackStoresLanguage(t *testing.T) {
	a := testApp(t)
	fu := newFakeUsers()
	a.users = fu
	fc := newFakeContext(3, &tele.Callback{Unique: cbSetLang, Data: cbSetLang + "|uz"})

	if err := a.handleCallback(fc); err != nil {
		t.Fatalf("handleCallback: %v", err)
	}

	if fu.languages[3] != "uz" {
		t.Fatalf("stored language = %q, want uz", fu.languages[3])
	}
	if fu.registered != 0 {
		t.Fatal("language change must not rewrite the profile")
	}
	if len(fc.edited) != 1 || fc.edited[0] != "Language saved" {
		t.Fatalf("edited = %v, want the confirmation text", fc.edited)
	}
	if len(fc.sent) != 1 || fc.sent[0] != "Send a song name" {
		t.Fatalf("sent = %v, want the usage hint", fc.sent)
	}
	fc.lastResponse(t)
}

func TestLanguageCallbackSaveFailureNotifies(t *testing.T) {
	a := testApp(t)
	fu := newFakeUsers()
	fu.setErr = errors.New("db down")
	a.users = fu
	fc := newFakeContext(3, &tele.Callback{Unique: cbSetLang, Data: cbSetLang + "|uz"})

	if err := a.handleCallback(fc); err != nil {
		t.Fatalf("handleCallback: %v", err)
	}

	if len(fc.sent) != 1 || fc.sent[0] != "Could not save your choice" {
		t.Fatalf("sent = %v, want the save-failure notice", fc.sent)
	}
	if len(fc.edited) != 0 {
		t.Fatalf("edited = %v, want no confirmation on failure", fc.edited)
	}
	fc.lastResponse(t)
}
