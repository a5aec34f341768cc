package services

import (
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/atelier-backend/internal/models"
	"github.com/javajoker/atelier-backend/internal/store"
)

func newTestMessageService(t *testing.T) (*MessageService, *store.DocumentStore) {
	t.Helper()
	docs := store.NewDocumentStore(t.TempDir())
	service := NewMessageService(docs)

	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	seq := 0
	service.newID = func() string {
		seq++
		return fmt.Sprintf("msg-%d", seq)
	}
	return service, docs
}

func TestSubmitMessageValidation(t *testing.T) {
	service, docs := newTestMessageService(t)

	cases := []struct {
		name string
		req  SubmitMessageRequest
	}{
		{"empty name", SubmitMessageRequest{Name: "", Email: "a@b.com", Message: "hi"}},
		{"blank message", SubmitMessageRequest{Name: "A", Email: "a@b.com", Message: "  "}},
		{"blank email", SubmitMessageRequest{Name: "A", Email: " \t", Message: "hi"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.SubmitMessage(&tc.req)
			assert.True(t, errors.Is(err, store.ErrValidation))
		})
	}

	assert.False(t, docs.Exists(models.CollectionMessages), "rejected submissions must not create the inbox")
}

func TestSubmitMessageAcceptsAnyNonBlankEmail(t *testing.T) {
	service, _ := newTestMessageService(t)

	msg, err := service.SubmitMessage(&SubmitMessageRequest{Name: "A", Email: "call me", Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "call me", msg.Email)
}

func TestSubmitMessageStoresTrimmedRecord(t *testing.T) {
	service, docs := newTestMessageService(t)

	msg, err := service.SubmitMessage(&SubmitMessageRequest{
		Name:    "  A ",
		Email:   " a@b.com ",
		Phone:   "",
		Message: " hi\n",
	})
	require.NoError(t, err)

	assert.Equal(t, "msg-1", msg.ID)
	assert.Equal(t, "A", msg.Name)
	assert.Equal(t, "a@b.com", msg.Email)
	assert.Equal(t, "", msg.Phone)
	assert.Equal(t, "hi", msg.Message)
	assert.Equal(t, "2024-03-01T12:01:00.000Z", msg.CreatedAt)

	var stored []models.Message
	require.NoError(t, docs.Load(models.CollectionMessages, &stored))
	assert.Equal(t, []models.Message{*msg}, stored)
}

func TestSubmitMessageGeneratesUniqueIDs(t *testing.T) {
	service := NewMessageService(store.NewDocumentStore(t.TempDir()))

	first, err := service.SubmitMessage(&SubmitMessageRequest{Name: "A", Email: "a@b.com", Message: "hi"})
	require.NoError(t, err)
	second, err := service.SubmitMessage(&SubmitMessageRequest{Name: "B", Email: "b@b.com", Message: "yo"})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEmpty(t, first.CreatedAt)
}

func TestSubmitMessageRecoversFromCorruptInbox(t *testing.T) {
	service, docs := newTestMessageService(t)
	require.NoError(t, os.WriteFile(docs.Path(models.CollectionMessages), []byte("{broken"), 0o644))

	_, err := service.SubmitMessage(&SubmitMessageRequest{Name: "A", Email: "a@b.com", Message: "hi"})
	require.NoError(t, err)

	messages, err := service.ListMessages()
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestListMessagesNewestFirst(t *testing.T) {
	service, _ := newTestMessageService(t)

	for _, body := range []string{"T1", "T2", "T3"} {
		_, err := service.SubmitMessage(&SubmitMessageRequest{Name: "A", Email: "a@b.com", Message: body})
		require.NoError(t, err)
	}

	messages, err := service.ListMessages()
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "T3", messages[0].Message)
	assert.Equal(t, "T2", messages[1].Message)
	assert.Equal(t, "T1", messages[2].Message)
}

func TestListMessagesTiesKeepStoredOrder(t *testing.T) {
	service, docs := newTestMessageService(t)
	stamp := "2024-01-01T00:00:00.000Z"
	require.NoError(t, docs.Store(models.CollectionMessages, []models.Message{
		{ID: "a", CreatedAt: stamp},
		{ID: "b", CreatedAt: "2024-02-01T00:00:00.000Z"},
		{ID: "c", CreatedAt: stamp},
	}))

	messages, err := service.ListMessages()
	require.NoError(t, err)
	ids := []string{messages[0].ID, messages[1].ID, messages[2].ID}
	assert.Equal(t, []string{"b", "a", "c"}, ids)
}

func TestListMessagesMissingInboxIsEmpty(t *testing.T) {
	service, _ := newTestMessageService(t)

	messages, err := service.ListMessages()
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}

func TestListMessagesCorruptInboxIsReadError(t *testing.T) {
	service, docs := newTestMessageService(t)
	require.NoError(t, os.WriteFile(docs.Path(models.CollectionMessages), []byte("{}"), 0o644))

	_, err := service.ListMessages()
	assert.True(t, errors.Is(err, store.ErrRead))
}

func TestDeleteMessage(t *testing.T) {
	service, _ := newTestMessageService(t)

	err := service.DeleteMessage("msg-1")
	assert.True(t, errors.Is(err, store.ErrNotFound), "missing inbox is not found")

	_, err = service.SubmitMessage(&SubmitMessageRequest{Name: "A", Email: "a@b.com", Message: "one"})
	require.NoError(t, err)
	_, err = service.SubmitMessage(&SubmitMessageRequest{Name: "B", Email: "b@b.com", Message: "two"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteMessage("msg-1"))
	require.NoError(t, service.DeleteMessage("unknown"), "unknown id is a no-op once the inbox exists")

	messages, err := service.ListMessages()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "msg-2", messages[0].ID)
}

type recordingNotifier struct {
	received []models.Message
}

func (n *recordingNotifier) MessageReceived(message models.Message) {
	n.received = append(n.received, message)
}

func TestSubmitMessageNotifies(t *testing.T) {
	service, _ := newTestMessageService(t)
	notifier := &recordingNotifier{}
	service.SetNotifier(notifier)

	_, err := service.SubmitMessage(&SubmitMessageRequest{Name: "", Email: "a@example.com", Message: "hi"})
	require.Error(t, err)
	assert.Empty(t, notifier.received)

	message, err := service.SubmitMessage(&SubmitMessageRequest{Name: "A", Email: "a@example.com", Message: "hi"})
	require.NoError(t, err)
	require.Len(t, notifier.received, 1)
	assert.Equal(t, *message, notifier.received[0])
}
