package republish_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/fkusi/internal/linkclean"
	"github.com/edgard/fkusi/internal/republish"
	"github.com/edgard/fkusi/internal/republish/mocks"
)

const (
	testChatID    int64 = -100123
	testMessageID       = 42
)

var (
	errPlatform = errors.New("platform unavailable")

	testLinks = []linkclean.ExtractedLink{
		{Original: "https://youtu.be/a?si=1", Cleaned: "https://youtu.be/a"},
		{Original: "https://open.spotify.com/track/x?si=2", Cleaned: "https://open.spotify.com/track/x"},
	}

	testMessage = republish.Message{
		ChatID:    testChatID,
		MessageID: testMessageID,
		Author:    &republish.Author{Username: "alice", FirstName: "Alice"},
		Text:      "listen https://youtu.be/a?si=1 and https://open.spotify.com/track/x?si=2",
	}

	wantButtons = republish.SendOptions{
		ReplyToMessageID: testMessageID,
		Buttons: []republish.LinkButton{
			{Label: "Cleaned link #1", URL: "https://youtu.be/a"},
			{Label: "Cleaned link #2", URL: "https://open.spotify.com/track/x"},
		},
	}
)

func newRepublisher(t *testing.T) (*republish.Republisher, *mocks.MockGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	return republish.New(gw, republish.Texts{}, nil), gw
}

func TestHandleNoLinksIsNoop(t *testing.T) {
	t.Parallel()

	r, _ := newRepublisher(t)
	require.NoError(t, r.Handle(context.Background(), testMessage, nil))
}

func TestHandlePrivilegedReposts(t *testing.T) {
	t.Parallel()

	r, gw := newRepublisher(t)
	gomock.InOrder(
		gw.EXPECT().OwnMembership(gomock.Any(), testChatID).Return(republish.Privileged, nil),
		gw.EXPECT().DeleteMessage(gomock.Any(), testChatID, testMessageID).Return(nil),
		gw.EXPECT().SendMessage(gomock.Any(), testChatID,
			"alice: listen https://youtu.be/a and https://open.spotify.com/track/x",
			republish.SendOptions{}).Return(nil),
	)

	require.NoError(t, r.Handle(context.Background(), testMessage, testLinks))
}

func TestHandlePrivilegedDeleteFailureFallsBack(t *testing.T) {
	t.Parallel()

	r, gw := newRepublisher(t)
	gomock.InOrder(
		gw.EXPECT().OwnMembership(gomock.Any(), testChatID).Return(republish.Privileged, nil),
		gw.EXPECT().DeleteMessage(gomock.Any(), testChatID, testMessageID).Return(errPlatform),
		gw.EXPECT().SendMessage(gomock.Any(), testChatID, republish.DefaultTexts.ReplyHeader, wantButtons).
			Return(nil).Times(1),
	)

	require.NoError(t, r.Handle(context.Background(), testMessage, testLinks))
}

func TestHandlePrivilegedSendFailureIsReturned(t *testing.T) {
	t.Parallel()

	r, gw := newRepublisher(t)
	gw.EXPECT().OwnMembership(gomock.Any(), testChatID).Return(republish.Privileged, nil)
	gw.EXPECT().DeleteMessage(gomock.Any(), testChatID, testMessageID).Return(nil)
	gw.EXPECT().SendMessage(gomock.Any(), testChatID, gomock.Any(), republish.SendOptions{}).
		Return(errPlatform).Times(1)

	err := r.Handle(context.Background(), testMessage, testLinks)
	require.Error(t, err)
	assert.ErrorIs(t, err, errPlatform)
}

func TestHandleUnprivilegedRepliesWithButtons(t *testing.T) {
	t.Parallel()

	r, gw := newRepublisher(t)
	gw.EXPECT().OwnMembership(gomock.Any(), testChatID).Return(republish.Unprivileged, nil)
	gw.EXPECT().SendMessage(gomock.Any(), testChatID, republish.DefaultTexts.ReplyHeader, wantButtons).Return(nil)

	require.NoError(t, r.Handle(context.Background(), testMessage, testLinks))
}

func TestHandleMembershipFailureIsUnprivileged(t *testing.T) {
	t.Parallel()

	// DeleteMessage has no expectation, so any delete attempt fails the test.
	r, gw := newRepublisher(t)
	gw.EXPECT().OwnMembership(gomock.Any(), testChatID).Return(republish.Privileged, errPlatform)
	gw.EXPECT().SendMessage(gomock.Any(), testChatID, republish.DefaultTexts.ReplyHeader, wantButtons).Return(nil)

	require.NoError(t, r.Handle(context.Background(), testMessage, testLinks))
}

func TestHandleUnprivilegedSkipsInvalidLinks(t *testing.T) {
	t.Parallel()

	links := []linkclean.ExtractedLink{
		{Original: "a", Cleaned: "not a url"},
		{Original: "b", Cleaned: "https://youtu.be/b"},
		{Original: "c", Cleaned: "https://%zz"},
	}

	r, gw := newRepublisher(t)
	gw.EXPECT().OwnMembership(gomock.Any(), testChatID).Return(republish.Unprivileged, nil)
	gw.EXPECT().SendMessage(gomock.Any(), testChatID, republish.DefaultTexts.ReplyHeader, republish.SendOptions{
		ReplyToMessageID: testMessageID,
		Buttons:          []republish.LinkButton{{Label: "Cleaned link #1", URL: "https://youtu.be/b"}},
	}).Return(nil)

	require.NoError(t, r.Handle(context.Background(), testMessage, links))
}

func TestHandleUnprivilegedAllInvalidIsSilent(t *testing.T) {
	t.Parallel()

	links := []linkclean.ExtractedLink{
		{Original: "a", Cleaned: "not a url"},
		{Original: "b", Cleaned: "/relative/path"},
	}

	r, gw := newRepublisher(t)
	gw.EXPECT().OwnMembership(gomock.Any(), testChatID).Return(republish.Unprivileged, nil)

	require.NoError(t, r.Handle(context.Background(), testMessage, links))
}

func TestHandleUnprivilegedSendFailureIsReturned(t *testing.T) {
	t.Parallel()

	r, gw := newRepublisher(t)
	gw.EXPECT().OwnMembership(gomock.Any(), testChatID).Return(republish.Unprivileged, nil)
	gw.EXPECT().SendMessage(gomock.Any(), testChatID, gomock.Any(), gomock.Any()).Return(errPlatform)

	assert.ErrorIs(t, r.Handle(context.Background(), testMessage, testLinks), errPlatform)
}

func TestHandleRepostAuthorName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		author *republish.Author
		texts  republish.Texts
		want   string
	}{
		{name: "username preferred", author: &republish.Author{Username: "bob", FirstName: "Bob"}, want: "bob: hi https://youtu.be/a"},
		{name: "first name fallback", author: &republish.Author{FirstName: "Bob"}, want: "Bob: hi https://youtu.be/a"},
		{name: "empty author", author: &republish.Author{}, want: "Unknown: hi https://youtu.be/a"},
		{name: "anonymous", author: nil, want: "Unknown: hi https://youtu.be/a"},
		{name: "custom placeholder", author: nil, texts: republish.Texts{AnonymousAuthor: "someone"}, want: "someone: hi https://youtu.be/a"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			gw := mocks.NewMockGateway(ctrl)
			r := republish.New(gw, tc.texts, nil)

			msg := republish.Message{ChatID: 1, MessageID: 2, Author: tc.author, Text: "hi https://youtu.be/a?si=1"}
			gw.EXPECT().OwnMembership(gomock.Any(), int64(1)).Return(republish.Privileged, nil)
			gw.EXPECT().DeleteMessage(gomock.Any(), int64(1), 2).Return(nil)
			gw.EXPECT().SendMessage(gomock.Any(), int64(1), tc.want, republish.SendOptions{}).Return(nil)

			require.NoError(t, r.Handle(context.Background(), msg, testLinks[:1]))
		})
	}
}

func TestPermissionLevelString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "privileged", republish.Privileged.String())
	assert.Equal(t, "unprivileged", republish.Unprivileged.String())
}
