package messagesrv

import (
	"context"
	"errors"
	"testing"

	"github.com/internlink/internlink/board/message"
	"github.com/internlink/internlink/pkg/errx"
	"github.com/internlink/internlink/pkg/kernel"
)

type fakeMessageRepo struct {
	messages []message.Message
}

func (f *fakeMessageRepo) Create(_ context.Context, msg *message.Message) error {
	f.messages = append(f.messages, *msg)
	return nil
}

func (f *fakeMessageRepo) ListConversation(_ context.Context, a, b kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[message.Message], error) {
	var items []message.Message
	for _, m := range f.messages {
		if (m.FromUserID == a && m.ToUserID == b) || (m.FromUserID == b && m.ToUserID == a) {
			items = append(items, m)
		}
	}
	return &kernel.Paginated[message.Message]{
		Items: items,
		Page:  kernel.NewPage(pagination, len(items)),
		Empty: len(items) == 0,
	}, nil
}

func errCode(t *testing.T, err error) string {
	t.Helper()
	var e *errx.Error
	if !errors.As(err, &e) {
		t.Fatalf("error is %T, want *errx.Error: %v", err, err)
	}
	return e.Code
}

func TestSendAndConversation(t *testing.T) {
	repo := &fakeMessageRepo{}
	svc := NewMessageService(repo)

	sent, err := svc.Send(context.Background(), "seeker-1", message.SendMessageRequest{
		ToUserID: "emp-1",
		Body:     "  Hello, is the internship still open?  ",
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if sent.Body != "Hello, is the internship still open?" {
		t.Errorf("body = %q, want trimmed", sent.Body)
	}

	if _, err := svc.Send(context.Background(), "emp-1", message.SendMessageRequest{
		ToUserID: "seeker-1",
		Body:     "Yes, apply away.",
	}); err != nil {
		t.Fatalf("reply Send() error = %v", err)
	}

	conv, err := svc.Conversation(context.Background(), "seeker-1", "emp-1", kernel.PaginationOptions{Page: 1, PageSize: 50})
	if err != nil {
		t.Fatalf("Conversation() error = %v", err)
	}
	if len(conv.Items) != 2 {
		t.Errorf("conversation has %d messages, want 2", len(conv.Items))
	}

	// a third party sees nothing
	other, err := svc.Conversation(context.Background(), "seeker-2", "emp-1", kernel.PaginationOptions{Page: 1, PageSize: 50})
	if err != nil {
		t.Fatalf("Conversation() error = %v", err)
	}
	if !other.Empty {
		t.Error("third party conversation should be empty")
	}
}

func TestSendValidation(t *testing.T) {
	svc := NewMessageService(&fakeMessageRepo{})

	cases := []struct {
		name     string
		from     kernel.UserID
		req      message.SendMessageRequest
		wantCode string
	}{
		{"missing recipient", "u1", message.SendMessageRequest{Body: "hi"}, "MESSAGE:INVALID_REQUEST"},
		{"self message", "u1", message.SendMessageRequest{ToUserID: "u1", Body: "hi"}, "MESSAGE:SELF_MESSAGE"},
		{"blank body", "u1", message.SendMessageRequest{ToUserID: "u2", Body: "   "}, "MESSAGE:EMPTY_BODY"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Send(context.Background(), tc.from, tc.req)
			if code := errCode(t, err); code != tc.wantCode {
				t.Errorf("code = %q, want %s", code, tc.wantCode)
			}
		})
	}
}
