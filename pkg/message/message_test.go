package message_test

import (
	"errors"
	"testing"

	"github.com/aretw0/causeway/pkg/adapters/memory"
	"github.com/aretw0/causeway/pkg/domain"
	"github.com/aretw0/causeway/pkg/message"
)

type fakeOrigin struct {
	counter int
}

func (o *fakeOrigin) TaskUUID() string  { return "uuid-1" }
func (o *fakeOrigin) TaskLevel() string { return "/2/" }
func (o *fakeOrigin) NextMessageCounter() int {
	n := o.counter
	o.counter++
	return n
}

func TestMessage_WriteWithOrigin(t *testing.T) {
	dest := memory.NewDestination()
	origin := &fakeOrigin{}

	msg := message.New(domain.Fields{"key": "value"}, nil)
	if err := msg.Write(dest, origin); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := msg.Write(dest, origin); err != nil {
		t.Fatalf("second Write failed: %v", err)
	}

	msgs := dest.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}

	first := msgs[0]
	if first[domain.FieldTaskUUID] != "uuid-1" || first[domain.FieldTaskLevel] != "/2/" {
		t.Errorf("identification not merged: %v", first)
	}
	if first[domain.FieldMessageCounter] != 0 {
		t.Errorf("expected counter 0, got %v", first[domain.FieldMessageCounter])
	}
	if msgs[1][domain.FieldMessageCounter] != 1 {
		t.Errorf("expected counter 1, got %v", msgs[1][domain.FieldMessageCounter])
	}
}

func TestMessage_WriteWithoutOrigin(t *testing.T) {
	dest := memory.NewDestination()

	if err := message.New(domain.Fields{"key": "value"}, nil).Write(dest, nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got := dest.Messages()[0]
	if _, present := got[domain.FieldTaskUUID]; present {
		t.Error("origin-less message should carry no task identification")
	}
	if got["key"] != "value" {
		t.Error("message fields missing")
	}
}

func TestMessage_SerializerErrorBlocksWrite(t *testing.T) {
	dest := memory.NewDestination()
	rejection := errors.New("bad fields")

	msg := message.New(domain.Fields{}, func(domain.Fields) (domain.Fields, error) {
		return nil, rejection
	})

	if err := msg.Write(dest, nil); !errors.Is(err, rejection) {
		t.Fatalf("expected the serializer error, got %v", err)
	}
	if dest.Len() != 0 {
		t.Error("nothing must be written when the serializer rejects")
	}
}

func TestMessage_CallerMutationsDoNotLeak(t *testing.T) {
	dest := memory.NewDestination()

	fields := domain.Fields{"key": "before"}
	msg := message.New(fields, nil)
	fields["key"] = "after"

	if err := msg.Write(dest, nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if got := dest.Messages()[0]["key"]; got != "before" {
		t.Errorf("expected snapshot at New time, got %v", got)
	}
}
