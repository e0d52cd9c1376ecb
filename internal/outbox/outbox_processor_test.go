package outbox

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	Repository

	pending []Event
	sent    []uuid.UUID
	listErr error
}

func (f *fakeRepo) ListPending(ctx context.Context, limit int32) ([]Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.pending, nil
}

func (f *fakeRepo) MarkSent(ctx context.Context, id uuid.UUID) error {
	f.sent = append(f.sent, id)
	return nil
}

type fakeWriter struct {
	msgs    []kafka.Message
	failOn  string
	written int
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		if string(m.Key) == w.failOn {
			return assert.AnError
		}
		w.msgs = append(w.msgs, m)
		w.written++
	}
	return nil
}

func TestProcessor_Drain(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes_and_marks_sent", func(t *testing.T) {
		e1 := Event{ID: uuid.New(), EventType: "cart.item_added", Payload: []byte(`{}`)}
		e2 := Event{ID: uuid.New(), EventType: "wishlist.item_added", Payload: []byte(`{}`)}

		repo := &fakeRepo{pending: []Event{e1, e2}}
		writer := &fakeWriter{}
		p := NewProcessor(repo, writer)

		p.drain(ctx)

		assert.Equal(t, 2, writer.written)
		assert.Equal(t, []uuid.UUID{e1.ID, e2.ID}, repo.sent)
		assert.Equal(t, "cart.item_added", string(writer.msgs[0].Key))
	})

	t.Run("publish_failure_leaves_row_pending", func(t *testing.T) {
		e1 := Event{ID: uuid.New(), EventType: "cart.item_added", Payload: []byte(`{}`)}
		e2 := Event{ID: uuid.New(), EventType: "cart.cleared", Payload: []byte(`{}`)}

		repo := &fakeRepo{pending: []Event{e1, e2}}
		writer := &fakeWriter{failOn: "cart.item_added"}
		p := NewProcessor(repo, writer)

		p.drain(ctx)

		// The failed event stays pending for the next tick; the rest of
		// the batch still goes out.
		assert.Equal(t, []uuid.UUID{e2.ID}, repo.sent)
	})

	t.Run("list_error_is_a_noop", func(t *testing.T) {
		repo := &fakeRepo{listErr: assert.AnError}
		writer := &fakeWriter{}
		p := NewProcessor(repo, writer)

		p.drain(ctx)

		assert.Zero(t, writer.written)
		assert.Empty(t, repo.sent)
	})
}
