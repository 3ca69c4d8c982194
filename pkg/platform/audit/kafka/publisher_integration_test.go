//go:build integration

package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"kredi/pkg/domain"
	"kredi/pkg/platform/audit"
	"kredi/pkg/testutil/containers"
)

func TestPublisher(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	rp := containers.NewRedpandaContainer(t)
	const topic = "kredi.audit.events.test"

	publisher, err := New([]string{rp.Broker}, topic)
	require.NoError(t, err)
	t.Cleanup(publisher.Close)

	borrowerID := domain.NewBorrowerID()
	scoreID := domain.NewScoreID()
	event := audit.Event{
		Category:   audit.CategoryCompliance,
		Action:     audit.ActionScoreEvaluated,
		BorrowerID: borrowerID,
		ScoreID:    scoreID,
		Decision:   "approved",
		FinalScore: 71,
		RequestID:  "req-123",
	}

	require.NoError(t, publisher.Emit(ctx, event))

	flushCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	require.NoError(t, publisher.Flush(flushCtx))

	// Consume the topic from the beginning and verify the event landed.
	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(rp.Broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	t.Cleanup(consumer.Close)

	pollCtx, cancelPoll := context.WithTimeout(ctx, 15*time.Second)
	defer cancelPoll()
	fetches := consumer.PollFetches(pollCtx)
	require.NoError(t, fetches.Err())

	records := fetches.Records()
	require.Len(t, records, 1)
	assert.Equal(t, borrowerID.String(), string(records[0].Key))

	var got audit.Event
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	assert.Equal(t, audit.ActionScoreEvaluated, got.Action)
	assert.Equal(t, scoreID, got.ScoreID)
	assert.Equal(t, 71, got.FinalScore)
	assert.False(t, got.Timestamp.IsZero())
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, "topic")
	require.Error(t, err)

	_, err = New([]string{"localhost:9092"}, "")
	require.Error(t, err)
}
