package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersistenceWatchEmitsHistoryChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	require.NoError(t, err)

	// Allow the watcher goroutine to start before writing.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, p.WriteHistory(sampleHistory()))

	select {
	case evt := <-ch:
		assert.Equal(t, EventHistoryChanged, evt.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for history change event")
	}

	cancel()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("watch channel not closed after cancel")
		}
	}
}

func TestPersistenceWatchIgnoresOtherFiles(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(base+"/notes.txt", []byte("hi"), 0o600))

	select {
	case evt := <-ch:
		t.Fatalf("unexpected event %+v", evt)
	case <-time.After(300 * time.Millisecond):
	}
}
