package factory

import (
	"time"

	"github.com/mcoot/kellypool/internal/dependencies/mocks"
	"github.com/mcoot/kellypool/internal/storage/memory"
	"github.com/mcoot/kellypool/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// QueuePlayerIDs queues IDs for the next seated players
func (t *TestApp) QueuePlayerIDs(ids ...string) {
	t.MockRandom.QueueString(ids...)
}
