package room

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"holdem-server/pkg/playable/poker/texasholdem"
)

type recordingNotifier struct {
	lock      sync.Mutex
	views     map[string]*texasholdem.PlayerView
	summaries []texasholdem.Summary
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{views: make(map[string]*texasholdem.PlayerView)}
}

func (r *recordingNotifier) PublishView(roomID string, view *texasholdem.PlayerView) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.views[roomID+"."+view.Player.ID] = view
}

func (r *recordingNotifier) PublishSummary(summary texasholdem.Summary) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.summaries = append(r.summaries, summary)
}

func setupPitBoss(t *testing.T) (*PitBoss, *quartz.Mock, *recordingNotifier) {
	t.Helper()

	mClock := quartz.NewMock(t)
	n := newRecordingNotifier()
	return NewPitBoss(logrus.StandardLogger(), mClock, DefaultOptions(), n), mClock, n
}

func advance(mClock *quartz.Mock, d time.Duration) {
	mClock.Advance(d).MustWait(context.Background())
}
