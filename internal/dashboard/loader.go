package dashboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivanpetrovic/brio/internal/apperr"
	"github.com/ivanpetrovic/brio/internal/client/wellness"
	"github.com/ivanpetrovic/brio/internal/xslog"
)

// Loader fans out to every dashboard endpoint and assembles one
// ViewModel. The account and weekly-overview calls are required: either
// failing fails the whole load. The remaining endpoints are best
// effort: each failure independently degrades that slice to its default
// and is never surfaced as an error.
type Loader struct {
	client *wellness.Client
	logger *slog.Logger
	now    func() time.Time
}

type LoaderOption func(*Loader)

func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

func WithClock(now func() time.Time) LoaderOption {
	return func(l *Loader) { l.now = now }
}

func NewLoader(client *wellness.Client, opts ...LoaderOption) *Loader {
	l := &Loader{
		client: client,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load builds a fresh ViewModel. Both tiers are issued concurrently;
// best-effort results are only merged once the required tier has
// succeeded. A 401 on the required tier becomes an
// apperr.KindAuthRequired error, anything else apperr.KindUnavailable.
func (l *Loader) Load(ctx context.Context) (*ViewModel, error) {
	start := l.now()
	vm := newViewModel()

	bctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		waterToday *wellness.WaterDay
		waterWeek  []wellness.WaterDay
		moodRecent []wellness.MoodEntry
		moodAvg    float64
		streak     *wellness.StudyStreak
		tasks      *wellness.StudyTasks
		studyHist  []wellness.StudySession
		workouts   []wellness.WorkoutSession
		focusHist  []wellness.FocusSession
		gratitude  []wellness.GratitudeEntry
		journal    []wellness.JournalEntry
		goals      *wellness.Goals
	)

	var wg sync.WaitGroup
	collect(bctx, &wg, l, "/water/today", &waterToday, l.client.Water.Today)
	collect(bctx, &wg, l, "/water/week", &waterWeek, l.client.Water.Week)
	collect(bctx, &wg, l, "/mood/recent", &moodRecent, l.client.Mood.Recent)
	collect(bctx, &wg, l, "/mood/average", &moodAvg, l.client.Mood.Average)
	collect(bctx, &wg, l, "/study/streak", &streak, l.client.Study.Streak)
	collect(bctx, &wg, l, "/study/tasks", &tasks, l.client.Study.Tasks)
	collect(bctx, &wg, l, "/study/history", &studyHist, l.client.Study.History)
	collect(bctx, &wg, l, "/workout/history", &workouts, l.client.Workout.History)
	collect(bctx, &wg, l, "/focus/history", &focusHist, l.client.Focus.History)
	collect(bctx, &wg, l, "/gratitude/recent", &gratitude, l.client.Gratitude.Recent)
	collect(bctx, &wg, l, "/journal/recent", &journal, l.client.Journal.Recent)
	collect(bctx, &wg, l, "/goals", &goals, l.client.Goals.Get)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		account, err := l.client.Account.Get(gctx)
		if err != nil {
			return err
		}
		vm.Account = *account
		return nil
	})
	g.Go(func() error {
		week, err := l.client.Stats.Overview(gctx)
		if err != nil {
			return err
		}
		vm.Week = *week
		return nil
	})

	if err := g.Wait(); err != nil {
		cancel()
		wg.Wait()
		if wellness.IsUnauthorized(err) {
			return nil, apperr.AuthRequired(apperr.WithCause(err))
		}
		return nil, apperr.Unavailable(apperr.WithCause(err))
	}

	wg.Wait()

	if waterToday != nil {
		vm.WaterToday = waterToday.Glasses
	}
	vm.WaterWeek = fillWaterWeek(waterWeek, l.now())
	if moodRecent != nil {
		vm.MoodRecent = moodRecent
	}
	vm.MoodAverage = moodAvg
	if streak != nil {
		vm.StudyStreak = *streak
	}
	if tasks != nil {
		vm.StudyTasks = *tasks
	}
	if studyHist != nil {
		vm.StudyHistory = studyHist
	}
	if workouts != nil {
		vm.WorkoutHistory = workouts
	}
	if focusHist != nil {
		vm.FocusHistory = focusHist
	}
	if gratitude != nil {
		vm.GratitudeRecent = gratitude
	}
	if journal != nil {
		vm.JournalRecent = journal
	}
	if goals != nil {
		vm.Goals = *goals
	}
	vm.RefreshedAt = l.now()

	l.logger.DebugContext(ctx, "dashboard loaded", xslog.Duration(l.now().Sub(start)))

	return vm, nil
}

// collect runs one best-effort fetch. Failures leave dst at its zero
// value and are logged at warn; they never abort the other calls.
// x/sync's errgroup is deliberately not used here: its first-error
// semantics are the opposite of the settle-all join this tier needs.
func collect[T any](ctx context.Context, wg *sync.WaitGroup, l *Loader, endpoint string, dst *T, fetch func(context.Context) (T, error)) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := fetch(ctx)
		if err != nil {
			l.logger.WarnContext(ctx, "best-effort endpoint failed",
				xslog.Endpoint(endpoint),
				xslog.Error(err))
			return
		}
		*dst = v
	}()
}
