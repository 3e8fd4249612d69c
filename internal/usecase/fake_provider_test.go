package usecase

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/riskibarqy/scout-schedule/internal/domain/schedule"
)

type fakeAllianceData struct {
	mu sync.Mutex

	matches    []schedule.RawMatch
	matchesErr error
	event      ExternalEvent
	eventErr   error

	teams    map[int]ExternalTeam
	teamErr  error
	media    map[int][]ExternalMedia
	mediaErr error

	matchCalls atomic.Int32
	teamCalls  atomic.Int32
	mediaCalls atomic.Int32

	lastAPIKey string
	mediaYear  int
	block      chan struct{}
	entered    chan struct{}
}

func (f *fakeAllianceData) FetchMatches(_ context.Context, _ string, apiKey string) ([]schedule.RawMatch, error) {
	f.matchCalls.Add(1)
	f.mu.Lock()
	f.lastAPIKey = apiKey
	f.mu.Unlock()
	return f.matches, f.matchesErr
}

func (f *fakeAllianceData) FetchEvent(context.Context, string, string) (ExternalEvent, error) {
	return f.event, f.eventErr
}

func (f *fakeAllianceData) FetchTeam(ctx context.Context, teamNumber int, _ string) (ExternalTeam, error) {
	f.teamCalls.Add(1)
	if f.entered != nil {
		select {
		case f.entered <- struct{}{}:
		default:
		}
	}
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return ExternalTeam{}, ctx.Err()
		}
	}
	if f.teamErr != nil {
		return ExternalTeam{}, f.teamErr
	}
	return f.teams[teamNumber], nil
}

func (f *fakeAllianceData) FetchTeamMedia(_ context.Context, teamNumber, year int, _ string) ([]ExternalMedia, error) {
	f.mediaCalls.Add(1)
	f.mu.Lock()
	f.mediaYear = year
	f.mu.Unlock()
	if f.mediaErr != nil {
		return nil, f.mediaErr
	}
	return f.media[teamNumber], nil
}

// staticCredential is an in-test credential.Repository.
type staticCredential struct {
	key string
}

func (s *staticCredential) Get(context.Context) (string, bool, error) {
	return s.key, s.key != "", nil
}

func (s *staticCredential) Save(_ context.Context, apiKey string) error {
	s.key = apiKey
	return nil
}

func (s *staticCredential) Clear(context.Context) error {
	s.key = ""
	return nil
}
