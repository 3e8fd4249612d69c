package usecase

import (
	"context"

	"github.com/riskibarqy/scout-schedule/internal/domain/schedule"
)

// ScheduleProvider is the alliance-data source for event schedules.
type ScheduleProvider interface {
	FetchMatches(ctx context.Context, eventID, apiKey string) ([]schedule.RawMatch, error)
	FetchEvent(ctx context.Context, eventID, apiKey string) (ExternalEvent, error)
}

// TeamProvider is the alliance-data source for team names and avatars.
type TeamProvider interface {
	FetchTeam(ctx context.Context, teamNumber int, apiKey string) (ExternalTeam, error)
	FetchTeamMedia(ctx context.Context, teamNumber, year int, apiKey string) ([]ExternalMedia, error)
}

type ExternalEvent struct {
	Key  string
	Name string
	Year int
}

type ExternalTeam struct {
	Number   int
	Nickname string
}

// ExternalMedia is one item of a team's media listing for a season.
type ExternalMedia struct {
	Type        string
	Base64Image string
	DirectURL   string
}

const MediaTypeAvatar = "avatar"
