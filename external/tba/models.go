package tba

import (
	"strings"

	"github.com/riskibarqy/scout-schedule/internal/domain/schedule"
	"github.com/riskibarqy/scout-schedule/internal/usecase"
)

type allianceModel struct {
	TeamKeys []string `json:"team_keys"`
	Score    *int     `json:"score"`
}

type matchModel struct {
	Key         string `json:"key" validate:"required"`
	EventKey    string `json:"event_key"`
	CompLevel   string `json:"comp_level"`
	SetNumber   int    `json:"set_number"`
	MatchNumber int    `json:"match_number" validate:"gte=1"`
	Alliances   struct {
		Red  allianceModel `json:"red"`
		Blue allianceModel `json:"blue"`
	} `json:"alliances"`
	Time          *int64 `json:"time"`
	PredictedTime *int64 `json:"predicted_time"`
	ActualTime    *int64 `json:"actual_time"`
}

func (m matchModel) toRaw() schedule.RawMatch {
	return schedule.RawMatch{
		Key:          m.Key,
		EventKey:     m.EventKey,
		CompLevel:    strings.TrimSpace(m.CompLevel),
		MatchNumber:  m.MatchNumber,
		RedTeamKeys:  m.Alliances.Red.TeamKeys,
		BlueTeamKeys: m.Alliances.Blue.TeamKeys,
	}
}

type eventModel struct {
	Key       string `json:"key" validate:"required"`
	Name      string `json:"name"`
	EventCode string `json:"event_code"`
	Year      int    `json:"year"`
}

type teamModel struct {
	Key        string `json:"key"`
	TeamNumber int    `json:"team_number"`
	Nickname   string `json:"nickname"`
	Name       string `json:"name"`
}

type mediaModel struct {
	Type       string `json:"type"`
	ForeignKey string `json:"foreign_key"`
	Details    struct {
		Base64Image string `json:"base64Image"`
	} `json:"details"`
	DirectURL string `json:"direct_url"`
	ViewURL   string `json:"view_url"`
}

func (m mediaModel) toExternal() usecase.ExternalMedia {
	return usecase.ExternalMedia{
		Type:        strings.TrimSpace(m.Type),
		Base64Image: strings.TrimSpace(m.Details.Base64Image),
		DirectURL:   strings.TrimSpace(m.DirectURL),
	}
}
