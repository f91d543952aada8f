package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samber/lo"
)

type MessageType string

const (
	MessageTypeSMS   MessageType = "sms"
	MessageTypeEmail MessageType = "email"
)

var MessageTypes = []MessageType{MessageTypeSMS, MessageTypeEmail}

func (t MessageType) Valid() bool { return lo.Contains(MessageTypes, t) }

type Relationship string

const (
	RelationshipFriend   Relationship = "friend"
	RelationshipCoworker Relationship = "coworker"
	RelationshipOther    Relationship = "other"
)

var Relationships = []Relationship{RelationshipFriend, RelationshipCoworker, RelationshipOther}

func (r Relationship) Valid() bool { return lo.Contains(Relationships, r) }

// Sentiment is supplied by the server. Values outside the known set are kept
// as-is so a newer server does not break older clients.
type Sentiment string

const (
	SentimentPositive        Sentiment = "positive"
	SentimentNeutral         Sentiment = "neutral"
	SentimentNegative        Sentiment = "negative"
	SentimentConfrontational Sentiment = "confrontational"
)

type ColorCode string

const (
	ColorGreen  ColorCode = "green"
	ColorYellow ColorCode = "yellow"
	ColorRed    ColorCode = "red"
)

type ResponseStyle string

const (
	StyleProfessional ResponseStyle = "professional"
	StyleFriendly     ResponseStyle = "friendly"
	StyleCasual       ResponseStyle = "casual"
	StyleDiplomatic   ResponseStyle = "diplomatic"
)

// ResponseStyles is the canonical display order.
var ResponseStyles = []ResponseStyle{StyleProfessional, StyleFriendly, StyleCasual, StyleDiplomatic}

func (s ResponseStyle) Valid() bool { return lo.Contains(ResponseStyles, s) }

var (
	ErrUnknownResponseStyle = errors.New("unknown response style")
	ErrMissingResponseStyle = errors.New("missing response style")
)

// SuggestedResponses holds exactly one reply per ResponseStyle.
type SuggestedResponses map[ResponseStyle]string

func (s *SuggestedResponses) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(SuggestedResponses, len(ResponseStyles))
	for key, text := range raw {
		style := ResponseStyle(key)
		if !style.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownResponseStyle, key)
		}
		out[style] = text
	}
	for _, style := range ResponseStyles {
		if _, ok := out[style]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingResponseStyle, style)
		}
	}

	*s = out
	return nil
}

type SuggestedResponse struct {
	Style ResponseStyle
	Text  string
}

// Ordered returns the responses in ResponseStyles order.
func (s SuggestedResponses) Ordered() []SuggestedResponse {
	return lo.Map(ResponseStyles, func(style ResponseStyle, _ int) SuggestedResponse {
		return SuggestedResponse{Style: style, Text: s[style]}
	})
}

type AnalysisRequest struct {
	MessageText       string       `json:"messageText" validate:"notblank"`
	MessageType       MessageType  `json:"messageType" validate:"oneof=sms email"`
	Relationship      Relationship `json:"relationship" validate:"oneof=friend coworker other"`
	AdditionalContext string       `json:"additionalContext,omitempty"`
}

type AnalysisResult struct {
	Sentiment          Sentiment          `json:"sentiment" validate:"required"`
	ColorCode          ColorCode          `json:"colorCode"`
	ToneAnalysis       string             `json:"toneAnalysis"`
	ImpliedMeanings    []string           `json:"impliedMeanings"`
	SuggestedResponses SuggestedResponses `json:"suggestedResponses" validate:"required,len=4"`
}
