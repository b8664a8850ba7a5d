package nakama

import (
	"fmt"
	"strconv"
	"strings"

	"daifugo/internal/domain"
)

// Wire payloads are JSON. Hands never leave the server except through the
// targeted hand-dealt message; everything else carries counts only.

type playCardsRequest struct {
	CardIDs []string `json:"card_ids"`
}

type resolveEffectRequest struct {
	Type    string   `json:"type"`
	CardIDs []string `json:"card_ids,omitempty"`
	Ranks   []int    `json:"ranks,omitempty"`
}

type handDealtMessage struct {
	Seat int           `json:"seat"`
	Hand []domain.Card `json:"hand"`
}

type seatView struct {
	UserID         string `json:"user_id"`
	Seat           int    `json:"seat"`
	DisplayName    string `json:"display_name"`
	IsBot          bool   `json:"is_bot"`
	IsOwner        bool   `json:"is_owner"`
	CardsRemaining int    `json:"cards_remaining"`
	Finished       bool   `json:"finished"`
	FinishOrder    int    `json:"finish_order,omitempty"`
}

type fieldView struct {
	Combo       *domain.ComboSnapshot `json:"combo,omitempty"`
	OwnerSeat   int                   `json:"owner_seat"`
	ShibariSuit domain.Suit           `json:"shibari_suit,omitempty"`
	Revolution  bool                  `json:"revolution"`
	ElevenBack  bool                  `json:"eleven_back"`
}

type matchSnapshotMessage struct {
	Phase       string     `json:"phase"`
	Seats       []seatView `json:"seats"`
	CurrentSeat int        `json:"current_seat"`
	Field       *fieldView `json:"field,omitempty"`
	Log         []string   `json:"log,omitempty"`
}

type cardPlayedMessage struct {
	Seat            int           `json:"seat"`
	Cards           []domain.Card `json:"cards"`
	ComboType       string        `json:"combo_type"`
	NextSeat        int           `json:"next_seat"`
	FieldCleared    bool          `json:"field_cleared"`
	Revolution      bool          `json:"revolution"`
	ElevenBack      bool          `json:"eleven_back"`
	ShibariSuit     domain.Suit   `json:"shibari_suit,omitempty"`
	RemainingInHand int           `json:"remaining_in_hand"`
}

type turnPassedMessage struct {
	Seat         int  `json:"seat"`
	NextSeat     int  `json:"next_seat"`
	FieldCleared bool `json:"field_cleared"`
}

type effectPromptMessage struct {
	Seat       int    `json:"seat"`
	Type       string `json:"type"`
	TargetSeat int    `json:"target_seat"`
	Remaining  int    `json:"remaining"`
}

type effectResolvedMessage struct {
	Seat       int    `json:"seat"`
	Resolution string `json:"resolution"`
}

type playerFinishedMessage struct {
	Seat  int `json:"seat"`
	Place int `json:"place"`
}

type gameEndedMessage struct {
	WinnerSeats []int `json:"winner_seats"`
}

type gameErrorMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// domainIDForSeat maps a seat index to the engine's fixed player id.
func domainIDForSeat(seat int) string {
	return fmt.Sprintf("player-%d", seat+1)
}

// seatForDomainID is the inverse of domainIDForSeat, -1 when malformed.
func seatForDomainID(id string) int {
	raw, ok := strings.CutPrefix(id, "player-")
	if !ok {
		return -1
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return -1
	}
	return n - 1
}

func seatsForDomainIDs(ids []string) []int {
	seats := make([]int, len(ids))
	for i, id := range ids {
		seats[i] = seatForDomainID(id)
	}
	return seats
}

func parseResolutionType(raw string) (domain.ResolutionType, bool) {
	switch domain.ResolutionType(raw) {
	case domain.ResolutionSkip, domain.ResolutionSevenGive, domain.ResolutionTenDiscard, domain.ResolutionQueenBomb:
		return domain.ResolutionType(raw), true
	}
	return "", false
}
