package presenter

import (
	eventdto "github.com/thien06012001/backend/internal/adapter/dto/event"
	invitationdto "github.com/thien06012001/backend/internal/adapter/dto/invitation"
	"github.com/thien06012001/backend/internal/domain/entities"
)

// ToEventResponse converts an Event entity to EventResponse DTO
func ToEventResponse(e *entities.Event) *eventdto.EventResponse {
	if e == nil {
		return nil
	}

	return &eventdto.EventResponse{
		ID:                  e.ID,
		Name:                e.Name,
		Description:         e.Description,
		Location:            e.Location,
		ImageURL:            e.ImageURL,
		OwnerID:             e.OwnerID,
		IsPublic:            e.IsPublic,
		Capacity:            e.Capacity,
		StartTime:           e.StartTime,
		EndTime:             e.EndTime,
		ParticipantReminder: e.ParticipantReminder,
		InvitationReminder:  e.InvitationReminder,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

// ToEventListResponse converts a slice of Event entities
func ToEventListResponse(events []*entities.Event) []*eventdto.EventResponse {
	responses := make([]*eventdto.EventResponse, len(events))
	for i, e := range events {
		responses[i] = ToEventResponse(e)
	}
	return responses
}

// ToParticipantResponse converts an EventParticipant entity, including the
// user's name and email when the relation is loaded
func ToParticipantResponse(p *entities.EventParticipant) *eventdto.ParticipantResponse {
	if p == nil {
		return nil
	}

	response := &eventdto.ParticipantResponse{
		EventID:  p.EventID,
		UserID:   p.UserID,
		JoinedAt: p.CreatedAt,
	}
	if p.User != nil {
		response.Name = p.User.Name
		response.Email = p.User.Email
	}
	return response
}

// ToParticipantListResponse converts a slice of EventParticipant entities
func ToParticipantListResponse(participants []*entities.EventParticipant) []*eventdto.ParticipantResponse {
	responses := make([]*eventdto.ParticipantResponse, len(participants))
	for i, p := range participants {
		responses[i] = ToParticipantResponse(p)
	}
	return responses
}

// ToInvitationResponse converts an Invitation entity, including the event
// name when the relation is loaded
func ToInvitationResponse(i *entities.Invitation) *invitationdto.InvitationResponse {
	if i == nil {
		return nil
	}

	response := &invitationdto.InvitationResponse{
		ID:        i.ID,
		EventID:   i.EventID,
		UserID:    i.UserID,
		Status:    string(i.Status),
		Message:   i.Message,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
	if i.Event != nil {
		response.EventName = i.Event.Name
	}
	return response
}

// ToInvitationListResponse converts a slice of Invitation entities
func ToInvitationListResponse(invitations []*entities.Invitation) []*invitationdto.InvitationResponse {
	responses := make([]*invitationdto.InvitationResponse, len(invitations))
	for i, inv := range invitations {
		responses[i] = ToInvitationResponse(inv)
	}
	return responses
}

// ToRequestResponse converts a JoinRequest entity
func ToRequestResponse(r *entities.JoinRequest) *invitationdto.RequestResponse {
	if r == nil {
		return nil
	}

	return &invitationdto.RequestResponse{
		ID:        r.ID,
		EventID:   r.EventID,
		UserID:    r.UserID,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

// ToRequestListResponse converts a slice of JoinRequest entities
func ToRequestListResponse(requests []*entities.JoinRequest) []*invitationdto.RequestResponse {
	responses := make([]*invitationdto.RequestResponse, len(requests))
	for i, r := range requests {
		responses[i] = ToRequestResponse(r)
	}
	return responses
}
