package handler

import "github.com/99minutos/social-api/internal/core/domain"

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:      p.ID,
		Content: p.Content,
		Author:  authorResponse{ID: p.Author.ID, Username: p.Author.Username},
	}
}

func toPostResponses(posts []*domain.Post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	return out
}

func toPostSummaries(posts []*domain.Post) []postSummaryResponse {
	out := make([]postSummaryResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, postSummaryResponse{ID: p.ID, Content: p.Content})
	}
	return out
}
