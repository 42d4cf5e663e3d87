package group

import (
	"time"

	"github.com/carson-networks/fairshare-server/internal/service"
)

// Group is the API response model for a group.
type Group struct {
	ID        string   `json:"id" doc:"Group UUID"`
	Name      string   `json:"name" doc:"Group name"`
	Currency  string   `json:"currency" doc:"ISO 4217 currency code"`
	CreatedAt string   `json:"createdAt" doc:"Creation time (RFC 3339)"`
	Members   []Member `json:"members,omitempty" doc:"Roster in join order"`
}

// Member is the API response model for a roster entry.
type Member struct {
	ID       string `json:"id" doc:"Member identifier"`
	JoinedAt string `json:"joinedAt" doc:"Join time (RFC 3339)"`
}

func fromService(g service.Group) Group {
	group := Group{
		ID:        g.ID.String(),
		Name:      g.Name,
		Currency:  g.Currency,
		CreatedAt: g.CreatedAt.Format(time.RFC3339),
	}
	for _, m := range g.Members {
		group.Members = append(group.Members, Member{ID: m.ID, JoinedAt: m.JoinedAt.Format(time.RFC3339)})
	}
	return group
}

// GroupOutput is the Huma output for endpoints returning a single group.
type GroupOutput struct {
	Status int
	Body   Group
}
