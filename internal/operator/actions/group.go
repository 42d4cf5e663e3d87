package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fairshare-server/internal/storage"
	"github.com/carson-networks/fairshare-server/internal/storage/sqlconfig"
)

// CreateGroup inserts a group and makes its creator the first member.
type CreateGroup struct {
	Name     string
	Currency string
	Creator  string

	Group *sqlconfig.Group
}

func (c *CreateGroup) ActionName() string { return "create_group" }

func (c *CreateGroup) Perform(ctx context.Context, writer *storage.Writer) error {
	group, err := writer.Groups.Insert(ctx, &sqlconfig.GroupCreate{
		Name:     c.Name,
		Currency: c.Currency,
	})
	if err != nil {
		return err
	}

	if err := writer.Groups.AddMember(ctx, group.ID, c.Creator); err != nil {
		return err
	}

	c.Group = group
	return nil
}

// JoinGroup adds a member to an existing group's roster.
type JoinGroup struct {
	GroupID  uuid.UUID
	MemberID string
}

func (j *JoinGroup) ActionName() string { return "join_group" }

func (j *JoinGroup) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := writer.Groups.FindByID(ctx, j.GroupID); err != nil {
		return err
	}
	return writer.Groups.AddMember(ctx, j.GroupID, j.MemberID)
}
