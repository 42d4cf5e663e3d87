package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// GroupsTable provides access to the groups and group_members tables.
type GroupsTable struct {
	exec bob.Executor
}

// Ensure GroupsTable implements IGroupTable at compile time.
var _ IGroupTable = (*GroupsTable)(nil)

// NewGroupsTable creates a GroupsTable on the given executor (a DB or a Tx).
func NewGroupsTable(exec bob.Executor) *GroupsTable {
	return &GroupsTable{exec: exec}
}

// Insert creates a group and returns the stored row.
func (t *GroupsTable) Insert(ctx context.Context, create *GroupCreate) (*Group, error) {
	q := psql.Insert(
		im.Into("groups", "name", "currency"),
		im.Values(psql.Arg(create.Name, create.Currency)),
		im.Returning("id", "name", "currency", "created_at"),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Group]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByID retrieves a group by primary key.
func (t *GroupsTable) FindByID(ctx context.Context, id uuid.UUID) (*Group, error) {
	q := psql.Select(
		sm.Columns("id", "name", "currency", "created_at"),
		sm.From("groups"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Group]())
	if err != nil {
		return nil, notFound(err)
	}
	return &row, nil
}

// ListForMember returns the groups a member belongs to, oldest first.
func (t *GroupsTable) ListForMember(ctx context.Context, memberID string) ([]*Group, error) {
	q := psql.RawQuery(`SELECT g.id, g.name, g.currency, g.created_at
FROM groups g
JOIN group_members gm ON gm.group_id = g.id
WHERE gm.member_id = ?
ORDER BY g.created_at ASC, g.id ASC`, memberID)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[*Group]())
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// AddMember adds memberID to the group's roster. Adding an existing member is a no-op.
func (t *GroupsTable) AddMember(ctx context.Context, groupID uuid.UUID, memberID string) error {
	q := psql.Insert(
		im.Into("group_members", "group_id", "member_id"),
		im.Values(psql.Arg(groupID, memberID)),
		im.OnConflict("group_id", "member_id").DoNothing(),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// ListMembers returns the roster in join order.
func (t *GroupsTable) ListMembers(ctx context.Context, groupID uuid.UUID) ([]*GroupMember, error) {
	q := psql.Select(
		sm.Columns("group_id", "member_id", "joined_at"),
		sm.From("group_members"),
		sm.Where(psql.Quote("group_id").EQ(psql.Arg(groupID))),
		sm.OrderBy("joined_at").Asc(),
		sm.OrderBy("member_id").Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*GroupMember]())
}
