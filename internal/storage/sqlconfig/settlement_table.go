package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var settlementColumns = []any{
	"id", "group_id", "from_member", "to_member", "amount",
	"reverses", "settled_at", "created_at",
}

var _ ISettlementTable = (*SettlementsTable)(nil)

// SettlementsTable provides access to the settlements table.
type SettlementsTable struct {
	exec bob.Executor
}

func NewSettlementsTable(exec bob.Executor) *SettlementsTable {
	return &SettlementsTable{exec: exec}
}

// Insert records a settlement and returns the stored row.
func (t *SettlementsTable) Insert(ctx context.Context, create *SettlementCreate) (*Settlement, error) {
	columns := []string{"group_id", "from_member", "to_member", "amount", "reverses"}
	values := []any{create.GroupID, create.FromMember, create.ToMember, create.Amount, create.Reverses}
	if settledAt, ok := create.SettledAt.Get(); ok {
		columns = append(columns, "settled_at")
		values = append(values, settledAt)
	}

	q := psql.Insert(
		im.Into("settlements", columns...),
		im.Values(psql.Arg(values...)),
		im.Returning(settlementColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Settlement]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByID retrieves a settlement by primary key.
func (t *SettlementsTable) FindByID(ctx context.Context, id uuid.UUID) (*Settlement, error) {
	return t.findOne(ctx, "id", id)
}

// FindByIDForUpdate retrieves a settlement and locks its row until the
// enclosing transaction ends.
func (t *SettlementsTable) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Settlement, error) {
	return t.findOne(ctx, "id", id, sm.ForUpdate())
}

// FindReversal returns the settlement that reverses id, or ErrNotFound.
func (t *SettlementsTable) FindReversal(ctx context.Context, id uuid.UUID) (*Settlement, error) {
	return t.findOne(ctx, "reverses", id)
}

// ListByGroup returns a group's settlements, newest first.
func (t *SettlementsTable) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*Settlement, error) {
	q := psql.Select(
		sm.Columns(settlementColumns...),
		sm.From("settlements"),
		sm.Where(psql.Quote("group_id").EQ(psql.Arg(groupID))),
		sm.OrderBy("settled_at").Desc(),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Settlement]())
}

func (t *SettlementsTable) findOne(ctx context.Context, column string, id uuid.UUID, extra ...bob.Mod[*dialect.SelectQuery]) (*Settlement, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(settlementColumns...),
		sm.From("settlements"),
		sm.Where(psql.Quote(column).EQ(psql.Arg(id))),
	}
	queryMods = append(queryMods, extra...)
	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Settlement]())
	if err != nil {
		return nil, notFound(err)
	}
	return row, nil
}
