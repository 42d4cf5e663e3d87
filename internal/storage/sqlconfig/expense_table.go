package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var expenseColumns = []any{
	"id", "group_id", "description", "amount", "paid_by",
	"category", "receipt_url", "spent_at", "created_at",
}

var splitColumns = []any{"expense_id", "member_id", "amount", "position"}

var _ IExpenseTable = (*ExpensesTable)(nil)

// ExpensesTable provides access to the expenses and expense_splits tables.
type ExpensesTable struct {
	exec bob.Executor
}

func NewExpensesTable(exec bob.Executor) *ExpensesTable {
	return &ExpensesTable{exec: exec}
}

// Insert creates the expense row. Splits are written separately with InsertSplits.
func (t *ExpensesTable) Insert(ctx context.Context, create *ExpenseCreate) (*Expense, error) {
	columns := []string{"group_id", "description", "amount", "paid_by", "receipt_url"}
	values := []any{create.GroupID, create.Description, create.Amount, create.PaidBy, create.ReceiptURL}
	if category, ok := create.Category.Get(); ok {
		columns = append(columns, "category")
		values = append(values, category)
	}
	if spentAt, ok := create.SpentAt.Get(); ok {
		columns = append(columns, "spent_at")
		values = append(values, spentAt)
	}

	q := psql.Insert(
		im.Into("expenses", columns...),
		im.Values(psql.Arg(values...)),
		im.Returning(expenseColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Expense]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// InsertSplits writes the split rows of an expense, keeping their order.
func (t *ExpensesTable) InsertSplits(ctx context.Context, expenseID uuid.UUID, splits []SplitCreate) ([]*ExpenseSplit, error) {
	if len(splits) == 0 {
		return nil, nil
	}
	queryMods := []bob.Mod[*dialect.InsertQuery]{
		im.Into("expense_splits", "expense_id", "member_id", "amount", "position"),
	}
	for i, s := range splits {
		queryMods = append(queryMods, im.Values(psql.Arg(expenseID, s.MemberID, s.Amount, i)))
	}
	queryMods = append(queryMods, im.Returning(splitColumns...))

	return bob.All(ctx, t.exec, psql.Insert(queryMods...), scan.StructMapper[*ExpenseSplit]())
}

// FindByID retrieves an expense and its splits.
func (t *ExpensesTable) FindByID(ctx context.Context, id uuid.UUID) (*Expense, error) {
	q := psql.Select(
		sm.Columns(expenseColumns...),
		sm.From("expenses"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Expense]())
	if err != nil {
		return nil, notFound(err)
	}
	if err := t.attachSplits(ctx, []*Expense{row}); err != nil {
		return nil, err
	}
	return row, nil
}

// ListByGroup returns a group's expenses, newest first, with their splits.
// Nil filter returns all.
func (t *ExpensesTable) ListByGroup(ctx context.Context, groupID uuid.UUID, filter *ExpenseFilter) ([]*Expense, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(expenseColumns...),
		sm.From("expenses"),
		sm.Where(psql.Quote("group_id").EQ(psql.Arg(groupID))),
	}
	if filter != nil {
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy("spent_at").Desc(),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Expense]())
	if err != nil {
		return nil, err
	}
	if err := t.attachSplits(ctx, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes an expense. Its splits go with it through the foreign key cascade.
func (t *ExpensesTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("expenses"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (t *ExpensesTable) attachSplits(ctx context.Context, expenses []*Expense) error {
	if len(expenses) == 0 {
		return nil
	}
	ids := make(pq.StringArray, len(expenses))
	byID := make(map[uuid.UUID]*Expense, len(expenses))
	for i, e := range expenses {
		ids[i] = e.ID.String()
		byID[e.ID] = e
	}

	q := psql.Select(
		sm.Columns(splitColumns...),
		sm.From("expense_splits"),
		sm.Where(psql.Quote("expense_id").EQ(psql.Raw("ANY(?::uuid[])", ids))),
		sm.OrderBy("expense_id").Asc(),
		sm.OrderBy("position").Asc(),
	)
	splits, err := bob.All(ctx, t.exec, q, scan.StructMapper[*ExpenseSplit]())
	if err != nil {
		return err
	}
	for _, s := range splits {
		if e, ok := byID[s.ExpenseID]; ok {
			e.Splits = append(e.Splits, s)
		}
	}
	return nil
}
