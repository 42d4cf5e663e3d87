package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fairshare-server/internal/operator/actions"
	"github.com/carson-networks/fairshare-server/internal/storage"
	"github.com/carson-networks/fairshare-server/internal/storage/sqlconfig"
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// GroupService handles groups and their rosters.
type GroupService struct {
	storage  *storage.Storage
	operator actionProcessor
}

// NewGroupService creates a new GroupService.
func NewGroupService(store *storage.Storage, op actionProcessor) *GroupService {
	return &GroupService{storage: store, operator: op}
}

// CreateGroup creates a group with the creator as its first member.
func (s *GroupService) CreateGroup(ctx context.Context, create GroupCreate) (*Group, error) {
	name := strings.TrimSpace(create.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidGroup)
	}
	creator := strings.TrimSpace(create.Creator)
	if creator == "" {
		return nil, fmt.Errorf("%w: creator is required", ErrInvalidGroup)
	}
	currency := strings.ToUpper(strings.TrimSpace(create.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	if !currencyPattern.MatchString(currency) {
		return nil, fmt.Errorf("%w: currency %q is not a 3-letter code", ErrInvalidGroup, create.Currency)
	}

	action := &actions.CreateGroup{Name: name, Currency: currency, Creator: creator}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	return s.GetGroup(ctx, action.Group.ID)
}

// GetGroup retrieves a group with its members in join order.
func (s *GroupService) GetGroup(ctx context.Context, id uuid.UUID) (*Group, error) {
	row, members, err := loadRoster(ctx, s.storage, id)
	if err != nil {
		return nil, err
	}

	group := groupFromStorage(row)
	group.Members = make([]Member, len(members))
	for i, m := range members {
		group.Members[i] = Member{ID: m.MemberID, JoinedAt: m.JoinedAt}
	}
	return &group, nil
}

// PublicGroup returns the invite preview of a group.
func (s *GroupService) PublicGroup(ctx context.Context, id uuid.UUID) (*PublicGroup, error) {
	row, members, err := loadRoster(ctx, s.storage, id)
	if err != nil {
		return nil, err
	}

	preview := &PublicGroup{
		Name:        row.Name,
		Currency:    row.Currency,
		MemberCount: len(members),
		Members:     make([]string, len(members)),
	}
	for i, m := range members {
		preview.Members[i] = m.MemberID
	}
	return preview, nil
}

// ListGroups returns the groups memberID belongs to. Members are not loaded.
func (s *GroupService) ListGroups(ctx context.Context, memberID string) ([]Group, error) {
	rows, err := s.storage.Groups.ListForMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	groups := make([]Group, len(rows))
	for i, row := range rows {
		groups[i] = groupFromStorage(row)
	}
	return groups, nil
}

// JoinGroup adds memberID to the group. Joining twice has no effect.
func (s *GroupService) JoinGroup(ctx context.Context, id uuid.UUID, memberID string) (*Group, error) {
	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return nil, fmt.Errorf("%w: member is required", ErrInvalidGroup)
	}

	err := s.operator.Process(ctx, &actions.JoinGroup{GroupID: id, MemberID: memberID})
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ErrGroupNotFound
	}
	if err != nil {
		return nil, err
	}

	return s.GetGroup(ctx, id)
}

// loadRoster fetches a group and its members, mapping a missing group to
// ErrGroupNotFound.
func loadRoster(ctx context.Context, store *storage.Storage, groupID uuid.UUID) (*sqlconfig.Group, []*sqlconfig.GroupMember, error) {
	group, err := store.Groups.FindByID(ctx, groupID)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, nil, ErrGroupNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	members, err := store.Groups.ListMembers(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	return group, members, nil
}

// requireMembers returns ErrNotGroupMember naming the first id not on the roster.
func requireMembers(roster []*sqlconfig.GroupMember, ids ...string) error {
	known := make(map[string]struct{}, len(roster))
	for _, m := range roster {
		known[m.MemberID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return fmt.Errorf("%w: %q", ErrNotGroupMember, id)
		}
	}
	return nil
}

func groupFromStorage(row *sqlconfig.Group) Group {
	return Group{
		ID:        row.ID,
		Name:      row.Name,
		Currency:  row.Currency,
		CreatedAt: row.CreatedAt,
	}
}
