package service

import (
	"context"
	"errors"

	"ocean/internal/model"
	"ocean/internal/repository/mysql"
	"ocean/internal/rpc"

	"gorm.io/gorm"
)

// Filter selects the listing mode. The enum is closed; anything else is a
// parameter error at the boundary, never a process fault.
type Filter string

const (
	FilterAll    Filter = "all"
	FilterUnseen Filter = "unseen"
	FilterMine   Filter = "mine"
)

// MandelaService composes the listing and detail views: joins, filters,
// derived counts, per-viewer personalization and poll tallies. Every call is
// a stateless sequence of independent queries with no transactional envelope;
// read skew between the page and its counts is an accepted trade-off.
type MandelaService struct {
	mandels  *mysql.MandelaRepository
	comments *mysql.CommentRepository
	marks    *mysql.MarkRepository
	votes    *mysql.VoteRepository
}

func NewMandelaService(db *gorm.DB) *MandelaService {
	return &MandelaService{
		mandels:  &mysql.MandelaRepository{DB: db},
		comments: &mysql.CommentRepository{DB: db},
		marks:    &mysql.MarkRepository{DB: db},
		votes:    &mysql.VoteRepository{DB: db},
	}
}

// Detail is the composed single-mandela response. Votes is attached only
// when the viewer has cast at least one vote on this mandela.
type Detail struct {
	*mysql.DetailRow
	Categories []int32        `json:"categories"`
	Votes      map[int8]int64 `json:"votes,omitempty"`
}

// Listing is the composed page response. NewCount is total minus the
// viewer's mark count; it is an approximation and does not recompute the
// unseen filter.
type Listing struct {
	TotalCount int64           `json:"total_count"`
	NewCount   int64           `json:"new_count"`
	MineCount  int64           `json:"mine_count"`
	Mandels    []mysql.ListRow `json:"mandels"`
}

func (s *MandelaService) Create(ctx context.Context, m *model.Mandela, categories []int32) (uint64, error) {
	if err := s.mandels.Create(ctx, m, categories); err != nil {
		return 0, err
	}
	return m.ID, nil
}

func (s *MandelaService) Update(ctx context.Context, m *model.Mandela, categories []int32) error {
	return s.mandels.Update(ctx, m, categories)
}

func (s *MandelaService) Delete(ctx context.Context, ids []uint64) error {
	return s.mandels.DeleteByIDs(ctx, ids)
}

func (s *MandelaService) Mark(ctx context.Context, mandelaID, userID uint64) error {
	return s.marks.Create(ctx, &model.Mark{MandelaID: mandelaID, UserID: userID})
}

// Vote inserts the cast unconditionally, then recomputes and returns the
// full tally for the mandela.
func (s *MandelaService) Vote(ctx context.Context, mandelaID, userID uint64, value int8) (map[int8]int64, error) {
	vote := &model.Vote{MandelaID: mandelaID, UserID: userID, Value: value}
	if err := s.votes.Create(ctx, vote); err != nil {
		return nil, err
	}
	return s.votes.Tally(ctx, mandelaID)
}

func (s *MandelaService) GetOne(ctx context.Context, id uint64, viewer *uint64) (*Detail, error) {
	row, err := s.mandels.FindOne(ctx, id, viewer)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, rpc.NotFound("mandela")
	}
	if err != nil {
		return nil, err
	}

	categories, err := s.mandels.Categories(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &Detail{DetailRow: row, Categories: categories}

	if viewer != nil {
		voted, err := s.votes.HasVoted(ctx, id, *viewer)
		if err != nil {
			return nil, err
		}
		if voted {
			tally, err := s.votes.Tally(ctx, id)
			if err != nil {
				return nil, err
			}
			detail.Votes = tally
		}
	}

	return detail, nil
}

func (s *MandelaService) GetAll(ctx context.Context, offset, limit int, viewer *uint64, filter Filter) (*Listing, error) {
	query := mysql.ListQuery{Viewer: viewer, Offset: offset, Limit: limit}
	switch filter {
	case FilterAll, "":
	case FilterUnseen:
		query.UnseenOnly = true
	case FilterMine:
		if viewer == nil {
			return nil, rpc.BadParams("mandela.getAll")
		}
		query.MineOnly = true
	default:
		return nil, rpc.BadParams("mandela.getAll")
	}

	rows, err := s.mandels.FindPage(ctx, query)
	if err != nil {
		return nil, err
	}

	// One scoped count per row; batching is a possible optimization at
	// larger page sizes.
	for i := range rows {
		count, err := s.comments.CountByMandela(ctx, rows[i].ID)
		if err != nil {
			return nil, err
		}
		rows[i].CommentCount = count
	}

	total, err := s.mandels.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	listing := &Listing{TotalCount: total, Mandels: rows}
	if viewer != nil {
		marked, err := s.marks.CountByUser(ctx, *viewer)
		if err != nil {
			return nil, err
		}
		listing.NewCount = total - marked

		mine, err := s.mandels.CountByUser(ctx, *viewer)
		if err != nil {
			return nil, err
		}
		listing.MineCount = mine
	}

	return listing, nil
}
