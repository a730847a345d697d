package mysql

import (
	"context"
	"encoding/json"
	"time"

	"ocean/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MandelaRepository struct {
	DB *gorm.DB
}

// ListQuery selects one page of the listing view. Viewer drives the optional
// mark join; when nil the mark side never matches.
type ListQuery struct {
	Viewer     *uint64
	UnseenOnly bool
	MineOnly   bool
	Offset     int
	Limit      int
}

// ListRow is one row of the listing view. CommentCount is merged in by the
// service after the page query.
type ListRow struct {
	ID           uint64     `gorm:"column:id" json:"id"`
	TitleMode    int        `gorm:"column:title_mode" json:"title_mode"`
	Title        string     `gorm:"column:title" json:"title"`
	What         string     `gorm:"column:what" json:"what"`
	Before       string     `gorm:"column:before_text" json:"before"`
	After        string     `gorm:"column:after_text" json:"after"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"create_ts"`
	UserName     *string    `gorm:"column:user_name" json:"user_name"`
	UserID       uint64     `gorm:"column:user_id" json:"user_id"`
	CommentCount int64      `gorm:"-" json:"comment_count"`
	MarkTS       *time.Time `gorm:"column:mark_ts" json:"mark_ts"`
}

// DetailRow is the single-mandela view.
type DetailRow struct {
	ID          uint64         `gorm:"column:id" json:"id"`
	Title       string         `gorm:"column:title" json:"title"`
	TitleMode   int            `gorm:"column:title_mode" json:"title_mode"`
	Description string         `gorm:"column:description" json:"description"`
	UserID      uint64         `gorm:"column:user_id" json:"user_id"`
	UserName    *string        `gorm:"column:user_name" json:"user_name"`
	Images      datatypes.JSON `gorm:"column:images" json:"images"`
	Videos      datatypes.JSON `gorm:"column:videos" json:"videos"`
	Links       datatypes.JSON `gorm:"column:links" json:"links"`
	CreatedAt   time.Time      `gorm:"column:created_at" json:"create_ts"`
	UpdatedAt   time.Time      `gorm:"column:updated_at" json:"update_ts"`
	What        string         `gorm:"column:what" json:"what"`
	Before      string         `gorm:"column:before_text" json:"before"`
	After       string         `gorm:"column:after_text" json:"after"`
	MarkTS      *time.Time     `gorm:"column:mark_ts" json:"mark_ts"`
}

// Create inserts the mandela, its categories and the activity outbox row in
// one transaction.
func (r *MandelaRepository) Create(ctx context.Context, m *model.Mandela, categories []int32) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if err := replaceCategories(tx, m.ID, categories); err != nil {
			return err
		}
		return insertOutbox(tx, "create", m.ID, m.UserID)
	})
}

func (r *MandelaRepository) Update(ctx context.Context, m *model.Mandela, categories []int32) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Mandela{}).Where("id = ?", m.ID).Updates(map[string]any{
			"title_mode":  m.TitleMode,
			"title":       m.Title,
			"what":        m.What,
			"before_text": m.Before,
			"after_text":  m.After,
			"description": m.Description,
			"images":      m.Images,
			"videos":      m.Videos,
			"links":       m.Links,
			"user_id":     m.UserID,
		}).Error
		if err != nil {
			return err
		}
		if err := tx.Where("mandela_id = ?", m.ID).Delete(&model.MandelaCategory{}).Error; err != nil {
			return err
		}
		return replaceCategories(tx, m.ID, categories)
	})
}

func (r *MandelaRepository) DeleteByIDs(ctx context.Context, ids []uint64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("mandela_id IN ?", ids).Delete(&model.MandelaCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Mandela{}, ids).Error; err != nil {
			return err
		}
		for _, id := range ids {
			if err := insertOutbox(tx, "delete", id, 0); err != nil {
				return err
			}
		}
		return nil
	})
}

// FindOne fetches the detail view in a single joined query. Returns
// gorm.ErrRecordNotFound when the mandela does not exist.
func (r *MandelaRepository) FindOne(ctx context.Context, id uint64, viewer *uint64) (*DetailRow, error) {
	selectCols := `mandels.id, mandels.title, mandels.title_mode, mandels.description, mandels.user_id,
		users.name AS user_name, mandels.images, mandels.videos, mandels.links,
		mandels.created_at, mandels.updated_at, mandels.what, mandels.before_text, mandels.after_text`

	q := r.DB.WithContext(ctx).Table("mandels").
		Joins("INNER JOIN users ON users.id = mandels.user_id")

	if viewer != nil {
		q = q.Select(selectCols + ", marks.created_at AS mark_ts").
			Joins("LEFT JOIN marks ON marks.mandela_id = mandels.id AND marks.user_id = ?", *viewer)
	} else {
		q = q.Select(selectCols + ", NULL AS mark_ts")
	}

	var row DetailRow
	tx := q.Where("mandels.id = ?", id).Limit(1).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

// FindPage fetches one page of the listing view, most recent first.
func (r *MandelaRepository) FindPage(ctx context.Context, q ListQuery) ([]ListRow, error) {
	selectCols := `mandels.id, mandels.title_mode, mandels.title, mandels.what,
		mandels.before_text, mandels.after_text, mandels.created_at,
		users.name AS user_name, mandels.user_id`

	tx := r.DB.WithContext(ctx).Table("mandels").
		Joins("INNER JOIN users ON users.id = mandels.user_id")

	if q.Viewer != nil {
		tx = tx.Select(selectCols + ", marks.created_at AS mark_ts").
			Joins("LEFT JOIN marks ON marks.mandela_id = mandels.id AND marks.user_id = ?", *q.Viewer)
		if q.UnseenOnly {
			tx = tx.Where("marks.created_at IS NULL")
		}
	} else {
		// No viewer: the mark side never matches, so every row is unseen.
		tx = tx.Select(selectCols + ", NULL AS mark_ts")
	}

	if q.MineOnly && q.Viewer != nil {
		tx = tx.Where("mandels.user_id = ?", *q.Viewer)
	}

	var rows []ListRow
	err := tx.Order("mandels.id desc").
		Offset(q.Offset).
		Limit(q.Limit).
		Scan(&rows).Error
	return rows, err
}

func (r *MandelaRepository) Categories(ctx context.Context, id uint64) ([]int32, error) {
	var numbers []int32
	err := r.DB.WithContext(ctx).Model(&model.MandelaCategory{}).
		Where("mandela_id = ?", id).
		Order("number asc").
		Pluck("number", &numbers).Error
	return numbers, err
}

func (r *MandelaRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Mandela{}).Count(&count).Error
	return count, err
}

func (r *MandelaRepository) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Mandela{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func replaceCategories(tx *gorm.DB, mandelaID uint64, categories []int32) error {
	if len(categories) == 0 {
		return nil
	}
	rows := make([]model.MandelaCategory, 0, len(categories))
	for _, n := range categories {
		rows = append(rows, model.MandelaCategory{MandelaID: mandelaID, Number: n})
	}
	return tx.Create(&rows).Error
}

func insertOutbox(tx *gorm.DB, event string, mandelaID, userID uint64) error {
	payload, _ := json.Marshal(map[string]any{
		"event_time": time.Now().UTC().Format(time.RFC3339Nano),
		"mandela_id": mandelaID,
		"user_id":    userID,
	})
	ob := &model.ActivityOutbox{
		EventType: event,
		MandelaID: mandelaID,
		UserID:    userID,
		Payload:   string(payload),
		Status:    0,
	}
	return tx.Create(ob).Error
}
