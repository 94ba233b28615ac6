package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/groundwork/internal/db"
	"github.com/alexanderramin/groundwork/internal/domain"
)

const (
	dateLayout = "2006-01-02"

	// materialsSep joins a materials list into one column. Tasks never
	// contain it, so the round trip is unambiguous.
	materialsSep = " | "
)

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database. The
// constructor accepts a DBTX so the repo composes with UnitOfWork
// transactions.
type SQLiteScheduleRepo struct {
	conn db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{conn: conn}
}

func (r *SQLiteScheduleRepo) Create(ctx context.Context, s *domain.SavedSchedule) error {
	query := `INSERT INTO schedules
		(id, project_name, location, project_type, square_footage, stories, weeks, start_date, cost_low, cost_high, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		s.ID,
		s.Params.Name,
		s.Params.Location,
		string(s.Params.Type),
		s.Params.SquareFootage,
		s.Params.Stories,
		s.Params.Weeks,
		s.Params.StartDate.Format(dateLayout),
		s.Cost.Low,
		s.Cost.High,
		s.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule: %w", err)
	}

	for _, w := range s.Schedule.Weeks {
		_, err := r.conn.ExecContext(ctx,
			`INSERT INTO schedule_weeks (schedule_id, week, start_date, end_date, tasks)
			 VALUES (?, ?, ?, ?, ?)`,
			s.ID, w.Week,
			w.StartDate.Format(dateLayout),
			w.EndDate.Format(dateLayout),
			w.TaskSummary(),
		)
		if err != nil {
			return fmt.Errorf("inserting week %d: %w", w.Week, err)
		}
	}

	for i, m := range s.Materials {
		_, err := r.conn.ExecContext(ctx,
			`INSERT INTO schedule_materials (schedule_id, position, task, materials)
			 VALUES (?, ?, ?, ?)`,
			s.ID, i, m.Task, strings.Join(m.Materials, materialsSep),
		)
		if err != nil {
			return fmt.Errorf("inserting materials for task %q: %w", m.Task, err)
		}
	}

	return nil
}

func (r *SQLiteScheduleRepo) GetByID(ctx context.Context, id string) (*domain.SavedSchedule, error) {
	query := `SELECT id, project_name, location, project_type, square_footage, stories, weeks, start_date, cost_low, cost_high, created_at
		FROM schedules WHERE id = ?`
	s, err := r.scanSchedule(r.conn.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if err := r.loadWeeks(ctx, s); err != nil {
		return nil, err
	}
	if err := r.loadMaterials(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// List returns saved schedules ordered most recent first, without their
// week and materials detail rows.
func (r *SQLiteScheduleRepo) List(ctx context.Context) ([]*domain.SavedSchedule, error) {
	query := `SELECT id, project_name, location, project_type, square_footage, stories, weeks, start_date, cost_low, cost_high, created_at
		FROM schedules ORDER BY created_at DESC`
	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing schedules: %w", err)
	}
	defer rows.Close()

	var schedules []*domain.SavedSchedule
	for rows.Next() {
		s, err := r.scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedules: %w", err)
	}
	return schedules, nil
}

func (r *SQLiteScheduleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.conn.ExecContext(ctx, `DELETE FROM schedules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting schedule: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("schedule %s: %w", id, ErrNotFound)
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for shared scan logic.
type scanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteScheduleRepo) scanSchedule(row scanner) (*domain.SavedSchedule, error) {
	var (
		s         domain.SavedSchedule
		ptype     string
		startStr  string
		createdAt string
	)
	err := row.Scan(
		&s.ID,
		&s.Params.Name,
		&s.Params.Location,
		&ptype,
		&s.Params.SquareFootage,
		&s.Params.Stories,
		&s.Params.Weeks,
		&startStr,
		&s.Cost.Low,
		&s.Cost.High,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("schedule: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning schedule: %w", err)
	}

	s.Params.Type = domain.ProjectType(ptype)
	if s.Params.StartDate, err = time.Parse(dateLayout, startStr); err != nil {
		return nil, fmt.Errorf("parsing start date %q: %w", startStr, err)
	}
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	return &s, nil
}

func (r *SQLiteScheduleRepo) loadWeeks(ctx context.Context, s *domain.SavedSchedule) error {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT week, start_date, end_date, tasks FROM schedule_weeks
		 WHERE schedule_id = ? ORDER BY week`, s.ID)
	if err != nil {
		return fmt.Errorf("loading weeks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			w                domain.WeekEntry
			startStr, endStr string
			tasks            string
		)
		if err := rows.Scan(&w.Week, &startStr, &endStr, &tasks); err != nil {
			return fmt.Errorf("scanning week: %w", err)
		}
		if w.StartDate, err = time.Parse(dateLayout, startStr); err != nil {
			return fmt.Errorf("parsing week start %q: %w", startStr, err)
		}
		if w.EndDate, err = time.Parse(dateLayout, endStr); err != nil {
			return fmt.Errorf("parsing week end %q: %w", endStr, err)
		}
		if tasks != "" {
			w.Tasks = strings.Split(tasks, "; ")
		}
		s.Schedule.Weeks = append(s.Schedule.Weeks, w)
	}
	return rows.Err()
}

func (r *SQLiteScheduleRepo) loadMaterials(ctx context.Context, s *domain.SavedSchedule) error {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT task, materials FROM schedule_materials
		 WHERE schedule_id = ? ORDER BY position`, s.ID)
	if err != nil {
		return fmt.Errorf("loading materials: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m domain.MaterialsEntry
		var joined string
		if err := rows.Scan(&m.Task, &joined); err != nil {
			return fmt.Errorf("scanning materials: %w", err)
		}
		if joined != "" {
			m.Materials = strings.Split(joined, materialsSep)
		}
		s.Materials = append(s.Materials, m)
	}
	return rows.Err()
}
