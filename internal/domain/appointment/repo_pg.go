package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospital-citas/citas/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const apptCols = `id, patient_name, scheduled_at, doctor_id, room_id, created_at, updated_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientName, &a.ScheduledAt, &a.DoctorID, &a.RoomID, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func collectAppointments(rows pgx.Rows) ([]*Appointment, error) {
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO appointments (id, patient_name, scheduled_at, doctor_id, room_id)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at, updated_at`,
		a.ID, a.PatientName, a.ScheduledAt, a.DoctorID, a.RoomID).
		Scan(&a.CreatedAt, &a.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	a, err := scanAppointment(r.conn(ctx).QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointments WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	return a, err
}

func (r *repoPG) Update(ctx context.Context, a *Appointment) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE appointments
		SET patient_name=$2, scheduled_at=$3, doctor_id=$4, room_id=$5, updated_at=NOW()
		WHERE id = $1`,
		a.ID, a.PatientName, a.ScheduledAt, a.DoctorID, a.RoomID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Appointment, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+apptCols+` FROM appointments ORDER BY scheduled_at`)
	if err != nil {
		return nil, err
	}
	return collectAppointments(rows)
}

func (r *repoPG) ListByRoomAt(ctx context.Context, roomID uuid.UUID, at time.Time, exclude uuid.UUID) ([]*Appointment, error) {
	query := `SELECT ` + apptCols + ` FROM appointments WHERE room_id = $1 AND scheduled_at = $2`
	args := []interface{}{roomID, at}
	query, args = appendExclude(query, args, exclude)

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectAppointments(rows)
}

func (r *repoPG) ListByDoctorAt(ctx context.Context, doctorID uuid.UUID, at time.Time, exclude uuid.UUID) ([]*Appointment, error) {
	query := `SELECT ` + apptCols + ` FROM appointments WHERE doctor_id = $1 AND scheduled_at = $2`
	args := []interface{}{doctorID, at}
	query, args = appendExclude(query, args, exclude)

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectAppointments(rows)
}

func (r *repoPG) ListByPatientBetween(ctx context.Context, patientName string, from, to time.Time, exclude uuid.UUID) ([]*Appointment, error) {
	// BETWEEN keeps both bounds inclusive, matching the spacing window.
	query := `SELECT ` + apptCols + ` FROM appointments WHERE patient_name = $1 AND scheduled_at BETWEEN $2 AND $3`
	args := []interface{}{patientName, from, to}
	query, args = appendExclude(query, args, exclude)

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectAppointments(rows)
}

func (r *repoPG) ListByDoctorBetween(ctx context.Context, doctorID uuid.UUID, from, to time.Time, exclude uuid.UUID) ([]*Appointment, error) {
	query := `SELECT ` + apptCols + ` FROM appointments WHERE doctor_id = $1 AND scheduled_at >= $2 AND scheduled_at < $3`
	args := []interface{}{doctorID, from, to}
	query, args = appendExclude(query, args, exclude)
	query += ` ORDER BY scheduled_at`

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectAppointments(rows)
}

func appendExclude(query string, args []interface{}, exclude uuid.UUID) (string, []interface{}) {
	if exclude == uuid.Nil {
		return query, args
	}
	query += fmt.Sprintf(` AND id <> $%d`, len(args)+1)
	return query, append(args, exclude)
}
